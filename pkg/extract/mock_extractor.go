package extract

import (
	"context"

	"github.com/neurmill/toolrec/pkg/tooldb/model"
)

const MockExtractorName = "mock"

// MockExtractor ignores the file contents and always returns a hole, a pocket and a slot.
type MockExtractor struct{}

func NewMockExtractor() *MockExtractor {
	return &MockExtractor{}
}

func (e *MockExtractor) Name() string {
	return MockExtractorName
}

func (e *MockExtractor) ExtractFeatures(_ context.Context, _ string) ([]model.CADFeature, error) {
	return []model.CADFeature{
		{
			FeatureName: "Hole",
			XPosition:   f64(10), YPosition: f64(20), ZPosition: f64(0),
			Radius: f64(5),
			Depth:  f64(15),
		},
		{
			FeatureName: "Pocket",
			XPosition:   f64(50), YPosition: f64(60), ZPosition: f64(0),
			Width:  f64(30),
			Height: f64(20),
			Depth:  f64(10),
		},
		{
			FeatureName: "Slot",
			XPosition:   f64(100), YPosition: f64(80), ZPosition: f64(0),
			Width:  f64(50),
			Height: f64(8),
			Depth:  f64(12),
		},
	}, nil
}

func f64(v float64) *float64 {
	return &v
}
