package extract

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/neurmill/toolrec/pkg/tooldb/model"
	"github.com/pkg/errors"
)

const MLModuleExtractorName = "ml"

// MLModuleExtractor sends the CAD file to the ML module's /api/parse endpoint and maps the
// features it returns.
type MLModuleExtractor struct {
	client *resty.Client
}

// mlFeature is a feature as the ML module reports it. Only the fields that have a place
// in model.CADFeature are decoded.
type mlFeature struct {
	Name         string   `json:"name"`
	Type         string   `json:"type"`
	X            *float64 `json:"x"`
	Y            *float64 `json:"y"`
	Z            *float64 `json:"z"`
	Width        *float64 `json:"width"`
	Length       *float64 `json:"length"`
	Depth        *float64 `json:"depth"`
	Diameter     *float64 `json:"diameter"`
	CornerRadius *float64 `json:"corner_radius"`
	Angle        *float64 `json:"angle"`
}

type parseResponse struct {
	Features []mlFeature `json:"features"`
}

func NewMLModuleExtractor(baseURL string) *MLModuleExtractor {
	client := resty.New().
		SetBaseURL(strings.TrimSuffix(baseURL, "/")).
		SetTimeout(2 * time.Minute)
	return &MLModuleExtractor{client: client}
}

func (e *MLModuleExtractor) Name() string {
	return MLModuleExtractorName
}

func (e *MLModuleExtractor) ExtractFeatures(ctx context.Context, path string) ([]model.CADFeature, error) {
	var result parseResponse

	resp, err := e.client.R().
		SetContext(ctx).
		SetFile("file", path).
		SetResult(&result).
		Post("/api/parse")

	if err != nil {
		return nil, errors.Wrapf(err, "unable to send %s to ml module", filepath.Base(path))
	}

	if resp.IsError() {
		return nil, toErrorFromResponse(resp)
	}

	features := make([]model.CADFeature, 0, len(result.Features))
	for _, f := range result.Features {
		features = append(features, f.toCADFeature())
	}

	return features, nil
}

// Health checks that the ML module is up.
func (e *MLModuleExtractor) Health(ctx context.Context) error {
	resp, err := e.client.R().SetContext(ctx).Get("/health")
	if err != nil {
		return errors.Wrap(err, "ml module health check failed")
	}

	if resp.IsError() {
		return toErrorFromResponse(resp)
	}

	return nil
}

// toCADFeature maps the ML module's length onto Height, the second in-plane dimension.
// A hole's diameter becomes its radius, and a pocket's corner radius is kept as its radius.
func (f mlFeature) toCADFeature() model.CADFeature {
	feature := model.CADFeature{
		FeatureName: f.Name,
		XPosition:   f.X,
		YPosition:   f.Y,
		ZPosition:   f.Z,
		Width:       f.Width,
		Height:      f.Length,
		Depth:       f.Depth,
		Angle:       f.Angle,
	}

	if feature.FeatureName == "" {
		feature.FeatureName = f.Type
	}

	switch {
	case f.Diameter != nil:
		feature.Radius = f64(*f.Diameter / 2)
	case f.CornerRadius != nil:
		feature.Radius = f.CornerRadius
	}

	return feature
}
