// Package extract turns a stored CAD file into geometric features.
//
// Real feature extraction is not implemented here. MockExtractor returns a fixed set of
// features and MLModuleExtractor delegates to the external ML module. Callers depend only
// on FeatureExtractor so either can be swapped for a real engine.
package extract

import (
	"context"

	"github.com/neurmill/toolrec/pkg/config"
	"github.com/neurmill/toolrec/pkg/tooldb/model"
	"github.com/pkg/errors"
)

type FeatureExtractor interface {
	// Name identifies the extractor in logs and metrics.
	Name() string

	// ExtractFeatures returns the features found in the CAD file at path. The returned
	// features have no ID or CADFileID set.
	ExtractFeatures(ctx context.Context, path string) ([]model.CADFeature, error)
}

// HealthChecker is implemented by extractors that depend on an outside service.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// FromConfig picks the extractor named by FEATURE_EXTRACTOR. "mock" (the default) needs
// nothing else, "ml" requires ML_MODULE_URL.
func FromConfig(c config.Configer) (FeatureExtractor, error) {
	switch name := c.GetKeyWithDefault("FEATURE_EXTRACTOR", MockExtractorName); name {
	case MockExtractorName:
		return NewMockExtractor(), nil
	case MLModuleExtractorName:
		url := c.GetKey("ML_MODULE_URL")
		if url == "" {
			return nil, errors.New("FEATURE_EXTRACTOR is ml but ML_MODULE_URL is not set")
		}
		return NewMLModuleExtractor(url), nil
	default:
		return nil, errors.Errorf("unknown FEATURE_EXTRACTOR '%s'", name)
	}
}
