package webapi

import (
	"net/http"
	"path/filepath"

	"github.com/labstack/echo/v4"
	"github.com/neurmill/toolrec/pkg/clog"
	"github.com/neurmill/toolrec/pkg/extract"
	"github.com/neurmill/toolrec/pkg/intake"
	"github.com/neurmill/toolrec/pkg/lock"
	"github.com/neurmill/toolrec/pkg/metrics"
	"github.com/neurmill/toolrec/pkg/tooldb/model"
	"github.com/neurmill/toolrec/pkg/tooldb/stor"
	"github.com/pkg/errors"
)

type FeatureController struct {
	cadFileStor    stor.CADFileStor
	cadFeatureStor stor.CADFeatureStor
	extractor      extract.FeatureExtractor
	fileLocker     *lock.IdLocker
}

func NewFeatureController(cadFileStor stor.CADFileStor, cadFeatureStor stor.CADFeatureStor, extractor extract.FeatureExtractor) *FeatureController {
	return &FeatureController{
		cadFileStor:    cadFileStor,
		cadFeatureStor: cadFeatureStor,
		extractor:      extractor,
		fileLocker:     lock.NewIdLocker(),
	}
}

// featureError carries the status and message the handler should reply with.
type featureError struct {
	status int
	msg    string
}

func (e *featureError) Error() string {
	return e.msg
}

// GetFeatures returns the features for a CAD file, extracting and storing them on the first
// request. Later requests return the stored features unchanged.
func (c *FeatureController) GetFeatures(ctx echo.Context) error {
	fileID, err := intParam(ctx, "id")
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid CAD file id")
	}

	var features []model.CADFeature
	err = c.fileLocker.WithLock(fileID, func() error {
		var lookupErr error
		features, lookupErr = c.featuresFor(ctx, fileID)
		return lookupErr
	})

	var ferr *featureError
	switch {
	case errors.As(err, &ferr):
		return errorResponse(ctx, ferr.status, ferr.msg)
	case err != nil:
		return err
	}

	return ctx.JSON(http.StatusOK, features)
}

// featuresFor must be called holding the file's lock.
func (c *FeatureController) featuresFor(ctx echo.Context, fileID int) ([]model.CADFeature, error) {
	file, err := c.cadFileStor.GetCADFileByID(fileID)
	if err != nil {
		if isNotFound(err) {
			return nil, &featureError{status: http.StatusNotFound, msg: "CAD file not found"}
		}
		return nil, &featureError{status: http.StatusInternalServerError, msg: err.Error()}
	}

	existing, err := c.cadFeatureStor.ListFeaturesForCADFile(file.ID)
	if err != nil {
		return nil, &featureError{status: http.StatusInternalServerError, msg: err.Error()}
	}

	if len(existing) != 0 {
		return existing, nil
	}

	if !intake.Exists(file.FilePath) {
		clog.UsingCtx(clog.FeaturesCtx).WithField("dir", filepath.Dir(file.FilePath)).Warnf("CAD file %d (%s) missing on disk", file.ID, file.StoredName())
		return nil, &featureError{status: http.StatusNotFound, msg: "File not found on disk"}
	}

	extracted, err := c.extractor.ExtractFeatures(ctx.Request().Context(), file.FilePath)
	if err != nil {
		metrics.FeatureExtractionsTotal.WithLabelValues(c.extractor.Name(), metrics.StatusFailed).Inc()
		clog.UsingCtx(clog.FeaturesCtx).Errorf("Extractor %s failed on %s: %s", c.extractor.Name(), file.FilePath, err)
		return nil, &featureError{status: http.StatusInternalServerError, msg: "Failed to extract features: " + err.Error()}
	}

	created, err := c.cadFeatureStor.CreateFeaturesForCADFile(file, extracted)
	if err != nil {
		metrics.FeatureExtractionsTotal.WithLabelValues(c.extractor.Name(), metrics.StatusFailed).Inc()
		return nil, &featureError{status: http.StatusInternalServerError, msg: "Failed to extract features: " + err.Error()}
	}

	metrics.FeatureExtractionsTotal.WithLabelValues(c.extractor.Name(), metrics.StatusOK).Inc()
	clog.UsingCtx(clog.FeaturesCtx).Infof("Extracted %d features for CAD file %d using %s", len(created), file.ID, c.extractor.Name())

	if created == nil {
		created = []model.CADFeature{}
	}

	return created, nil
}
