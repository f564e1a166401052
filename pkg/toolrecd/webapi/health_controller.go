package webapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/neurmill/toolrec/pkg/extract"
	"github.com/pkg/errors"
)

type HealthController struct {
	ping      func() error
	extractor extract.FeatureExtractor
}

// NewHealthController creates a HealthController. ping checks the database, a nil ping
// skips the check. The extractor is checked too when it implements extract.HealthChecker.
func NewHealthController(ping func() error, extractor extract.FeatureExtractor) *HealthController {
	return &HealthController{ping: ping, extractor: extractor}
}

func (c *HealthController) Health(ctx echo.Context) error {
	if err := c.check(ctx); err != nil {
		return ctx.JSON(http.StatusServiceUnavailable, map[string]string{
			"status":  "unhealthy",
			"service": "toolrecd",
			"error":   err.Error(),
		})
	}

	return ctx.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "toolrecd",
	})
}

func (c *HealthController) check(ctx echo.Context) error {
	if c.ping != nil {
		if err := c.ping(); err != nil {
			return errors.Wrap(err, "database")
		}
	}

	if checker, ok := c.extractor.(extract.HealthChecker); ok {
		if err := checker.Health(ctx.Request().Context()); err != nil {
			return errors.Wrapf(err, "feature extractor %s", c.extractor.Name())
		}
	}

	return nil
}
