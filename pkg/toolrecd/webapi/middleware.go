package webapi

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/neurmill/toolrec/pkg/clog"
	"github.com/neurmill/toolrec/pkg/metrics"
)

// RequestLogger logs each request and records its duration under the matched route.
func RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			start := time.Now()
			err := next(ctx)
			if err != nil {
				// Let echo write the response now so the status below is the one sent.
				ctx.Error(err)
			}

			elapsed := time.Since(start)
			req := ctx.Request()
			status := ctx.Response().Status

			metrics.HTTPRequestDuration.
				WithLabelValues(req.Method, ctx.Path(), strconv.Itoa(status)).
				Observe(elapsed.Seconds())

			clog.UsingCtx(clog.HTTPCtx).
				WithField("status", status).
				WithField("latency", elapsed.String()).
				Infof("%s %s", req.Method, req.URL.Path)

			return nil
		}
	}
}
