package webapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/neurmill/toolrec/pkg/tooldb/stor"
	"github.com/pkg/errors"
)

func errorResponse(ctx echo.Context, httpError int, msg string) error {
	return ctx.JSON(httpError, map[string]string{"error": msg})
}

// intParam reads an integer path parameter.
func intParam(ctx echo.Context, name string) (int, error) {
	return strconv.Atoi(ctx.Param(name))
}

// lookupErrorResponse replies 404 with notFoundMsg when err is stor.ErrNotFound, and 500
// otherwise.
func lookupErrorResponse(ctx echo.Context, err error, notFoundMsg string) error {
	if isNotFound(err) {
		return errorResponse(ctx, http.StatusNotFound, notFoundMsg)
	}

	return errorResponse(ctx, http.StatusInternalServerError, err.Error())
}

func isNotFound(err error) bool {
	return errors.Is(err, stor.ErrNotFound)
}
