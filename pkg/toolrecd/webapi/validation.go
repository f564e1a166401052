package webapi

import (
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})

	return validate
}

// validateRequest runs the validate struct tags on req.
func validateRequest(req interface{}) error {
	return getValidator().Struct(req)
}
