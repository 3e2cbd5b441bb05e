package service

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateRequest runs the struct tags of req and folds the first
// failure into ErrValidation. Payloads never reach the network before
// passing here.
func validateRequest(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		first := fieldErrs[0]
		return fmt.Errorf("%w: field %s fails rule %q", ErrValidation, first.Field(), first.Tag())
	}

	return fmt.Errorf("%w: %s", ErrValidation, err)
}
