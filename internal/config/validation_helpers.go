package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	brutalerrors "github.com/alexisbeaulieu97/brutalist/pkg/errors"
)

// convertValidationError normalizes validator errors into brutalist validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := keyName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		if ve.Param() != "" {
			msg = fmt.Sprintf("%s (allowed: %s)", msg, ve.Param())
		}
		return brutalerrors.NewValidationError(field, msg, err)
	}

	return brutalerrors.NewValidationError("config", err.Error(), err)
}

// keyName turns "Config.storage.backend" into the config key "storage.backend".
func keyName(fe validator.FieldError) string {
	_, rest, found := strings.Cut(fe.Namespace(), ".")
	if !found {
		return strings.ToLower(fe.Field())
	}
	return rest
}
