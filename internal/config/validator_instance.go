package config

import (
	"net"
	"path/filepath"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/brutalist/internal/theme"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	themeFileExtensions = map[string]struct{}{".json": {}, ".yaml": {}, ".yml": {}, ".toml": {}}
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := field.Tag.Get("mapstructure")
			if name == "" || name == "-" {
				return strings.ToLower(field.Name)
			}
			return name
		})

		// theme_ref accepts a built-in theme id or a path to a theme document.
		_ = v.RegisterValidation("theme_ref", func(fl validator.FieldLevel) bool {
			ref := fl.Field().String()
			if ref == "" {
				return true
			}
			if strings.TrimSpace(ref) == "" {
				return false
			}
			if _, ok := theme.GetThemeByID(ref); ok {
				return true
			}
			_, ok := themeFileExtensions[strings.ToLower(filepath.Ext(ref))]
			return ok
		})

		// listen_addr accepts host:port where the host may be empty.
		_ = v.RegisterValidation("listen_addr", func(fl validator.FieldLevel) bool {
			_, port, err := net.SplitHostPort(fl.Field().String())
			return err == nil && port != ""
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns a configured validator instance for use outside the config package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}
