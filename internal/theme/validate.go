package theme

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	brutalerrors "github.com/alexisbeaulieu97/brutalist/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// requiredTopLevelKeys are the keys a decoded theme record must carry.
var requiredTopLevelKeys = []string{"id", "name", "description", "colors"}

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
			if name == "" || name == "-" {
				return field.Name
			}
			return name
		})

		_ = v.RegisterValidation("color", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})

		validateInst = v
	})
	return validateInst
}

// Validate checks t structurally and returns a ValidationError naming the
// first offending field, such as "colors.accentDark".
func Validate(t Theme) error {
	err := validatorInstance().Struct(t)
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		fe := ves[0]
		field := fieldPath(fe)
		return brutalerrors.NewValidationError(field, fmt.Sprintf("%s failed validation for tag '%s'", field, fe.Tag()), err)
	}
	return brutalerrors.NewValidationError("theme", err.Error(), err)
}

// fieldPath strips the root struct name from the validator namespace.
func fieldPath(fe validator.FieldError) string {
	_, rest, found := strings.Cut(fe.Namespace(), ".")
	if !found {
		return fe.Field()
	}
	return rest
}

// IsValidTheme reports whether candidate is a complete theme. It accepts a
// Theme, *Theme, a decoded JSON object (map[string]any) or raw JSON
// ([]byte, json.RawMessage, string). It never panics.
func IsValidTheme(candidate any) bool {
	_, err := candidateTheme(candidate)
	return err == nil
}

// candidateTheme validates candidate and returns it as a Theme.
func candidateTheme(candidate any) (Theme, error) {
	switch value := candidate.(type) {
	case Theme:
		return value, Validate(value)
	case *Theme:
		if value == nil {
			return Theme{}, brutalerrors.NewValidationError("theme", "theme is nil", nil)
		}
		return *value, Validate(*value)
	case map[string]any:
		return themeFromRecord(value)
	case json.RawMessage:
		return themeFromJSON(value)
	case []byte:
		return themeFromJSON(value)
	case string:
		return themeFromJSON([]byte(value))
	default:
		return Theme{}, brutalerrors.NewValidationError("theme", fmt.Sprintf("unsupported candidate type %T", candidate), nil)
	}
}

func themeFromJSON(data []byte) (Theme, error) {
	var record map[string]any
	if err := json.Unmarshal(data, &record); err != nil {
		return Theme{}, brutalerrors.NewValidationError("theme", "not a JSON object", err)
	}
	if record == nil {
		return Theme{}, brutalerrors.NewValidationError("theme", "theme is null", nil)
	}
	return themeFromRecord(record)
}

// themeFromRecord checks key presence on a decoded object, then converts and
// validates it as a Theme.
func themeFromRecord(record map[string]any) (Theme, error) {
	for _, key := range requiredTopLevelKeys {
		if _, ok := record[key]; !ok {
			return Theme{}, brutalerrors.NewValidationError(key, "missing required key", nil)
		}
	}

	colors, ok := record["colors"].(map[string]any)
	if !ok {
		return Theme{}, brutalerrors.NewValidationError("colors", "must be an object", nil)
	}
	for _, key := range ColorKeys() {
		value, present := colors[key.String()]
		if !present {
			return Theme{}, brutalerrors.NewValidationError("colors."+key.String(), "missing required color", nil)
		}
		if _, isString := value.(string); !isString {
			return Theme{}, brutalerrors.NewValidationError("colors."+key.String(), "must be a string", nil)
		}
	}
	for _, key := range []string{"id", "name", "description"} {
		if _, isString := record[key].(string); !isString {
			return Theme{}, brutalerrors.NewValidationError(key, "must be a string", nil)
		}
	}

	data, err := json.Marshal(record)
	if err != nil {
		return Theme{}, brutalerrors.NewValidationError("theme", "cannot encode record", err)
	}
	var t Theme
	if err := json.Unmarshal(data, &t); err != nil {
		return Theme{}, brutalerrors.NewValidationError("theme", "cannot decode record", err)
	}
	if err := Validate(t); err != nil {
		return Theme{}, err
	}
	return t, nil
}
