package validators

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validate is a type alias for validator.Validate.
type Validate = validator.Validate

// ValidationErrors is a type alias for validator.ValidationErrors.
type ValidationErrors = validator.ValidationErrors

// FieldError is a type alias for validator.FieldError.
type FieldError = validator.FieldError

// New creates a new validator instance.
func New() *Validate {
	return validator.New()
}

// NewJSON creates a validator that reports field errors by their json name,
// for payloads decoded from request bodies.
func NewJSON() *Validate {
	return newTagged("json")
}

// NewMapstructure creates a validator that reports field errors by their mapstructure
// name, for configuration decoded by viper.
func NewMapstructure() *Validate {
	return newTagged("mapstructure")
}

func newTagged(tag string) *Validate {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		return taggedFieldName(field, tag)
	})
	return validate
}

func taggedFieldName(field reflect.StructField, tag string) string {
	name, _, _ := strings.Cut(field.Tag.Get(tag), ",")
	if name == "-" {
		return ""
	}
	return name
}
