package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/GildedRose_Go/internal/catalog"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance, built once on first use
var (
	validate     *Validator
	validateOnce sync.Once
)

func newValidator() *Validator {
	v := validator.New()

	// Report fields by their JSON names so clients see the keys they sent
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	catalog.RegisterValidations(v)

	return &Validator{validate: v}
}

// GetValidator returns the global validator instance. Safe for concurrent use.
func GetValidator() *Validator {
	validateOnce.Do(func() {
		validate = newValidator()
	})
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map
// This prevents leaking internal struct names and provides cleaner error messages
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := fieldPath(e)
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case catalog.ValidationTagCategory:
			errs[field] = "Unknown item category"
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s%s", e.Param(), unitOf(e.Kind()))
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s%s", e.Param(), unitOf(e.Kind()))
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

// fieldPath strips the struct name from the namespace: items[0].name
func fieldPath(e validator.FieldError) string {
	ns := e.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}
	if ns == "" {
		ns = e.Field()
	}
	return strings.ToLower(ns)
}

func unitOf(kind reflect.Kind) string {
	switch kind {
	case reflect.String:
		return " characters"
	case reflect.Slice, reflect.Array:
		return " items"
	default:
		return ""
	}
}
