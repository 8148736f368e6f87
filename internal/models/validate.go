package models

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

// ValidationError maps JSON field names to human readable problems.
type ValidationError struct {
	Errors map[string]string `json:"errors"`
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Errors))
	for f := range e.Errors {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	msgs := make([]string, 0, len(fields))
	for _, f := range fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", f, e.Errors[f]))
	}
	return "validation failed: " + strings.Join(msgs, ", ")
}

// Validator checks link records before they reach storage.
type Validator struct {
	validate *validator.Validate
}

// NewValidator builds a validator that reports errors by JSON field name.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	if err := v.RegisterValidation("rfc3339", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(time.RFC3339, fl.Field().String())
		return err == nil
	}); err != nil {
		panic(err)
	}

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Link validates a single record.
func (v *Validator) Link(l UsefulLink) error {
	err := v.validate.Struct(l)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := &ValidationError{Errors: make(map[string]string, len(verrs))}
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			out.Errors[fe.Field()] = "is required"
		case "url":
			out.Errors[fe.Field()] = "must be an absolute URL"
		case "rfc3339":
			out.Errors[fe.Field()] = "must be an RFC 3339 timestamp"
		default:
			out.Errors[fe.Field()] = "failed " + fe.Tag()
		}
	}
	return out
}

var defaultValidator = sync.OnceValue(NewValidator)

// Validate checks l with a shared Validator.
func Validate(l UsefulLink) error {
	return defaultValidator().Link(l)
}
