// Package validator wraps go-playground/validator with the rules and error
// format used across taowatch.
//
// Field names in errors come from the `envconfig` tag, then the `json` tag,
// so a failure points at the environment variable or the event attribute that
// carried the bad value. The package registers a `cron` rule accepting the
// specs understood by the refresh scheduler.
package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	gvalidator "github.com/go-playground/validator/v10"
	"github.com/robfig/cron/v3"
)

// ErrValidationFailed heads the error returned by Validate, so callers can
// test for it with errors.Is.
var ErrValidationFailed = errors.New("struct validation failed")

var validate = newValidate()

func newValidate() *gvalidator.Validate {
	v := gvalidator.New(gvalidator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(fieldName)

	// Registration only fails on an empty tag or a nil func.
	_ = v.RegisterValidation("cron", validateCron)

	return v
}

// fieldName picks the name reported for a struct field.
func fieldName(f reflect.StructField) string {
	for _, tag := range []string{"envconfig", "json"} {
		name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
		if name != "" && name != "-" {
			return name
		}
	}
	return f.Name
}

// validateCron accepts the standard five field specs and descriptors such as
// "@every 1h".
func validateCron(fl gvalidator.FieldLevel) bool {
	_, err := cron.ParseStandard(fl.Field().String())
	return err == nil
}

// Validate checks v against its `validate` tags. On failure the error joins
// ErrValidationFailed with one line per offending field.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs gvalidator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	errs := make([]error, 0, len(fieldErrs)+1)
	errs = append(errs, ErrValidationFailed)
	for _, fe := range fieldErrs {
		errs = append(errs, fieldError(fe))
	}
	return errors.Join(errs...)
}

func fieldError(fe gvalidator.FieldError) error {
	if fe.Param() != "" {
		return fmt.Errorf("%s: %q fails %s=%s", fe.Field(), fmt.Sprint(fe.Value()), fe.Tag(), fe.Param())
	}
	return fmt.Errorf("%s: %q fails %s", fe.Field(), fmt.Sprint(fe.Value()), fe.Tag())
}
