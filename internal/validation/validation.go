// Package validation checks request bodies against their `validate` tags and
// reports the first failing field in declaration order.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("present", present, true); err != nil {
		panic(err)
	}
	return v
}

// present passes when the field's JSON key was in the request body, even if
// its value was null. The parent struct lists those keys in an exported
// Present map[string]bool; without one, a non-nil value counts as present.
func present(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.Pointer || !field.IsNil() {
		return true
	}

	parent := fl.Parent()
	for parent.Kind() == reflect.Pointer {
		parent = parent.Elem()
	}

	recorded := parent.FieldByName("Present")
	if !recorded.IsValid() {
		return false
	}

	keys, ok := recorded.Interface().(map[string]bool)
	if !ok {
		return false
	}

	sf, ok := parent.Type().FieldByName(fl.StructFieldName())
	if !ok {
		return false
	}
	return keys[jsonName(sf)]
}

// MissingFieldError reports a required field that was absent (or empty, for
// non-pointer fields).
type MissingFieldError struct {
	Field string
	Label string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("No %s was provided", e.Label)
}

// Struct validates v and returns a *MissingFieldError for the first field that
// fails. Errors that are not field failures are returned unchanged.
func Struct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	field, label := describe(v, fieldErrs[0].StructField())
	return &MissingFieldError{Field: field, Label: label}
}

// describe returns the JSON name of a struct field and its human label. The
// label comes from the `label` tag and defaults to the JSON name.
func describe(v any, structField string) (string, string) {
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	sf, ok := t.FieldByName(structField)
	if !ok {
		return structField, structField
	}

	name := jsonName(sf)

	label := sf.Tag.Get("label")
	if label == "" {
		label = name
	}

	return name, label
}

func jsonName(sf reflect.StructField) string {
	name := strings.Split(sf.Tag.Get("json"), ",")[0]
	if name == "" || name == "-" {
		return sf.Name
	}
	return name
}
