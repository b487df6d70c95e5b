package validator

import (
	"reflect"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

// now is swapped in tests.
var now = time.Now

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("future", isFuture)
}

// Engine exposes the configured validator so gin's binding can share custom tags.
func Engine() *validator.Validate { return validate }

// Validate struct fields
func Validate(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		errors["_"] = err.Error()
		return errors
	}
	for _, err := range verrs {
		errors[err.Field()] = err.Tag()
	}
	return errors
}

func isFuture(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() == reflect.Ptr {
		if field.IsNil() {
			return true
		}
		field = field.Elem()
	}
	t, ok := field.Interface().(time.Time)
	if !ok {
		return false
	}
	return t.After(now())
}
