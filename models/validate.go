package models

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func init() {
	// Report field names as they appear on the wire.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// ValidationDetails flattens a validator error into field-level messages
// suitable for an error response body.
func ValidationDetails(err error) map[string]string {
	details := make(map[string]string)

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		details["body"] = err.Error()
		return details
	}

	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			details[fe.Field()] = "this field is required"
		case "url":
			details[fe.Field()] = "must be a valid URL"
		default:
			details[fe.Field()] = "failed validation: " + fe.Tag()
		}
	}
	return details
}
