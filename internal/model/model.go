// Package model holds the record types persisted by the service
// and the request payloads that create, update and page through them.
//
// Request payloads implement validation.Validatable so the handler
// pipeline can bind and validate them before any storage call.
package model

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// validate is shared by every payload; validator caches struct metadata
// so a single instance is cheaper than one per request.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Field errors carry the wire name: json for bodies, then param and
	// query for path and query string values.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"json", "param", "query"} {
			name, _, _ := strings.Cut(field.Tag.Get(tag), ",")
			if name != "" && name != "-" {
				return name
			}
		}
		return ""
	})

	// uuid_any accepts every form uuid.Parse does, upper case hex
	// included; the builtin uuid tag only takes lower case.
	if err := v.RegisterValidation("uuid_any", func(fl validator.FieldLevel) bool {
		_, err := uuid.Parse(fl.Field().String())
		return err == nil
	}); err != nil {
		panic(err)
	}

	return v
}
