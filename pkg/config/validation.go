package config

import (
	"reflect"

	sserr "github.com/StricklySoft/stricklysoft-result/pkg/errors"
)

// Validator is an optional interface that configuration structs may
// implement for custom validation logic. If the struct passed to
// [Loader.Load] implements Validator, its Validate method is called
// after the required-tag checks, whether or not they found problems.
//
// Validate returns every failure it finds, or nil (or an empty list) if
// the configuration is valid. Its entries are appended after the
// loader's own.
//
// Example:
//
//	type DatabaseConfig struct {
//	    Host string `env:"HOST" required:"true"`
//	    Port int    `env:"PORT" required:"true"`
//	}
//
//	func (c *DatabaseConfig) Validate() *sserr.ValidationErrors {
//	    return sserr.EmptyValidation().
//	        When(c.Port < 1 || c.Port > 65535, "Port", "port is out of range [1, 65535]")
//	}
type Validator interface {
	Validate() *sserr.ValidationErrors
}

// validate performs tag-based required validation and then invokes the
// Validator interface if the config struct implements it. The cfg
// parameter is the original interface value (for Validator type
// assertion); rv is the dereferenced reflect.Value of the struct.
func validate(cfg any, rv reflect.Value, b *sserr.ValidationErrorsBuilder) {
	validateRequired(rv, "", b)

	if v, ok := cfg.(Validator); ok {
		b.Merge(v.Validate())
	}
}

// validateRequired recursively checks that all fields tagged with
// `required:"true"` hold non-zero values. The path parameter tracks
// the dotted field path used as the field name (e.g., "Database.Host").
//
// Nested structs are traversed recursively. Unexported fields and
// non-struct types without a required tag are skipped.
func validateRequired(rv reflect.Value, path string, b *sserr.ValidationErrorsBuilder) {
	rt := rv.Type()

	for i := 0; i < rt.NumField(); i++ {
		field := rv.Field(i)
		sf := rt.Field(i)

		if !field.CanSet() {
			continue
		}

		fieldPath := joinPath(path, sf.Name)

		// Recurse into nested structs.
		if field.Kind() == reflect.Struct {
			validateRequired(field, fieldPath, b)
			continue
		}

		if sf.Tag.Get("required") != "true" {
			continue
		}

		b.Require(!field.IsZero(), fieldPath, "required field "+fieldPath+" is empty")
	}
}
