package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// -----------------------------------------------------------------------------
// ValidationError
// -----------------------------------------------------------------------------

// ValidationError reports an entity that does not satisfy its schema, either
// while building a request payload locally or while decoding a server response.
// Fields holds the offending field paths using wire (JSON) names.
type ValidationError struct {
	Entity string
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Entity, strings.Join(e.Fields, ", "))
}

// NewDecodeError converts a JSON decoding failure into a ValidationError, so
// malformed bodies surface through the same error kind as schema violations.
func NewDecodeError(entity string, err error) *ValidationError {
	field := "body"
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		field = typeErr.Field
	}
	return &ValidationError{Entity: entity, Fields: []string{fmt.Sprintf("%s (%v)", field, err)}}
}

// -----------------------------------------------------------------------------
// Struct validation
// -----------------------------------------------------------------------------

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report wire names in field paths instead of Go struct names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

func validateStruct(entity string, value any) error {
	err := validate.Struct(value)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		path := fe.Namespace()
		// Drop the leading struct segment so paths read like the JSON document.
		if idx := strings.Index(path, "."); idx >= 0 {
			path = path[idx+1:]
		}
		fields = append(fields, fmt.Sprintf("%s (%s)", path, fe.Tag()))
	}
	return &ValidationError{Entity: entity, Fields: fields}
}
