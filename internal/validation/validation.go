// Package validation turns struct-tag rules into field level error messages.
//
// Each service declares its rules as `validate` tags on its request types plus a
// Messages table, and exposes a pure Validate function the view layer calls
// before any store mutation.
package validation

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// FieldError is a single rule violation on one field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors is the ordered set of violations for one input
type Errors []FieldError

// Error joins every violation into one line
func (e Errors) Error() string {
	parts := make([]string, len(e))
	for i, fe := range e {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return strings.Join(parts, "; ")
}

// For returns the message reported for field, if any
func (e Errors) For(field string) (string, bool) {
	for _, fe := range e {
		if fe.Field == field {
			return fe.Message, true
		}
	}
	return "", false
}

// Messages maps "field.tag" (or just "field") to a human readable message
type Messages map[string]string

func (m Messages) lookup(field, tag string) string {
	if msg, ok := m[field+"."+tag]; ok {
		return msg
	}
	if msg, ok := m[field]; ok {
		return msg
	}
	return fmt.Sprintf("%s is invalid (%s)", field, tag)
}

var (
	once     sync.Once
	validate *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		validate = validator.New()
		// report fields by their persisted (JSON) names
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		if err := validate.RegisterValidation("finite", isFinite); err != nil {
			panic(err)
		}
	})
	return validate
}

// isFinite rejects NaN and infinities; non-float fields always pass
func isFinite(fl validator.FieldLevel) bool {
	field := fl.Field()
	switch field.Kind() {
	case reflect.Float32, reflect.Float64:
		f := field.Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	default:
		return true
	}
}

// Struct checks v against its validate tags.
// Returns nil when v is valid. Repeated violations of the same field and
// message (e.g. several bad list elements) are reported once.
func Struct(v any, messages Messages) Errors {
	err := instance().Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return Errors{{Field: "", Message: err.Error()}}
	}

	out := make(Errors, 0, len(verrs))
	seen := make(map[FieldError]bool, len(verrs))
	for _, fe := range verrs {
		field := baseField(fe.Field())
		entry := FieldError{Field: field, Message: messages.lookup(field, fe.Tag())}
		if seen[entry] {
			continue
		}
		seen[entry] = true
		out = append(out, entry)
	}
	return out
}

// baseField strips a list index, e.g. "channels[1]" -> "channels"
func baseField(field string) string {
	if i := strings.IndexByte(field, '['); i >= 0 {
		return field[:i]
	}
	return field
}
