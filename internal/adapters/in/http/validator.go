package http

import (
	"errors"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// CustomValidator adapts go-playground/validator to echo's Validator
// interface so handlers can call ctx.Validate on bound request bodies.
type CustomValidator struct {
	validate *validator.Validate
}

// NewCustomValidator creates a validator for request payloads.
func NewCustomValidator() *CustomValidator {
	return &CustomValidator{validate: validator.New()}
}

// Validate implements echo.Validator.
func (v *CustomValidator) Validate(i any) error {
	return v.validate.Struct(i)
}

// fieldErrorsFromValidator converts validator violations into a field to
// messages map. Field names are rewritten from Go namespaces to their JSON
// form: "Items[0].Quantity" becomes "items[0].quantity".
func fieldErrorsFromValidator(err error) map[string][]string {
	fields := make(map[string][]string)

	var violations validator.ValidationErrors
	if !errors.As(err, &violations) {
		fields["request"] = []string{err.Error()}
		return fields
	}

	for _, violation := range violations {
		field := jsonFieldName(violation.Namespace())
		message := "must satisfy " + violation.Tag()
		if violation.Param() != "" {
			message += "=" + violation.Param()
		}
		fields[field] = append(fields[field], message)
	}
	return fields
}

// jsonFieldName strips the root struct name from a validator namespace and
// lowercases the first rune of every remaining segment.
func jsonFieldName(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		namespace = namespace[i+1:]
	}
	segments := strings.Split(namespace, ".")
	for i, segment := range segments {
		runes := []rune(segment)
		if len(runes) > 0 {
			runes[0] = unicode.ToLower(runes[0])
		}
		segments[i] = string(runes)
	}
	return strings.Join(segments, ".")
}
