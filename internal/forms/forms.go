package forms

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// phonePattern allows an optional leading + and (, then 7-20 characters of
// digits, spaces, dashes, parentheses and dots.
var phonePattern = regexp.MustCompile(`^\+?\(?[0-9\s\-().]{7,20}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	return v
}

// ValidationError carries the first failing rule's message. It never
// leaves the form handler that produced it.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// firstError maps the first failing field to its message; validator
// reports fields in declaration order, which is the order the rules are
// specified in.
func firstError(err error, messages map[string]map[string]string, fallback string) error {
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return &ValidationError{Message: fallback}
	}

	first := validationErrors[0]
	if byTag, ok := messages[first.Field()]; ok {
		if message, ok := byTag[first.Tag()]; ok {
			return &ValidationError{Field: first.Field(), Message: message}
		}
	}
	return &ValidationError{Field: first.Field(), Message: fallback}
}
