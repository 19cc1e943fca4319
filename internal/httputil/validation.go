package httputil

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(fieldName)
	}
}

// fieldName returns the name of the field as it is used in requests.
func fieldName(f reflect.StructField) string {
	for _, tag := range []string{"json", "form", "uri"} {
		name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
		if name != "" && name != "-" {
			return name
		}
	}

	return f.Name
}

// NormalizeEmail trims and lower-cases an email address, then validates it.
func NormalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		v = validator.New()
	}

	if v.Var(email, "required,email") != nil {
		return "", fmt.Errorf("%w: email must be a valid email address", ErrValidation)
	}

	return email, nil
}
