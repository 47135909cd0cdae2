package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/iacubdiego/Calo-indumentaria-web/internal/model"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// Validator returns the shared validator with the "slug" rule registered and
// field names reported by their JSON key.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = validate.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
			return model.SlugPattern.MatchString(fl.Field().String())
		})
	})
	return validate
}

// Validate runs the struct rules and returns nil or a map of JSON field path
// to a Spanish message suitable for the admin forms.
func Validate(s any) map[string]string {
	err := Validator().Struct(s)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return map[string]string{"_": err.Error()}
	}
	fields := make(map[string]string, len(ve))
	for _, fe := range ve {
		fields[fieldPath(fe.Namespace())] = message(fe)
	}
	return fields
}

// fieldPath drops the root struct name: "ReplaceProductsRequest.products[0].name"
// becomes "products[0].name".
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "es obligatorio"
	case "min":
		return fmt.Sprintf("debe tener al menos %s elemento(s)", fe.Param())
	case "max":
		return fmt.Sprintf("excede el máximo de %s", fe.Param())
	case "email":
		return "no es un email válido"
	case "slug":
		return "solo minúsculas y guiones (ej: uniformes-industriales)"
	default:
		return "valor inválido"
	}
}
