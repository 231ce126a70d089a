package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/tbourn/go-biztime-backend/internal/domain"
	"github.com/tbourn/go-biztime-backend/internal/services"
)

var registerOnce sync.Once

// RegisterValidators installs the custom rules on gin's validator engine:
//   - slug: a non-empty code that services.Slugify would produce
//
// Field names in validation errors are reported by their JSON names.
// Safe to call more than once.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return f.Name
			}
			return name
		})
		_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
			return services.IsSlug(fl.Field().String())
		})
	})
}

// bindJSON decodes the request body into obj and validates it. An empty
// body is validated as an empty object so missing fields are reported by
// name. Any failure is returned as a 400 domain error.
func bindJSON(c *gin.Context, obj any) error {
	err := c.ShouldBindJSON(obj)
	if errors.Is(err, io.EOF) {
		err = binding.Validator.ValidateStruct(obj)
	}
	if err == nil {
		return nil
	}
	return bindError(err)
}

// bindError converts decoding and validation failures to a 400 message
// naming the offending field.
func bindError(err error) error {
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		fe := ves[0]
		switch fe.Tag() {
		case "required":
			return domain.BadRequestf("%s is required", fe.Field())
		case "slug":
			return domain.BadRequestf("%s must be a slug (lowercase letters, digits, dashes and underscores)", fe.Field())
		default:
			return domain.BadRequestf("%s is invalid", fe.Field())
		}
	}

	var te *json.UnmarshalTypeError
	if errors.As(err, &te) && te.Field != "" {
		return domain.BadRequestf("%s must be a %s", te.Field, jsonKind(te.Type))
	}
	return domain.BadRequestf("%s: %s", MsgInvalidBody, err.Error())
}

func jsonKind(t reflect.Type) string {
	if t == nil {
		return "value"
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int64, reflect.Float64:
		return "number"
	default:
		return t.Kind().String()
	}
}
