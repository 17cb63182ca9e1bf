package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/jsamuelsen/quotes-service/internal/domain"
)

// ErrBinding means the body or query could not be decoded at all.
var ErrBinding = errors.New("binding failed")

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func structValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()

		// Field errors are keyed like the submitted field: form tag first,
		// then json.
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			for _, tag := range []string{"form", "json"} {
				name, _, _ := strings.Cut(fld.Tag.Get(tag), ",")
				if name == "-" {
					return ""
				}
				if name != "" {
					return name
				}
			}

			return fld.Name
		})
	})

	return validate
}

// Validate checks v's validate tags. Failures come back as a
// *domain.ValidationError keyed by submitted field name.
func Validate(v any) error {
	err := structValidator().Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	fields := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields[fe.Field()] = validationMessage(fe)
	}

	return domain.NewFieldErrors(fields)
}

// BindAndValidate binds the request body, JSON or urlencoded form depending
// on Content-Type, and validates it. Undecodable input wraps ErrBinding.
func BindAndValidate(c *gin.Context, v any) error {
	if err := c.ShouldBind(v); err != nil {
		return fmt.Errorf("%w: %w", ErrBinding, err)
	}

	return Validate(v)
}

// BindQueryAndValidate is BindAndValidate for query parameters.
func BindQueryAndValidate(c *gin.Context, v any) error {
	if err := c.ShouldBindQuery(v); err != nil {
		return fmt.Errorf("%w: %w", ErrBinding, err)
	}

	return Validate(v)
}

var validationMessages = map[string]string{
	"required": domain.MsgRequired,
	"gte":      "must be greater than or equal to %s",
	"lte":      "must be less than or equal to %s",
	"oneof":    "must be one of: %s",
}

func validationMessage(fe validator.FieldError) string {
	switch tag := fe.Tag(); tag {
	case "min", "max":
		bound := "at least"
		if tag == "max" {
			bound = "at most"
		}

		msg := "must be " + bound + " " + fe.Param()
		if fe.Kind() == reflect.String {
			msg += " characters"
		}

		return msg
	default:
		msg, ok := validationMessages[tag]
		if !ok {
			return "failed validation: " + tag
		}
		if strings.Contains(msg, "%s") {
			return fmt.Sprintf(msg, fe.Param())
		}

		return msg
	}
}
