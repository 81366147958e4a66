package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func init() {
	// Report violations under the json field names clients actually sent.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// bindJSON binds and validates the request body. On failure it writes the
// 400 response itself, listing every violated field, and returns false.
func bindJSON(ctx *gin.Context, req interface{}) bool {
	err := ctx.ShouldBindJSON(req)

	if err == nil {
		return true
	}

	var validationErrors validator.ValidationErrors

	if errors.As(err, &validationErrors) {
		details := make([]FieldError, 0, len(validationErrors))

		for _, fieldErr := range validationErrors {
			details = append(details, FieldError{
				Field:   fieldErr.Field(),
				Message: validationMessage(fieldErr),
			})
		}

		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": details})
		return false
	}

	ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
	return false
}

func validationMessage(fieldErr validator.FieldError) string {
	field := fieldErr.Field()

	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fieldErr.Param())
	case "len":
		return fmt.Sprintf("%s must be exactly %s digits", field, fieldErr.Param())
	case "number":
		return fmt.Sprintf("%s must contain only digits", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fieldErr.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
