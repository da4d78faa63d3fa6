package serverutils

import (
	"fmt"
	"strings"

	"roombuddy-be/internal/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest runs struct tag validation and converts failures into an
// invalid input error the error middleware knows how to render.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return apperror.InvalidInput("invalid request body")
		}

		var fields []string
		for _, fe := range validationErrors {
			fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
		}
		return apperror.InvalidInput("validation failed: " + strings.Join(fields, ", "))
	}
	return nil
}
