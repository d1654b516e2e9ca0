package serverutils

import (
	"fmt"
	"strings"

	"child-screening-be/internal/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest runs the struct's validate tags and folds failures
// into a single ValidationError. Only presence rules are used; there is
// deliberately no format checking.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperror.Validation("invalid request body")
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return apperror.Validation(fmt.Sprintf("all fields required, missing: %s", strings.Join(fields, ", ")))
}
