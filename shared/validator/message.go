package validator

import (
	"errors"
	"strings"

	"deliveryform/shared/failure"

	val "github.com/go-playground/validator/v10"
)

const (
	summaryMessage = "Please correct the highlighted fields."
)

var (
	messages = map[string]string{
		"required":             "{field} is required",
		"required_without":     "{field} is required",
		"gte":                  "{field} must be greater than or equal to {param}",
		"lte":                  "{field} must be less than or equal to {param}",
		"oneof":                "{field} must be one of {param}",
		"max":                  "{field} must be at most {param} characters",
		"min":                  "{field} must be at least {param} characters",
		"email":                "{field} must be a valid email address",
		"civildate":            "{field} must be a date formatted as YYYY-MM-DD",
	}
)

// fieldPath drops the root struct name from a namespace such as
// "BookingRequest.deliveryAddress.street".
func fieldPath(valErr val.FieldError) string {
	namespace := valErr.Namespace()
	if idx := strings.Index(namespace, "."); idx >= 0 {
		return namespace[idx+1:]
	}

	return valErr.Field()
}

func render(valErr val.FieldError) string {
	errStr := messages[valErr.Tag()]
	if errStr == "" {
		return valErr.Error()
	}

	errStr = strings.ReplaceAll(errStr, "{field}", valErr.Field())

	return strings.ReplaceAll(errStr, "{param}", valErr.Param())
}

func message(err error) string {
	var valErrors val.ValidationErrors

	if errors.As(err, &valErrors) {
		for _, valErr := range valErrors {
			return render(valErr)
		}

		return valErrors.Error()
	}

	return err.Error()
}

func fieldErrors(err error) []failure.FieldError {
	var valErrors val.ValidationErrors

	if !errors.As(err, &valErrors) {
		return nil
	}

	fields := make([]failure.FieldError, 0, len(valErrors))
	for _, valErr := range valErrors {
		fields = append(fields, failure.FieldError{
			Field:   fieldPath(valErr),
			Message: render(valErr),
		})
	}

	return fields
}
