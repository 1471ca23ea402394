package failure

import (
	"errors"
	"net/http"
)

const (
	KindMissingField = "missing_field"
	KindDateWindow   = "date_window"
)

// FieldError describes one rejected request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int          `json:"code"`
	Kind    string       `json:"-"`
	Message string       `json:"message"`
	Fields  []FieldError `json:"errors,omitempty"`
}

var InvalidJSONBody = &Failure{Code: http.StatusBadRequest, Message: "request body must be valid JSON"}

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// MissingFields reports absent or malformed request fields, one entry per field.
func MissingFields(msg string, fields []FieldError) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Kind:    KindMissingField,
		Message: msg,
		Fields:  fields,
	}
}

// DateWindow reports a delivery date the customer cannot book.
func DateWindow(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Kind:    KindDateWindow,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return nil
}

// InternalErrorFromString hides the cause behind a generic message.
func InternalErrorFromString(msg string) error {
	return &Failure{
		Code:    http.StatusInternalServerError,
		Message: msg,
	}
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetFields returns the per-field errors carried by err, if any.
func GetFields(err error) []FieldError {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Fields
	}

	return nil
}

func IsMissingField(err error) bool {
	return kindOf(err) == KindMissingField
}

func IsDateWindow(err error) bool {
	return kindOf(err) == KindDateWindow
}

func kindOf(err error) string {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Kind
	}

	return ""
}
