package response

import (
	"deliveryform/shared/constant"
	"deliveryform/shared/failure"
	"deliveryform/shared/logger"
	"encoding/json"
	"net/http"
)

type Message struct {
	Message string `json:"message"`
}

type Error struct {
	Message string               `json:"message"`
	Errors  []failure.FieldError `json:"errors,omitempty"`
}

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Message{Message: message})
}

// WithJSON sends payload as the top-level JSON document
func WithJSON(writer http.ResponseWriter, code int, payload any) {
	response(writer, code, payload)
}

// WithError reports a client error with its message and field errors. Server
// errors are answered with fallback so the cause never reaches the client.
func WithError(writer http.ResponseWriter, err error, fallback string) {
	code := failure.GetCode(err)

	if code >= http.StatusInternalServerError {
		response(writer, code, Error{Message: fallback})

		return
	}

	response(writer, code, Error{
		Message: err.Error(),
		Errors:  failure.GetFields(err),
	})
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

// WithUnhealthy sends a default response for when the server is unhealthy
func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func response(writer http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)
		writer.WriteHeader(http.StatusInternalServerError)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)

	if _, err = writer.Write(response); err != nil {
		logger.ErrorWithStack(err)
	}
}
