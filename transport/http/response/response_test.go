package response_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"deliveryform/shared/failure"
	"deliveryform/transport/http/response"
)

func TestWithError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "date window",
			err:      failure.DateWindow("That delivery date is fully booked. Please choose another date."),
			wantCode: http.StatusBadRequest,
			wantBody: `{"message":"That delivery date is fully booked. Please choose another date."}`,
		},
		{
			name: "missing fields",
			err: failure.MissingFields("Please correct the highlighted fields.", []failure.FieldError{
				{Field: "email", Message: "email is required"},
			}),
			wantCode: http.StatusBadRequest,
			wantBody: `{"message":"Please correct the highlighted fields.","errors":[{"field":"email","message":"email is required"}]}`,
		},
		{
			name:     "cause is hidden",
			err:      errors.New("failed to save delivery: googleapi: Error 403"),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"message":"Error submitting order details"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()

			response.WithError(recorder, tt.err, "Error submitting order details")

			assert.Equal(t, tt.wantCode, recorder.Code)
			assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, recorder.Body.String())
		})
	}
}

func TestWithJSON(t *testing.T) {
	recorder := httptest.NewRecorder()

	response.WithJSON(recorder, http.StatusOK, map[string][]string{"unavailableDates": {"2024-06-12"}})

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"unavailableDates":["2024-06-12"]}`, recorder.Body.String())
}

func TestWithRequestLimitExceeded(t *testing.T) {
	recorder := httptest.NewRecorder()

	response.WithRequestLimitExceeded(recorder)

	assert.Equal(t, http.StatusTooManyRequests, recorder.Code)
	assert.JSONEq(t, `{"message":"REQUEST LIMIT EXCEEDED"}`, recorder.Body.String())
}
