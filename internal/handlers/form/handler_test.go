package form_test

import (
	otelMocks "deliveryform/infras/otel/mocks"
	"deliveryform/internal/domains/delivery/availability"
	"deliveryform/internal/domains/delivery/mocks"
	"deliveryform/internal/domains/delivery/model/dto"
	"deliveryform/internal/handlers/form"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func render(t *testing.T, setup func(service *mocks.MockDelivery)) *httptest.ResponseRecorder {
	t.Helper()

	ctrl := gomock.NewController(t)
	service := mocks.NewMockDelivery(ctrl)
	setup(service)

	handler := form.New(service, otelMocks.NewOtel())
	router := chi.NewRouter()
	handler.Router(router)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	return recorder
}

func TestHandler_Index(t *testing.T) {
	recorder := render(t, func(service *mocks.MockDelivery) {
		service.EXPECT().Calendar().Return(availability.New(time.UTC, 19, 8, 3))
		service.EXPECT().Availability(gomock.Any()).Return(dto.AvailabilityResponse{
			WindowStart:      "2024-06-10",
			WindowEnd:        "2024-06-13",
			Capacity:         8,
			CutoffHour:       19,
			UnavailableDates: []string{"2024-06-12"},
			SelectableDates:  []string{"2024-06-10", "2024-06-11", "2024-06-13"},
		}, nil)
	})

	body := recorder.Body.String()

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "text/html; charset=utf-8", recorder.Header().Get("Content-Type"))
	assert.Contains(t, body, `min="2024-06-10"`)
	assert.Contains(t, body, `max="2024-06-13"`)
	assert.Contains(t, body, `"2024-06-12"`)
	assert.Contains(t, body, `"2024-06-11"`)
	assert.Contains(t, body, "after 19:00")
}

func TestHandler_Index_AvailabilityFailure(t *testing.T) {
	calendar := availability.New(time.UTC, 19, 8, 3)
	window := availability.Window{
		Start: time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC),
	}

	recorder := render(t, func(service *mocks.MockDelivery) {
		service.EXPECT().Calendar().Return(calendar)
		service.EXPECT().Availability(gomock.Any()).Return(dto.AvailabilityResponse{}, errors.New("sheets down"))
		service.EXPECT().Window().Return(window)
	})

	body := recorder.Body.String()

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, body, `min="2024-06-11"`)
	assert.Contains(t, body, `max="2024-06-14"`)

	for _, date := range []string{"2024-06-11", "2024-06-12", "2024-06-13", "2024-06-14"} {
		assert.Contains(t, body, `"`+date+`"`)
	}
}
