package delivery_test

import (
	"context"
	otelMocks "deliveryform/infras/otel/mocks"
	"deliveryform/internal/domains/delivery/mocks"
	"deliveryform/internal/domains/delivery/model"
	"deliveryform/internal/domains/delivery/model/dto"
	"deliveryform/internal/handlers/delivery"
	"deliveryform/shared/failure"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const validBody = `{
	"orderNumber": "A-100",
	"name": "Sam Rivera",
	"email": "sam@example.com",
	"phoneNumber": "555-0100",
	"deliveryAddress": {"street": "1 Main St", "city": "Springfield", "state": "NY", "postalCode": "10001"},
	"deliveryDate": "2024-06-12",
	"contactlessDelivery": "Yes"
}`

func newRouter(t *testing.T) (*chi.Mux, *mocks.MockDelivery) {
	t.Helper()

	ctrl := gomock.NewController(t)
	service := mocks.NewMockDelivery(ctrl)
	handler := delivery.New(service, otelMocks.NewOtel())

	router := chi.NewRouter()
	router.Route("/api", handler.Router)

	return router, service
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	return recorder
}

func TestHandler_Submit(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		setup    func(service *mocks.MockDelivery)
		wantCode int
		wantBody string
	}{
		{
			name: "accepted",
			body: validBody,
			setup: func(service *mocks.MockDelivery) {
				service.EXPECT().
					Submit(gomock.Any(), gomock.AssignableToTypeOf(dto.BookingRequest{})).
					DoAndReturn(func(_ context.Context, req dto.BookingRequest) (model.Booking, error) {
						assert.Equal(t, "A-100", req.OrderNumber)
						assert.Equal(t, "2024-06-12", req.DeliveryDate)
						assert.Equal(t, "10001", req.DeliveryAddress.PostalCode)

						return model.Booking{OrderNumber: req.OrderNumber}, nil
					})
			},
			wantCode: http.StatusOK,
			wantBody: `{"message":"Order details submitted successfully"}`,
		},
		{
			name:     "malformed json",
			body:     `{"orderNumber":`,
			setup:    func(_ *mocks.MockDelivery) {},
			wantCode: http.StatusBadRequest,
			wantBody: `{"message":"request body must be valid JSON"}`,
		},
		{
			name: "missing fields",
			body: `{}`,
			setup: func(service *mocks.MockDelivery) {
				service.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(model.Booking{},
					failure.MissingFields("Please correct the highlighted fields.", []failure.FieldError{
						{Field: "orderNumber", Message: "orderNumber is required"},
					}))
			},
			wantCode: http.StatusBadRequest,
			wantBody: `{"message":"Please correct the highlighted fields.","errors":[{"field":"orderNumber","message":"orderNumber is required"}]}`,
		},
		{
			name: "date window",
			body: validBody,
			setup: func(service *mocks.MockDelivery) {
				service.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(model.Booking{},
					failure.DateWindow("Deliveries are not made on Sundays. Please choose another date."))
			},
			wantCode: http.StatusBadRequest,
			wantBody: `{"message":"Deliveries are not made on Sundays. Please choose another date."}`,
		},
		{
			name: "ledger failure hides the cause",
			body: validBody,
			setup: func(service *mocks.MockDelivery) {
				service.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(model.Booking{},
					fmt.Errorf("failed to save delivery: %w", errors.New("quota exceeded")))
			},
			wantCode: http.StatusInternalServerError,
			wantBody: `{"message":"Error submitting order details"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, service := newRouter(t)
			tt.setup(service)

			recorder := serve(router, http.MethodPost, "/api/submit", tt.body)

			assert.Equal(t, tt.wantCode, recorder.Code)

			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, recorder.Body.String())
			}
		})
	}
}

func TestHandler_GetUnavailableDates(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		router, service := newRouter(t)
		service.EXPECT().UnavailableDates(gomock.Any()).
			Return(dto.UnavailableDatesResponse{UnavailableDates: []string{"2024-06-12", "2024-06-13"}}, nil)

		recorder := serve(router, http.MethodGet, "/api/unavailable-dates", "")

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `{"unavailableDates":["2024-06-12","2024-06-13"]}`, recorder.Body.String())
	})

	t.Run("empty list is not null", func(t *testing.T) {
		router, service := newRouter(t)
		service.EXPECT().UnavailableDates(gomock.Any()).
			Return(dto.UnavailableDatesResponse{UnavailableDates: []string{}}, nil)

		recorder := serve(router, http.MethodGet, "/api/unavailable-dates", "")

		assert.JSONEq(t, `{"unavailableDates":[]}`, recorder.Body.String())
	})

	t.Run("failure", func(t *testing.T) {
		router, service := newRouter(t)
		service.EXPECT().UnavailableDates(gomock.Any()).Return(dto.UnavailableDatesResponse{}, errors.New("sheets down"))

		recorder := serve(router, http.MethodGet, "/api/unavailable-dates", "")

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		assert.JSONEq(t, `{"message":"Error fetching deliveries"}`, recorder.Body.String())
	})
}

func TestHandler_GetAvailability(t *testing.T) {
	router, service := newRouter(t)
	service.EXPECT().Availability(gomock.Any()).Return(dto.AvailabilityResponse{
		WindowStart:      "2024-06-10",
		WindowEnd:        "2024-06-13",
		Capacity:         8,
		CutoffHour:       19,
		UnavailableDates: []string{"2024-06-11"},
		SelectableDates:  []string{"2024-06-10", "2024-06-12", "2024-06-13"},
	}, nil)

	recorder := serve(router, http.MethodGet, "/api/availability", "")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{
		"windowStart": "2024-06-10",
		"windowEnd": "2024-06-13",
		"capacity": 8,
		"cutoffHour": 19,
		"unavailableDates": ["2024-06-11"],
		"selectableDates": ["2024-06-10", "2024-06-12", "2024-06-13"]
	}`, recorder.Body.String())
}

func TestHandler_GetDeliveries(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		router, service := newRouter(t)
		service.EXPECT().Deliveries(gomock.Any()).Return([]dto.DeliveryResponse{
			{DeliveryDate: "2024-06-12"},
			{DeliveryDate: "2024-06-12"},
		}, nil)

		recorder := serve(router, http.MethodGet, "/api/deliveries", "")

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `[{"deliveryDate":"2024-06-12"},{"deliveryDate":"2024-06-12"}]`, recorder.Body.String())
	})

	t.Run("failure", func(t *testing.T) {
		router, service := newRouter(t)
		service.EXPECT().Deliveries(gomock.Any()).Return(nil, errors.New("sheets down"))

		recorder := serve(router, http.MethodGet, "/api/deliveries", "")

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		assert.JSONEq(t, `{"message":"Error fetching deliveries"}`, recorder.Body.String())
	})
}

func TestHandler_ResolveAddress(t *testing.T) {
	t.Run("components are mapped", func(t *testing.T) {
		router, _ := newRouter(t)

		body := `{"components":[
			{"longName":"12","shortName":"12","types":["street_number"]},
			{"longName":"Main Street","shortName":"Main St","types":["route"]},
			{"longName":"Springfield","shortName":"Springfield","types":["locality","political"]},
			{"longName":"Illinois","shortName":"IL","types":["administrative_area_level_1","political"]},
			{"longName":"62701","shortName":"62701","types":["postal_code"]}
		]}`

		recorder := serve(router, http.MethodPost, "/api/address", body)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `{
			"street": "12 Main Street",
			"street2": "",
			"city": "Springfield",
			"state": "IL",
			"postalCode": "62701",
			"fullAddress": "12 Main Street, Springfield, IL 62701"
		}`, recorder.Body.String())
	})

	t.Run("no components", func(t *testing.T) {
		router, _ := newRouter(t)

		recorder := serve(router, http.MethodPost, "/api/address", `{"components":[]}`)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}
