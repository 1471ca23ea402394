package delivery

import (
	"deliveryform/infras/otel"
	"deliveryform/internal/domains/delivery/model"
	"deliveryform/internal/domains/delivery/model/dto"
	"deliveryform/internal/domains/delivery/service"
	"deliveryform/shared/constant"
	"deliveryform/shared/validator"
	"deliveryform/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	messageSubmitted      = "Order details submitted successfully"
	messageSubmitFailed   = "Error submitting order details"
	messageFetchFailed    = "Error fetching deliveries"
	messageAvailabilityKO = "Error fetching availability"
	messageAddressFailed  = "Error resolving address"
)

type Handler struct {
	service service.Delivery
	otel    otel.Otel
}

func New(service service.Delivery, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/unavailable-dates", handler.GetUnavailableDates)
	router.Get("/availability", handler.GetAvailability)
	router.Get("/deliveries", handler.GetDeliveries)
	router.Post("/submit", handler.Submit)
	router.Post("/address", handler.ResolveAddress)
}

// GetUnavailableDates lists the fully booked dates of the current window.
// @Summary Get unavailable delivery dates
// @Description Dates inside the booking window that reached capacity. Sundays and dates outside the window are not listed.
// @Tags Delivery
// @Produce json
// @Success 200 {object} dto.UnavailableDatesResponse
// @Failure 500 {object} response.Error
// @Router /api/unavailable-dates [get]
func (handler *Handler) GetUnavailableDates(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUnavailableDates")
	defer scope.End()

	res, err := handler.service.UnavailableDates(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get unavailable dates")

		response.WithError(w, err, messageFetchFailed)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetAvailability describes the booking window for the date picker.
// @Summary Get booking window
// @Description Window bounds, capacity, cutoff hour and the dates that can still be booked.
// @Tags Delivery
// @Produce json
// @Success 200 {object} dto.AvailabilityResponse
// @Failure 500 {object} response.Error
// @Router /api/availability [get]
func (handler *Handler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailability")
	defer scope.End()

	res, err := handler.service.Availability(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get availability")

		response.WithError(w, err, messageAvailabilityKO)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetDeliveries lists the delivery date of every booking.
// @Summary Get booked delivery dates
// @Tags Delivery
// @Produce json
// @Success 200 {array} dto.DeliveryResponse
// @Failure 500 {object} response.Error
// @Router /api/deliveries [get]
func (handler *Handler) GetDeliveries(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDeliveries")
	defer scope.End()

	res, err := handler.service.Deliveries(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get deliveries")

		response.WithError(w, err, messageFetchFailed)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Submit records a booking or replaces the one with the same order number and email.
// @Summary Submit a delivery booking
// @Description Validates the form and stores it in the ledger. A resubmission with the same order number and email overwrites the earlier booking.
// @Tags Delivery
// @Accept json
// @Produce json
// @Param request body dto.BookingRequest true "Booking form"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/submit [post]
func (handler *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Submit")
	defer scope.End()

	var req dto.BookingRequest
	if err := validator.Decode(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to decode booking request")

		response.WithError(w, err, messageSubmitFailed)

		return
	}

	booking, err := handler.service.Submit(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("order", req.OrderNumber).Msg("failed to submit booking")

		response.WithError(w, err, messageSubmitFailed)

		return
	}

	scope.AddEvent("Booking recorded for order " + booking.OrderNumber)

	response.WithMessage(w, http.StatusOK, messageSubmitted)
}

// ResolveAddress turns autocomplete components into the form's address fields.
// @Summary Normalize an autocomplete address
// @Tags Delivery
// @Accept json
// @Produce json
// @Param request body dto.AddressLookupRequest true "Address components"
// @Success 200 {object} dto.AddressResponse
// @Failure 400 {object} response.Error
// @Router /api/address [post]
func (handler *Handler) ResolveAddress(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ResolveAddress")
	defer scope.End()

	var req dto.AddressLookupRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err, messageAddressFailed)

		return
	}

	response.WithJSON(w, http.StatusOK, dto.NewAddressResponse(model.AddressFromComponents(req.Components)))
}
