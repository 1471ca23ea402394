package service

import (
	"deliveryform/internal/domains/delivery/availability"
	"deliveryform/internal/domains/delivery/model"
	"deliveryform/internal/domains/delivery/model/dto"
	"deliveryform/shared/constant"
	"deliveryform/shared/failure"
	"deliveryform/shared/validator"
	"errors"
	"fmt"
	"time"
)

const guidanceDateLayout = "Mon Jan 2"

// Validate checks a submission against the booking rules as of now, given
// the bookings already counted per date. It only depends on its arguments.
func Validate(req dto.BookingRequest, now time.Time, counts availability.Counts, calendar availability.Calendar) (model.Booking, error) {
	req = req.Trim()

	if err := validator.ValidateFields(&req); err != nil {
		return model.Booking{}, err //nolint:wrapcheck
	}

	deliveryDate, err := calendar.ParseDate(req.DeliveryDate)
	if err != nil {
		return model.Booking{}, failure.MissingFields("Please correct the highlighted fields.", []failure.FieldError{ //nolint:wrapcheck
			{Field: "deliveryDate", Message: "deliveryDate must be a date formatted as YYYY-MM-DD"},
		})
	}

	window := calendar.AllowedWindow(now)

	if err = calendar.Check(deliveryDate, counts, window); err != nil {
		return model.Booking{}, failure.DateWindow(guidance(err, window, calendar)) //nolint:wrapcheck
	}

	return req.ToModel(calendar.StartOfDay(deliveryDate), submittedAt(req.SubmissionDateTime, now, calendar)), nil
}

// submittedAt keeps a client timestamp only when it parses.
func submittedAt(value string, now time.Time, calendar availability.Calendar) time.Time {
	if value != "" {
		if at, err := time.Parse(constant.DateTimeLayout, value); err == nil {
			return at.In(calendar.Location)
		}
	}

	return now.In(calendar.Location)
}

func guidance(reason error, window availability.Window, calendar availability.Calendar) string {
	from := window.Start.In(calendar.Location).Format(guidanceDateLayout)
	to := window.End.In(calendar.Location).Format(guidanceDateLayout)

	switch {
	case errors.Is(reason, availability.ErrSunday):
		return fmt.Sprintf("We do not deliver on Sundays. Please choose another date between %s and %s.", from, to)
	case errors.Is(reason, availability.ErrFullyBooked):
		return "That delivery date is fully booked. Please choose another date."
	default:
		return fmt.Sprintf("Please choose a delivery date between %s and %s.", from, to)
	}
}
