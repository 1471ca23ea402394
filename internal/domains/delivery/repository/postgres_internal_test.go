package repository

import (
	"deliveryform/internal/domains/delivery/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingRow_RoundTrip(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	booking := model.Booking{
		OrderNumber:         "A-100",
		Name:                "Sam Lee",
		Email:               "sam@example.com",
		Address:             model.Address{Street: "12 Main St", City: "Springfield", State: "IL", PostalCode: "62701"},
		DeliveryDate:        time.Date(2024, 6, 12, 0, 0, 0, 0, loc),
		ContactlessDelivery: true,
		SubmittedAt:         time.Date(2024, 6, 10, 23, 30, 0, 0, loc),
	}

	row := toRow(booking, loc)
	assert.Equal(t, "2024-06-12", row.DeliveryDate)
	assert.Equal(t, time.UTC, row.SubmittedAt.Location())

	got, err := row.toModel(loc)
	require.NoError(t, err)
	assert.True(t, booking.DeliveryDate.Equal(got.DeliveryDate))
	assert.True(t, booking.SubmittedAt.Equal(got.SubmittedAt))
	assert.Equal(t, booking.Address, got.Address)

	row.DeliveryDate = "12/06/2024"
	_, err = row.toModel(loc)
	assert.Error(t, err)
}
