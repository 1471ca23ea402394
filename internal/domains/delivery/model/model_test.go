package model_test

import (
	"deliveryform/internal/domains/delivery/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddress_Full(t *testing.T) {
	tests := []struct {
		name    string
		address model.Address
		want    string
	}{
		{
			name: "all parts",
			address: model.Address{
				Street: "12 Main St", Street2: "Apt 4", City: "Springfield", State: "IL", PostalCode: "62701",
			},
			want: "12 Main St, Apt 4, Springfield, IL 62701",
		},
		{
			name:    "without street2",
			address: model.Address{Street: "12 Main St", City: "Springfield", State: "IL", PostalCode: "62701"},
			want:    "12 Main St, Springfield, IL 62701",
		},
		{
			name:    "empty",
			address: model.Address{},
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.address.Full())
		})
	}
}

func TestBooking_SameKey(t *testing.T) {
	a := model.Booking{OrderNumber: "1001", Email: "jane@example.com"}

	assert.True(t, a.SameKey(model.Booking{OrderNumber: "1001", Email: "JANE@example.com"}))
	assert.False(t, a.SameKey(model.Booking{OrderNumber: "1002", Email: "jane@example.com"}))
	assert.False(t, a.SameKey(model.Booking{OrderNumber: "1001", Email: "john@example.com"}))
}

func TestAddressFromComponents(t *testing.T) {
	components := []model.AddressComponent{
		{LongName: "1600", ShortName: "1600", Types: []string{"street_number"}},
		{LongName: "Amphitheatre Parkway", ShortName: "Amphitheatre Pkwy", Types: []string{"route"}},
		{LongName: "Suite 5", ShortName: "5", Types: []string{"subpremise"}},
		{LongName: "Mountain View", ShortName: "Mountain View", Types: []string{"locality", "political"}},
		{LongName: "California", ShortName: "CA", Types: []string{"administrative_area_level_1", "political"}},
		{LongName: "94043", ShortName: "94043", Types: []string{"postal_code"}},
	}

	got := model.AddressFromComponents(components)

	assert.Equal(t, model.Address{
		Street:     "1600 Amphitheatre Parkway",
		Street2:    "Suite 5",
		City:       "Mountain View",
		State:      "CA",
		PostalCode: "94043",
	}, got)
}

func TestAddressFromComponents_CityFallback(t *testing.T) {
	components := []model.AddressComponent{
		{LongName: "Brooklyn", Types: []string{"sublocality", "political"}},
		{LongName: "New York", Types: []string{"administrative_area_level_1"}},
	}

	got := model.AddressFromComponents(components)

	assert.Equal(t, "Brooklyn", got.City)
	assert.Equal(t, "New York", got.State)
	assert.Empty(t, got.Street)
}
