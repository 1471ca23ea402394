package model

import (
	"strings"
	"time"
)

const (
	TableName  = "delivery_bookings"
	EntityName = "delivery booking"

	FieldOrderNumber          = "order_number"
	FieldName                 = "name"
	FieldEmail                = "email"
	FieldPhoneNumber          = "phone_number"
	FieldFullAddress          = "delivery_address"
	FieldStreet               = "street"
	FieldStreet2              = "street2"
	FieldCity                 = "city"
	FieldState                = "state"
	FieldPostalCode           = "postal_code"
	FieldDeliveryDate         = "delivery_date"
	FieldContactlessDelivery  = "contactless_delivery"
	FieldDeliveryInstructions = "delivery_instructions"
	FieldSubmittedAt          = "submitted_at"
)

type Address struct {
	Street     string `db:"street"`
	Street2    string `db:"street2"`
	City       string `db:"city"`
	State      string `db:"state"`
	PostalCode string `db:"postal_code"`
}

// Full renders the address on one line, e.g. "12 Main St, Apt 4, Springfield, IL 62701".
func (a Address) Full() string {
	parts := []string{}

	for _, part := range []string{a.Street, a.Street2, a.City} {
		if part != "" {
			parts = append(parts, part)
		}
	}

	region := strings.TrimSpace(a.State + " " + a.PostalCode)
	if region != "" {
		parts = append(parts, region)
	}

	return strings.Join(parts, ", ")
}

// Booking is one persisted delivery booking, keyed by (OrderNumber, Email).
type Booking struct {
	OrderNumber          string    `db:"order_number"`
	Name                 string    `db:"name"`
	Email                string    `db:"email"`
	PhoneNumber          string    `db:"phone_number"`
	FullAddress          string    `db:"delivery_address"`
	Address
	DeliveryDate         time.Time `db:"delivery_date"`
	ContactlessDelivery  bool      `db:"contactless_delivery"`
	DeliveryInstructions string    `db:"delivery_instructions"`
	SubmittedAt          time.Time `db:"submitted_at"`
}

// SameKey reports whether other identifies the same booking.
func (b Booking) SameKey(other Booking) bool {
	return b.OrderNumber == other.OrderNumber && strings.EqualFold(b.Email, other.Email)
}

// Delivery is the projection served by the deliveries listing.
type Delivery struct {
	DeliveryDate time.Time `db:"delivery_date"`
}
