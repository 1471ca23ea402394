package dto

import (
	"deliveryform/internal/domains/delivery/model"
	"strings"
	"time"
)

const (
	ContactlessYes = "Yes"
	ContactlessNo  = "No"
)

type AddressRequest struct {
	Street     string `json:"street"     validate:"required,max=200"`
	Street2    string `json:"street2"    validate:"omitempty,max=200"`
	City       string `json:"city"       validate:"required,max=100"`
	State      string `json:"state"      validate:"required,max=50"`
	PostalCode string `json:"postalCode" validate:"required,max=20"`
}

func (a AddressRequest) ToModel() model.Address {
	return model.Address{
		Street:     strings.TrimSpace(a.Street),
		Street2:    strings.TrimSpace(a.Street2),
		City:       strings.TrimSpace(a.City),
		State:      strings.TrimSpace(a.State),
		PostalCode: strings.TrimSpace(a.PostalCode),
	}
}

// BookingRequest is the body of a form submission. Name may be omitted when
// FirstName and LastName are both given.
type BookingRequest struct {
	OrderNumber          string         `json:"orderNumber"          validate:"required,max=50"`
	Name                 string         `json:"name"                 validate:"required_without=FirstName LastName,max=150"`
	FirstName            string         `json:"firstName"            validate:"omitempty,max=75"`
	LastName             string         `json:"lastName"             validate:"omitempty,max=75"`
	Email                string         `json:"email"                validate:"required,email,max=254"`
	PhoneNumber          string         `json:"phoneNumber"          validate:"required,max=30"`
	DeliveryAddress      AddressRequest `json:"deliveryAddress"`
	DeliveryDate         string         `json:"deliveryDate"         validate:"required,civildate"`
	SubmissionDateTime   string         `json:"submissionDateTime"   validate:"omitempty"`
	ContactlessDelivery  string         `json:"contactlessDelivery"  validate:"omitempty,oneof=Yes No"`
	DeliveryInstructions string         `json:"deliveryInstructions" validate:"omitempty,max=500"`
}

// Trim returns a copy with surrounding whitespace removed from every text field.
func (r BookingRequest) Trim() BookingRequest {
	r.OrderNumber = strings.TrimSpace(r.OrderNumber)
	r.Name = strings.TrimSpace(r.Name)
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Email = strings.TrimSpace(r.Email)
	r.PhoneNumber = strings.TrimSpace(r.PhoneNumber)
	r.DeliveryAddress = AddressRequest{
		Street:     strings.TrimSpace(r.DeliveryAddress.Street),
		Street2:    strings.TrimSpace(r.DeliveryAddress.Street2),
		City:       strings.TrimSpace(r.DeliveryAddress.City),
		State:      strings.TrimSpace(r.DeliveryAddress.State),
		PostalCode: strings.TrimSpace(r.DeliveryAddress.PostalCode),
	}
	r.DeliveryDate = strings.TrimSpace(r.DeliveryDate)
	r.SubmissionDateTime = strings.TrimSpace(r.SubmissionDateTime)
	r.ContactlessDelivery = strings.TrimSpace(r.ContactlessDelivery)
	r.DeliveryInstructions = strings.TrimSpace(r.DeliveryInstructions)

	return r
}

// FullName prefers Name and otherwise joins FirstName and LastName.
func (r BookingRequest) FullName() string {
	if r.Name != "" {
		return r.Name
	}

	return strings.TrimSpace(r.FirstName + " " + r.LastName)
}

// ToModel builds the record to persist. deliveryDate and submittedAt must
// already be normalized by the caller.
func (r BookingRequest) ToModel(deliveryDate, submittedAt time.Time) model.Booking {
	address := r.DeliveryAddress.ToModel()

	return model.Booking{
		OrderNumber:          r.OrderNumber,
		Name:                 r.FullName(),
		Email:                strings.ToLower(r.Email),
		PhoneNumber:          r.PhoneNumber,
		FullAddress:          address.Full(),
		Address:              address,
		DeliveryDate:         deliveryDate,
		ContactlessDelivery:  r.ContactlessDelivery == ContactlessYes,
		DeliveryInstructions: r.DeliveryInstructions,
		SubmittedAt:          submittedAt,
	}
}

type UnavailableDatesResponse struct {
	UnavailableDates []string `json:"unavailableDates"`
}

type AvailabilityResponse struct {
	WindowStart      string   `json:"windowStart"`
	WindowEnd        string   `json:"windowEnd"`
	Capacity         int      `json:"capacity"`
	CutoffHour       int      `json:"cutoffHour"`
	UnavailableDates []string `json:"unavailableDates"`
	SelectableDates  []string `json:"selectableDates"`
}

type DeliveryResponse struct {
	DeliveryDate string `json:"deliveryDate"`
}

type SubmitResponse struct {
	Message string `json:"message"`
}

// AddressLookupRequest carries the components picked in the address
// autocomplete widget.
type AddressLookupRequest struct {
	Components []model.AddressComponent `json:"components" validate:"required,min=1"`
}

type AddressResponse struct {
	Street      string `json:"street"`
	Street2     string `json:"street2"`
	City        string `json:"city"`
	State       string `json:"state"`
	PostalCode  string `json:"postalCode"`
	FullAddress string `json:"fullAddress"`
}

func NewAddressResponse(address model.Address) AddressResponse {
	return AddressResponse{
		Street:      address.Street,
		Street2:     address.Street2,
		City:        address.City,
		State:       address.State,
		PostalCode:  address.PostalCode,
		FullAddress: address.Full(),
	}
}
