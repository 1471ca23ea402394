package model

import (
	"slices"
	"strings"
)

// AddressComponent is one piece of a structured address returned by the
// autocomplete service used on the form.
type AddressComponent struct {
	LongName  string   `json:"longName"`
	ShortName string   `json:"shortName"`
	Types     []string `json:"types"`
}

const (
	componentStreetNumber = "street_number"
	componentRoute        = "route"
	componentSubpremise   = "subpremise"
	componentLocality     = "locality"
	componentPostalTown   = "postal_town"
	componentSublocality  = "sublocality"
	componentState        = "administrative_area_level_1"
	componentPostalCode   = "postal_code"
)

// AddressFromComponents assembles an Address from autocomplete components.
// City falls back from locality to postal_town to sublocality.
func AddressFromComponents(components []AddressComponent) Address {
	find := func(kind string) (AddressComponent, bool) {
		for _, component := range components {
			if slices.Contains(component.Types, kind) {
				return component, true
			}
		}

		return AddressComponent{}, false
	}

	long := func(kinds ...string) string {
		for _, kind := range kinds {
			if component, ok := find(kind); ok {
				return component.LongName
			}
		}

		return ""
	}

	address := Address{
		Street:     strings.TrimSpace(long(componentStreetNumber) + " " + long(componentRoute)),
		Street2:    long(componentSubpremise),
		City:       long(componentLocality, componentPostalTown, componentSublocality),
		PostalCode: long(componentPostalCode),
	}

	if state, ok := find(componentState); ok {
		address.State = state.ShortName
		if address.State == "" {
			address.State = state.LongName
		}
	}

	return address
}
