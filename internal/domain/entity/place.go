package entity

import (
	"slices"

	"github.com/paulmach/orb"
)

// Address component type tags used for extraction.
const (
	ComponentPostalCode = "postal_code"
	ComponentLocality   = "locality"
	ComponentAdminArea1 = "administrative_area_level_1"
)

// Suggestion is one predictive search result.
type Suggestion struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}

// AddressComponent is one structured piece of a geocoded address.
type AddressComponent struct {
	LongName  string   `json:"long_name"`
	ShortName string   `json:"short_name"`
	Types     []string `json:"types"`
}

// PlaceDetails is the structured lookup of a selected suggestion.
type PlaceDetails struct {
	Coordinate       orb.Point
	Components       []AddressComponent
	FormattedAddress string
}

// GeocodeResult is the structured address for a reverse geocoded coordinate.
type GeocodeResult struct {
	Components       []AddressComponent
	FormattedAddress string
}

// AddressParts are the fields the storefront cares about.
type AddressParts struct {
	PostalCode string
	City       string
	State      string
}

// ExtractAddressParts picks postal code, locality and first-level administrative area
// from the component list by matching type tags. The first match wins.
func ExtractAddressParts(components []AddressComponent) AddressParts {
	var parts AddressParts
	for _, c := range components {
		if parts.PostalCode == "" && slices.Contains(c.Types, ComponentPostalCode) {
			parts.PostalCode = c.LongName
		}
		if parts.City == "" && slices.Contains(c.Types, ComponentLocality) {
			parts.City = c.LongName
		}
		if parts.State == "" && slices.Contains(c.Types, ComponentAdminArea1) {
			parts.State = c.LongName
		}
	}

	return parts
}

// LocationFromComponents builds a Location from a provider coordinate and address.
// A postal code that is not six digits is left out.
func LocationFromComponents(p orb.Point, components []AddressComponent, formatted string) Location {
	parts := ExtractAddressParts(components)
	loc := Location{
		Coordinate: &p,
		Address:    formatted,
		City:       parts.City,
		State:      parts.State,
	}
	if pincode, err := ParsePincode(parts.PostalCode); err == nil {
		loc.Pincode = pincode
	}

	return loc
}
