package entity

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// SavedAddress is an address stored in the shopper's account.
type SavedAddress struct {
	ID           string   `json:"id"`
	FullName     string   `json:"full_name"`
	AddressLine1 string   `json:"address_line1"`
	City         string   `json:"city"`
	Pincode      string   `json:"pincode"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
	State        string   `json:"state"`
	IsDefault    bool     `json:"is_default"`
}

// Coordinate returns the stored point, only when both latitude and longitude are present.
func (a SavedAddress) Coordinate() *orb.Point {
	if a.Latitude == nil || a.Longitude == nil {
		return nil
	}

	return NewCoordinate(*a.Latitude, *a.Longitude)
}

// ToLocation maps the saved address directly into a Location.
// A pincode that is not six digits is dropped rather than carried into the store.
func (a SavedAddress) ToLocation() Location {
	loc := Location{
		Coordinate: a.Coordinate(),
		Address:    a.AddressLine1,
		City:       a.City,
		State:      a.State,
	}
	if pincode, err := ParsePincode(a.Pincode); err == nil {
		loc.Pincode = pincode
	}

	return loc
}

// DistanceFrom returns the geodesic distance in meters from p, or false when the address has no coordinate.
func (a SavedAddress) DistanceFrom(p orb.Point) (float64, bool) {
	c := a.Coordinate()
	if c == nil {
		return 0, false
	}

	return geo.Distance(p, *c), true
}
