// Package entity contains the core business objects of the project.
package entity

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"storefront/internal/errors"

	"github.com/paulmach/orb"
)

// PincodeLength is the number of digits in an Indian postal code.
const PincodeLength = 6

var pincodePattern = regexp.MustCompile(`^\d{6}$`)

// ErrMalformedPincode is returned when a value is not exactly six digits.
var ErrMalformedPincode = errors.New("pincode must be exactly 6 digits")

// Pincode is a six digit postal code. The empty value means "no pincode".
type Pincode string

// ParsePincode accepts s only when it is exactly six ASCII digits.
func ParsePincode(s string) (Pincode, error) {
	if !pincodePattern.MatchString(s) {
		return "", ErrMalformedPincode
	}

	return Pincode(s), nil
}

// Valid reports whether p is a well-formed pincode.
func (p Pincode) Valid() bool {
	return pincodePattern.MatchString(string(p))
}

// String implements fmt.Stringer.
func (p Pincode) String() string {
	return string(p)
}

// SanitizePincodeInput strips everything but digits and truncates to six characters,
// mirroring what a shopper sees while typing into the postal code field.
func SanitizePincodeInput(raw string) string {
	var b strings.Builder
	b.Grow(PincodeLength)

	for _, r := range raw {
		if r < '0' || r > '9' {
			continue
		}
		b.WriteRune(r)
		if b.Len() == PincodeLength {
			break
		}
	}

	return b.String()
}

// NewCoordinate builds a point from latitude and longitude. orb stores [lng, lat].
func NewCoordinate(lat, lng float64) *orb.Point {
	return &orb.Point{lng, lat}
}

// Location is the shopper's chosen delivery location.
// Latitude and longitude are jointly optional (Coordinate), the pincode is independently optional.
type Location struct {
	Coordinate *orb.Point
	Pincode    Pincode
	Address    string
	City       string
	State      string
}

// HasLocation reports whether the location carries enough information to act on.
func (l Location) HasLocation() bool {
	return l.Pincode != "" || l.Coordinate != nil
}

// Lat returns the latitude, if a coordinate is present.
func (l Location) Lat() (float64, bool) {
	if l.Coordinate == nil {
		return 0, false
	}

	return l.Coordinate.Lat(), true
}

// Lng returns the longitude, if a coordinate is present.
func (l Location) Lng() (float64, bool) {
	if l.Coordinate == nil {
		return 0, false
	}

	return l.Coordinate.Lon(), true
}

// Equal compares two locations field by field.
func (l Location) Equal(other Location) bool {
	if (l.Coordinate == nil) != (other.Coordinate == nil) {
		return false
	}
	if l.Coordinate != nil && !l.Coordinate.Equal(*other.Coordinate) {
		return false
	}

	return l.Pincode == other.Pincode &&
		l.Address == other.Address &&
		l.City == other.City &&
		l.State == other.State
}

// CoordinateLabel renders a coordinate the way the geolocation fallback shows it.
func CoordinateLabel(p orb.Point) string {
	return fmt.Sprintf("Lat: %.5f, Lng: %.5f", p.Lat(), p.Lon())
}

// PincodeLabel renders the address shown for a manually entered pincode.
func PincodeLabel(p Pincode) string {
	return "Pincode: " + string(p)
}

// locationJSON is the persisted and wire representation: {lat, lng, pincode, address, city, state}.
type locationJSON struct {
	Lat     *float64 `json:"lat"`
	Lng     *float64 `json:"lng"`
	Pincode *string  `json:"pincode"`
	Address *string  `json:"address"`
	City    *string  `json:"city"`
	State   *string  `json:"state"`
}

// MarshalJSON implements json.Marshaler, writing null for absent fields.
func (l Location) MarshalJSON() ([]byte, error) {
	out := locationJSON{
		Pincode: nullable(string(l.Pincode)),
		Address: nullable(l.Address),
		City:    nullable(l.City),
		State:   nullable(l.State),
	}
	if l.Coordinate != nil {
		lat, lng := l.Coordinate.Lat(), l.Coordinate.Lon()
		out.Lat = &lat
		out.Lng = &lng
	}

	return json.Marshal(out)
}

// UnmarshalJSON implements json.Unmarshaler.
// A malformed pincode or a half-present coordinate is rejected.
func (l *Location) UnmarshalJSON(data []byte) error {
	var in locationJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return errors.WithStack(err)
	}

	var parsed Location
	switch {
	case in.Lat != nil && in.Lng != nil:
		parsed.Coordinate = NewCoordinate(*in.Lat, *in.Lng)
	case in.Lat != nil || in.Lng != nil:
		return errors.New("lat and lng must be present together")
	}

	if in.Pincode != nil && *in.Pincode != "" {
		pincode, err := ParsePincode(*in.Pincode)
		if err != nil {
			return errors.Wrapf(err, "invalid pincode %q", *in.Pincode)
		}
		parsed.Pincode = pincode
	}

	parsed.Address = deref(in.Address)
	parsed.City = deref(in.City)
	parsed.State = deref(in.State)
	*l = parsed

	return nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
