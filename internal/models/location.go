package models

import (
	"encoding/json"
	"fmt"
)

// Location is a ride endpoint. Stored rides exist in two shapes: older
// records hold a plain display string, newer ones hold a structured place
// picked from the location list or the map. Both decode into Location;
// plain values re-encode as strings and places as objects, so existing
// blobs keep their shape across a read-modify-write cycle.
type Location struct {
	Name      string  `json:"name"`
	Address   string  `json:"address,omitempty"`
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
}

// Plain constructs a string-form location.
func Plain(name string) Location {
	return Location{Name: name}
}

// IsPlace reports whether the location carries structured place data
// beyond the display name.
func (l Location) IsPlace() bool {
	return l.Address != "" || l.Latitude != 0 || l.Longitude != 0
}

// String returns the display form: the name, with the address appended
// when one is known.
func (l Location) String() string {
	if l.Address != "" {
		return fmt.Sprintf("%s (%s)", l.Name, l.Address)
	}
	return l.Name
}

// location avoids marshalling recursion; it shares Location's field tags.
type location Location

func (l Location) MarshalJSON() ([]byte, error) {
	if !l.IsPlace() {
		return json.Marshal(l.Name)
	}
	return json.Marshal(location(l))
}

func (l *Location) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*l = Location{Name: name}
		return nil
	}

	var place location
	if err := json.Unmarshal(data, &place); err != nil {
		return err
	}
	*l = Location(place)
	return nil
}
