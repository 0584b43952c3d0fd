package models

import (
	"slices"
	"time"
)

// Ride is a posted trip offer ("carona"). Driver and DriverID are
// denormalized from the creating account at creation time and are not kept
// in sync with later profile edits. Date and Time are display-formatted
// text (dd/MM/yyyy and HH:mm), not sortable values.
type Ride struct {
	ID          string    `json:"id"`
	Origin      Location  `json:"origin"`
	Destination Location  `json:"destination"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Driver      string    `json:"driver"`
	DriverID    string    `json:"driverId"`
	Vacancies   int       `json:"vacancies"`
	Passengers  []string  `json:"passengers"`
	CreatedAt   time.Time `json:"createdAt"`
}

// IsFull reports whether every seat is taken. A successful join is the only
// way the passenger list grows, so len(Passengers) never exceeds Vacancies.
func (r Ride) IsFull() bool {
	return len(r.Passengers) >= r.Vacancies
}

// SeatsLeft returns the number of unfilled seats, never negative.
func (r Ride) SeatsLeft() int {
	left := r.Vacancies - len(r.Passengers)
	if left < 0 {
		return 0
	}
	return left
}

// HasPassenger reports whether passenger is already aboard.
func (r Ride) HasPassenger(passenger string) bool {
	return slices.Contains(r.Passengers, passenger)
}
