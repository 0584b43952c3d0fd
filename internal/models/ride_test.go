package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRide_SeatsAccounting(t *testing.T) {
	ride := Ride{Vacancies: 2, Passengers: []string{}}
	assert.False(t, ride.IsFull())
	assert.Equal(t, 2, ride.SeatsLeft())

	ride.Passengers = append(ride.Passengers, "Bruno", "Carla")
	assert.True(t, ride.IsFull())
	assert.Equal(t, 0, ride.SeatsLeft())
}

func TestRide_SeatsLeft_NeverNegative(t *testing.T) {
	// legacy data written before the capacity check existed
	ride := Ride{Vacancies: 1, Passengers: []string{"a", "b", "c"}}
	assert.Equal(t, 0, ride.SeatsLeft())
	assert.True(t, ride.IsFull())
}

func TestRide_HasPassenger(t *testing.T) {
	ride := Ride{Passengers: []string{"Bruno"}}
	assert.True(t, ride.HasPassenger("Bruno"))
	assert.False(t, ride.HasPassenger("Carla"))
}

func TestAccount_WithoutPassword(t *testing.T) {
	account := Account{ID: "u1", Email: "a@u.edu", Password: "secret1"}
	stripped := account.WithoutPassword()
	assert.Empty(t, stripped.Password)
	assert.Equal(t, "u1", stripped.ID)
	// original is untouched
	assert.Equal(t, "secret1", account.Password)
}
