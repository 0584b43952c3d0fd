// Package models defines the domain records persisted by the repositories.
package models

import "time"

// Account is a registered user. The stored record keeps the password
// verbatim, exactly as the app always has; the session copy never does.
type Account struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	University   string    `json:"university"`
	Password     string    `json:"password,omitempty"`
	ProfileImage string    `json:"profileImage,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// WithoutPassword returns a copy of the account with the password stripped,
// the only form allowed into the current-session slot or out of
// authentication.
func (a Account) WithoutPassword() Account {
	a.Password = ""
	return a
}
