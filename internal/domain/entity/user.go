package entity

import (
	"time"
)

// Profile holds descriptive user fields with no invariants of their own.
type Profile struct {
	Name      string
	Lastname  string
	Phone     string
	Gender    string
	Picture   string
	Birthdate *time.Time
}

// Delivery is the user's shipping address.
type Delivery struct {
	Address string
	City    string
	State   string
	Zip     string
	Country string
}

// User is the aggregate root for the account domain.
// PasswordHash holds a bcrypt hash; the plaintext is never persisted.
// Email is unique across the store (enforced by a unique index).
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Privacy      bool
	Profile      Profile
	Delivery     Delivery
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
