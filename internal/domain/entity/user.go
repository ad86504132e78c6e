package entity

import "time"

// User is the business owner account. All other rows hang off UserID.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, never plaintext in the domain after persisting
	BusinessName string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
