package entity

import "time"

// User is a registered identity. The OTP challenge is embedded in the user
// row, which enforces at most one outstanding challenge per identity.
type User struct {
	ID           int64
	Email        string
	FullName     string
	Password     string // bcrypt hash
	Verified     bool
	OTPHash      string // bcrypt hash, empty when no challenge is pending
	OTPExpiresAt *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasChallenge reports whether an OTP challenge is outstanding for the user.
func (u User) HasChallenge() bool {
	return u.OTPHash != "" && u.OTPExpiresAt != nil
}

// NewUser carries the fields needed to create an unverified identity together
// with its first OTP challenge.
type NewUser struct {
	ID           int64
	Email        string
	FullName     string
	Password     string // bcrypt hash
	OTPHash      string // bcrypt hash
	OTPExpiresAt time.Time
}

// OTPChallenge replaces the outstanding challenge on an unverified identity.
type OTPChallenge struct {
	UserID    int64
	OTPHash   string
	ExpiresAt time.Time
}
