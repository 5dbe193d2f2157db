package models

import "time"

// User represents an account entity used for authentication and
// authorization. Sensitive fields must never be exposed outside trusted
// boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Email is the unique login identifier and the primary user attribute.
	Email string `json:"email"`

	// Password carries the plaintext password on signup/login requests only.
	// It is never persisted and never included in responses.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash stored at the persistence layer.
	// Never exposed via JSON.
	PasswordHash string `json:"-"`

	// EmailVerified reports whether the current email address has been
	// confirmed with a verification code.
	EmailVerified bool `json:"email_verified"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
