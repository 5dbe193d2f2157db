package models

import "time"

// Purposes a verification code can be issued for.
const (
	PurposePasswordReset = "password_reset"
	PurposeEmailChange   = "email_change"
)

// VerificationCode is a short-lived one-time code backing the
// forgot-password and email-change flows. Codes are delivered by email and
// purged once expired.
type VerificationCode struct {
	ID        int64     `json:"-"`
	UserID    int64     `json:"-"`
	Purpose   string    `json:"-"`
	Code      string    `json:"-"`
	NewEmail  string    `json:"-"`
	ExpiresAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the VerificationCode model.
func (v VerificationCode) TableName() string {
	return "verification_codes"
}

// Expired reports whether the code is no longer valid at the given time.
func (v VerificationCode) Expired(now time.Time) bool {
	return now.After(v.ExpiresAt)
}
