package models

import "time"

// LocalSession is the client-side record of the last successful sign-in. It
// is cached in the local SQLite database so the app can restore the session
// without prompting for credentials while the token is still valid.
type LocalSession struct {
	UserID  int64     `json:"user_id"`
	Token   string    `json:"token"`
	SavedAt time.Time `json:"saved_at"`
}
