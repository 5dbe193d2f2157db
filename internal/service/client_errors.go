package service

import "errors"

var (
	// ErrSessionExpired is returned by RestoreSession when the cached token
	// has already lapsed. The user must sign in again.
	ErrSessionExpired = errors.New("cached session has expired")

	// ErrSignUpOnServer and ErrSignInOnServer wrap transport failures of the
	// corresponding auth calls so the UI can phrase them for the user.
	ErrSignUpOnServer = errors.New("sign up on server failed")
	ErrSignInOnServer = errors.New("sign in on server failed")
)
