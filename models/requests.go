package models

// NotePayload is the request body for note create and update calls.
//
// Updates use full-replace semantics: Content and Attachment always travel
// together. A caller that keeps an existing attachment must resubmit its
// key explicitly; omitting it clears the attachment reference on the note.
type NotePayload struct {
	Content    string  `json:"content"`
	Attachment *string `json:"attachment"`
}

// ForgotPasswordRequest starts the password-reset flow for the given email.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ForgotPasswordConfirm completes a password reset with the emailed code.
type ForgotPasswordConfirm struct {
	Email       string `json:"email"`
	Code        string `json:"code"`
	NewPassword string `json:"new_password"`
}

// AttributeUpdate requests a change of a user attribute. Changing the email
// address triggers a verification code sent to the new address.
type AttributeUpdate struct {
	Email string `json:"email"`
}

// AttributeVerify confirms a pending attribute change with the emailed code.
type AttributeVerify struct {
	Code string `json:"code"`
}
