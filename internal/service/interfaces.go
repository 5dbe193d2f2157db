// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The NoteKeeper Authors

// Package service contains the business logic of both halves of NoteKeeper:
// the server-side services invoked by the HTTP handlers, and the client-side
// services that sit between the terminal UI and the server adapter.
package service

import (
	"context"
	"io"

	"github.com/notekeeper-app/notekeeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService handles account lifecycle and token issuance on the server.
type AuthService interface {
	// SignUp creates a new account with a bcrypt-hashed password and returns
	// the stored user.
	SignUp(ctx context.Context, email, password string) (models.User, error)

	// SignIn verifies the credentials against the stored hash. Returns
	// [ErrWrongPassword] on mismatch.
	SignIn(ctx context.Context, email, password string) (models.User, error)

	// CurrentUser fetches the account identified by userID.
	CurrentUser(ctx context.Context, userID int64) (models.User, error)

	// CreateToken issues a signed JWT for user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates and parses a raw JWT string. Any validation
	// failure is normalised to [ErrTokenIsExpiredOrInvalid].
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// ForgotPassword emails a password-reset code to the account holding
	// email. Unknown addresses complete without error so the endpoint does
	// not disclose which accounts exist.
	ForgotPassword(ctx context.Context, email string) error

	// ForgotPasswordSubmit completes a password reset. Returns
	// [ErrInvalidCode] when the code is wrong, expired, or the email is
	// unknown.
	ForgotPasswordSubmit(ctx context.Context, email, code, newPassword string) error

	// UpdateEmail starts an email change for userID by mailing a
	// verification code to newEmail. The stored address is untouched until
	// VerifyEmail succeeds.
	UpdateEmail(ctx context.Context, userID int64, newEmail string) error

	// VerifyEmail completes a pending email change. Returns [ErrInvalidCode]
	// when the code is wrong or expired.
	VerifyEmail(ctx context.Context, userID int64, code string) error
}

// NoteService handles note CRUD on the server. All operations are scoped to
// the owning user.
type NoteService interface {
	// Create validates and persists a new note for userID. Returns
	// [ErrEmptyContent] when the content is blank after trimming.
	Create(ctx context.Context, userID int64, payload models.NotePayload) (models.Note, error)

	// Get fetches a single note owned by userID.
	Get(ctx context.Context, userID int64, noteID string) (models.Note, error)

	// List fetches all notes owned by userID, newest first.
	List(ctx context.Context, userID int64) ([]models.Note, error)

	// Update replaces the content and attachment of the identified note.
	// Returns [ErrEmptyContent] when the new content is blank after
	// trimming.
	Update(ctx context.Context, userID int64, noteID string, payload models.NotePayload) (models.Note, error)

	// Delete removes a single note owned by userID.
	Delete(ctx context.Context, userID int64, noteID string) error

	// DeleteAll removes every note owned by userID and reports the count.
	DeleteAll(ctx context.Context, userID int64) (int64, error)
}

// AttachmentService handles attachment upload and retrieval-URL signing on
// the server.
type AttachmentService interface {
	// Upload streams size bytes from r into the blob store under a key
	// namespaced to userID and returns the assigned key. Returns
	// [ErrAttachmentTooLarge] when size exceeds the configured limit.
	Upload(ctx context.Context, userID int64, fileName string, r io.Reader, size int64, contentType string) (models.UploadResult, error)

	// ResolveURL exchanges key for a short-lived signed GET URL. Returns
	// [ErrForeignAttachmentKey] when key is not namespaced to userID.
	ResolveURL(ctx context.Context, userID int64, key string) (string, error)

	// Remove deletes the object stored under key after the same ownership
	// check as ResolveURL.
	Remove(ctx context.Context, userID int64, key string) error
}
