// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The NoteKeeper Authors

// Package adapter provides transport-layer abstractions for communicating with
// the NoteKeeper server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// service layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
// The server answers 403 for notes owned by another user; the adapter folds
// that status into [ErrNotFound] so callers cannot distinguish a foreign note
// from a missing one.
package adapter

import (
	"context"

	"github.com/notekeeper-app/notekeeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the NoteKeeper
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. It should be called immediately after a
	// successful SignUp or SignIn, or when restoring a cached session.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// SignUp registers a new account with the server. On success it stores
	// the returned bearer token via SetToken and returns the created user.
	SignUp(ctx context.Context, email, password string) (models.User, error)

	// SignIn authenticates with the server. On success it stores the returned
	// bearer token via SetToken and returns the server-side user record.
	SignIn(ctx context.Context, email, password string) (models.User, error)

	// CurrentUser fetches the user record belonging to the stored bearer
	// token. Returns [ErrUnauthorized] (wrapped) if the token is missing,
	// expired, or revoked.
	CurrentUser(ctx context.Context) (models.User, error)

	// ForgotPassword asks the server to send a password-reset code to email.
	// The server responds identically whether or not the account exists.
	ForgotPassword(ctx context.Context, email string) error

	// ForgotPasswordSubmit completes a password reset using the code that was
	// delivered to email. Returns [ErrBadRequest] (wrapped) if the code is
	// wrong or expired.
	ForgotPasswordSubmit(ctx context.Context, email, code, newPassword string) error

	// UpdateEmail starts an email change for the authenticated user. The
	// server sends a verification code to the new address; the change takes
	// effect only after VerifyEmail succeeds.
	UpdateEmail(ctx context.Context, newEmail string) error

	// VerifyEmail confirms a pending email change with the code delivered to
	// the new address. Returns [ErrBadRequest] (wrapped) if the code is wrong
	// or expired.
	VerifyEmail(ctx context.Context, code string) error

	// ListNotes fetches all notes owned by the authenticated user, newest
	// first. Returns an empty slice when the user has no notes.
	ListNotes(ctx context.Context) ([]models.Note, error)

	// GetNote fetches a single note by ID. Returns [ErrNotFound] (wrapped)
	// when the note does not exist or is owned by another user.
	GetNote(ctx context.Context, noteID string) (models.Note, error)

	// CreateNote creates a note from payload and returns the stored record
	// with its server-assigned ID and creation time.
	CreateNote(ctx context.Context, payload models.NotePayload) (models.Note, error)

	// UpdateNote replaces the content and attachment of the note identified
	// by noteID with payload. A nil payload.Attachment clears the stored key.
	// Returns [ErrNotFound] (wrapped) when the note does not exist or is
	// owned by another user.
	UpdateNote(ctx context.Context, noteID string, payload models.NotePayload) (models.Note, error)

	// DeleteNote removes the note identified by noteID. Returns [ErrNotFound]
	// (wrapped) when the note does not exist or is owned by another user.
	DeleteNote(ctx context.Context, noteID string) error

	// DeleteAllNotes removes every note owned by the authenticated user in a
	// single request.
	DeleteAllNotes(ctx context.Context) error

	// UploadAttachment streams data to the server under the original file
	// name and returns the storage key assigned to it. Returns
	// [ErrPayloadTooLarge] (wrapped) when the server rejects the upload for
	// exceeding the attachment size limit.
	UploadAttachment(ctx context.Context, fileName string, data []byte) (models.UploadResult, error)

	// ResolveAttachment exchanges a storage key for a short-lived signed URL
	// from which the attachment bytes can be fetched. Returns [ErrNotFound]
	// (wrapped) when the key does not belong to the authenticated user.
	ResolveAttachment(ctx context.Context, key string) (string, error)
}
