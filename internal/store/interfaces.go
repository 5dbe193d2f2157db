// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The NoteKeeper Authors

// Package store contains the persistence layer of the NoteKeeper server: the
// PostgreSQL repositories for users, notes, and verification codes, the
// S3-compatible blob store for attachments, and the client-side SQLite
// session cache.
package store

import (
	"context"
	"io"
	"time"

	"github.com/notekeeper-app/notekeeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository handles user account persistence against the "users" table.
type UserRepository interface {
	// CreateUser persists a new account and returns it with server-assigned
	// fields (UserID, CreatedAt) populated. Returns [ErrEmailAlreadyExists]
	// when the email is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks an account up by email. Returns
	// [ErrNoUserWasFound] when no such account exists.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID looks an account up by its primary key. Returns
	// [ErrNoUserWasFound] when no such account exists.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// UpdateUserEmail replaces the account's email address and records its
	// verification state.
	UpdateUserEmail(ctx context.Context, userID int64, email string, verified bool) error

	// UpdateUserPassword replaces the stored password hash.
	UpdateUserPassword(ctx context.Context, userID int64, passwordHash string) error
}

// NoteRepository handles note persistence against the "notes" table. Every
// method is scoped by owner: a note belonging to another user behaves as if
// it did not exist and surfaces [ErrNoteNotFound].
type NoteRepository interface {
	// CreateNote persists note and returns the stored row.
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)

	// GetNote fetches a single note owned by userID.
	GetNote(ctx context.Context, userID int64, noteID string) (models.Note, error)

	// ListNotes fetches all notes owned by userID, newest first.
	ListNotes(ctx context.Context, userID int64) ([]models.Note, error)

	// UpdateNote replaces the content and attachment of the identified note
	// and returns the updated row.
	UpdateNote(ctx context.Context, userID int64, noteID string, payload models.NotePayload) (models.Note, error)

	// DeleteNote removes a single note owned by userID.
	DeleteNote(ctx context.Context, userID int64, noteID string) error

	// DeleteAllNotes removes every note owned by userID and reports how many
	// rows were removed.
	DeleteAllNotes(ctx context.Context, userID int64) (int64, error)
}

// CodeRepository handles emailed verification codes (password reset, email
// change) against the "verification_codes" table.
type CodeRepository interface {
	// SaveCode stores code, replacing any previous code the user holds for
	// the same purpose.
	SaveCode(ctx context.Context, code models.VerificationCode) error

	// GetCode fetches the current code for the user and purpose. Returns
	// [ErrCodeNotFound] when none is stored.
	GetCode(ctx context.Context, userID int64, purpose string) (models.VerificationCode, error)

	// DeleteCode removes the code for the user and purpose, if any.
	DeleteCode(ctx context.Context, userID int64, purpose string) error

	// PurgeExpired removes every code whose expiry is before now and reports
	// how many rows were removed.
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
}

// BlobStore abstracts the S3-compatible object store holding note
// attachments.
type BlobStore interface {
	// Put streams size bytes from r into the store under key.
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error

	// Delete removes the object stored under key.
	Delete(ctx context.Context, key string) error

	// PresignGet returns a signed URL from which the object under key can be
	// fetched until expiry elapses.
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
}

// SessionStore is the client-side cache holding the signed-in user's bearer
// token between runs.
type SessionStore interface {
	// SaveSession stores the token for userID, replacing any previous
	// session.
	SaveSession(ctx context.Context, userID int64, token string) error

	// LoadSession returns the cached session. Returns
	// [ErrLocalSessionNotFound] when no session is cached.
	LoadSession(ctx context.Context) (models.LocalSession, error)

	// ClearSession drops the cached session, if any.
	ClearSession(ctx context.Context) error
}
