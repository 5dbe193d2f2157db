package service

import (
	"context"

	"github.com/notekeeper-app/notekeeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientSessionService is the client-side contract for authentication and
// session lifecycle. Successful sign-ins are cached in the local session
// store so later runs can restore the session without prompting for
// credentials.
type ClientSessionService interface {
	// SignUp registers a new account, stores the returned bearer token on
	// the adapter, and caches the session locally.
	SignUp(ctx context.Context, email, password string) (models.User, error)

	// SignIn authenticates, stores the returned bearer token on the
	// adapter, and caches the session locally.
	SignIn(ctx context.Context, email, password string) (models.User, error)

	// RestoreSession loads the cached session, checks the token expiry
	// locally (no network call), and installs the token on the adapter.
	// Returns [ErrSessionExpired] when the cached token has lapsed and
	// [store.ErrLocalSessionNotFound] when nothing is cached.
	RestoreSession(ctx context.Context) (models.LocalSession, error)

	// SignOut clears the cached session and drops the adapter token.
	SignOut(ctx context.Context) error

	// CurrentUser fetches the authenticated account from the server.
	CurrentUser(ctx context.Context) (models.User, error)

	// ForgotPassword asks the server to mail a password-reset code.
	ForgotPassword(ctx context.Context, email string) error

	// ForgotPasswordSubmit completes a password reset with the mailed code.
	ForgotPasswordSubmit(ctx context.Context, email, code, newPassword string) error

	// UpdateEmail starts an email change; the server mails a code to the
	// new address.
	UpdateEmail(ctx context.Context, newEmail string) error

	// VerifyEmail confirms a pending email change with the mailed code.
	VerifyEmail(ctx context.Context, code string) error
}

// ClientNotesService is the client-side contract for working with notes.
type ClientNotesService interface {
	// List fetches the user's notes, newest first.
	List(ctx context.Context) ([]models.Note, error)

	// ListWithPreviews fetches the user's notes and resolves a signed URL
	// for every attachment concurrently. URL resolution failures degrade to
	// an empty AttachmentURL on the affected item; they never fail the list.
	ListWithPreviews(ctx context.Context) ([]models.NoteView, error)

	// Get fetches a single note.
	Get(ctx context.Context, noteID string) (models.Note, error)

	// GetView fetches a single note and resolves its attachment URL, with
	// the same degrade-on-failure behaviour as ListWithPreviews.
	GetView(ctx context.Context, noteID string) (models.NoteView, error)

	// Create validates and creates a note. Returns [ErrEmptyContent] before
	// any network call when content is blank after trimming.
	Create(ctx context.Context, content string, attachment *string) (models.Note, error)

	// Update replaces the note's content and attachment. The caller decides
	// what attachment key to send; passing the previous key keeps the
	// attachment, nil clears it. Returns [ErrEmptyContent] before any
	// network call when content is blank after trimming.
	Update(ctx context.Context, noteID, content string, attachment *string) (models.Note, error)

	// Delete removes a single note.
	Delete(ctx context.Context, noteID string) error

	// DeleteAll removes the identified notes one by one, concurrently, and
	// reports per-note failures instead of aborting on the first error.
	DeleteAll(ctx context.Context, noteIDs []string) models.BatchResult
}

// ClientAttachmentService is the client-side contract for attachment upload
// and retrieval-URL resolution.
type ClientAttachmentService interface {
	// Upload sends the file bytes to the server and returns the assigned
	// storage key. The size limit is enforced locally before any network
	// call; oversized files surface [ErrAttachmentTooLarge] wrapped with a
	// message naming the limit.
	Upload(ctx context.Context, fileName string, data []byte) (models.UploadResult, error)

	// UploadFile reads the file at path and uploads it via Upload.
	UploadFile(ctx context.Context, path string) (models.UploadResult, error)

	// Resolve exchanges a storage key for a short-lived signed URL.
	Resolve(ctx context.Context, key string) (string, error)
}
