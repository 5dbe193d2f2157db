// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The NoteKeeper Authors

package models

import (
	"strings"
	"time"
)

// Note represents a single note owned by exactly one user.
// Field names mirror the wire format of the notes REST API.
type Note struct {
	// NoteID is the server-assigned unique identifier of the note.
	// It is immutable for the lifetime of the note.
	NoteID string `json:"noteId"`

	// UserID is the owning identity. It is set at creation time from the
	// authenticated session and never changes afterwards.
	UserID int64 `json:"userId"`

	// Content is the free-form text of the note. The first line is used as
	// the display title (see [Title]). A persisted note never has empty
	// content.
	Content string `json:"content"`

	// Attachment is the opaque storage key of an optional file attachment,
	// or nil when the note has none. The key references a blob in the
	// attachment store; it is resolved to a time-limited URL on demand and
	// the resolved URL is never persisted.
	Attachment *string `json:"attachment"`

	// CreatedAt is the server-assigned creation timestamp.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the Note model.
func (n *Note) TableName() string {
	return "notes"
}

// AttachmentKey returns the attachment storage key or "" when the note has
// no attachment.
func (n *Note) AttachmentKey() string {
	if n.Attachment == nil {
		return ""
	}
	return *n.Attachment
}

// Title derives the display title of a note from its content: the first
// line of the trimmed text. The title is a pure derivation and is never
// stored alongside the note.
func Title(content string) string {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return ""
	}
	if idx := strings.IndexByte(trimmed, '\n'); idx >= 0 {
		return strings.TrimSpace(trimmed[:idx])
	}
	return trimmed
}
