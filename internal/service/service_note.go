package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/notekeeper-app/notekeeper/internal/logger"
	"github.com/notekeeper-app/notekeeper/internal/store"
	"github.com/notekeeper-app/notekeeper/models"
)

// noteService is the concrete implementation of [NoteService]. It validates
// incoming payloads and delegates persistence to a [store.NoteRepository].
type noteService struct {
	noteRepository store.NoteRepository
	logger         *logger.Logger
}

// NewNoteService constructs a [NoteService] backed by the given repository.
func NewNoteService(notes store.NoteRepository, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository: notes,
		logger:         logger,
	}
}

// Create persists a new note for userID. The note ID is a server-assigned
// UUID. Returns [ErrEmptyContent] when the content is blank after trimming.
func (s *noteService) Create(ctx context.Context, userID int64, payload models.NotePayload) (models.Note, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(payload.Content) == "" {
		return models.Note{}, ErrEmptyContent
	}

	note := models.Note{
		NoteID:     uuid.NewString(),
		UserID:     userID,
		Content:    payload.Content,
		Attachment: payload.Attachment,
		CreatedAt:  time.Now().UTC(),
	}

	created, err := s.noteRepository.CreateNote(ctx, note)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("note creation ended with error")
		return models.Note{}, fmt.Errorf("note creation ended with error: %w", err)
	}

	return created, nil
}

// Get fetches a single note owned by userID.
func (s *noteService) Get(ctx context.Context, userID int64, noteID string) (models.Note, error) {
	found, err := s.noteRepository.GetNote(ctx, userID, noteID)
	if err != nil {
		return models.Note{}, fmt.Errorf("note lookup failed: %w", err)
	}

	return found, nil
}

// List fetches all notes owned by userID, newest first.
func (s *noteService) List(ctx context.Context, userID int64) ([]models.Note, error) {
	notes, err := s.noteRepository.ListNotes(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("note listing failed: %w", err)
	}

	return notes, nil
}

// Update replaces the content and attachment of the identified note
// wholesale. A nil payload.Attachment clears the stored key; clients that
// want to keep an existing attachment must send its key back. Returns
// [ErrEmptyContent] when the new content is blank after trimming.
func (s *noteService) Update(ctx context.Context, userID int64, noteID string, payload models.NotePayload) (models.Note, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(payload.Content) == "" {
		return models.Note{}, ErrEmptyContent
	}

	updated, err := s.noteRepository.UpdateNote(ctx, userID, noteID, payload)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Str("note_id", noteID).Msg("note update ended with error")
		return models.Note{}, fmt.Errorf("note update ended with error: %w", err)
	}

	return updated, nil
}

// Delete removes a single note owned by userID.
func (s *noteService) Delete(ctx context.Context, userID int64, noteID string) error {
	if err := s.noteRepository.DeleteNote(ctx, userID, noteID); err != nil {
		return fmt.Errorf("note deletion failed: %w", err)
	}

	return nil
}

// DeleteAll removes every note owned by userID and reports the count.
func (s *noteService) DeleteAll(ctx context.Context, userID int64) (int64, error) {
	count, err := s.noteRepository.DeleteAllNotes(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("bulk note deletion failed: %w", err)
	}

	return count, nil
}
