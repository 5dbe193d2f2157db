package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/notekeeper-app/notekeeper/internal/adapter"
	"github.com/notekeeper-app/notekeeper/internal/logger"
	"github.com/notekeeper-app/notekeeper/models"
)

// clientNotesService implements [ClientNotesService] on top of the server
// adapter. Attachment URL resolution fans out one goroutine per attachment
// and degrades per item: a note whose URL cannot be resolved is still shown,
// just without a link.
type clientNotesService struct {
	adapter     adapter.ServerAdapter
	attachments ClientAttachmentService
	logger      *logger.Logger
}

// NewClientNotesService constructs a [ClientNotesService].
func NewClientNotesService(serverAdapter adapter.ServerAdapter, attachments ClientAttachmentService, logger *logger.Logger) ClientNotesService {
	return &clientNotesService{
		adapter:     serverAdapter,
		attachments: attachments,
		logger:      logger,
	}
}

// List fetches the user's notes, newest first.
func (s *clientNotesService) List(ctx context.Context) ([]models.Note, error) {
	notes, err := s.adapter.ListNotes(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing notes failed: %w", err)
	}

	return notes, nil
}

// ListWithPreviews fetches the notes and resolves every attachment URL
// concurrently. Each resolution is attempted exactly once; failures leave
// AttachmentURL empty on that item and never fail the call.
func (s *clientNotesService) ListWithPreviews(ctx context.Context) ([]models.NoteView, error) {
	notes, err := s.adapter.ListNotes(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing notes failed: %w", err)
	}

	views := make([]models.NoteView, len(notes))
	var wg sync.WaitGroup

	for i, note := range notes {
		views[i] = models.NoteView{Note: note, Title: models.Title(note.Content)}

		if note.Attachment == nil || *note.Attachment == "" {
			continue
		}

		wg.Add(1)
		go func(i int, key string) {
			defer wg.Done()

			url, resolveErr := s.attachments.Resolve(ctx, key)
			if resolveErr != nil {
				s.logger.Warn().Err(resolveErr).Str("key", key).Msg("attachment url resolution failed, showing note without link")
				return
			}
			views[i].AttachmentURL = url
		}(i, *note.Attachment)
	}

	wg.Wait()
	return views, nil
}

// Get fetches a single note.
func (s *clientNotesService) Get(ctx context.Context, noteID string) (models.Note, error) {
	note, err := s.adapter.GetNote(ctx, noteID)
	if err != nil {
		return models.Note{}, fmt.Errorf("fetching note failed: %w", err)
	}

	return note, nil
}

// GetView fetches a single note and resolves its attachment URL. Resolution
// failure degrades to an empty URL.
func (s *clientNotesService) GetView(ctx context.Context, noteID string) (models.NoteView, error) {
	note, err := s.Get(ctx, noteID)
	if err != nil {
		return models.NoteView{}, err
	}

	view := models.NoteView{Note: note, Title: models.Title(note.Content)}
	if note.Attachment != nil && *note.Attachment != "" {
		url, resolveErr := s.attachments.Resolve(ctx, *note.Attachment)
		if resolveErr != nil {
			s.logger.Warn().Err(resolveErr).Str("key", *note.Attachment).Msg("attachment url resolution failed, showing note without link")
		} else {
			view.AttachmentURL = url
		}
	}

	return view, nil
}

// Create validates locally and creates the note on the server.
func (s *clientNotesService) Create(ctx context.Context, content string, attachment *string) (models.Note, error) {
	if strings.TrimSpace(content) == "" {
		return models.Note{}, ErrEmptyContent
	}

	note, err := s.adapter.CreateNote(ctx, models.NotePayload{Content: content, Attachment: attachment})
	if err != nil {
		return models.Note{}, fmt.Errorf("creating note failed: %w", err)
	}

	return note, nil
}

// Update validates locally and replaces the note on the server. The caller
// supplies the attachment key to keep or nil to clear it.
func (s *clientNotesService) Update(ctx context.Context, noteID, content string, attachment *string) (models.Note, error) {
	if strings.TrimSpace(content) == "" {
		return models.Note{}, ErrEmptyContent
	}

	note, err := s.adapter.UpdateNote(ctx, noteID, models.NotePayload{Content: content, Attachment: attachment})
	if err != nil {
		return models.Note{}, fmt.Errorf("updating note failed: %w", err)
	}

	return note, nil
}

// Delete removes a single note.
func (s *clientNotesService) Delete(ctx context.Context, noteID string) error {
	if err := s.adapter.DeleteNote(ctx, noteID); err != nil {
		return fmt.Errorf("deleting note failed: %w", err)
	}

	return nil
}

// DeleteAll removes the identified notes concurrently, collecting per-note
// failures rather than aborting. The result reports how many notes were
// removed and which ones were not.
func (s *clientNotesService) DeleteAll(ctx context.Context, noteIDs []string) models.BatchResult {
	result := models.BatchResult{Requested: len(noteIDs)}
	if len(noteIDs) == 0 {
		return result
	}

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)

	for _, noteID := range noteIDs {
		wg.Add(1)
		go func(noteID string) {
			defer wg.Done()

			if err := s.adapter.DeleteNote(ctx, noteID); err != nil {
				s.logger.Warn().Err(err).Str("note_id", noteID).Msg("bulk delete: note could not be removed")
				mu.Lock()
				result.Failures = append(result.Failures, models.DeleteFailure{NoteID: noteID, Reason: err.Error()})
				mu.Unlock()
				return
			}

			mu.Lock()
			result.Deleted++
			mu.Unlock()
		}(noteID)
	}

	wg.Wait()
	return result
}
