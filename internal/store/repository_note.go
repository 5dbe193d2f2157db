package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/notekeeper-app/notekeeper/internal/logger"
	"github.com/notekeeper-app/notekeeper/models"
)

// noteRepository is the PostgreSQL-backed implementation of [NoteRepository].
// It executes all note CRUD operations against the "notes" table using the
// embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (user_id, note_id).
type noteRepository struct {
	*DB
	logger *logger.Logger
}

// NewNoteRepository constructs a [NoteRepository] backed by the provided
// database connection and logger.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateNote persists note and returns the stored row as the database
// canonicalised it.
func (r *noteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateNoteQuery(note)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.CreateNote").Int64("user_id", note.UserID).Msg("failed to build query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.Note
	row := r.DB.QueryRowContext(ctx, query, args...)
	if err = scanNote(row, &created); err != nil {
		log.Err(err).Str("func", "noteRepository.CreateNote").Int64("user_id", note.UserID).Msg("failed to save note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return created, nil
}

// GetNote retrieves a single note scoped to its owner. A note belonging to a
// different user surfaces [ErrNoteNotFound], same as a missing one.
func (r *noteRepository) GetNote(ctx context.Context, userID int64, noteID string) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetNoteQuery(userID, noteID)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.GetNote").Int64("user_id", userID).Msg("failed to build query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.Note
	row := r.DB.QueryRowContext(ctx, query, args...)
	if err = scanNote(row, &found); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, ErrNoteNotFound
		}
		log.Err(err).Str("func", "noteRepository.GetNote").Int64("user_id", userID).Str("note_id", noteID).Msg("failed to scan note row")
		return models.Note{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

// ListNotes retrieves all notes owned by userID ordered by creation time,
// newest first. An empty result produces an empty slice, not an error.
func (r *noteRepository) ListNotes(ctx context.Context, userID int64) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListNotesQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.ListNotes").Int64("user_id", userID).Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.ListNotes").Int64("user_id", userID).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0, 16)
	for rows.Next() {
		var note models.Note
		if scanErr := rows.Scan(&note.NoteID, &note.UserID, &note.Content, &note.Attachment, &note.CreatedAt); scanErr != nil {
			log.Err(scanErr).Str("func", "noteRepository.ListNotes").Int64("user_id", userID).Msg("failed to scan note row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		notes = append(notes, note)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "noteRepository.ListNotes").Int64("user_id", userID).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, rowsErr)
	}

	return notes, nil
}

// UpdateNote replaces the content and attachment columns of the identified
// note wholesale; a nil payload.Attachment clears the stored key. Returns
// [ErrNoteNotFound] when no row matches userID and noteID.
func (r *noteRepository) UpdateNote(ctx context.Context, userID int64, noteID string, payload models.NotePayload) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateNoteQuery(userID, noteID, payload)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.UpdateNote").Int64("user_id", userID).Msg("failed to build query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.Note
	row := r.DB.QueryRowContext(ctx, query, args...)
	if err = scanNote(row, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, ErrNoteNotFound
		}
		log.Err(err).Str("func", "noteRepository.UpdateNote").Int64("user_id", userID).Str("note_id", noteID).Msg("failed to scan updated note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return updated, nil
}

// DeleteNote removes a single note scoped to its owner. Returns
// [ErrNoteNotFound] when no row matches userID and noteID.
func (r *noteRepository) DeleteNote(ctx context.Context, userID int64, noteID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteNoteQuery(userID, noteID)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.DeleteNote").Int64("user_id", userID).Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.DeleteNote").Int64("user_id", userID).Str("note_id", noteID).Msg("failed to execute query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNoteNotFound
	}

	return nil
}

// DeleteAllNotes removes every note owned by userID. Deleting an already
// empty collection is not an error; the count is zero.
func (r *noteRepository) DeleteAllNotes(ctx context.Context, userID int64) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteAllNotesQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.DeleteAllNotes").Int64("user_id", userID).Msg("failed to build query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.DeleteAllNotes").Int64("user_id", userID).Msg("failed to execute query")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	rowsAffected, _ := result.RowsAffected()
	return rowsAffected, nil
}

func scanNote(row *sql.Row, dst *models.Note) error {
	return row.Scan(&dst.NoteID, &dst.UserID, &dst.Content, &dst.Attachment, &dst.CreatedAt)
}
