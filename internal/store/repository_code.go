package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/notekeeper-app/notekeeper/internal/logger"
	"github.com/notekeeper-app/notekeeper/models"
)

// codeRepository is the PostgreSQL-backed implementation of [CodeRepository].
// Codes are unique per (user_id, purpose); saving a new code replaces the
// previous one via an upsert.
type codeRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewCodeRepository constructs a [CodeRepository] backed by the provided
// database connection and logger.
func NewCodeRepository(db *DB, logger *logger.Logger) CodeRepository {
	logger.Debug().Msg("creating verification code repository")
	return &codeRepository{
		db:     db,
		logger: logger,
	}
}

// SaveCode upserts code keyed by (user_id, purpose).
func (r *codeRepository) SaveCode(ctx context.Context, code models.VerificationCode) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, saveVerificationCode, code.UserID, code.Purpose, code.Code, code.NewEmail, code.ExpiresAt)
	if err != nil {
		log.Err(err).Str("func", "*codeRepository.SaveCode").Int64("user_id", code.UserID).Str("purpose", code.Purpose).Msg("error saving verification code")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// GetCode fetches the code stored for the user and purpose. Expiry is not
// checked here; callers compare ExpiresAt against their own clock.
func (r *codeRepository) GetCode(ctx context.Context, userID int64, purpose string) (models.VerificationCode, error) {
	log := logger.FromContext(ctx)

	var found models.VerificationCode
	row := r.db.QueryRowContext(ctx, getVerificationCode, userID, purpose)

	if err := row.Scan(&found.ID, &found.UserID, &found.Purpose, &found.Code, &found.NewEmail, &found.ExpiresAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.VerificationCode{}, ErrCodeNotFound
		}
		log.Err(err).Str("func", "*codeRepository.GetCode").Int64("user_id", userID).Str("purpose", purpose).Msg("error scanning verification code row")
		return models.VerificationCode{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

// DeleteCode removes the code for the user and purpose. Deleting a code that
// does not exist is not an error.
func (r *codeRepository) DeleteCode(ctx context.Context, userID int64, purpose string) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, deleteVerificationCode, userID, purpose); err != nil {
		log.Err(err).Str("func", "*codeRepository.DeleteCode").Int64("user_id", userID).Str("purpose", purpose).Msg("error deleting verification code")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// PurgeExpired removes every code whose expires_at is strictly before now.
func (r *codeRepository) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, purgeExpiredCodes, now)
	if err != nil {
		log.Err(err).Str("func", "*codeRepository.PurgeExpired").Msg("error purging expired verification codes")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	rowsAffected, _ := result.RowsAffected()
	return rowsAffected, nil
}
