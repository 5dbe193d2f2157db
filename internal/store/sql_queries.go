package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/notekeeper-app/notekeeper/models"
)

const (
	createUser = `INSERT INTO users (email, password_hash, email_verified)
    VALUES ($1, $2, $3)
    RETURNING user_id, email, password_hash, email_verified, created_at;`

	findUserByEmail = `SELECT user_id, email, password_hash, email_verified, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, email, password_hash, email_verified, created_at
    FROM users
    WHERE user_id = $1;`

	updateUserEmail = `UPDATE users
    SET email = $1, email_verified = $2
    WHERE user_id = $3;`

	updateUserPassword = `UPDATE users
    SET password_hash = $1
    WHERE user_id = $2;`

	saveVerificationCode = `INSERT INTO verification_codes (user_id, purpose, code, new_email, expires_at)
    VALUES ($1, $2, $3, $4, $5)
    ON CONFLICT (user_id, purpose)
    DO UPDATE SET code = EXCLUDED.code, new_email = EXCLUDED.new_email, expires_at = EXCLUDED.expires_at;`

	getVerificationCode = `SELECT id, user_id, purpose, code, new_email, expires_at
    FROM verification_codes
    WHERE user_id = $1 AND purpose = $2;`

	deleteVerificationCode = `DELETE FROM verification_codes
    WHERE user_id = $1 AND purpose = $2;`

	purgeExpiredCodes = `DELETE FROM verification_codes
    WHERE expires_at < $1;`
)

// psql builds note queries with PostgreSQL-style placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var noteColumns = []string{"note_id", "user_id", "content", "attachment", "created_at"}

func buildCreateNoteQuery(note models.Note) (string, []any, error) {
	return psql.Insert("notes").
		Columns(noteColumns...).
		Values(note.NoteID, note.UserID, note.Content, note.Attachment, note.CreatedAt).
		Suffix("RETURNING " + noteColumnsList()).
		ToSql()
}

func buildGetNoteQuery(userID int64, noteID string) (string, []any, error) {
	return psql.Select(noteColumns...).
		From("notes").
		Where(sq.Eq{"user_id": userID, "note_id": noteID}).
		ToSql()
}

func buildListNotesQuery(userID int64) (string, []any, error) {
	return psql.Select(noteColumns...).
		From("notes").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		ToSql()
}

func buildUpdateNoteQuery(userID int64, noteID string, payload models.NotePayload) (string, []any, error) {
	return psql.Update("notes").
		Set("content", payload.Content).
		Set("attachment", payload.Attachment).
		Where(sq.Eq{"user_id": userID, "note_id": noteID}).
		Suffix("RETURNING " + noteColumnsList()).
		ToSql()
}

func buildDeleteNoteQuery(userID int64, noteID string) (string, []any, error) {
	return psql.Delete("notes").
		Where(sq.Eq{"user_id": userID, "note_id": noteID}).
		ToSql()
}

func buildDeleteAllNotesQuery(userID int64) (string, []any, error) {
	return psql.Delete("notes").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func noteColumnsList() string {
	list := noteColumns[0]
	for _, col := range noteColumns[1:] {
		list += ", " + col
	}
	return list
}
