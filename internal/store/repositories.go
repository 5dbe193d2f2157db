package store

import "github.com/notekeeper-app/notekeeper/internal/logger"

// Repositories aggregates the server-side persistence layer behind a single
// value passed to the service layer.
type Repositories struct {
	UserRepository UserRepository
	NoteRepository NoteRepository
	CodeRepository CodeRepository
	BlobStore      BlobStore
}

// NewRepositories wires all PostgreSQL repositories to db. The blob store is
// attached separately because its lifecycle is independent of the database
// connection.
func NewRepositories(db *DB, blob BlobStore, log *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository: NewUserRepository(db, log),
		NoteRepository: NewNoteRepository(db, log),
		CodeRepository: NewCodeRepository(db, log),
		BlobStore:      blob,
	}
}
