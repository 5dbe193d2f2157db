package service

import (
	"github.com/notekeeper-app/notekeeper/internal/config"
	"github.com/notekeeper-app/notekeeper/internal/logger"
	"github.com/notekeeper-app/notekeeper/internal/mail"
	"github.com/notekeeper-app/notekeeper/internal/store"
)

// Services aggregates the server-side business logic behind a single value
// passed to the HTTP handlers.
type Services struct {
	AuthService       AuthService
	NoteService       NoteService
	AttachmentService AttachmentService
}

// NewServices wires all server-side services to the persistence layer and
// mail sender.
func NewServices(repos *store.Repositories, sender mail.Sender, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:       NewAuthService(repos.UserRepository, repos.CodeRepository, sender, cfg.App, logger),
		NoteService:       NewNoteService(repos.NoteRepository, logger),
		AttachmentService: NewAttachmentService(repos.BlobStore, cfg.App, cfg.Storage.Blob, logger),
	}
}
