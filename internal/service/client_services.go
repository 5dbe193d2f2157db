package service

import (
	"github.com/notekeeper-app/notekeeper/internal/adapter"
	"github.com/notekeeper-app/notekeeper/internal/config"
	"github.com/notekeeper-app/notekeeper/internal/logger"
	"github.com/notekeeper-app/notekeeper/internal/store"
)

// ClientServices aggregates the client-side business logic behind a single
// value passed to the terminal UI.
type ClientServices struct {
	SessionService    ClientSessionService
	NotesService      ClientNotesService
	AttachmentService ClientAttachmentService
}

// NewClientServices wires the client services to the server adapter and the
// local session cache.
func NewClientServices(sessionStore store.SessionStore, serverAdapter adapter.ServerAdapter, cfg *config.ClientConfig, logger *logger.Logger) *ClientServices {
	attachmentSvc := NewClientAttachmentService(serverAdapter, cfg.App, logger)

	return &ClientServices{
		SessionService:    NewClientSessionService(sessionStore, serverAdapter, logger),
		NotesService:      NewClientNotesService(serverAdapter, attachmentSvc, logger),
		AttachmentService: attachmentSvc,
	}
}
