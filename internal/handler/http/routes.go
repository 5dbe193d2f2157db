package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/auth/signup", h.signUp)
		r.Post("/auth/login", h.login)
		r.Post("/auth/forgot", h.forgotPassword)
		r.Post("/auth/forgot/confirm", h.forgotPasswordConfirm)
	})

	// routes behind JWT authentication
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/auth/me", h.currentUser)
		r.Put("/auth/attributes", h.updateAttributes)
		r.Post("/auth/attributes/verify", h.verifyAttribute)

		r.Get("/notes", h.listNotes)
		r.Post("/notes", h.createNote)
		r.Delete("/notes", h.deleteAllNotes)
		r.Get("/notes/{noteID}", h.getNote)
		r.Put("/notes/{noteID}", h.updateNote)
		r.Delete("/notes/{noteID}", h.deleteNote)

		r.Post("/attachments", h.uploadAttachment)
		r.Get("/attachments/url", h.resolveAttachmentURL)
	})

	return router
}
