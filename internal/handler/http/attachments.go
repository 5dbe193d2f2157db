package http

import (
	"errors"
	"net/http"

	"github.com/notekeeper-app/notekeeper/internal/logger"
	"github.com/notekeeper-app/notekeeper/internal/service"
	"github.com/notekeeper-app/notekeeper/internal/utils"
	"github.com/notekeeper-app/notekeeper/models"
)

// multipartMemoryLimit caps how much of the multipart body is held in memory
// while parsing; larger parts spill to temporary files.
const multipartMemoryLimit = 4 << 20

func (h *Handler) uploadAttachment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
		log.Err(err).Msg("invalid multipart body")
		http.Error(w, "invalid multipart body", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		log.Err(err).Msg("multipart body is missing the file field")
		http.Error(w, "multipart body is missing the file field", http.StatusBadRequest)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	result, err := h.services.AttachmentService.Upload(ctx, userID, header.Filename, file, header.Size, contentType)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAttachmentTooLarge):
			log.Err(err).Int64("size", header.Size).Msg("attachment upload rejected for size")
			http.Error(w, "attachment exceeds the size limit", http.StatusRequestEntityTooLarge)
			return
		case errors.Is(err, service.ErrInvalidDataProvided):
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("attachment upload failed")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, result, http.StatusCreated)
}

func (h *Handler) resolveAttachmentURL(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	key := r.URL.Query().Get("key")
	if key == "" {
		http.Error(w, "missing key query parameter", http.StatusBadRequest)
		return
	}

	url, err := h.services.AttachmentService.ResolveURL(ctx, userID, key)
	if err != nil {
		if errors.Is(err, service.ErrForeignAttachmentKey) {
			log.Err(err).Str("key", key).Msg("attachment url requested for foreign key")
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
			return
		}
		log.Err(err).Str("key", key).Msg("attachment url resolution failed")
		http.Error(w, http.StatusText(http.StatusBadGateway), http.StatusBadGateway)
		return
	}

	utils.WriteJSON(w, models.AttachmentURL{URL: url}, http.StatusOK)
}
