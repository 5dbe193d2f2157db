package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/notekeeper-app/notekeeper/internal/config"
	"github.com/notekeeper-app/notekeeper/internal/logger"
	"github.com/notekeeper-app/notekeeper/internal/store"
	"github.com/notekeeper-app/notekeeper/models"
)

const defaultURLTTL = 15 * time.Minute

// attachmentService is the concrete implementation of [AttachmentService].
// Objects live in the blob store under "private/{userID}/..." so every
// retrieval can be ownership-checked by key prefix alone.
type attachmentService struct {
	blobStore store.BlobStore

	// maxSize is the upload size limit in bytes.
	maxSize int64

	// urlTTL is the lifetime of presigned retrieval URLs.
	urlTTL time.Duration

	logger *logger.Logger
}

// NewAttachmentService constructs an [AttachmentService] backed by the given
// blob store, with the size limit and URL lifetime taken from configuration.
func NewAttachmentService(blobStore store.BlobStore, appCfg config.App, blobCfg config.Blob, logger *logger.Logger) AttachmentService {
	maxSize := appCfg.MaxAttachmentSize
	if maxSize <= 0 {
		maxSize = config.DefaultMaxAttachmentSize
	}

	urlTTL := blobCfg.URLTTL
	if urlTTL <= 0 {
		urlTTL = defaultURLTTL
	}

	return &attachmentService{
		blobStore: blobStore,
		maxSize:   maxSize,
		urlTTL:    urlTTL,
		logger:    logger,
	}
}

// Upload stores the attachment under a fresh key in the caller's namespace.
// The declared size is checked against the limit before any blob-store
// traffic. Returns [ErrAttachmentTooLarge] when size exceeds it.
func (s *attachmentService) Upload(ctx context.Context, userID int64, fileName string, r io.Reader, size int64, contentType string) (models.UploadResult, error) {
	log := logger.FromContext(ctx)

	if size <= 0 {
		return models.UploadResult{}, ErrInvalidDataProvided
	}
	if size > s.maxSize {
		log.Info().Int64("user_id", userID).Int64("size", size).Int64("limit", s.maxSize).Msg("attachment upload rejected for size")
		return models.UploadResult{}, ErrAttachmentTooLarge
	}

	key := buildAttachmentKey(userID, fileName)

	// LimitReader guards against clients that declare less than they send.
	if err := s.blobStore.Put(ctx, key, io.LimitReader(r, size), size, contentType); err != nil {
		log.Err(err).Int64("user_id", userID).Str("key", key).Msg("attachment upload failed")
		return models.UploadResult{}, fmt.Errorf("attachment upload failed: %w", err)
	}

	return models.UploadResult{Key: key, Size: size}, nil
}

// ResolveURL exchanges key for a short-lived signed GET URL after checking
// key lives in the caller's namespace.
func (s *attachmentService) ResolveURL(ctx context.Context, userID int64, key string) (string, error) {
	log := logger.FromContext(ctx)

	if !ownsKey(userID, key) {
		log.Info().Int64("user_id", userID).Str("key", key).Msg("attachment url requested for foreign key")
		return "", ErrForeignAttachmentKey
	}

	signed, err := s.blobStore.PresignGet(ctx, key, s.urlTTL)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Str("key", key).Msg("presigning attachment url failed")
		return "", fmt.Errorf("presigning attachment url failed: %w", err)
	}

	return signed, nil
}

// Remove deletes the object stored under key after the same ownership check
// as ResolveURL.
func (s *attachmentService) Remove(ctx context.Context, userID int64, key string) error {
	if !ownsKey(userID, key) {
		return ErrForeignAttachmentKey
	}

	if err := s.blobStore.Delete(ctx, key); err != nil {
		return fmt.Errorf("attachment removal failed: %w", err)
	}

	return nil
}

// buildAttachmentKey namespaces the object under the owner and prefixes the
// sanitised file name with a nanosecond timestamp so repeated uploads of the
// same file never collide.
func buildAttachmentKey(userID int64, fileName string) string {
	base := filepath.Base(strings.TrimSpace(fileName))
	if base == "." || base == string(filepath.Separator) || base == "" {
		base = "attachment"
	}
	base = strings.ReplaceAll(base, " ", "_")

	return fmt.Sprintf("private/%d/%d-%s", userID, time.Now().UnixNano(), base)
}

func ownsKey(userID int64, key string) bool {
	return strings.HasPrefix(key, fmt.Sprintf("private/%d/", userID))
}
