package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/notekeeper-app/notekeeper/internal/adapter"
	"github.com/notekeeper-app/notekeeper/internal/config"
	"github.com/notekeeper-app/notekeeper/internal/logger"
	"github.com/notekeeper-app/notekeeper/models"
)

// clientAttachmentService implements [ClientAttachmentService]. The size
// limit is enforced before any bytes leave the machine; the server enforces
// the same limit independently.
type clientAttachmentService struct {
	adapter adapter.ServerAdapter

	// maxSize is the upload size limit in bytes.
	maxSize int64

	logger *logger.Logger
}

// NewClientAttachmentService constructs a [ClientAttachmentService] with the
// size limit taken from the client configuration.
func NewClientAttachmentService(serverAdapter adapter.ServerAdapter, appCfg config.ClientApp, logger *logger.Logger) ClientAttachmentService {
	maxSize := appCfg.MaxAttachmentSize
	if maxSize <= 0 {
		maxSize = config.DefaultMaxAttachmentSize
	}

	return &clientAttachmentService{
		adapter: serverAdapter,
		maxSize: maxSize,
		logger:  logger,
	}
}

// Upload checks the size locally and sends the file to the server. An
// oversized file fails closed before any network call, with a message naming
// the limit in megabytes.
func (s *clientAttachmentService) Upload(ctx context.Context, fileName string, data []byte) (models.UploadResult, error) {
	if int64(len(data)) > s.maxSize {
		return models.UploadResult{}, fmt.Errorf("%w: %s is larger than the %d MB limit", ErrAttachmentTooLarge, fileName, s.maxSize/1_000_000)
	}
	if len(data) == 0 {
		return models.UploadResult{}, ErrInvalidDataProvided
	}

	result, err := s.adapter.UploadAttachment(ctx, fileName, data)
	if err != nil {
		return models.UploadResult{}, fmt.Errorf("uploading attachment failed: %w", err)
	}

	return result, nil
}

// UploadFile reads the file at path and uploads it under its base name.
func (s *clientAttachmentService) UploadFile(ctx context.Context, path string) (models.UploadResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.UploadResult{}, fmt.Errorf("reading attachment file: %w", err)
	}

	return s.Upload(ctx, filepath.Base(path), data)
}

// Resolve exchanges a storage key for a short-lived signed URL.
func (s *clientAttachmentService) Resolve(ctx context.Context, key string) (string, error) {
	url, err := s.adapter.ResolveAttachment(ctx, key)
	if err != nil {
		return "", fmt.Errorf("resolving attachment url failed: %w", err)
	}

	return url, nil
}
