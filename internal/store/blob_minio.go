// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The NoteKeeper Authors

package store

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/notekeeper-app/notekeeper/internal/config"
	"github.com/notekeeper-app/notekeeper/internal/logger"
)

// minioBlobStore implements [BlobStore] against an S3-compatible backend
// (MinIO, AWS S3, etc.). It is safe for concurrent use.
type minioBlobStore struct {
	client *minio.Client
	bucket string
	logger *logger.Logger
}

// NewMinioBlobStore creates an S3-compatible attachment store. It validates
// connectivity and ensures the configured bucket exists, creating it when
// missing.
func NewMinioBlobStore(ctx context.Context, cfg config.Blob, log *logger.Logger) (BlobStore, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("blob store endpoint is required")
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, fmt.Errorf("blob store credentials are required")
	}
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("blob store bucket is required")
	}

	cli, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create blob store client: %w", err)
	}

	ensureCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	exists, err := cli.BucketExists(ensureCtx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket existence: %w", err)
	}
	if !exists {
		if err = cli.MakeBucket(ensureCtx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket: %w", err)
		}
		log.Info().Str("bucket", cfg.Bucket).Msg("created attachment bucket")
	}

	return &minioBlobStore{client: cli, bucket: cfg.Bucket, logger: log}, nil
}

// Put uploads an object using streaming I/O only; nothing is buffered to
// local disk.
func (m *minioBlobStore) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	_, err := m.client.PutObject(ctx, m.bucket, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("put object %q: %w", key, err)
	}

	return nil
}

// Delete removes the object stored under key.
func (m *minioBlobStore) Delete(ctx context.Context, key string) error {
	if err := m.client.RemoveObject(ctx, m.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("remove object %q: %w", key, err)
	}

	return nil
}

// PresignGet generates a pre-signed GET URL for the object under key with
// the specified expiry.
func (m *minioBlobStore) PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error) {
	u, err := m.client.PresignedGetObject(ctx, m.bucket, key, expiry, url.Values{})
	if err != nil {
		return "", fmt.Errorf("presign object %q: %w", key, err)
	}

	return u.String(), nil
}
