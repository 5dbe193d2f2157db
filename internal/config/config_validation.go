// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The NoteKeeper Authors

package config

// Built-in defaults applied when the corresponding values are left unset.
const (
	// DefaultMaxAttachmentSize caps attachments at 5 MB, matching the
	// limit enforced client-side before any upload starts.
	DefaultMaxAttachmentSize int64 = 5_000_000
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup and fills in the
// built-in defaults for optional values.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.MaxAttachmentSize <= 0 {
		cfg.App.MaxAttachmentSize = DefaultMaxAttachmentSize
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.BaseURL == "" {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.MaxAttachmentSize <= 0 {
		return ErrInvalidAppConfigs
	}

	return nil
}
