package models

// UploadResult is the response body of a successful attachment upload.
type UploadResult struct {
	// Key is the storage key under which the blob was saved. The key is
	// private to the uploading user and is the only handle needed for
	// later resolution.
	Key string `json:"key"`

	// Size is the number of bytes stored.
	Size int64 `json:"size"`
}

// AttachmentURL is the response body of an attachment URL resolution.
type AttachmentURL struct {
	// URL is a time-limited, identity-scoped retrieval URL for the blob.
	// It must not be cached beyond the current view session.
	URL string `json:"url"`
}
