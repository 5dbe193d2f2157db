package models

// NoteView is the client-side presentation of a note: the stored record plus
// the derived title and, when the note carries an attachment, a short-lived
// signed URL for it. AttachmentURL stays empty when the note has no
// attachment or the URL could not be resolved.
type NoteView struct {
	Note

	Title         string
	AttachmentURL string
}

// DeleteFailure records one note that could not be removed during a bulk
// delete.
type DeleteFailure struct {
	NoteID string
	Reason string
}

// BatchResult summarises a bulk delete: how many notes were targeted, how
// many were removed, and which ones failed.
type BatchResult struct {
	Requested int
	Deleted   int
	Failures  []DeleteFailure
}

// AllSucceeded reports whether every targeted note was removed.
func (b BatchResult) AllSucceeded() bool {
	return len(b.Failures) == 0
}
