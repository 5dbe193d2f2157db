package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/notekeeper-app/notekeeper/internal/service"
	"github.com/notekeeper-app/notekeeper/internal/store"
	"github.com/notekeeper-app/notekeeper/models"
)

// withNoteID attaches a chi route context carrying the noteID URL parameter.
func withNoteID(req *http.Request, noteID string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("noteID", noteID)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

// ─────────────────────────────────────────────
// listNotes
// ─────────────────────────────────────────────

func TestListNotes_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, notes, _ := newTestHandler(t, ctrl)

	notes.EXPECT().List(gomock.Any(), int64(7)).Return([]models.Note{
		{NoteID: "b", Content: "newer"},
		{NoteID: "a", Content: "older"},
	}, nil)

	req := withUserID(httptest.NewRequest(http.MethodGet, "/notes", nil), 7)
	rec := httptest.NewRecorder()

	h.listNotes(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []models.Note
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].NoteID)
}

func TestListNotes_EmptyIsJSONArray(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, notes, _ := newTestHandler(t, ctrl)

	notes.EXPECT().List(gomock.Any(), int64(7)).Return([]models.Note{}, nil)

	req := withUserID(httptest.NewRequest(http.MethodGet, "/notes", nil), 7)
	rec := httptest.NewRecorder()

	h.listNotes(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestListNotes_NoContextUserID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, _ := newTestHandler(t, ctrl)

	req := httptest.NewRequest(http.MethodGet, "/notes", nil)
	rec := httptest.NewRecorder()

	h.listNotes(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

// ─────────────────────────────────────────────
// createNote
// ─────────────────────────────────────────────

func TestCreateNote_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, notes, _ := newTestHandler(t, ctrl)

	payload := models.NotePayload{Content: "hello"}
	notes.EXPECT().Create(gomock.Any(), int64(7), payload).
		Return(models.Note{NoteID: "new-id", UserID: 7, Content: "hello"}, nil)

	req := withUserID(httptest.NewRequest(http.MethodPost, "/notes", strings.NewReader(jsonBody(t, payload))), 7)
	rec := httptest.NewRecorder()

	h.createNote(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got models.Note
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "new-id", got.NoteID)
}

func TestCreateNote_EmptyContent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, notes, _ := newTestHandler(t, ctrl)

	notes.EXPECT().Create(gomock.Any(), int64(7), gomock.Any()).
		Return(models.Note{}, service.ErrEmptyContent)

	req := withUserID(httptest.NewRequest(http.MethodPost, "/notes", strings.NewReader(`{"content":" "}`)), 7)
	rec := httptest.NewRecorder()

	h.createNote(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// getNote
// ─────────────────────────────────────────────

func TestGetNote_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, notes, _ := newTestHandler(t, ctrl)

	notes.EXPECT().Get(gomock.Any(), int64(7), "note-1").
		Return(models.Note{NoteID: "note-1", UserID: 7, Content: "hello"}, nil)

	req := withNoteID(withUserID(httptest.NewRequest(http.MethodGet, "/notes/note-1", nil), 7), "note-1")
	rec := httptest.NewRecorder()

	h.getNote(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestGetNote_ForeignNoteLooksMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, notes, _ := newTestHandler(t, ctrl)

	// The repository scopes lookups to the owner, so another user's note
	// surfaces exactly like a missing one.
	notes.EXPECT().Get(gomock.Any(), int64(7), "someone-elses").
		Return(models.Note{}, store.ErrNoteNotFound)

	req := withNoteID(withUserID(httptest.NewRequest(http.MethodGet, "/notes/someone-elses", nil), 7), "someone-elses")
	rec := httptest.NewRecorder()

	h.getNote(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

// ─────────────────────────────────────────────
// updateNote
// ─────────────────────────────────────────────

func TestUpdateNote_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, notes, _ := newTestHandler(t, ctrl)

	payload := models.NotePayload{Content: "changed"}
	notes.EXPECT().Update(gomock.Any(), int64(7), "note-1", payload).
		Return(models.Note{NoteID: "note-1", Content: "changed"}, nil)

	req := withNoteID(withUserID(httptest.NewRequest(http.MethodPut, "/notes/note-1", strings.NewReader(jsonBody(t, payload))), 7), "note-1")
	rec := httptest.NewRecorder()

	h.updateNote(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateNote_OmittedAttachmentClearsKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, notes, _ := newTestHandler(t, ctrl)

	// The payload carries no attachment field, so the decoded payload has a
	// nil Attachment and the stored key is cleared.
	notes.EXPECT().Update(gomock.Any(), int64(7), "note-1", models.NotePayload{Content: "changed", Attachment: nil}).
		Return(models.Note{NoteID: "note-1", Content: "changed"}, nil)

	req := withNoteID(withUserID(httptest.NewRequest(http.MethodPut, "/notes/note-1", strings.NewReader(`{"content":"changed"}`)), 7), "note-1")
	rec := httptest.NewRecorder()

	h.updateNote(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateNote_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, notes, _ := newTestHandler(t, ctrl)

	notes.EXPECT().Update(gomock.Any(), int64(7), "missing", gomock.Any()).
		Return(models.Note{}, store.ErrNoteNotFound)

	req := withNoteID(withUserID(httptest.NewRequest(http.MethodPut, "/notes/missing", strings.NewReader(`{"content":"x"}`)), 7), "missing")
	rec := httptest.NewRecorder()

	h.updateNote(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

// ─────────────────────────────────────────────
// deleteNote / deleteAllNotes
// ─────────────────────────────────────────────

func TestDeleteNote_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, notes, _ := newTestHandler(t, ctrl)

	notes.EXPECT().Delete(gomock.Any(), int64(7), "note-1").Return(nil)

	req := withNoteID(withUserID(httptest.NewRequest(http.MethodDelete, "/notes/note-1", nil), 7), "note-1")
	rec := httptest.NewRecorder()

	h.deleteNote(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDeleteNote_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, notes, _ := newTestHandler(t, ctrl)

	notes.EXPECT().Delete(gomock.Any(), int64(7), "missing").Return(store.ErrNoteNotFound)

	req := withNoteID(withUserID(httptest.NewRequest(http.MethodDelete, "/notes/missing", nil), 7), "missing")
	rec := httptest.NewRecorder()

	h.deleteNote(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteAllNotes_ReportsCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, notes, _ := newTestHandler(t, ctrl)

	notes.EXPECT().DeleteAll(gomock.Any(), int64(7)).Return(int64(4), nil)

	req := withUserID(httptest.NewRequest(http.MethodDelete, "/notes", nil), 7)
	rec := httptest.NewRecorder()

	h.deleteAllNotes(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"deleted":4}`, rec.Body.String())
}
