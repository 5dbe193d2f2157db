package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/notekeeper-app/notekeeper/internal/service"
	"github.com/notekeeper-app/notekeeper/models"
)

// multipartUpload builds a multipart request body with a single "file" part.
func multipartUpload(t *testing.T, fieldName, fileName string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(fieldName, fileName)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return &buf, writer.FormDataContentType()
}

// ─────────────────────────────────────────────
// uploadAttachment
// ─────────────────────────────────────────────

func TestUploadAttachment_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, attachments := newTestHandler(t, ctrl)

	content := []byte("file bytes")
	attachments.EXPECT().
		Upload(gomock.Any(), int64(7), "photo.jpg", gomock.Any(), int64(len(content)), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, _ string, r io.Reader, size int64, _ string) (models.UploadResult, error) {
			body, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, content, body)
			return models.UploadResult{Key: "private/7/1-photo.jpg", Size: size}, nil
		})

	body, contentType := multipartUpload(t, "file", "photo.jpg", content)
	req := withUserID(httptest.NewRequest(http.MethodPost, "/attachments", body), 7)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.uploadAttachment(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got models.UploadResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "private/7/1-photo.jpg", got.Key)
	assert.Equal(t, int64(len(content)), got.Size)
}

func TestUploadAttachment_TooLarge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, attachments := newTestHandler(t, ctrl)

	attachments.EXPECT().
		Upload(gomock.Any(), int64(7), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.UploadResult{}, service.ErrAttachmentTooLarge)

	body, contentType := multipartUpload(t, "file", "big.bin", bytes.Repeat([]byte("x"), 1024))
	req := withUserID(httptest.NewRequest(http.MethodPost, "/attachments", body), 7)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.uploadAttachment(rec, req)

	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestUploadAttachment_MissingFileField(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, _ := newTestHandler(t, ctrl)

	body, contentType := multipartUpload(t, "document", "photo.jpg", []byte("bytes"))
	req := withUserID(httptest.NewRequest(http.MethodPost, "/attachments", body), 7)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.uploadAttachment(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUploadAttachment_NotMultipart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, _ := newTestHandler(t, ctrl)

	req := withUserID(httptest.NewRequest(http.MethodPost, "/attachments", bytes.NewReader([]byte("raw bytes"))), 7)
	req.Header.Set("Content-Type", "application/octet-stream")
	rec := httptest.NewRecorder()

	h.uploadAttachment(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// resolveAttachmentURL
// ─────────────────────────────────────────────

func TestResolveAttachmentURL_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, attachments := newTestHandler(t, ctrl)

	attachments.EXPECT().ResolveURL(gomock.Any(), int64(7), "private/7/1-photo.jpg").
		Return("https://blobs.example.com/signed", nil)

	req := withUserID(httptest.NewRequest(http.MethodGet, "/attachments/url?key=private%2F7%2F1-photo.jpg", nil), 7)
	rec := httptest.NewRecorder()

	h.resolveAttachmentURL(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"url":"https://blobs.example.com/signed"}`, rec.Body.String())
}

func TestResolveAttachmentURL_ForeignKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, attachments := newTestHandler(t, ctrl)

	attachments.EXPECT().ResolveURL(gomock.Any(), int64(7), "private/8/1-photo.jpg").
		Return("", service.ErrForeignAttachmentKey)

	req := withUserID(httptest.NewRequest(http.MethodGet, "/attachments/url?key=private%2F8%2F1-photo.jpg", nil), 7)
	rec := httptest.NewRecorder()

	h.resolveAttachmentURL(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestResolveAttachmentURL_MissingKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, _ := newTestHandler(t, ctrl)

	req := withUserID(httptest.NewRequest(http.MethodGet, "/attachments/url", nil), 7)
	rec := httptest.NewRecorder()

	h.resolveAttachmentURL(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}
