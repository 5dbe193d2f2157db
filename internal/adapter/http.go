package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/notekeeper-app/notekeeper/internal/config"
	"github.com/notekeeper-app/notekeeper/internal/logger"
	"github.com/notekeeper-app/notekeeper/internal/utils"
	"github.com/notekeeper-app/notekeeper/models"
)

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type httpServerAdapter struct {
	client *resty.Client
	logger *logger.Logger

	mu    sync.RWMutex
	token string
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.BaseURL and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.BaseURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	cli := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: cli, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// SignUp implements [ServerAdapter]. It POSTs the credentials to
// POST /auth/signup. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken. Returns an error if
// the request fails, the server returns a non-2xx status, or the token cannot
// be parsed.
func (h *httpServerAdapter) SignUp(ctx context.Context, email, password string) (models.User, error) {
	return h.authenticate(ctx, "/auth/signup", email, password)
}

// SignIn implements [ServerAdapter]. It POSTs the credentials to
// POST /auth/login. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken.
func (h *httpServerAdapter) SignIn(ctx context.Context, email, password string) (models.User, error) {
	return h.authenticate(ctx, "/auth/login", email, password)
}

func (h *httpServerAdapter) authenticate(ctx context.Context, path, email, password string) (models.User, error) {
	var user models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials{Email: email, Password: password}).
		SetResult(&user).
		Post(path)
	if err != nil {
		return models.User{}, fmt.Errorf("auth request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("auth parse bearer token: %w", err)
	}
	userID, err := utils.ParseUserIDFromJWT(token)
	if err != nil {
		return models.User{}, fmt.Errorf("auth parse user id: %w", err)
	}

	h.SetToken(token)
	user.UserID = userID
	return user, nil
}

// CurrentUser implements [ServerAdapter]. It GETs /auth/me using the stored
// bearer token and decodes the authenticated user record.
func (h *httpServerAdapter) CurrentUser(ctx context.Context) (models.User, error) {
	var user models.User

	resp, err := h.authedRequest(ctx).
		SetResult(&user).
		Get("/auth/me")
	if err != nil {
		return models.User{}, fmt.Errorf("current user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// ForgotPassword implements [ServerAdapter]. It POSTs email to
// POST /auth/forgot. The server answers 200 whether or not the account
// exists, so a nil error does not confirm the address.
func (h *httpServerAdapter) ForgotPassword(ctx context.Context, email string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.ForgotPasswordRequest{Email: email}).
		Post("/auth/forgot")
	if err != nil {
		return fmt.Errorf("forgot password request: %w", err)
	}

	return mapHTTPError(resp)
}

// ForgotPasswordSubmit implements [ServerAdapter]. It POSTs the reset code and
// new password to POST /auth/forgot/confirm.
func (h *httpServerAdapter) ForgotPasswordSubmit(ctx context.Context, email, code, newPassword string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.ForgotPasswordConfirm{Email: email, Code: code, NewPassword: newPassword}).
		Post("/auth/forgot/confirm")
	if err != nil {
		return fmt.Errorf("forgot password submit request: %w", err)
	}

	return mapHTTPError(resp)
}

// UpdateEmail implements [ServerAdapter]. It PUTs the new address to
// PUT /auth/attributes. Requires a valid bearer token.
func (h *httpServerAdapter) UpdateEmail(ctx context.Context, newEmail string) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.AttributeUpdate{Email: newEmail}).
		Put("/auth/attributes")
	if err != nil {
		return fmt.Errorf("update email request: %w", err)
	}

	return mapHTTPError(resp)
}

// VerifyEmail implements [ServerAdapter]. It POSTs the verification code to
// POST /auth/attributes/verify. Requires a valid bearer token.
func (h *httpServerAdapter) VerifyEmail(ctx context.Context, code string) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.AttributeVerify{Code: code}).
		Post("/auth/attributes/verify")
	if err != nil {
		return fmt.Errorf("verify email request: %w", err)
	}

	return mapHTTPError(resp)
}

// ListNotes implements [ServerAdapter]. It GETs /notes and decodes the
// response into a slice of [models.Note]. Requires a valid bearer token.
func (h *httpServerAdapter) ListNotes(ctx context.Context) ([]models.Note, error) {
	resp, err := h.authedRequest(ctx).Get("/notes")
	if err != nil {
		return nil, fmt.Errorf("list notes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var notes []models.Note
	if err = json.Unmarshal(resp.Body(), &notes); err != nil {
		return nil, fmt.Errorf("decode notes response: %w", err)
	}

	return notes, nil
}

// GetNote implements [ServerAdapter]. It GETs /notes/{id} and decodes the
// stored note. Requires a valid bearer token.
func (h *httpServerAdapter) GetNote(ctx context.Context, noteID string) (models.Note, error) {
	var note models.Note

	resp, err := h.authedRequest(ctx).
		SetResult(&note).
		Get("/notes/" + url.PathEscape(noteID))
	if err != nil {
		return models.Note{}, fmt.Errorf("get note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return note, nil
}

// CreateNote implements [ServerAdapter]. It POSTs payload to POST /notes and
// decodes the created note. Requires a valid bearer token.
func (h *httpServerAdapter) CreateNote(ctx context.Context, payload models.NotePayload) (models.Note, error) {
	var note models.Note

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		SetResult(&note).
		Post("/notes")
	if err != nil {
		return models.Note{}, fmt.Errorf("create note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return note, nil
}

// UpdateNote implements [ServerAdapter]. It PUTs payload to PUT /notes/{id}
// and decodes the updated note. The payload replaces the stored content and
// attachment wholesale. Requires a valid bearer token.
func (h *httpServerAdapter) UpdateNote(ctx context.Context, noteID string, payload models.NotePayload) (models.Note, error) {
	var note models.Note

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		SetResult(&note).
		Put("/notes/" + url.PathEscape(noteID))
	if err != nil {
		return models.Note{}, fmt.Errorf("update note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return note, nil
}

// DeleteNote implements [ServerAdapter]. It sends DELETE /notes/{id}.
// Requires a valid bearer token.
func (h *httpServerAdapter) DeleteNote(ctx context.Context, noteID string) error {
	resp, err := h.authedRequest(ctx).Delete("/notes/" + url.PathEscape(noteID))
	if err != nil {
		return fmt.Errorf("delete note request: %w", err)
	}

	return mapHTTPError(resp)
}

// DeleteAllNotes implements [ServerAdapter]. It sends DELETE /notes, removing
// every note owned by the authenticated user. Requires a valid bearer token.
func (h *httpServerAdapter) DeleteAllNotes(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Delete("/notes")
	if err != nil {
		return fmt.Errorf("delete all notes request: %w", err)
	}

	return mapHTTPError(resp)
}

// UploadAttachment implements [ServerAdapter]. It streams data as a multipart
// form file to POST /attachments and decodes the assigned storage key.
// Requires a valid bearer token.
func (h *httpServerAdapter) UploadAttachment(ctx context.Context, fileName string, data []byte) (models.UploadResult, error) {
	var result models.UploadResult

	resp, err := h.authedRequest(ctx).
		SetFileReader("file", fileName, bytes.NewReader(data)).
		SetResult(&result).
		Post("/attachments")
	if err != nil {
		return models.UploadResult{}, fmt.Errorf("upload attachment request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UploadResult{}, err
	}

	return result, nil
}

// ResolveAttachment implements [ServerAdapter]. It GETs /attachments/url with
// the storage key and returns the short-lived signed URL from the response.
// Requires a valid bearer token.
func (h *httpServerAdapter) ResolveAttachment(ctx context.Context, key string) (string, error) {
	var result models.AttachmentURL

	resp, err := h.authedRequest(ctx).
		SetQueryParam("key", key).
		SetResult(&result).
		Get("/attachments/url")
	if err != nil {
		return "", fmt.Errorf("resolve attachment request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return result.URL, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
