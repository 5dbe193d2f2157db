// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The NoteKeeper Authors

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/notekeeper-app/notekeeper/internal/logger"
	"github.com/notekeeper-app/notekeeper/internal/mock"
	"github.com/notekeeper-app/notekeeper/internal/service"
	"github.com/notekeeper-app/notekeeper/internal/store"
	"github.com/notekeeper-app/notekeeper/internal/utils"
	"github.com/notekeeper-app/notekeeper/models"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler over gomock service mocks.
func newTestHandler(t *testing.T, ctrl *gomock.Controller) (*Handler, *mock.MockAuthService, *mock.MockNoteService, *mock.MockAttachmentService) {
	t.Helper()
	auth := mock.NewMockAuthService(ctrl)
	notes := mock.NewMockNoteService(ctrl)
	attachments := mock.NewMockAttachmentService(ctrl)
	h := NewHandler(&service.Services{
		AuthService:       auth,
		NoteService:       notes,
		AttachmentService: attachments,
	}, logger.Nop())
	return h, auth, notes, attachments
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// stubToken returns a models.Token with the given signed string.
func stubToken(signed string) models.Token {
	return models.Token{SignedString: signed}
}

// withUserID returns a copy of req whose context carries userID the way the
// auth middleware stores it.
func withUserID(req *http.Request, userID int64) *http.Request {
	ctx := context.WithValue(req.Context(), utils.UserIDCtxKey, userID)
	return req.WithContext(ctx)
}

var validCredentials = models.User{Email: "alice@example.com", Password: "secret"}

// ─────────────────────────────────────────────
// signUp
// ─────────────────────────────────────────────

func TestSignUp_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	const signedToken = "signed.jwt.token"
	h, auth, _, _ := newTestHandler(t, ctrl)

	auth.EXPECT().SignUp(gomock.Any(), "alice@example.com", "secret").
		Return(models.User{UserID: 7, Email: "alice@example.com"}, nil)
	auth.EXPECT().CreateToken(gomock.Any(), models.User{UserID: 7, Email: "alice@example.com"}).
		Return(stubToken(signedToken), nil)

	req := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(jsonBody(t, validCredentials)))
	rec := httptest.NewRecorder()

	h.signUp(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer "+signedToken, rec.Header().Get("Authorization"))
}

func TestSignUp_InvalidJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, _ := newTestHandler(t, ctrl)

	req := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader("{invalid json}"))
	rec := httptest.NewRecorder()

	h.signUp(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSignUp_EmailTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, auth, _, _ := newTestHandler(t, ctrl)

	auth.EXPECT().SignUp(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.User{}, store.ErrEmailAlreadyExists)

	req := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(jsonBody(t, validCredentials)))
	rec := httptest.NewRecorder()

	h.signUp(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestSignUp_InvalidData(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, auth, _, _ := newTestHandler(t, ctrl)

	auth.EXPECT().SignUp(gomock.Any(), "", "").
		Return(models.User{}, service.ErrInvalidDataProvided)

	req := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader("{}"))
	rec := httptest.NewRecorder()

	h.signUp(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	const signedToken = "signed.jwt.token"
	h, auth, _, _ := newTestHandler(t, ctrl)

	auth.EXPECT().SignIn(gomock.Any(), "alice@example.com", "secret").
		Return(models.User{UserID: 7}, nil)
	auth.EXPECT().CreateToken(gomock.Any(), models.User{UserID: 7}).
		Return(stubToken(signedToken), nil)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(jsonBody(t, validCredentials)))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer "+signedToken, rec.Header().Get("Authorization"))
}

func TestLogin_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, auth, _, _ := newTestHandler(t, ctrl)

	auth.EXPECT().SignIn(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.User{}, service.ErrWrongPassword)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(jsonBody(t, validCredentials)))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogin_UnknownUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, auth, _, _ := newTestHandler(t, ctrl)

	auth.EXPECT().SignIn(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.User{}, store.ErrNoUserWasFound)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(jsonBody(t, validCredentials)))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogin_TokenCreationFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, auth, _, _ := newTestHandler(t, ctrl)

	auth.EXPECT().SignIn(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.User{UserID: 7}, nil)
	auth.EXPECT().CreateToken(gomock.Any(), gomock.Any()).Return(models.Token{}, errors.New("hmac failure"))

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(jsonBody(t, validCredentials)))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ─────────────────────────────────────────────
// currentUser
// ─────────────────────────────────────────────

func TestCurrentUser_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, auth, _, _ := newTestHandler(t, ctrl)

	auth.EXPECT().CurrentUser(gomock.Any(), int64(7)).
		Return(models.User{UserID: 7, Email: "alice@example.com", EmailVerified: true}, nil)

	req := withUserID(httptest.NewRequest(http.MethodGet, "/auth/me", nil), 7)
	rec := httptest.NewRecorder()

	h.currentUser(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "alice@example.com", got.Email)
	assert.True(t, got.EmailVerified)
	// The hash never leaves the server.
	assert.NotContains(t, rec.Body.String(), "PasswordHash")
}

func TestCurrentUser_NoContextUserID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, _ := newTestHandler(t, ctrl)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	rec := httptest.NewRecorder()

	h.currentUser(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

// ─────────────────────────────────────────────
// forgotPassword / forgotPasswordConfirm
// ─────────────────────────────────────────────

func TestForgotPassword_AlwaysOKForAnyEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, auth, _, _ := newTestHandler(t, ctrl)

	// The service reports success for unknown addresses as well, so the
	// endpoint responds identically for registered and unregistered emails.
	auth.EXPECT().ForgotPassword(gomock.Any(), "anyone@example.com").Return(nil)

	body := jsonBody(t, models.ForgotPasswordRequest{Email: "anyone@example.com"})
	req := httptest.NewRequest(http.MethodPost, "/auth/forgot", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.forgotPassword(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestForgotPasswordConfirm_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, auth, _, _ := newTestHandler(t, ctrl)

	auth.EXPECT().ForgotPasswordSubmit(gomock.Any(), "alice@example.com", "123456", "new-password").Return(nil)

	body := jsonBody(t, models.ForgotPasswordConfirm{Email: "alice@example.com", Code: "123456", NewPassword: "new-password"})
	req := httptest.NewRequest(http.MethodPost, "/auth/forgot/confirm", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.forgotPasswordConfirm(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestForgotPasswordConfirm_InvalidCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, auth, _, _ := newTestHandler(t, ctrl)

	auth.EXPECT().ForgotPasswordSubmit(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(service.ErrInvalidCode)

	body := jsonBody(t, models.ForgotPasswordConfirm{Email: "alice@example.com", Code: "000000", NewPassword: "new-password"})
	req := httptest.NewRequest(http.MethodPost, "/auth/forgot/confirm", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.forgotPasswordConfirm(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid or expired code")
}

// ─────────────────────────────────────────────
// updateAttributes / verifyAttribute
// ─────────────────────────────────────────────

func TestUpdateAttributes_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, auth, _, _ := newTestHandler(t, ctrl)

	auth.EXPECT().UpdateEmail(gomock.Any(), int64(7), "next@example.com").Return(nil)

	body := jsonBody(t, models.AttributeUpdate{Email: "next@example.com"})
	req := withUserID(httptest.NewRequest(http.MethodPut, "/auth/attributes", strings.NewReader(body)), 7)
	rec := httptest.NewRecorder()

	h.updateAttributes(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestVerifyAttribute_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, auth, _, _ := newTestHandler(t, ctrl)

	auth.EXPECT().VerifyEmail(gomock.Any(), int64(7), "123456").Return(nil)

	body := jsonBody(t, models.AttributeVerify{Code: "123456"})
	req := withUserID(httptest.NewRequest(http.MethodPost, "/auth/attributes/verify", strings.NewReader(body)), 7)
	rec := httptest.NewRecorder()

	h.verifyAttribute(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestVerifyAttribute_WrongCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, auth, _, _ := newTestHandler(t, ctrl)

	auth.EXPECT().VerifyEmail(gomock.Any(), int64(7), "000000").Return(service.ErrInvalidCode)

	body := jsonBody(t, models.AttributeVerify{Code: "000000"})
	req := withUserID(httptest.NewRequest(http.MethodPost, "/auth/attributes/verify", strings.NewReader(body)), 7)
	rec := httptest.NewRecorder()

	h.verifyAttribute(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVerifyAttribute_NewEmailTakenMeanwhile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, auth, _, _ := newTestHandler(t, ctrl)

	auth.EXPECT().VerifyEmail(gomock.Any(), int64(7), "123456").Return(store.ErrEmailAlreadyExists)

	body := jsonBody(t, models.AttributeVerify{Code: "123456"})
	req := withUserID(httptest.NewRequest(http.MethodPost, "/auth/attributes/verify", strings.NewReader(body)), 7)
	rec := httptest.NewRecorder()

	h.verifyAttribute(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)
}
