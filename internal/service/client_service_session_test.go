package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/notekeeper-app/notekeeper/internal/logger"
	"github.com/notekeeper-app/notekeeper/internal/mock"
	"github.com/notekeeper-app/notekeeper/internal/store"
	"github.com/notekeeper-app/notekeeper/internal/utils"
	"github.com/notekeeper-app/notekeeper/models"
)

func newTestSessionSvc(t *testing.T, ctrl *gomock.Controller) (ClientSessionService, *mock.MockSessionStore, *mock.MockServerAdapter) {
	t.Helper()
	mockStore := mock.NewMockSessionStore(ctrl)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	svc := NewClientSessionService(mockStore, mockAdapter, logger.Nop())
	return svc, mockStore, mockAdapter
}

func signedToken(t *testing.T, userID int64, ttl time.Duration) string {
	t.Helper()
	token, err := utils.GenerateJWTToken("notekeeper-test", userID, ttl, "testsignkey")
	require.NoError(t, err)
	return token.String()
}

// ── SignIn / SignUp ──────────────────────────────────────────────────────────

func TestClientSessionService_SignIn_CachesSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockStore, mockAdapter := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().SignIn(ctx, "user@example.com", "secret").Return(models.User{UserID: 7}, nil)
	mockAdapter.EXPECT().Token().Return("jwt-token")
	mockStore.EXPECT().SaveSession(ctx, int64(7), "jwt-token").Return(nil)

	user, err := svc.SignIn(ctx, "user@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.UserID)
}

func TestClientSessionService_SignIn_ServerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockAdapter := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().SignIn(ctx, "user@example.com", "wrong").Return(models.User{}, errors.New("401"))

	_, err := svc.SignIn(ctx, "user@example.com", "wrong")
	require.ErrorIs(t, err, ErrSignInOnServer)
}

func TestClientSessionService_SignIn_CacheFailureDoesNotFail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockStore, mockAdapter := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().SignIn(ctx, "user@example.com", "secret").Return(models.User{UserID: 7}, nil)
	mockAdapter.EXPECT().Token().Return("jwt-token")
	mockStore.EXPECT().SaveSession(ctx, int64(7), "jwt-token").Return(errors.New("disk full"))

	_, err := svc.SignIn(ctx, "user@example.com", "secret")
	require.NoError(t, err)
}

func TestClientSessionService_SignUp_CachesSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockStore, mockAdapter := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().SignUp(ctx, "new@example.com", "secret").Return(models.User{UserID: 9}, nil)
	mockAdapter.EXPECT().Token().Return("jwt-token")
	mockStore.EXPECT().SaveSession(ctx, int64(9), "jwt-token").Return(nil)

	user, err := svc.SignUp(ctx, "new@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, int64(9), user.UserID)
}

func TestClientSessionService_SignUp_ServerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockAdapter := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().SignUp(ctx, "taken@example.com", "secret").Return(models.User{}, errors.New("409"))

	_, err := svc.SignUp(ctx, "taken@example.com", "secret")
	require.ErrorIs(t, err, ErrSignUpOnServer)
}

// ── RestoreSession ───────────────────────────────────────────────────────────

func TestClientSessionService_RestoreSession_ValidToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockStore, mockAdapter := newTestSessionSvc(t, ctrl)
	ctx := context.Background()
	token := signedToken(t, 7, time.Hour)

	mockStore.EXPECT().LoadSession(ctx).Return(models.LocalSession{UserID: 7, Token: token}, nil)
	mockAdapter.EXPECT().SetToken(token)

	session, err := svc.RestoreSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(7), session.UserID)
}

func TestClientSessionService_RestoreSession_ExpiredTokenClearsCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockStore, _ := newTestSessionSvc(t, ctrl)
	ctx := context.Background()
	token := signedToken(t, 7, -time.Minute)

	mockStore.EXPECT().LoadSession(ctx).Return(models.LocalSession{UserID: 7, Token: token}, nil)
	mockStore.EXPECT().ClearSession(ctx).Return(nil)

	_, err := svc.RestoreSession(ctx)
	require.ErrorIs(t, err, ErrSessionExpired)
}

func TestClientSessionService_RestoreSession_GarbageTokenClearsCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockStore, _ := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	mockStore.EXPECT().LoadSession(ctx).Return(models.LocalSession{UserID: 7, Token: "corrupted"}, nil)
	mockStore.EXPECT().ClearSession(ctx).Return(nil)

	_, err := svc.RestoreSession(ctx)
	require.ErrorIs(t, err, ErrSessionExpired)
}

func TestClientSessionService_RestoreSession_NothingCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockStore, _ := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	mockStore.EXPECT().LoadSession(ctx).Return(models.LocalSession{}, store.ErrLocalSessionNotFound)

	_, err := svc.RestoreSession(ctx)
	require.ErrorIs(t, err, store.ErrLocalSessionNotFound)
}

// ── SignOut ──────────────────────────────────────────────────────────────────

func TestClientSessionService_SignOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockStore, mockAdapter := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().SetToken("")
	mockStore.EXPECT().ClearSession(ctx).Return(nil)

	require.NoError(t, svc.SignOut(ctx))
}

func TestClientSessionService_SignOut_ClearError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockStore, mockAdapter := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().SetToken("")
	mockStore.EXPECT().ClearSession(ctx).Return(errors.New("locked"))

	require.Error(t, svc.SignOut(ctx))
}

// ── Passthrough operations ───────────────────────────────────────────────────

func TestClientSessionService_ForgotPasswordFlow_Delegates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockAdapter := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().ForgotPassword(ctx, "user@example.com").Return(nil)
	mockAdapter.EXPECT().ForgotPasswordSubmit(ctx, "user@example.com", "123456", "new-password").Return(nil)

	require.NoError(t, svc.ForgotPassword(ctx, "user@example.com"))
	require.NoError(t, svc.ForgotPasswordSubmit(ctx, "user@example.com", "123456", "new-password"))
}

func TestClientSessionService_EmailChangeFlow_Delegates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockAdapter := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().UpdateEmail(ctx, "next@example.com").Return(nil)
	mockAdapter.EXPECT().VerifyEmail(ctx, "123456").Return(nil)

	require.NoError(t, svc.UpdateEmail(ctx, "next@example.com"))
	require.NoError(t, svc.VerifyEmail(ctx, "123456"))
}
