package service

import (
	"context"
	"fmt"
	"time"

	"github.com/notekeeper-app/notekeeper/internal/adapter"
	"github.com/notekeeper-app/notekeeper/internal/logger"
	"github.com/notekeeper-app/notekeeper/internal/store"
	"github.com/notekeeper-app/notekeeper/internal/utils"
	"github.com/notekeeper-app/notekeeper/models"
)

// clientSessionService implements [ClientSessionService] on top of the
// server adapter and the local SQLite session cache.
type clientSessionService struct {
	sessionStore store.SessionStore
	adapter      adapter.ServerAdapter
	logger       *logger.Logger
}

// NewClientSessionService constructs a [ClientSessionService].
func NewClientSessionService(sessionStore store.SessionStore, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientSessionService {
	return &clientSessionService{
		sessionStore: sessionStore,
		adapter:      serverAdapter,
		logger:       logger,
	}
}

// SignUp registers the account on the server. The adapter stores the bearer
// token internally; the session is cached locally so later runs can restore
// it.
func (s *clientSessionService) SignUp(ctx context.Context, email, password string) (models.User, error) {
	user, err := s.adapter.SignUp(ctx, email, password)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrSignUpOnServer, err)
	}

	s.cacheSession(ctx, user.UserID)
	return user, nil
}

// SignIn authenticates against the server and caches the session locally.
func (s *clientSessionService) SignIn(ctx context.Context, email, password string) (models.User, error) {
	user, err := s.adapter.SignIn(ctx, email, password)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrSignInOnServer, err)
	}

	s.cacheSession(ctx, user.UserID)
	return user, nil
}

// cacheSession persists the adapter token for the next run. A cache failure
// only costs the user a future sign-in prompt, so it is logged and dropped.
func (s *clientSessionService) cacheSession(ctx context.Context, userID int64) {
	if err := s.sessionStore.SaveSession(ctx, userID, s.adapter.Token()); err != nil {
		s.logger.Err(err).Int64("user_id", userID).Msg("failed to cache session locally")
	}
}

// RestoreSession loads the cached session and installs its token on the
// adapter. Expiry is checked locally against the token's "exp" claim; no
// network call is made. An expired or unreadable token clears the cache and
// returns [ErrSessionExpired].
func (s *clientSessionService) RestoreSession(ctx context.Context) (models.LocalSession, error) {
	session, err := s.sessionStore.LoadSession(ctx)
	if err != nil {
		return models.LocalSession{}, err
	}

	expiry, err := utils.ParseTokenExpiry(session.Token)
	if err != nil || time.Now().After(expiry) {
		s.logger.Info().Int64("user_id", session.UserID).Msg("cached session expired, clearing")
		if clearErr := s.sessionStore.ClearSession(ctx); clearErr != nil {
			s.logger.Err(clearErr).Msg("failed to clear expired session")
		}
		return models.LocalSession{}, ErrSessionExpired
	}

	s.adapter.SetToken(session.Token)
	return session, nil
}

// SignOut clears the cached session and drops the adapter token.
func (s *clientSessionService) SignOut(ctx context.Context) error {
	s.adapter.SetToken("")

	if err := s.sessionStore.ClearSession(ctx); err != nil {
		return fmt.Errorf("clearing local session failed: %w", err)
	}

	return nil
}

// CurrentUser fetches the authenticated account from the server.
func (s *clientSessionService) CurrentUser(ctx context.Context) (models.User, error) {
	return s.adapter.CurrentUser(ctx)
}

// ForgotPassword asks the server to mail a password-reset code.
func (s *clientSessionService) ForgotPassword(ctx context.Context, email string) error {
	return s.adapter.ForgotPassword(ctx, email)
}

// ForgotPasswordSubmit completes a password reset with the mailed code.
func (s *clientSessionService) ForgotPasswordSubmit(ctx context.Context, email, code, newPassword string) error {
	return s.adapter.ForgotPasswordSubmit(ctx, email, code, newPassword)
}

// UpdateEmail starts an email change for the authenticated user.
func (s *clientSessionService) UpdateEmail(ctx context.Context, newEmail string) error {
	return s.adapter.UpdateEmail(ctx, newEmail)
}

// VerifyEmail confirms a pending email change with the mailed code.
func (s *clientSessionService) VerifyEmail(ctx context.Context, code string) error {
	return s.adapter.VerifyEmail(ctx, code)
}
