package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/notekeeper-app/notekeeper/internal/config"
	"github.com/notekeeper-app/notekeeper/internal/logger"
	"github.com/notekeeper-app/notekeeper/internal/mail"
	"github.com/notekeeper-app/notekeeper/internal/store"
	"github.com/notekeeper-app/notekeeper/internal/utils"
	"github.com/notekeeper-app/notekeeper/models"
)

const defaultCodeTTL = 15 * time.Minute

// authService is the concrete implementation of [AuthService]. It handles
// account registration, credential verification, JWT lifecycle, and the two
// emailed-code flows (password reset, email change). Passwords are stored as
// bcrypt hashes.
type authService struct {
	userRepository store.UserRepository
	codeRepository store.CodeRepository
	sender         mail.Sender

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT. Tokens
	// whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// codeTTL controls how long emailed verification codes stay valid.
	codeTTL time.Duration

	logger *logger.Logger
}

// NewAuthService constructs an [AuthService] wired to the given repositories
// and mail sender, with security parameters taken from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(users store.UserRepository, codes store.CodeRepository, sender mail.Sender, cfg config.App, logger *logger.Logger) AuthService {
	codeTTL := cfg.CodeTTL
	if codeTTL <= 0 {
		codeTTL = defaultCodeTTL
	}

	return &authService{
		userRepository: users,
		codeRepository: codes,
		sender:         sender,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		codeTTL:        codeTTL,
		logger:         logger,
	}
}

// SignUp creates a new account.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - [ErrInvalidDataProvided] if email or password is empty.
//   - A wrapped storage error if the repository call fails (e.g. email
//     already taken, see [store.ErrEmailAlreadyExists]).
func (a *authService) SignUp(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		log.Error().Str("email", email).Msg("invalid signup data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	created, err := a.userRepository.CreateUser(ctx, models.User{Email: email, PasswordHash: string(hash)})
	if err != nil {
		log.Err(err).Str("email", email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return created, nil
}

// SignIn authenticates an existing account.
//
// Returns the stored user record or:
//   - [ErrInvalidDataProvided] if email or password is empty.
//   - A wrapped storage error if the lookup fails (e.g. account not found,
//     see [store.ErrNoUserWasFound]).
//   - [ErrWrongPassword] if the password does not match the stored hash.
func (a *authService) SignIn(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		log.Error().Str("email", email).Msg("invalid signin data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	found, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte(password)); err != nil {
		log.Error().Int64("id", found.UserID).Str("email", found.Email).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return found, nil
}

// CurrentUser fetches the account identified by userID.
func (a *authService) CurrentUser(ctx context.Context, userID int64) (models.User, error) {
	found, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return found, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It verifies the signature and the issuer claim. Any validation failure
// (expired, wrong issuer, malformed) is normalised to
// [ErrTokenIsExpiredOrInvalid] so that callers do not need to inspect
// low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// ForgotPassword issues a password-reset code for email. When no account
// holds the address the method completes silently; the endpoint must respond
// identically either way.
func (a *authService) ForgotPassword(ctx context.Context, email string) error {
	log := logger.FromContext(ctx)

	if email == "" {
		return ErrInvalidDataProvided
	}

	found, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Info().Str("email", email).Msg("password reset requested for unknown email")
			return nil
		}
		return fmt.Errorf("user search by email failed: %w", err)
	}

	code, err := generateCode()
	if err != nil {
		return fmt.Errorf("code generation failed: %w", err)
	}

	err = a.codeRepository.SaveCode(ctx, models.VerificationCode{
		UserID:    found.UserID,
		Purpose:   models.PurposePasswordReset,
		Code:      code,
		ExpiresAt: time.Now().Add(a.codeTTL),
	})
	if err != nil {
		return fmt.Errorf("saving reset code failed: %w", err)
	}

	body := fmt.Sprintf("Your NoteKeeper password reset code is %s. It expires in %d minutes.", code, int(a.codeTTL.Minutes()))
	if err = a.sender.Send(ctx, found.Email, "NoteKeeper password reset", body); err != nil {
		return fmt.Errorf("sending reset code failed: %w", err)
	}

	return nil
}

// ForgotPasswordSubmit completes a password reset. Unknown emails, wrong
// codes, and expired codes all surface as [ErrInvalidCode] so the endpoint
// does not disclose which accounts exist.
func (a *authService) ForgotPasswordSubmit(ctx context.Context, email, code, newPassword string) error {
	log := logger.FromContext(ctx)

	if email == "" || code == "" || newPassword == "" {
		return ErrInvalidDataProvided
	}

	found, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return ErrInvalidCode
		}
		return fmt.Errorf("user search by email failed: %w", err)
	}

	stored, err := a.codeRepository.GetCode(ctx, found.UserID, models.PurposePasswordReset)
	if err != nil {
		if errors.Is(err, store.ErrCodeNotFound) {
			return ErrInvalidCode
		}
		return fmt.Errorf("reset code lookup failed: %w", err)
	}

	if stored.Code != code || stored.Expired(time.Now()) {
		log.Info().Int64("user_id", found.UserID).Msg("password reset attempted with wrong or expired code")
		return ErrInvalidCode
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("password hashing failed: %w", err)
	}

	if err = a.userRepository.UpdateUserPassword(ctx, found.UserID, string(hash)); err != nil {
		return fmt.Errorf("password update failed: %w", err)
	}

	if err = a.codeRepository.DeleteCode(ctx, found.UserID, models.PurposePasswordReset); err != nil {
		log.Err(err).Int64("user_id", found.UserID).Msg("failed to delete consumed reset code")
	}

	return nil
}

// UpdateEmail starts an email change for userID. The verification code is
// mailed to the new address; the stored email stays untouched until
// VerifyEmail succeeds.
func (a *authService) UpdateEmail(ctx context.Context, userID int64, newEmail string) error {
	if newEmail == "" {
		return ErrInvalidDataProvided
	}

	code, err := generateCode()
	if err != nil {
		return fmt.Errorf("code generation failed: %w", err)
	}

	err = a.codeRepository.SaveCode(ctx, models.VerificationCode{
		UserID:    userID,
		Purpose:   models.PurposeEmailChange,
		Code:      code,
		NewEmail:  newEmail,
		ExpiresAt: time.Now().Add(a.codeTTL),
	})
	if err != nil {
		return fmt.Errorf("saving email change code failed: %w", err)
	}

	body := fmt.Sprintf("Your NoteKeeper email verification code is %s. It expires in %d minutes.", code, int(a.codeTTL.Minutes()))
	if err = a.sender.Send(ctx, newEmail, "NoteKeeper email verification", body); err != nil {
		return fmt.Errorf("sending email change code failed: %w", err)
	}

	return nil
}

// VerifyEmail completes a pending email change: the address stored alongside
// the code becomes the account email and is marked verified.
func (a *authService) VerifyEmail(ctx context.Context, userID int64, code string) error {
	log := logger.FromContext(ctx)

	if code == "" {
		return ErrInvalidDataProvided
	}

	stored, err := a.codeRepository.GetCode(ctx, userID, models.PurposeEmailChange)
	if err != nil {
		if errors.Is(err, store.ErrCodeNotFound) {
			return ErrInvalidCode
		}
		return fmt.Errorf("email change code lookup failed: %w", err)
	}

	if stored.Code != code || stored.Expired(time.Now()) {
		log.Info().Int64("user_id", userID).Msg("email verification attempted with wrong or expired code")
		return ErrInvalidCode
	}

	if err = a.userRepository.UpdateUserEmail(ctx, userID, stored.NewEmail, true); err != nil {
		return fmt.Errorf("email update failed: %w", err)
	}

	if err = a.codeRepository.DeleteCode(ctx, userID, models.PurposeEmailChange); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("failed to delete consumed email change code")
	}

	return nil
}

// generateCode produces a uniformly random six digit code.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%06d", n.Int64()), nil
}
