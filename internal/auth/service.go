package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"inkwell-api/internal/jwt"
	"inkwell-api/internal/logger"
	"inkwell-api/internal/mail"
	"inkwell-api/internal/models"
	"inkwell-api/internal/otp"
	"inkwell-api/internal/password"
	"inkwell-api/internal/ratelimit"
	"inkwell-api/internal/user"
)

// OTP validity windows
const (
	VerifyOtpExpiry = time.Hour
	ResetOtpExpiry  = 15 * time.Minute
)

// Rate-limit purposes; part of the limiter key
const (
	purposeVerify = "verify"
	purposeReset  = "reset"
)

// Mail content
const (
	verifySubject = "Verify your Inkwell account"
	resetSubject  = "Inkwell password reset OTP"
)

// Service orchestrates account registration, login and the OTP-gated
// verification and reset flows
type Service struct {
	store   user.Repository
	mailer  mail.Mailer
	tokens  *jwt.Service
	limiter ratelimit.Limiter
	logger  *logger.Logger

	// injectable clock for expiry checks
	now func() time.Time
}

// NewService creates a new auth service
func NewService(
	store user.Repository,
	mailer mail.Mailer,
	tokens *jwt.Service,
	limiter ratelimit.Limiter,
	logger *logger.Logger,
) *Service {
	return &Service{
		store:   store,
		mailer:  mailer,
		tokens:  tokens,
		limiter: limiter,
		logger:  logger,
		now:     time.Now,
	}
}

// Register creates an unverified account and dispatches a verification OTP.
// No session is issued; the user must verify before login succeeds.
func (s *Service) Register(ctx context.Context, name, email, plaintext string) error {
	if name == "" || email == "" || plaintext == "" {
		return ErrMissingFields
	}
	if len(plaintext) < password.MinLength {
		return ErrPasswordTooShort
	}

	email = user.NormalizeEmail(email)

	_, err := s.store.FindByEmail(ctx, email)
	if err == nil {
		return ErrUserAlreadyExists
	}
	if !errors.Is(err, user.ErrUserNotFound) {
		return s.internal(err, "register: email lookup failed")
	}

	hash, err := password.Hash(plaintext)
	if err != nil {
		return s.internal(err, "register: password hashing failed")
	}

	code, err := otp.Generate()
	if err != nil {
		return s.internal(err, "register: otp generation failed")
	}

	// The OTP is written with the account so creation and OTP issuance
	// commit together
	expiresAt := s.now().Add(VerifyOtpExpiry)
	account := &models.User{
		Name:               name,
		Email:              email,
		PasswordHash:       hash,
		Verified:           false,
		VerifyOtp:          code,
		VerifyOtpExpiresAt: &expiresAt,
	}

	if err := s.store.Create(ctx, account); err != nil {
		if errors.Is(err, user.ErrEmailAlreadyExists) {
			return ErrUserAlreadyExists
		}
		return s.internal(err, "register: account creation failed")
	}

	s.recordSend(ctx, email, purposeVerify)

	if err := s.mailer.Send(ctx, email, verifySubject, verifyBody(code)); err != nil {
		return s.internal(err, "register: verification email failed")
	}

	return nil
}

// Login checks credentials and issues a session token for the account.
// Unverified accounts cannot log in.
func (s *Service) Login(ctx context.Context, email, plaintext string) (*models.User, string, error) {
	account, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, "", ErrUserNotFound
		}
		return nil, "", s.internal(err, "login: email lookup failed")
	}

	ok, err := password.Verify(plaintext, account.PasswordHash)
	if err != nil {
		return nil, "", s.internal(err, "login: password verification failed")
	}
	if !ok {
		return nil, "", ErrInvalidCredentials
	}

	if !account.Verified {
		return nil, "", ErrAccountNotVerified
	}

	token, err := s.tokens.Issue(account.ID)
	if err != nil {
		return nil, "", s.internal(err, "login: token issuance failed")
	}

	return account, token, nil
}

// SendVerifyOtp issues a fresh verification OTP for an authenticated,
// still-unverified account, replacing any prior one
func (s *Service) SendVerifyOtp(ctx context.Context, userID string) error {
	account, err := s.store.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return s.internal(err, "sendVerifyOtp: user lookup failed")
	}

	if account.Verified {
		return ErrAlreadyVerified
	}

	if err := s.allowSend(ctx, account.Email, purposeVerify); err != nil {
		return err
	}

	code, err := otp.Generate()
	if err != nil {
		return s.internal(err, "sendVerifyOtp: otp generation failed")
	}

	expiresAt := s.now().Add(VerifyOtpExpiry)
	account.VerifyOtp = code
	account.VerifyOtpExpiresAt = &expiresAt

	if err := s.store.Save(ctx, account); err != nil {
		return s.internal(err, "sendVerifyOtp: save failed")
	}

	if err := s.mailer.Send(ctx, account.Email, verifySubject, verifyBody(code)); err != nil {
		return s.internal(err, "sendVerifyOtp: email failed")
	}

	return nil
}

// VerifyAccount consumes a verification OTP and marks the account
// verified. The OTP is one-shot; success clears it so a replay fails.
func (s *Service) VerifyAccount(ctx context.Context, userID, code string) error {
	account, err := s.store.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return ErrInvalidOtp
		}
		return s.internal(err, "verifyAccount: user lookup failed")
	}

	if code == "" || !account.HasPendingVerifyOtp() || account.VerifyOtp != code {
		return ErrInvalidOtp
	}

	if s.now().After(*account.VerifyOtpExpiresAt) {
		return ErrOtpExpired
	}

	account.Verified = true
	account.ClearVerifyOtp()

	if err := s.store.Save(ctx, account); err != nil {
		return s.internal(err, "verifyAccount: save failed")
	}

	return nil
}

// SendResetOtp issues a password-reset OTP for the account matching the
// email. Deliberately unauthenticated: this is the recovery path.
func (s *Service) SendResetOtp(ctx context.Context, email string) error {
	account, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return s.internal(err, "sendResetOtp: email lookup failed")
	}

	if err := s.allowSend(ctx, account.Email, purposeReset); err != nil {
		return err
	}

	code, err := otp.Generate()
	if err != nil {
		return s.internal(err, "sendResetOtp: otp generation failed")
	}

	expiresAt := s.now().Add(ResetOtpExpiry)
	account.ResetOtp = code
	account.ResetOtpExpiresAt = &expiresAt

	if err := s.store.Save(ctx, account); err != nil {
		return s.internal(err, "sendResetOtp: save failed")
	}

	if err := s.mailer.Send(ctx, account.Email, resetSubject, resetBody(code)); err != nil {
		return s.internal(err, "sendResetOtp: email failed")
	}

	return nil
}

// ResetPassword replaces the password hash when the (email, otp) pair
// matches a live pending reset. Missing account, wrong OTP and expired OTP
// all collapse into one error so nothing leaks about which check failed.
func (s *Service) ResetPassword(ctx context.Context, email, code, newPlaintext string) error {
	if email == "" || code == "" || newPlaintext == "" {
		return ErrMissingFields
	}
	if len(newPlaintext) < password.MinLength {
		return ErrPasswordTooShort
	}

	account, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return ErrInvalidOrExpiredOtp
		}
		return s.internal(err, "resetPassword: email lookup failed")
	}

	if !account.HasPendingResetOtp() || account.ResetOtp != code ||
		s.now().After(*account.ResetOtpExpiresAt) {
		return ErrInvalidOrExpiredOtp
	}

	hash, err := password.Hash(newPlaintext)
	if err != nil {
		return s.internal(err, "resetPassword: password hashing failed")
	}

	account.PasswordHash = hash
	account.ClearResetOtp()

	if err := s.store.Save(ctx, account); err != nil {
		return s.internal(err, "resetPassword: save failed")
	}

	return nil
}

// GetAccount returns the account for an authenticated id
func (s *Service) GetAccount(ctx context.Context, userID string) (*models.User, error) {
	account, err := s.store.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, s.internal(err, "getAccount: user lookup failed")
	}
	return account, nil
}

// allowSend consults the dispatch limiter. Limiter infrastructure failures
// are logged and ignored so a Redis outage does not block OTP flows.
func (s *Service) allowSend(ctx context.Context, email, purpose string) error {
	if s.limiter == nil {
		return nil
	}
	err := s.limiter.Allow(ctx, email, purpose)
	if err == nil {
		return nil
	}
	if errors.Is(err, ratelimit.ErrLimited) {
		return ErrRateLimited
	}
	s.logger.SecureLog(err, "OTP rate limit check failed", purpose)
	return nil
}

// recordSend counts a send against the limiter without gating on the
// result; used on registration where the account was just created
func (s *Service) recordSend(ctx context.Context, email, purpose string) {
	if s.limiter == nil {
		return
	}
	if err := s.limiter.Allow(ctx, email, purpose); err != nil && !errors.Is(err, ratelimit.ErrLimited) {
		s.logger.SecureLog(err, "OTP rate limit tracking failed", purpose)
	}
}

// internal logs the collaborator failure and returns the generic error
func (s *Service) internal(err error, message string) error {
	s.logger.SecureLog(err, message, "auth")
	return ErrInternal
}

func verifyBody(code string) string {
	return fmt.Sprintf("Your verification OTP is %s. It expires in 1 hour.", code)
}

func resetBody(code string) string {
	return fmt.Sprintf("Your password reset OTP is %s. It expires in 15 minutes.", code)
}
