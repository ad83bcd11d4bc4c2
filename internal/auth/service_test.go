package auth

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"inkwell-api/internal/jwt"
	"inkwell-api/internal/logger"
	"inkwell-api/internal/models"
	"inkwell-api/internal/password"
	"inkwell-api/internal/ratelimit"
	"inkwell-api/internal/user"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- fakes ---

type fakeStore struct {
	byEmail map[string]*models.User
	byID    map[string]*models.User

	createErr error
	saveErr   error
	nextID    int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		byEmail: make(map[string]*models.User),
		byID:    make(map[string]*models.User),
	}
}

func (f *fakeStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	u, ok := f.byEmail[user.NormalizeEmail(email)]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeStore) FindByID(_ context.Context, id string) (*models.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeStore) Create(_ context.Context, u *models.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	u.Email = user.NormalizeEmail(u.Email)
	if _, exists := f.byEmail[u.Email]; exists {
		return user.ErrEmailAlreadyExists
	}
	if u.ID == "" {
		f.nextID++
		u.ID = "user-" + string(rune('a'+f.nextID))
	}
	f.byEmail[u.Email] = u
	f.byID[u.ID] = u
	return nil
}

func (f *fakeStore) Save(_ context.Context, u *models.User) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.byEmail[u.Email] = u
	f.byID[u.ID] = u
	return nil
}

type sentMail struct {
	to      string
	subject string
	body    string
}

type fakeMailer struct {
	sent    []sentMail
	sendErr error
}

func (f *fakeMailer) Send(_ context.Context, to, subject, body string) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}

type fakeLimiter struct {
	err   error
	calls int
}

func (f *fakeLimiter) Allow(_ context.Context, _, _ string) error {
	f.calls++
	return f.err
}

// --- helpers ---

func testLogger() *logger.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logger.New(l)
}

func newTestService(t *testing.T) (*Service, *fakeStore, *fakeMailer, *fakeLimiter) {
	t.Helper()

	tokens, err := jwt.NewService("test-secret", "api.test", time.Hour)
	require.NoError(t, err)

	store := newFakeStore()
	mailer := &fakeMailer{}
	limiter := &fakeLimiter{}

	svc := NewService(store, mailer, tokens, limiter, testLogger())
	return svc, store, mailer, limiter
}

func seedUser(store *fakeStore, email, plaintext string, verified bool) *models.User {
	hash, _ := password.Hash(plaintext)
	u := &models.User{
		ID:           "user-" + email,
		Name:         "Test User",
		Email:        user.NormalizeEmail(email),
		PasswordHash: hash,
		Verified:     verified,
	}
	store.byEmail[u.Email] = u
	store.byID[u.ID] = u
	return u
}

// --- register ---

func TestRegister_Success(t *testing.T) {
	svc, store, mailer, _ := newTestService(t)
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return base }

	err := svc.Register(context.Background(), "Ada", "Ada@Example.com", "long enough password")
	require.NoError(t, err)

	account, err := store.FindByEmail(context.Background(), "ada@example.com")
	require.NoError(t, err)
	assert.False(t, account.Verified)
	assert.Len(t, account.VerifyOtp, 6)
	require.NotNil(t, account.VerifyOtpExpiresAt)
	assert.Equal(t, base.Add(VerifyOtpExpiry), *account.VerifyOtpExpiresAt)

	// Password is stored hashed
	ok, err := password.Verify("long enough password", account.PasswordHash)
	require.NoError(t, err)
	assert.True(t, ok)

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "ada@example.com", mailer.sent[0].to)
	assert.Contains(t, mailer.sent[0].body, account.VerifyOtp)
}

func TestRegister_MissingFields(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	err := svc.Register(context.Background(), "", "a@b.com", "long enough password")
	assert.ErrorIs(t, err, ErrMissingFields)

	err = svc.Register(context.Background(), "Ada", "", "long enough password")
	assert.ErrorIs(t, err, ErrMissingFields)

	err = svc.Register(context.Background(), "Ada", "a@b.com", "")
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestRegister_ShortPassword(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	err := svc.Register(context.Background(), "Ada", "a@b.com", "short")
	assert.ErrorIs(t, err, ErrPasswordTooShort)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, store, _, _ := newTestService(t)
	seedUser(store, "taken@example.com", "long enough password", true)

	err := svc.Register(context.Background(), "Ada", "taken@example.com", "long enough password")
	assert.ErrorIs(t, err, ErrUserAlreadyExists)

	// Case differences do not bypass the check
	err = svc.Register(context.Background(), "Ada", "Taken@Example.COM", "long enough password")
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestRegister_MailFailure(t *testing.T) {
	svc, _, mailer, _ := newTestService(t)
	mailer.sendErr = errors.New("smtp down")

	err := svc.Register(context.Background(), "Ada", "a@b.com", "long enough password")
	assert.ErrorIs(t, err, ErrInternal)
}

// --- login ---

func TestLogin_Success(t *testing.T) {
	svc, store, _, _ := newTestService(t)
	seeded := seedUser(store, "ada@example.com", "long enough password", true)

	account, token, err := svc.Login(context.Background(), "ada@example.com", "long enough password")
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, account.ID)
	assert.NotEmpty(t, token)

	// Token is verifiable and carries the account id
	userID, err := svc.tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, userID)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	_, _, err := svc.Login(context.Background(), "nobody@example.com", "whatever pass")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, store, _, _ := newTestService(t)
	seedUser(store, "ada@example.com", "long enough password", true)

	_, _, err := svc.Login(context.Background(), "ada@example.com", "wrong password!")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_Unverified(t *testing.T) {
	svc, store, _, _ := newTestService(t)
	seedUser(store, "ada@example.com", "long enough password", false)

	_, _, err := svc.Login(context.Background(), "ada@example.com", "long enough password")
	assert.ErrorIs(t, err, ErrAccountNotVerified)
}

// --- verification flow ---

func TestSendVerifyOtp_AlreadyVerified(t *testing.T) {
	svc, store, _, _ := newTestService(t)
	seeded := seedUser(store, "ada@example.com", "long enough password", true)

	err := svc.SendVerifyOtp(context.Background(), seeded.ID)
	assert.ErrorIs(t, err, ErrAlreadyVerified)
}

func TestSendVerifyOtp_RateLimited(t *testing.T) {
	svc, store, _, limiter := newTestService(t)
	seeded := seedUser(store, "ada@example.com", "long enough password", false)
	limiter.err = ratelimit.ErrLimited

	err := svc.SendVerifyOtp(context.Background(), seeded.ID)
	assert.ErrorIs(t, err, ErrRateLimited)
}

func TestSendVerifyOtp_ReplacesPrior(t *testing.T) {
	svc, store, mailer, _ := newTestService(t)
	seeded := seedUser(store, "ada@example.com", "long enough password", false)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return base }

	require.NoError(t, svc.SendVerifyOtp(context.Background(), seeded.ID))
	first := seeded.VerifyOtp

	require.NoError(t, svc.SendVerifyOtp(context.Background(), seeded.ID))
	second := seeded.VerifyOtp

	require.Len(t, first, 6)
	require.Len(t, second, 6)
	assert.Equal(t, base.Add(VerifyOtpExpiry), *seeded.VerifyOtpExpiresAt)
	assert.Len(t, mailer.sent, 2)

	// Only the latest code is accepted
	if first != second {
		assert.ErrorIs(t, svc.VerifyAccount(context.Background(), seeded.ID, first), ErrInvalidOtp)
	}
	assert.NoError(t, svc.VerifyAccount(context.Background(), seeded.ID, second))
}

func TestVerifyAccount_Success(t *testing.T) {
	svc, store, _, _ := newTestService(t)
	seeded := seedUser(store, "ada@example.com", "long enough password", false)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return base }
	require.NoError(t, svc.SendVerifyOtp(context.Background(), seeded.ID))

	err := svc.VerifyAccount(context.Background(), seeded.ID, seeded.VerifyOtp)
	require.NoError(t, err)
	assert.True(t, seeded.Verified)
	assert.Empty(t, seeded.VerifyOtp)
	assert.Nil(t, seeded.VerifyOtpExpiresAt)
}

func TestVerifyAccount_WrongCode(t *testing.T) {
	svc, store, _, _ := newTestService(t)
	seeded := seedUser(store, "ada@example.com", "long enough password", false)
	require.NoError(t, svc.SendVerifyOtp(context.Background(), seeded.ID))

	wrong := "000000"
	if seeded.VerifyOtp == wrong {
		wrong = "000001"
	}

	err := svc.VerifyAccount(context.Background(), seeded.ID, wrong)
	assert.ErrorIs(t, err, ErrInvalidOtp)
	assert.False(t, seeded.Verified)
}

func TestVerifyAccount_Expired(t *testing.T) {
	svc, store, _, _ := newTestService(t)
	seeded := seedUser(store, "ada@example.com", "long enough password", false)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return base }
	require.NoError(t, svc.SendVerifyOtp(context.Background(), seeded.ID))

	// 61 minutes later the one-hour window has closed
	svc.now = func() time.Time { return base.Add(61 * time.Minute) }

	err := svc.VerifyAccount(context.Background(), seeded.ID, seeded.VerifyOtp)
	assert.ErrorIs(t, err, ErrOtpExpired)
	assert.False(t, seeded.Verified)
}

func TestVerifyAccount_Replay(t *testing.T) {
	svc, store, _, _ := newTestService(t)
	seeded := seedUser(store, "ada@example.com", "long enough password", false)
	require.NoError(t, svc.SendVerifyOtp(context.Background(), seeded.ID))

	code := seeded.VerifyOtp
	require.NoError(t, svc.VerifyAccount(context.Background(), seeded.ID, code))

	// The code was consumed on success
	err := svc.VerifyAccount(context.Background(), seeded.ID, code)
	assert.ErrorIs(t, err, ErrInvalidOtp)
}

func TestVerifyAccount_EmptyCode(t *testing.T) {
	svc, store, _, _ := newTestService(t)
	seeded := seedUser(store, "ada@example.com", "long enough password", false)

	err := svc.VerifyAccount(context.Background(), seeded.ID, "")
	assert.ErrorIs(t, err, ErrInvalidOtp)
}

func TestVerifyAccount_UnknownUser(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	err := svc.VerifyAccount(context.Background(), "user-missing", "123456")
	assert.ErrorIs(t, err, ErrInvalidOtp)
}

// --- reset flow ---

func TestSendResetOtp_Success(t *testing.T) {
	svc, store, mailer, _ := newTestService(t)
	seeded := seedUser(store, "ada@example.com", "long enough password", true)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return base }

	err := svc.SendResetOtp(context.Background(), "ada@example.com")
	require.NoError(t, err)
	assert.Len(t, seeded.ResetOtp, 6)
	require.NotNil(t, seeded.ResetOtpExpiresAt)
	assert.Equal(t, base.Add(ResetOtpExpiry), *seeded.ResetOtpExpiresAt)

	require.Len(t, mailer.sent, 1)
	assert.Contains(t, mailer.sent[0].body, seeded.ResetOtp)
}

func TestSendResetOtp_UnknownEmail(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	err := svc.SendResetOtp(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSendResetOtp_RateLimited(t *testing.T) {
	svc, store, _, limiter := newTestService(t)
	seedUser(store, "ada@example.com", "long enough password", true)
	limiter.err = ratelimit.ErrLimited

	err := svc.SendResetOtp(context.Background(), "ada@example.com")
	assert.ErrorIs(t, err, ErrRateLimited)
}

func TestResetPassword_Success(t *testing.T) {
	svc, store, _, _ := newTestService(t)
	seeded := seedUser(store, "ada@example.com", "long enough password", true)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return base }
	require.NoError(t, svc.SendResetOtp(context.Background(), "ada@example.com"))

	err := svc.ResetPassword(context.Background(), "ada@example.com", seeded.ResetOtp, "brand new password")
	require.NoError(t, err)

	ok, err := password.Verify("brand new password", seeded.PasswordHash)
	require.NoError(t, err)
	assert.True(t, ok)

	assert.Empty(t, seeded.ResetOtp)
	assert.Nil(t, seeded.ResetOtpExpiresAt)
}

func TestResetPassword_WrongCode(t *testing.T) {
	svc, store, _, _ := newTestService(t)
	seeded := seedUser(store, "ada@example.com", "long enough password", true)
	require.NoError(t, svc.SendResetOtp(context.Background(), "ada@example.com"))

	wrong := "000000"
	if seeded.ResetOtp == wrong {
		wrong = "000001"
	}

	err := svc.ResetPassword(context.Background(), "ada@example.com", wrong, "brand new password")
	assert.ErrorIs(t, err, ErrInvalidOrExpiredOtp)
}

func TestResetPassword_Expired(t *testing.T) {
	svc, store, _, _ := newTestService(t)
	seeded := seedUser(store, "ada@example.com", "long enough password", true)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return base }
	require.NoError(t, svc.SendResetOtp(context.Background(), "ada@example.com"))

	// 16 minutes later the 15-minute window has closed
	svc.now = func() time.Time { return base.Add(16 * time.Minute) }

	err := svc.ResetPassword(context.Background(), "ada@example.com", seeded.ResetOtp, "brand new password")
	assert.ErrorIs(t, err, ErrInvalidOrExpiredOtp)
}

func TestResetPassword_UnknownEmail(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	// Same error as a wrong code, so the response does not reveal
	// whether the account exists
	err := svc.ResetPassword(context.Background(), "nobody@example.com", "123456", "brand new password")
	assert.ErrorIs(t, err, ErrInvalidOrExpiredOtp)
}

func TestResetPassword_Replay(t *testing.T) {
	svc, store, _, _ := newTestService(t)
	seeded := seedUser(store, "ada@example.com", "long enough password", true)
	require.NoError(t, svc.SendResetOtp(context.Background(), "ada@example.com"))

	code := seeded.ResetOtp
	require.NoError(t, svc.ResetPassword(context.Background(), "ada@example.com", code, "brand new password"))

	err := svc.ResetPassword(context.Background(), "ada@example.com", code, "another new password")
	assert.ErrorIs(t, err, ErrInvalidOrExpiredOtp)
}

func TestResetPassword_ShortPassword(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	err := svc.ResetPassword(context.Background(), "ada@example.com", "123456", "short")
	assert.ErrorIs(t, err, ErrPasswordTooShort)
}

// --- account lookup ---

func TestGetAccount(t *testing.T) {
	svc, store, _, _ := newTestService(t)
	seeded := seedUser(store, "ada@example.com", "long enough password", true)

	account, err := svc.GetAccount(context.Background(), seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, seeded.Email, account.Email)

	_, err = svc.GetAccount(context.Background(), "user-missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

// --- limiter degradation ---

func TestSendVerifyOtp_LimiterOutageIgnored(t *testing.T) {
	svc, store, mailer, limiter := newTestService(t)
	seeded := seedUser(store, "ada@example.com", "long enough password", false)
	limiter.err = errors.New("redis: connection refused")

	// Infrastructure failures in the limiter do not block the flow
	err := svc.SendVerifyOtp(context.Background(), seeded.ID)
	require.NoError(t, err)
	assert.Len(t, mailer.sent, 1)
}
