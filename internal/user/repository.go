package user

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"inkwell-api/internal/models"
	"inkwell-api/pkg/db"
)

// Repository is the persistence boundary for account records. Save runs
// under a FOR UPDATE row lock so an operation's OTP and verification
// changes commit together.
type Repository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Save(ctx context.Context, user *models.User) error
}

// NewRepository creates a new user repository
func NewRepository(database *gorm.DB) Repository {
	return &repo{
		users: db.NewRepositoryWithDB[models.User](database),
	}
}

// repo is the concrete implementation of Repository
type repo struct {
	users db.Repository[models.User]
}

// NormalizeEmail lowercases and trims an email address. All storage and
// lookups go through this, making the unique email index case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// FindByEmail finds a user by email
func (r *repo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := r.users.FindOneWhere(ctx, "email = ?", NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// FindByID finds a user by ID
func (r *repo) FindByID(ctx context.Context, id string) (*models.User, error) {
	user, err := r.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// Create persists a new user
func (r *repo) Create(ctx context.Context, user *models.User) error {
	user.Email = NormalizeEmail(user.Email)

	err := r.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || isUniqueViolation(err) {
			return ErrEmailAlreadyExists
		}
		return err
	}
	return nil
}

// Save persists changes to an existing user
func (r *repo) Save(ctx context.Context, user *models.User) error {
	return r.users.Update(ctx, user)
}

// isUniqueViolation matches the postgres unique-constraint error that gorm
// surfaces when the driver does not translate it
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "duplicate key value")
}
