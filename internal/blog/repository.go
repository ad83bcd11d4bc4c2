package blog

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"inkwell-api/internal/models"
	"inkwell-api/pkg/db"
)

// Repository is the persistence boundary for blog posts
type Repository interface {
	Create(ctx context.Context, blog *models.Blog) error
	FindByID(ctx context.Context, id string) (*models.Blog, error)
	List(ctx context.Context, limit, offset int) ([]models.Blog, error)
	Save(ctx context.Context, blog *models.Blog) error
}

// NewRepository creates a new blog repository
func NewRepository(database *gorm.DB) Repository {
	return &repo{
		blogs: db.NewRepositoryWithDB[models.Blog](database),
	}
}

type repo struct {
	blogs db.Repository[models.Blog]
}

func (r *repo) Create(ctx context.Context, blog *models.Blog) error {
	return r.blogs.Create(ctx, blog)
}

func (r *repo) FindByID(ctx context.Context, id string) (*models.Blog, error) {
	blog, err := r.blogs.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBlogNotFound
		}
		return nil, err
	}
	return blog, nil
}

func (r *repo) List(ctx context.Context, limit, offset int) ([]models.Blog, error) {
	var blogs []models.Blog
	err := r.blogs.DB().WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&blogs).Error
	if err != nil {
		return nil, err
	}
	return blogs, nil
}

func (r *repo) Save(ctx context.Context, blog *models.Blog) error {
	return r.blogs.Update(ctx, blog)
}
