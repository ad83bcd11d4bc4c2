package blog

import (
	"context"
	"slices"

	"inkwell-api/internal/logger"
	"inkwell-api/internal/models"
)

const defaultPageSize = 20
const maxPageSize = 100

// Service handles blog operations
type Service struct {
	repo   Repository
	logger *logger.Logger
}

// NewService creates a new blog service
func NewService(repo Repository, logger *logger.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// CreateBlog publishes a new post for the given author
func (s *Service) CreateBlog(ctx context.Context, authorID, title, content string) (*models.Blog, error) {
	if authorID == "" || title == "" || content == "" {
		return nil, ErrInvalidInput
	}

	blog := &models.Blog{
		AuthorID: authorID,
		Title:    title,
		Content:  content,
	}
	if err := s.repo.Create(ctx, blog); err != nil {
		return nil, err
	}
	return blog, nil
}

// GetBlog returns a single post by id
func (s *Service) GetBlog(ctx context.Context, id string) (*models.Blog, error) {
	if id == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.FindByID(ctx, id)
}

// ListBlogs returns posts newest-first
func (s *Service) ListBlogs(ctx context.Context, limit, offset int) ([]models.Blog, error) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.List(ctx, limit, offset)
}

// ToggleLike adds or removes the user's like on a post and returns the
// updated post
func (s *Service) ToggleLike(ctx context.Context, blogID, userID string) (*models.Blog, error) {
	if blogID == "" || userID == "" {
		return nil, ErrInvalidInput
	}

	blog, err := s.repo.FindByID(ctx, blogID)
	if err != nil {
		return nil, err
	}

	if i := slices.Index(blog.LikedBy, userID); i >= 0 {
		blog.LikedBy = slices.Delete(blog.LikedBy, i, i+1)
	} else {
		blog.LikedBy = append(blog.LikedBy, userID)
	}

	if err := s.repo.Save(ctx, blog); err != nil {
		return nil, err
	}
	return blog, nil
}
