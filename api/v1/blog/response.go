package blog

import (
	"strings"

	"inkwell-api/internal/models"

	"github.com/go-playground/validator/v10"
)

// BaseResponse is the common response envelope
type BaseResponse struct {
	Success bool  `json:"success"`
	Code    int16 `json:"code"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	BaseResponse
	Message string `json:"message"`
}

// BlogPayload is the public view of a blog post
type BlogPayload struct {
	ID        string   `json:"id"`
	AuthorID  string   `json:"authorId"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	LikedBy   []string `json:"likedBy"`
	CreatedAt int64    `json:"createdAt"`
	UpdatedAt int64    `json:"updatedAt"`
}

// BlogResponse wraps a single post
type BlogResponse struct {
	BaseResponse
	Blog BlogPayload `json:"blog"`
}

// BlogListResponse wraps a page of posts
type BlogListResponse struct {
	BaseResponse
	Blogs []BlogPayload `json:"blogs"`
}

// NewBlogPayload builds a payload from a blog model
func NewBlogPayload(b *models.Blog) BlogPayload {
	likedBy := b.LikedBy
	if likedBy == nil {
		likedBy = []string{}
	}
	return BlogPayload{
		ID:        b.ID,
		AuthorID:  b.AuthorID,
		Title:     b.Title,
		Content:   b.Content,
		LikedBy:   likedBy,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// NewBlogResponse creates a single-post response
func NewBlogResponse(b *models.Blog, code int16) BlogResponse {
	return BlogResponse{
		BaseResponse: BaseResponse{Success: true, Code: code},
		Blog:         NewBlogPayload(b),
	}
}

// NewBlogListResponse creates a list response
func NewBlogListResponse(blogs []models.Blog, code int16) BlogListResponse {
	payloads := make([]BlogPayload, 0, len(blogs))
	for i := range blogs {
		payloads = append(payloads, NewBlogPayload(&blogs[i]))
	}
	return BlogListResponse{
		BaseResponse: BaseResponse{Success: true, Code: code},
		Blogs:        payloads,
	}
}

// NewErrorResponse creates an error response
func NewErrorResponse(message string, code int16) ErrorResponse {
	return ErrorResponse{
		BaseResponse: BaseResponse{Success: false, Code: code},
		Message:      message,
	}
}

// NewValidationError creates a validation error response
func NewValidationError(err error, code int16) ErrorResponse {
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		full := errs[0].Error()
		parts := strings.SplitN(full, "Error:", 2)
		if len(parts) == 2 {
			return NewErrorResponse(strings.TrimSpace(parts[1]), code)
		}
		return NewErrorResponse(full, code)
	}
	return NewErrorResponse("Invalid request format", code)
}
