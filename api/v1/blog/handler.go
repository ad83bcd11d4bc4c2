package blog

import (
	"errors"
	"net/http"

	"inkwell-api/internal/blog"
	"inkwell-api/internal/logger"
	"inkwell-api/internal/middleware"
	"inkwell-api/pkg/status"

	"github.com/gin-gonic/gin"
)

// Handler handles blog requests
type Handler struct {
	blogService *blog.Service
	logger      *logger.Logger
}

// NewHandler creates a new blog handler
func NewHandler(blogService *blog.Service, log *logger.Logger) *Handler {
	return &Handler{
		blogService: blogService,
		logger:      log,
	}
}

// HandleListBlogs returns published posts, newest first
func (h *Handler) HandleListBlogs(c *gin.Context) {
	var req ListBlogsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, NewValidationError(err, status.StatusValidationFailed))
		return
	}

	blogs, err := h.blogService.ListBlogs(c.Request.Context(), req.Limit, req.Offset)
	if err != nil {
		h.logger.SecureLog(err, "Failed to list blogs", "listBlogs")
		c.JSON(http.StatusInternalServerError, NewErrorResponse(
			"Something went wrong, please try again later",
			status.StatusInternalServerError,
		))
		return
	}

	c.JSON(http.StatusOK, NewBlogListResponse(blogs, status.StatusOK))
}

// HandleGetBlog returns a single post by id
func (h *Handler) HandleGetBlog(c *gin.Context) {
	blogID := c.Param("blogId")

	post, err := h.blogService.GetBlog(c.Request.Context(), blogID)
	if err != nil {
		switch {
		case errors.Is(err, blog.ErrBlogNotFound):
			c.JSON(http.StatusNotFound, NewErrorResponse(err.Error(), status.StatusNotFound))
		case errors.Is(err, blog.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, NewErrorResponse(err.Error(), status.StatusBadRequest))
		default:
			h.logger.SecureLog(err, "Failed to load blog", "getBlog")
			c.JSON(http.StatusInternalServerError, NewErrorResponse(
				"Something went wrong, please try again later",
				status.StatusInternalServerError,
			))
		}
		return
	}

	c.JSON(http.StatusOK, NewBlogResponse(post, status.StatusOK))
}

// HandleCreateBlog publishes a new post for the authenticated user
func (h *Handler) HandleCreateBlog(c *gin.Context) {
	var req CreateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, NewValidationError(err, status.StatusValidationFailed))
		return
	}

	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, NewErrorResponse("Unauthorized", status.StatusUnauthorized))
		return
	}

	post, err := h.blogService.CreateBlog(c.Request.Context(), userID, req.Title, req.Content)
	if err != nil {
		if errors.Is(err, blog.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, NewErrorResponse(err.Error(), status.StatusValidationFailed))
			return
		}
		h.logger.SecureLog(err, "Failed to create blog", "createBlog")
		c.JSON(http.StatusInternalServerError, NewErrorResponse(
			"Something went wrong, please try again later",
			status.StatusInternalServerError,
		))
		return
	}

	c.JSON(http.StatusCreated, NewBlogResponse(post, status.StatusCreated))
}

// HandleToggleLike flips the authenticated user's like on a post
func (h *Handler) HandleToggleLike(c *gin.Context) {
	blogID := c.Param("blogId")

	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, NewErrorResponse("Unauthorized", status.StatusUnauthorized))
		return
	}

	post, err := h.blogService.ToggleLike(c.Request.Context(), blogID, userID)
	if err != nil {
		switch {
		case errors.Is(err, blog.ErrBlogNotFound):
			c.JSON(http.StatusNotFound, NewErrorResponse(err.Error(), status.StatusNotFound))
		case errors.Is(err, blog.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, NewErrorResponse(err.Error(), status.StatusBadRequest))
		default:
			h.logger.SecureLog(err, "Failed to toggle like", "toggleLike")
			c.JSON(http.StatusInternalServerError, NewErrorResponse(
				"Something went wrong, please try again later",
				status.StatusInternalServerError,
			))
		}
		return
	}

	c.JSON(http.StatusOK, NewBlogResponse(post, status.StatusOK))
}
