package users

import (
	"errors"
	"net/http"

	"inkwell-api/internal/auth"
	"inkwell-api/internal/logger"
	"inkwell-api/internal/middleware"
	"inkwell-api/pkg/status"

	"github.com/gin-gonic/gin"
)

// Handler handles user profile requests
type Handler struct {
	authService *auth.Service
	logger      *logger.Logger
}

// NewHandler creates a new users handler
func NewHandler(authService *auth.Service, log *logger.Logger) *Handler {
	return &Handler{
		authService: authService,
		logger:      log,
	}
}

// GetMe returns the authenticated user's profile
func (h *Handler) GetMe(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, NewErrorResponse("Unauthorized", status.StatusUnauthorized))
		return
	}

	account, err := h.authService.GetAccount(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, NewErrorResponse(err.Error(), status.StatusNotFound))
			return
		}
		h.logger.SecureLog(err, "Failed to load user profile", "getMe")
		c.JSON(http.StatusInternalServerError, NewErrorResponse(
			auth.ErrInternal.Error(),
			status.StatusInternalServerError,
		))
		return
	}

	c.JSON(http.StatusOK, NewProfileResponse(account, status.StatusOK))
}
