package csrf

import (
	"errors"
	"net/http"
	"time"

	"inkwell-api/internal/logger"
	"inkwell-api/pkg/status"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/csrf"
)

// Handler handles HTTP requests for CSRF tokens
type Handler struct {
	logger *logger.Logger
}

// NewHandler creates a new CSRF handler
func NewHandler(log *logger.Logger) *Handler {
	return &Handler{
		logger: log,
	}
}

// HandleCSRFToken generates and returns a CSRF token
func (h *Handler) HandleCSRFToken(c *gin.Context) {
	token := csrf.Token(c.Request)
	if token == "" {
		h.logger.SecureLog(errors.New("returned empty token"), "Failed to generate CSRF token", "/csrf")
		c.JSON(http.StatusInternalServerError, NewErrorResponse(
			"Something went wrong, please try again later",
			status.StatusInternalServerError,
		))
		return
	}
	expiresAt := time.Now().Add(time.Hour).Unix()
	c.JSON(http.StatusOK, NewResponse(token, expiresAt))
}
