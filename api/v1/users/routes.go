// api/v1/users/routes.go
package users

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the user profile routes
func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	userGroup := r.Group("/users")

	userGroup.GET("/me", h.GetMe)
}
