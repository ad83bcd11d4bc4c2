// api/v1/auth/routes.go
package auth

import (
	"github.com/gin-gonic/gin"
)

func RegisterPublicRoutes(r *gin.RouterGroup, h *Handler) {
	authGroup := r.Group("/auth")

	// Public routes - no authentication required
	authGroup.POST("/register", h.HandleRegister)
	authGroup.POST("/login", h.HandleLogin)
	authGroup.POST("/logout", h.HandleLogout)
	authGroup.POST("/send-reset-otp", h.HandleSendResetOtp)
	authGroup.POST("/reset-password", h.HandleResetPassword)
}

// RegisterProtectedRoutes registers the session-gated authentication routes
func RegisterProtectedRoutes(r *gin.RouterGroup, h *Handler) {
	authGroup := r.Group("")

	// Private routes - authentication required
	authGroup.POST("/send-verification-otp", h.HandleSendVerifyOtp)
	authGroup.POST("/verify-account", h.HandleVerifyAccount)
	authGroup.GET("/is-authenticated", h.HandleIsAuthenticated)
}
