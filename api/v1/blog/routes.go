// api/v1/blog/routes.go
package blog

import (
	"github.com/gin-gonic/gin"
)

// RegisterPublicRoutes registers the read-only blog routes
func RegisterPublicRoutes(r *gin.RouterGroup, h *Handler) {
	blogGroup := r.Group("/blog")

	blogGroup.GET("/data", h.HandleListBlogs)
	blogGroup.GET("/:blogId", h.HandleGetBlog)
}

// RegisterProtectedRoutes registers the blog routes that require a session
func RegisterProtectedRoutes(r *gin.RouterGroup, h *Handler) {
	blogGroup := r.Group("/blog")

	blogGroup.POST("/create-blog", h.HandleCreateBlog)
	blogGroup.POST("/like/:blogId", h.HandleToggleLike)
}
