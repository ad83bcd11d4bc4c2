package blog

// CreateBlogRequest represents a blog creation request
type CreateBlogRequest struct {
	Title   string `json:"title" binding:"required,max=200"`
	Content string `json:"content" binding:"required"`
}

// ListBlogsRequest carries the optional pagination query parameters
type ListBlogsRequest struct {
	Limit  int `form:"limit" binding:"omitempty,min=1,max=100"`
	Offset int `form:"offset" binding:"omitempty,min=0"`
}
