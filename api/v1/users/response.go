package users

import (
	"inkwell-api/internal/models"
)

// ProfileResponse wraps the authenticated user's profile
type ProfileResponse struct {
	Success bool        `json:"success"`
	Code    int16       `json:"code"`
	User    UserProfile `json:"user"`
}

// UserProfile is the public view of a user account
type UserProfile struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Verified  bool   `json:"verified"`
	CreatedAt int64  `json:"createdAt"`
	UpdatedAt int64  `json:"updatedAt"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Success bool   `json:"success"`
	Code    int16  `json:"code"`
	Message string `json:"message"`
}

// NewProfileResponse builds a profile response from a user model
func NewProfileResponse(u *models.User, code int16) ProfileResponse {
	return ProfileResponse{
		Success: true,
		Code:    code,
		User: UserProfile{
			ID:        u.ID,
			Name:      u.Name,
			Email:     u.Email,
			Role:      u.Role,
			Verified:  u.Verified,
			CreatedAt: u.CreatedAt,
			UpdatedAt: u.UpdatedAt,
		},
	}
}

// NewErrorResponse creates an error response
func NewErrorResponse(message string, code int16) ErrorResponse {
	return ErrorResponse{
		Success: false,
		Code:    code,
		Message: message,
	}
}
