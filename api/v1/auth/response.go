package auth

import (
	"strings"

	"inkwell-api/internal/models"

	"github.com/go-playground/validator/v10"
)

// BaseResponse contains fields common to all responses
type BaseResponse struct {
	Success bool  `json:"success"`
	Code    int16 `json:"code"`
}

// MessageResponse represents a generic success response
type MessageResponse struct {
	BaseResponse
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	BaseResponse
	Message string `json:"message"`
}

// UserPayload is the account as returned to clients. The password hash
// never appears here.
type UserPayload struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Verified  bool   `json:"verified"`
	CreatedAt int64  `json:"createdAt"`
	UpdatedAt int64  `json:"updatedAt"`
}

// LoginResponse represents the response from successful login
type LoginResponse struct {
	BaseResponse
	User UserPayload `json:"user"`
}

// NewUserPayload strips an account down to its client-safe fields
func NewUserPayload(u *models.User) UserPayload {
	return UserPayload{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Verified:  u.Verified,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// NewMessageResponse creates a new success response
func NewMessageResponse(message string, code int16) MessageResponse {
	return MessageResponse{
		BaseResponse: BaseResponse{Success: true, Code: code},
		Message:      message,
	}
}

// NewErrorResponse creates a new error response
func NewErrorResponse(message string, code int16) ErrorResponse {
	return ErrorResponse{
		BaseResponse: BaseResponse{Success: false, Code: code},
		Message:      message,
	}
}

// NewLoginResponse creates a new login response
func NewLoginResponse(u *models.User, code int16) LoginResponse {
	return LoginResponse{
		BaseResponse: BaseResponse{Success: true, Code: code},
		User:         NewUserPayload(u),
	}
}

// NewValidationError creates a new validation error response
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
