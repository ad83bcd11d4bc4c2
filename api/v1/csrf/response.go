package csrf

import "inkwell-api/pkg/status"

type CsrfResponse struct {
	Success   bool   `json:"success"`
	Code      int16  `json:"code"`
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Code    int16  `json:"code"`
	Message string `json:"message"`
}

func NewResponse(token string, expiresAt int64) *CsrfResponse {
	return &CsrfResponse{
		Success:   true,
		Code:      status.StatusOK,
		Token:     token,
		ExpiresAt: expiresAt,
	}
}

func NewErrorResponse(message string, code int16) *ErrorResponse {
	return &ErrorResponse{
		Success: false,
		Code:    code,
		Message: message,
	}
}
