package auth

// RegisterRequest represents the request for account registration
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest represents the request for credential login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// VerifyAccountRequest carries the verification OTP
type VerifyAccountRequest struct {
	Otp string `json:"otp" binding:"required,len=6"`
}

// SendResetOtpRequest identifies the account to send a reset OTP to
type SendResetOtpRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest carries the reset triple
type ResetPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Otp         string `json:"otp" binding:"required,len=6"`
	NewPassword string `json:"newPassword" binding:"required"`
}
