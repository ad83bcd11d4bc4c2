package status

// Status codes for API responses
// 1000-1999: Success codes
// 2000-2999: Challenge/Verification codes
// 4000-4999: Client error codes
// 5000-5999: Server error codes

const (
	// Success codes (1000-1999)
	StatusOK              int16 = 1000
	StatusCreated         int16 = 1001
	StatusLoginSuccess    int16 = 1010
	StatusSignupSuccess   int16 = 1011
	StatusLogoutSuccess   int16 = 1013
	StatusPasswordChanged int16 = 1014
	StatusEmailVerified   int16 = 1015

	// Challenge codes (2000-2999)
	StatusVerificationOtpSent int16 = 2002
	StatusResetOtpSent        int16 = 2003

	// Client error codes (4000-4999)
	StatusBadRequest          int16 = 4000
	StatusUnauthorized        int16 = 4001
	StatusForbidden           int16 = 4002
	StatusNotFound            int16 = 4003
	StatusConflict            int16 = 4004
	StatusTooManyRequests     int16 = 4005
	StatusValidationFailed    int16 = 4010
	StatusInvalidCredentials  int16 = 4011
	StatusInvalidToken        int16 = 4012
	StatusTokenExpired        int16 = 4013
	StatusEmailAlreadyExists  int16 = 4021
	StatusWeakPassword        int16 = 4022
	StatusAccountNotVerified  int16 = 4023
	StatusAccountVerified     int16 = 4024
	StatusInvalidOtp          int16 = 4030
	StatusOtpExpired          int16 = 4031
	StatusCSRFTokenMismatch   int16 = 4040

	// Server error codes (5000-5999)
	StatusInternalServerError int16 = 5000
	StatusDBError             int16 = 5010
	StatusJWTError            int16 = 5030
	StatusMailServiceError    int16 = 5052
)

// CodeToString returns a descriptive string for the status code
func CodeToString(code int16) string {
	switch code {
	// Success codes
	case StatusOK:
		return "OK"
	case StatusCreated:
		return "Resource created successfully"
	case StatusLoginSuccess:
		return "Login successful"
	case StatusSignupSuccess:
		return "Signup successful"
	case StatusLogoutSuccess:
		return "Logout successful"
	case StatusPasswordChanged:
		return "Password changed successfully"
	case StatusEmailVerified:
		return "Email verified successfully"

	// Challenge codes
	case StatusVerificationOtpSent:
		return "Verification OTP sent"
	case StatusResetOtpSent:
		return "Reset OTP sent"

	// Client error codes
	case StatusBadRequest:
		return "Bad request"
	case StatusUnauthorized:
		return "Unauthorized"
	case StatusForbidden:
		return "Forbidden"
	case StatusNotFound:
		return "Resource not found"
	case StatusConflict:
		return "Resource conflict"
	case StatusTooManyRequests:
		return "Too many requests"
	case StatusInvalidCredentials:
		return "Invalid credentials"
	case StatusTokenExpired:
		return "Token has expired"
	case StatusInvalidOtp:
		return "Invalid OTP"
	case StatusOtpExpired:
		return "OTP has expired"

	// Server error codes
	case StatusInternalServerError:
		return "Internal server error"
	case StatusDBError:
		return "Database error"
	case StatusJWTError:
		return "Token service error"
	case StatusMailServiceError:
		return "Mail service error"

	default:
		return "Unknown status code"
	}
}

// IsSuccess returns true if the code is a success code
func IsSuccess(code int16) bool {
	return code >= 1000 && code < 2000
}

// IsChallenge returns true if the code is a challenge code
func IsChallenge(code int16) bool {
	return code >= 2000 && code < 3000
}

// IsClientError returns true if the code is a client error code
func IsClientError(code int16) bool {
	return code >= 4000 && code < 5000
}

// IsServerError returns true if the code is a server error code
func IsServerError(code int16) bool {
	return code >= 5000 && code < 6000
}
