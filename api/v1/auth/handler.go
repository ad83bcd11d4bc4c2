package auth

import (
	"errors"
	"net/http"

	"inkwell-api/internal/auth"
	"inkwell-api/internal/logger"
	"inkwell-api/internal/middleware"
	"inkwell-api/pkg/config"
	"inkwell-api/pkg/status"

	"github.com/gin-gonic/gin"
)

// Handler handles authentication requests
type Handler struct {
	authService *auth.Service
	cfg         *config.AppConfig
	logger      *logger.Logger
}

// NewHandler creates a new auth handler
func NewHandler(authService *auth.Service, cfg *config.AppConfig, log *logger.Logger) *Handler {
	return &Handler{
		authService: authService,
		cfg:         cfg,
		logger:      log,
	}
}

// setSessionCookie attaches the session token as an HTTP-only cookie.
// SameSite is None in production (cross-site frontend) and Lax otherwise;
// Secure follows the production flag. Max age matches the token expiry.
func (h *Handler) setSessionCookie(c *gin.Context, token string) {
	if h.cfg.IsProduction() {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteLaxMode)
	}

	maxAge := int(h.cfg.Auth.TokenExpiry.Seconds())
	c.SetCookie(h.cfg.Auth.CookieName, token, maxAge, "/", h.cfg.Auth.CookieDomain, h.cfg.IsProduction(), true)
}

// clearSessionCookie expires the session cookie
func (h *Handler) clearSessionCookie(c *gin.Context) {
	if h.cfg.IsProduction() {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteLaxMode)
	}

	c.SetCookie(h.cfg.Auth.CookieName, "", -1, "/", h.cfg.Auth.CookieDomain, h.cfg.IsProduction(), true)
}

// HandleRegister handles account registration
func (h *Handler) HandleRegister(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.SecureLog(err, "Invalid request format", "register")
		c.JSON(http.StatusBadRequest, NewValidationError(err, status.StatusValidationFailed))
		return
	}

	err := h.authService.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		statusCode := http.StatusInternalServerError
		apiStatusCode := status.StatusInternalServerError

		switch {
		case errors.Is(err, auth.ErrMissingFields):
			statusCode = http.StatusBadRequest
			apiStatusCode = status.StatusValidationFailed
		case errors.Is(err, auth.ErrPasswordTooShort):
			statusCode = http.StatusBadRequest
			apiStatusCode = status.StatusWeakPassword
		case errors.Is(err, auth.ErrUserAlreadyExists):
			statusCode = http.StatusConflict
			apiStatusCode = status.StatusEmailAlreadyExists
		case errors.Is(err, auth.ErrRateLimited):
			statusCode = http.StatusTooManyRequests
			apiStatusCode = status.StatusTooManyRequests
		}

		c.JSON(statusCode, NewErrorResponse(err.Error(), apiStatusCode))
		return
	}

	c.JSON(http.StatusCreated, NewMessageResponse(
		"Account created. Please verify your email.",
		status.StatusSignupSuccess,
	))
}

// HandleLogin handles credential login and sets the session cookie
func (h *Handler) HandleLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.SecureLog(err, "Invalid request format", "login")
		c.JSON(http.StatusBadRequest, NewValidationError(err, status.StatusValidationFailed))
		return
	}

	account, token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		statusCode := http.StatusInternalServerError
		apiStatusCode := status.StatusInternalServerError

		switch {
		case errors.Is(err, auth.ErrUserNotFound):
			statusCode = http.StatusNotFound
			apiStatusCode = status.StatusNotFound
		case errors.Is(err, auth.ErrInvalidCredentials):
			statusCode = http.StatusUnauthorized
			apiStatusCode = status.StatusInvalidCredentials
		case errors.Is(err, auth.ErrAccountNotVerified):
			statusCode = http.StatusUnauthorized
			apiStatusCode = status.StatusAccountNotVerified
		}

		c.JSON(statusCode, NewErrorResponse(err.Error(), apiStatusCode))
		return
	}

	h.setSessionCookie(c, token)

	c.JSON(http.StatusOK, NewLoginResponse(account, status.StatusLoginSuccess))
}

// HandleLogout clears the session cookie. Always succeeds, even without
// an active session.
func (h *Handler) HandleLogout(c *gin.Context) {
	h.clearSessionCookie(c)

	c.JSON(http.StatusOK, NewMessageResponse(
		"Logged out successfully",
		status.StatusLogoutSuccess,
	))
}

// HandleSendVerifyOtp issues a fresh verification OTP for the caller
func (h *Handler) HandleSendVerifyOtp(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, NewErrorResponse("Unauthorized", status.StatusUnauthorized))
		return
	}

	err := h.authService.SendVerifyOtp(c.Request.Context(), userID)
	if err != nil {
		statusCode := http.StatusInternalServerError
		apiStatusCode := status.StatusInternalServerError

		switch {
		case errors.Is(err, auth.ErrAlreadyVerified):
			statusCode = http.StatusBadRequest
			apiStatusCode = status.StatusAccountVerified
		case errors.Is(err, auth.ErrUserNotFound):
			statusCode = http.StatusNotFound
			apiStatusCode = status.StatusNotFound
		case errors.Is(err, auth.ErrRateLimited):
			statusCode = http.StatusTooManyRequests
			apiStatusCode = status.StatusTooManyRequests
		}

		c.JSON(statusCode, NewErrorResponse(err.Error(), apiStatusCode))
		return
	}

	c.JSON(http.StatusOK, NewMessageResponse(
		"Verification OTP sent",
		status.StatusVerificationOtpSent,
	))
}

// HandleVerifyAccount consumes the verification OTP
func (h *Handler) HandleVerifyAccount(c *gin.Context) {
	var req VerifyAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.SecureLog(err, "Invalid request format", "verifyAccount")
		c.JSON(http.StatusBadRequest, NewValidationError(err, status.StatusValidationFailed))
		return
	}

	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, NewErrorResponse("Unauthorized", status.StatusUnauthorized))
		return
	}

	err := h.authService.VerifyAccount(c.Request.Context(), userID, req.Otp)
	if err != nil {
		statusCode := http.StatusInternalServerError
		apiStatusCode := status.StatusInternalServerError

		switch {
		case errors.Is(err, auth.ErrInvalidOtp):
			statusCode = http.StatusBadRequest
			apiStatusCode = status.StatusInvalidOtp
		case errors.Is(err, auth.ErrOtpExpired):
			statusCode = http.StatusGone
			apiStatusCode = status.StatusOtpExpired
		}

		c.JSON(statusCode, NewErrorResponse(err.Error(), apiStatusCode))
		return
	}

	c.JSON(http.StatusOK, NewMessageResponse(
		"Account verified successfully",
		status.StatusEmailVerified,
	))
}

// HandleIsAuthenticated reports success for any request that made it
// through the session middleware
func (h *Handler) HandleIsAuthenticated(c *gin.Context) {
	c.JSON(http.StatusOK, BaseResponse{Success: true, Code: status.StatusOK})
}

// HandleSendResetOtp issues a password-reset OTP; no authentication
// required since this is the recovery flow
func (h *Handler) HandleSendResetOtp(c *gin.Context) {
	var req SendResetOtpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.SecureLog(err, "Invalid request format", "sendResetOtp")
		c.JSON(http.StatusBadRequest, NewValidationError(err, status.StatusValidationFailed))
		return
	}

	err := h.authService.SendResetOtp(c.Request.Context(), req.Email)
	if err != nil {
		statusCode := http.StatusInternalServerError
		apiStatusCode := status.StatusInternalServerError

		switch {
		case errors.Is(err, auth.ErrUserNotFound):
			statusCode = http.StatusNotFound
			apiStatusCode = status.StatusNotFound
		case errors.Is(err, auth.ErrRateLimited):
			statusCode = http.StatusTooManyRequests
			apiStatusCode = status.StatusTooManyRequests
		}

		c.JSON(statusCode, NewErrorResponse(err.Error(), apiStatusCode))
		return
	}

	c.JSON(http.StatusOK, NewMessageResponse(
		"Reset OTP sent",
		status.StatusResetOtpSent,
	))
}

// HandleResetPassword consumes the reset OTP and replaces the password
func (h *Handler) HandleResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.SecureLog(err, "Invalid request format", "resetPassword")
		c.JSON(http.StatusBadRequest, NewValidationError(err, status.StatusValidationFailed))
		return
	}

	err := h.authService.ResetPassword(c.Request.Context(), req.Email, req.Otp, req.NewPassword)
	if err != nil {
		statusCode := http.StatusInternalServerError
		apiStatusCode := status.StatusInternalServerError

		switch {
		case errors.Is(err, auth.ErrMissingFields):
			statusCode = http.StatusBadRequest
			apiStatusCode = status.StatusValidationFailed
		case errors.Is(err, auth.ErrPasswordTooShort):
			statusCode = http.StatusBadRequest
			apiStatusCode = status.StatusWeakPassword
		case errors.Is(err, auth.ErrInvalidOrExpiredOtp):
			statusCode = http.StatusBadRequest
			apiStatusCode = status.StatusInvalidOtp
		}

		c.JSON(statusCode, NewErrorResponse(err.Error(), apiStatusCode))
		return
	}

	c.JSON(http.StatusOK, NewMessageResponse(
		"Password reset successfully",
		status.StatusPasswordChanged,
	))
}
