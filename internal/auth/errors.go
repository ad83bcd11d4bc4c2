package auth

import (
	"errors"
)

// Custom error types for the auth package. Messages are user-facing.
var (
	// ErrMissingFields indicates a required field was not provided
	ErrMissingFields = errors.New("Missing required fields")

	// ErrPasswordTooShort indicates the password fails the length policy
	ErrPasswordTooShort = errors.New("Password must be at least 8 characters long")

	// ErrUserAlreadyExists indicates the email is already registered
	ErrUserAlreadyExists = errors.New("User already exists")

	// ErrUserNotFound indicates no account matches the given identity
	ErrUserNotFound = errors.New("User not found")

	// ErrInvalidCredentials indicates the password does not match
	ErrInvalidCredentials = errors.New("Invalid credentials")

	// ErrAccountNotVerified indicates login before email verification
	ErrAccountNotVerified = errors.New("Please verify your account")

	// ErrAlreadyVerified indicates a verification request for a verified account
	ErrAlreadyVerified = errors.New("Account already verified")

	// ErrInvalidOtp indicates the verification OTP does not match
	ErrInvalidOtp = errors.New("Invalid OTP")

	// ErrOtpExpired indicates the verification OTP is past its expiry
	ErrOtpExpired = errors.New("OTP expired")

	// ErrInvalidOrExpiredOtp covers every reset-OTP failure; the merged
	// message avoids leaking which condition failed
	ErrInvalidOrExpiredOtp = errors.New("Invalid or expired OTP")

	// ErrRateLimited indicates too many OTP requests for one address
	ErrRateLimited = errors.New("Too many OTP requests, please try again later")

	// ErrInternal masks unexpected collaborator failures; the detail is
	// logged server-side only
	ErrInternal = errors.New("Something went wrong, please try again later")
)
