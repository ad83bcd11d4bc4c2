package models

import (
	"time"

	"gorm.io/gorm"

	"inkwell-api/internal/utils"
)

// User roles
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents an account in the system. Emails are stored lowercase;
// callers normalize before lookups so the unique index is effectively
// case-insensitive.
type User struct {
	ID           string `gorm:"primaryKey;column:id"`
	Name         string `gorm:"column:name;size:100;not null"`
	Email        string `gorm:"column:email;size:100;not null;unique;index:idx_users_email"`
	Role         string `gorm:"column:role;size:20;default:'user';not null"`
	PasswordHash string `gorm:"column:password_hash;size:100;not null"`
	Verified     bool   `gorm:"column:verified;default:false;not null"`

	// Pending verification OTP; empty/nil when no verification is outstanding
	VerifyOtp          string     `gorm:"column:verify_otp;size:6"`
	VerifyOtpExpiresAt *time.Time `gorm:"column:verify_otp_expires_at"`

	// Pending password-reset OTP; empty/nil when no reset is outstanding
	ResetOtp          string     `gorm:"column:reset_otp;size:6"`
	ResetOtpExpiresAt *time.Time `gorm:"column:reset_otp_expires_at"`

	CreatedAt int64 `gorm:"column:created_at;autoCreateTime:false;not null"`
	UpdatedAt int64 `gorm:"column:updated_at;autoCreateTime:false;not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}

// BeforeCreate hook for User
func (u *User) BeforeCreate(tx *gorm.DB) error {
	now := time.Now().Unix()
	if u.ID == "" {
		u.ID = utils.GenerateUserID()
	}
	if u.Role == "" {
		u.Role = RoleUser
	}
	if u.CreatedAt == 0 {
		u.CreatedAt = now
	}
	if u.UpdatedAt == 0 {
		u.UpdatedAt = now
	}
	return nil
}

// BeforeUpdate hook for User
func (u *User) BeforeUpdate(tx *gorm.DB) error {
	u.UpdatedAt = time.Now().Unix()
	return nil
}

// HasPendingVerifyOtp reports whether a verification OTP is outstanding
func (u *User) HasPendingVerifyOtp() bool {
	return u.VerifyOtp != "" && u.VerifyOtpExpiresAt != nil
}

// HasPendingResetOtp reports whether a reset OTP is outstanding
func (u *User) HasPendingResetOtp() bool {
	return u.ResetOtp != "" && u.ResetOtpExpiresAt != nil
}

// ClearVerifyOtp removes any outstanding verification OTP
func (u *User) ClearVerifyOtp() {
	u.VerifyOtp = ""
	u.VerifyOtpExpiresAt = nil
}

// ClearResetOtp removes any outstanding reset OTP
func (u *User) ClearResetOtp() {
	u.ResetOtp = ""
	u.ResetOtpExpiresAt = nil
}
