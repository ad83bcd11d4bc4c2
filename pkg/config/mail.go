package config

import (
	"time"
)

// MailConfig holds configuration for the SMTP mail transport
type MailConfig struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromEmail    string

	// SendTimeout bounds a single delivery so a slow SMTP server
	// cannot stall the request that triggered it
	SendTimeout time.Duration
}

// LoadMailConfig loads mail configuration from environment variables
func LoadMailConfig() *MailConfig {
	config := &MailConfig{
		SMTPHost:     getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:     getEnvAsInt("SMTP_PORT", 587),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		FromEmail:    getEnv("SMTP_FROM_EMAIL", "no-reply@inkwell.blog"),
		SendTimeout:  getEnvAsDuration("SMTP_SEND_TIMEOUT", 10*time.Second),
	}

	return config
}
