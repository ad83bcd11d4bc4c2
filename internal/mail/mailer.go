package mail

import (
	"context"
	"fmt"

	"inkwell-api/pkg/config"

	"gopkg.in/gomail.v2"
)

// Mailer delivers a message to a user's email address. Send returns the
// delivery result so callers can surface failures instead of losing them.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// SMTPMailer sends mail through an SMTP relay
type SMTPMailer struct {
	dialer *gomail.Dialer
	config *config.MailConfig
}

// New creates a new SMTPMailer from the given mail configuration
func New(cfg *config.MailConfig) *SMTPMailer {
	dialer := gomail.NewDialer(
		cfg.SMTPHost,
		cfg.SMTPPort,
		cfg.SMTPUsername,
		cfg.SMTPPassword,
	)

	return &SMTPMailer{
		dialer: dialer,
		config: cfg,
	}
}

// Send delivers a plain-text message. Delivery is bounded by the configured
// send timeout; on timeout the request gets an error while the dial
// goroutine is left to finish in the background.
func (m *SMTPMailer) Send(ctx context.Context, to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.config.FromEmail)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	ctx, cancel := context.WithTimeout(ctx, m.config.SendTimeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- m.dialer.DialAndSend(msg)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("failed to send email: %w", err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("email delivery timed out: %w", ctx.Err())
	}
}
