package email

import (
	"fmt"

	"github.com/rs/zerolog"
	"gopkg.in/gomail.v2"
)

// Service defines the interface for outbound portal mail
type Service interface {
	SendWelcomeEmail(toEmail, toName string) error
}

// SMTPConfig holds configuration for the SMTP server
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromName  string
	FromEmail string
	BaseURL   string // public base URL of the portal, used in mail bodies
}

type serviceImpl struct {
	config SMTPConfig
	logger zerolog.Logger
}

// NewService creates a new mail Service
func NewService(config SMTPConfig, logger zerolog.Logger) Service {
	return &serviceImpl{
		config: config,
		logger: logger,
	}
}

// SendWelcomeEmail greets a freshly registered alumnus. Without SMTP
// credentials configured the mail is only logged, which keeps local
// development working without a mail server.
func (s *serviceImpl) SendWelcomeEmail(toEmail, toName string) error {
	subject := "Welcome to the Alumni Network"
	body := fmt.Sprintf(
		"<p>Hi %s,</p>"+
			"<p>Your alumni account is ready. Sign in at <a href=%q>%s</a> to complete your profile, "+
			"browse the directory and catch up on announcements and events.</p>"+
			"<p>— The Alumni Portal team</p>",
		toName, s.config.BaseURL, s.config.BaseURL)

	if s.config.Username == "" || s.config.Password == "" {
		s.logger.Info().Str("to", toEmail).Str("subject", subject).Msg("SMTP not configured, skipping welcome email")
		return nil
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromEmail, s.config.FromName)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(s.config.Host, s.config.Port, s.config.Username, s.config.Password)
	if err := d.DialAndSend(m); err != nil {
		s.logger.Error().Err(err).Str("to", toEmail).Msg("Failed to send welcome email")
		return fmt.Errorf("failed to send welcome email: %w", err)
	}

	s.logger.Info().Str("to", toEmail).Msg("Welcome email sent")
	return nil
}
