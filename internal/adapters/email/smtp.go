package email

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"

	"gopkg.in/gomail.v2"
)

// SMTPConfig holds configuration for an SMTP relay.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	// InsecureSkipVerify disables certificate checks on STARTTLS.
	InsecureSkipVerify bool
}

// smtpSender is the part of gomail.Dialer the mailer uses.
type smtpSender interface {
	DialAndSend(m ...*gomail.Message) error
}

type smtpMailer struct {
	dialer      smtpSender
	fromAddress string
	fromName    string
	logger      *slog.Logger
}

func newSMTPMailer(config MailerConfig, logger *slog.Logger) (*smtpMailer, error) {
	if config.SMTP.Host == "" {
		return nil, fmt.Errorf("smtp mailer: host is required")
	}
	if config.FromAddress == "" {
		return nil, fmt.Errorf("smtp mailer: from address is required")
	}
	port := config.SMTP.Port
	if port == 0 {
		port = 587
	}
	d := gomail.NewDialer(config.SMTP.Host, port, config.SMTP.Username, config.SMTP.Password)
	if config.SMTP.InsecureSkipVerify {
		logger.Warn("TLS certificate verification is disabled for SMTP, use only in development")
		d.TLSConfig = &tls.Config{InsecureSkipVerify: true, ServerName: config.SMTP.Host}
	}
	return &smtpMailer{dialer: d, fromAddress: config.FromAddress, fromName: config.FromName, logger: logger}, nil
}

// Send opens one connection per message. gomail has no context support, so ctx is only
// checked before dialing.
func (s *smtpMailer) Send(ctx context.Context, to, subject, html, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.fromAddress, s.fromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	switch {
	case text != "" && html != "":
		m.SetBody("text/plain", text)
		m.AddAlternative("text/html", html)
	case html != "":
		m.SetBody("text/html", html)
	default:
		m.SetBody("text/plain", text)
	}
	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email via SMTP: %w", err)
	}
	s.logger.InfoContext(ctx, "email sent", "to", to, "transport", "smtp")
	return nil
}
