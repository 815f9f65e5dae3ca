package services

import (
	"context"
	"fmt"
	"log/slog"

	"festivalcms/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	logger   *slog.Logger
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, logger *slog.Logger) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer, logger: logger}
}

// SendContactNotification forwards a contact-form message to one staff inbox using the
// "contact" template.
func (s *emailService) SendContactNotification(ctx context.Context, to string, data *domain.ContactEmailData) error {
	if data == nil {
		return fmt.Errorf("contact email data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("contact", data)
	if err != nil {
		return fmt.Errorf("render contact template: %w", err)
	}
	if err := s.mailer.Send(ctx, to, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("send contact email: %w", err)
	}
	s.logger.InfoContext(ctx, "contact notification sent", "to", to)
	return nil
}
