package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"festivalcms/internal/domain"
)

type contactService struct {
	repo           domain.ContactRepository
	emails         domain.EmailService
	logger         *slog.Logger
	contextTimeout time.Duration
	now            func() time.Time
}

// NewContactService creates a ContactService. Submissions are stored first and then
// forwarded to every sender mail.
func NewContactService(repo domain.ContactRepository, emails domain.EmailService, logger *slog.Logger, timeout time.Duration) domain.ContactService {
	return &contactService{
		repo:           repo,
		emails:         emails,
		logger:         logger,
		contextTimeout: timeout,
		now:            time.Now,
	}
}

func (s *contactService) Submit(ctx context.Context, name, email, phone, message string) (*domain.ContactSubmission, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	name = strings.TrimSpace(name)
	message = strings.TrimSpace(message)
	email = normalizeEmail(email)
	if name == "" || message == "" {
		return nil, fmt.Errorf("%w: name and message are required", domain.ErrInvalidInput)
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}

	senders, err := s.repo.ListSenders(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sender mails: %w", err)
	}
	msg := &domain.ContactMessage{
		Name:        name,
		Email:       email,
		Phone:       strings.TrimSpace(phone),
		Message:     message,
		SenderMails: make([]string, 0, len(senders)),
		CreatedAt:   s.now(),
	}
	for _, sm := range senders {
		msg.SenderMails = append(msg.SenderMails, sm.Mail)
	}
	if err := s.repo.CreateMessage(ctx, msg); err != nil {
		return nil, fmt.Errorf("create contact message: %w", err)
	}

	data := &domain.ContactEmailData{Name: msg.Name, Email: msg.Email, Phone: msg.Phone, Message: msg.Message}
	var g errgroup.Group
	for _, to := range msg.SenderMails {
		g.Go(func() error {
			return s.emails.SendContactNotification(ctx, to, data)
		})
	}
	sent := true
	if err := g.Wait(); err != nil {
		sent = false
		s.logger.WarnContext(ctx, "contact notification failed", "contact_id", msg.ID, "err", err)
	}
	return &domain.ContactSubmission{Contact: msg, EmailSent: sent}, nil
}

func (s *contactService) AddSender(ctx context.Context, mail string) (*domain.SenderMail, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	mail = normalizeEmail(mail)
	if err := validateEmail(mail); err != nil {
		return nil, err
	}
	sm := &domain.SenderMail{Mail: mail}
	if err := s.repo.CreateSender(ctx, sm); err != nil {
		return nil, fmt.Errorf("create sender mail: %w", err)
	}
	return sm, nil
}

func (s *contactService) ListSenders(ctx context.Context) ([]*domain.SenderMail, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	senders, err := s.repo.ListSenders(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sender mails: %w", err)
	}
	return senders, nil
}

func (s *contactService) UpdateSender(ctx context.Context, id, mail string) (*domain.SenderMail, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	mail = normalizeEmail(mail)
	if err := validateEmail(mail); err != nil {
		return nil, err
	}
	sm, err := s.repo.GetSenderByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get sender mail: %w", err)
	}
	sm.Mail = mail
	if err := s.repo.UpdateSender(ctx, sm); err != nil {
		return nil, fmt.Errorf("update sender mail: %w", err)
	}
	return sm, nil
}

func (s *contactService) DeleteSender(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	if err := s.repo.DeleteSender(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete sender mail: %w", err)
	}
	return nil
}
