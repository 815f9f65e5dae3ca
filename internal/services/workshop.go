package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"festivalcms/internal/domain"
)

const (
	workshopFolder = "Workshop"
	// registrationFormPrefix is the only accepted host for workshop sign-up forms.
	registrationFormPrefix = "https://docs.google.com/forms/"
)

type workshopService struct {
	eventRepo      domain.EventRepository
	repo           domain.WorkshopRepository
	files          attachments
	contextTimeout time.Duration
	now            func() time.Time
}

// NewWorkshopService creates a WorkshopService.
func NewWorkshopService(eventRepo domain.EventRepository, repo domain.WorkshopRepository, storage domain.FileStorage, logger *slog.Logger, timeout time.Duration) domain.WorkshopService {
	return &workshopService{
		eventRepo:      eventRepo,
		repo:           repo,
		files:          attachments{storage: storage, logger: logger},
		contextTimeout: timeout,
		now:            time.Now,
	}
}

func (s *workshopService) AddWorkshop(ctx context.Context, eventID string, in domain.WorkshopInput) (*domain.Workshop, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	formURL := strings.TrimSpace(in.RegistrationFormURL)
	if err := validateFormURL(formURL); err != nil {
		return nil, err
	}
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	url, err := s.files.save(ctx, workshopFolder, in.Image)
	if err != nil {
		return nil, err
	}
	now := s.now()
	w := &domain.Workshop{
		EventID:             eventID,
		Name:                name,
		About:               in.About,
		ImageURL:            url,
		RegistrationFormURL: formURL,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if err := s.repo.Create(ctx, w); err != nil {
		s.files.remove(ctx, url)
		return nil, fmt.Errorf("create workshop: %w", err)
	}
	return w, nil
}

func (s *workshopService) ListWorkshops(ctx context.Context) ([]*domain.Workshop, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list workshops: %w", err)
	}
	return list, nil
}

func (s *workshopService) UpdateWorkshop(ctx context.Context, id string, in domain.WorkshopInput) (*domain.Workshop, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	w, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get workshop: %w", err)
	}
	if formURL := strings.TrimSpace(in.RegistrationFormURL); formURL != "" {
		if err := validateFormURL(formURL); err != nil {
			return nil, err
		}
		w.RegistrationFormURL = formURL
	}
	if name := strings.TrimSpace(in.Name); name != "" {
		w.Name = name
	}
	if in.About != "" {
		w.About = in.About
	}
	if w.ImageURL, err = s.files.replace(ctx, workshopFolder, w.ImageURL, in.Image); err != nil {
		return nil, err
	}
	w.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, w); err != nil {
		return nil, fmt.Errorf("update workshop: %w", err)
	}
	return w, nil
}

func (s *workshopService) DeleteWorkshop(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	w, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get workshop: %w", err)
	}
	s.files.remove(ctx, w.ImageURL)
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete workshop: %w", err)
	}
	return nil
}

func validateFormURL(u string) error {
	if !strings.HasPrefix(u, registrationFormPrefix) {
		return fmt.Errorf("%w: registrationFormUrl must be a Google Forms link", domain.ErrInvalidInput)
	}
	return nil
}
