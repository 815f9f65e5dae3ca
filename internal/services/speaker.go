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

const speakerFolder = "Speaker"

type speakerService struct {
	eventRepo      domain.EventRepository
	repo           domain.SpeakerRepository
	files          attachments
	contextTimeout time.Duration
	now            func() time.Time
}

// NewSpeakerService creates a SpeakerService storing portraits in storage.
func NewSpeakerService(eventRepo domain.EventRepository, repo domain.SpeakerRepository, storage domain.FileStorage, logger *slog.Logger, timeout time.Duration) domain.SpeakerService {
	return &speakerService{
		eventRepo:      eventRepo,
		repo:           repo,
		files:          attachments{storage: storage, logger: logger},
		contextTimeout: timeout,
		now:            time.Now,
	}
}

func (s *speakerService) AddSpeaker(ctx context.Context, eventID string, in domain.SpeakerInput) (*domain.Speaker, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	url, err := s.files.save(ctx, speakerFolder, in.Image)
	if err != nil {
		return nil, err
	}
	now := s.now()
	sp := &domain.Speaker{
		EventID:   eventID,
		Name:      name,
		About:     in.About,
		ImageURL:  url,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, sp); err != nil {
		s.files.remove(ctx, url)
		return nil, fmt.Errorf("create speaker: %w", err)
	}
	return sp, nil
}

func (s *speakerService) ListSpeakers(ctx context.Context) ([]*domain.Speaker, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	speakers, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list speakers: %w", err)
	}
	return speakers, nil
}

func (s *speakerService) UpdateSpeaker(ctx context.Context, id string, in domain.SpeakerInput) (*domain.Speaker, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	sp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get speaker: %w", err)
	}
	if name := strings.TrimSpace(in.Name); name != "" {
		sp.Name = name
	}
	if in.About != "" {
		sp.About = in.About
	}
	if sp.ImageURL, err = s.files.replace(ctx, speakerFolder, sp.ImageURL, in.Image); err != nil {
		return nil, err
	}
	sp.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, sp); err != nil {
		return nil, fmt.Errorf("update speaker: %w", err)
	}
	return sp, nil
}

func (s *speakerService) DeleteSpeaker(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	sp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get speaker: %w", err)
	}
	s.files.remove(ctx, sp.ImageURL)
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete speaker: %w", err)
	}
	return nil
}
