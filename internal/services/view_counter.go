package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"festivalcms/internal/domain"
)

type viewCounterService struct {
	repo           domain.ViewCounterRepository
	contextTimeout time.Duration
	now            func() time.Time
	newID          func() string
}

// NewViewCounterService creates a ViewCounterService.
func NewViewCounterService(repo domain.ViewCounterRepository, timeout time.Duration) domain.ViewCounterService {
	return &viewCounterService{
		repo:           repo,
		contextTimeout: timeout,
		now:            time.Now,
		newID:          uuid.NewString,
	}
}

func (s *viewCounterService) Track(ctx context.Context, visitorID string) (string, bool, error) {
	if visitorID != "" {
		return visitorID, false, nil
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	id := s.newID()
	day := s.now().UTC().Truncate(24 * time.Hour)
	if err := s.repo.RecordVisit(ctx, day, id); err != nil {
		return "", false, fmt.Errorf("record visit: %w", err)
	}
	return id, true, nil
}

func (s *viewCounterService) List(ctx context.Context) ([]*domain.DailyViews, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	views, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list views: %w", err)
	}
	return views, nil
}
