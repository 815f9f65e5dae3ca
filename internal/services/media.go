package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"festivalcms/internal/domain"
)

var mediaFolders = map[domain.MediaKind]string{
	domain.MediaBanner:   "Banner",
	domain.MediaBrochure: "EventBroucher/pdf",
}

type mediaService struct {
	repo           domain.MediaRepository
	files          attachments
	contextTimeout time.Duration
	now            func() time.Time
}

// NewMediaService creates a MediaService for banners and brochures.
func NewMediaService(repo domain.MediaRepository, storage domain.FileStorage, logger *slog.Logger, timeout time.Duration) domain.MediaService {
	return &mediaService{
		repo:           repo,
		files:          attachments{storage: storage, logger: logger},
		contextTimeout: timeout,
		now:            time.Now,
	}
}

func (s *mediaService) Add(ctx context.Context, kind domain.MediaKind, file *domain.UploadedFile) (*domain.Media, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	folder, ok := mediaFolders[kind]
	if !ok {
		return nil, fmt.Errorf("%w: unknown media kind %q", domain.ErrInvalidInput, kind)
	}
	if file == nil {
		return nil, fmt.Errorf("%w: file is required", domain.ErrInvalidInput)
	}
	url, err := s.files.save(ctx, folder, file)
	if err != nil {
		return nil, err
	}
	now := s.now()
	m := &domain.Media{Kind: kind, FileURL: url, CreatedAt: now, UpdatedAt: now}
	if err := s.repo.Create(ctx, m); err != nil {
		s.files.remove(ctx, url)
		return nil, fmt.Errorf("create %s: %w", kind, err)
	}
	return m, nil
}

func (s *mediaService) List(ctx context.Context, kind domain.MediaKind) ([]*domain.Media, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	list, err := s.repo.List(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", kind, err)
	}
	return list, nil
}

func (s *mediaService) Replace(ctx context.Context, kind domain.MediaKind, id string, file *domain.UploadedFile) (*domain.Media, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if file == nil {
		return nil, fmt.Errorf("%w: file is required", domain.ErrInvalidInput)
	}
	m, err := s.repo.GetByID(ctx, kind, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get %s: %w", kind, err)
	}
	if m.FileURL, err = s.files.replace(ctx, mediaFolders[kind], m.FileURL, file); err != nil {
		return nil, err
	}
	m.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, m); err != nil {
		return nil, fmt.Errorf("update %s: %w", kind, err)
	}
	return m, nil
}

func (s *mediaService) Delete(ctx context.Context, kind domain.MediaKind, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	m, err := s.repo.GetByID(ctx, kind, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get %s: %w", kind, err)
	}
	s.files.remove(ctx, m.FileURL)
	if err := s.repo.Delete(ctx, kind, id); err != nil {
		return fmt.Errorf("delete %s: %w", kind, err)
	}
	return nil
}
