package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"festivalcms/internal/domain"
)

type archiveService struct {
	tx             domain.Transactor
	repo           domain.ArchiveRepository
	files          attachments
	logger         *slog.Logger
	contextTimeout time.Duration
	now            func() time.Time
}

// NewArchiveService creates an ArchiveService.
func NewArchiveService(tx domain.Transactor, repo domain.ArchiveRepository, storage domain.FileStorage, logger *slog.Logger, timeout time.Duration) domain.ArchiveService {
	return &archiveService{
		tx:             tx,
		repo:           repo,
		files:          attachments{storage: storage, logger: logger},
		logger:         logger,
		contextTimeout: timeout,
		now:            time.Now,
	}
}

func (s *archiveService) AddYear(ctx context.Context, year, month, totalDays int) (*domain.ArchiveYear, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if year < 1 || month < 1 || month > 12 || totalDays < 1 {
		return nil, fmt.Errorf("%w: year, month (1-12) and totalDays (>= 1) are required", domain.ErrInvalidInput)
	}
	if _, err := s.repo.FindYear(ctx, year, month); err == nil {
		return nil, fmt.Errorf("%w: archive %d/%d already exists", domain.ErrInvalidInput, year, month)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("find archive year: %w", err)
	}
	now := s.now()
	y := &domain.ArchiveYear{Year: year, Month: month, TotalDays: totalDays, CreatedAt: now, UpdatedAt: now}
	if err := s.repo.CreateYear(ctx, y); err != nil {
		return nil, fmt.Errorf("create archive year: %w", err)
	}
	return y, nil
}

func (s *archiveService) ListYears(ctx context.Context) ([]*domain.ArchiveYear, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	years, err := s.repo.ListYears(ctx)
	if err != nil {
		return nil, fmt.Errorf("list archive years: %w", err)
	}
	return years, nil
}

// DeleteYear removes the year with all of its images. Stored files are removed after the
// records are gone.
func (s *archiveService) DeleteYear(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.repo.GetYearByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get archive year: %w", err)
	}
	var images []*domain.ArchiveImage
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		if images, err = s.repo.ListImages(ctx, id); err != nil {
			return fmt.Errorf("list archive images: %w", err)
		}
		if _, err := s.repo.DeleteImagesByYear(ctx, id); err != nil {
			return fmt.Errorf("delete archive images: %w", err)
		}
		if err := s.repo.DeleteYear(ctx, id); err != nil {
			return fmt.Errorf("delete archive year: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	for _, img := range images {
		s.files.remove(ctx, img.ImageURL)
	}
	s.logger.InfoContext(ctx, "archive year deleted", "year_id", id, "deleted_images", len(images))
	return nil
}

// UploadImages stores up to MaxArchiveUpload files concurrently and records them in one
// transaction. If any upload or insert fails, every stored file is removed and no record
// is kept.
func (s *archiveService) UploadImages(ctx context.Context, yearID, dayLabel string, files []*domain.UploadedFile) ([]*domain.ArchiveImage, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	dayLabel = strings.TrimSpace(dayLabel)
	if dayLabel == "" {
		return nil, fmt.Errorf("%w: dayLabel is required", domain.ErrInvalidInput)
	}
	if len(files) == 0 || len(files) > domain.MaxArchiveUpload {
		return nil, fmt.Errorf("%w: upload between 1 and %d images", domain.ErrInvalidInput, domain.MaxArchiveUpload)
	}
	y, err := s.repo.GetYearByID(ctx, yearID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get archive year: %w", err)
	}

	folder := fmt.Sprintf("%d/%s/Archive", y.Year, dayLabel)
	urls := make([]string, len(files))
	var mu sync.Mutex
	var stored []string
	g, gctx := errgroup.WithContext(ctx)
	for i, f := range files {
		g.Go(func() error {
			url, err := s.files.save(gctx, folder, f)
			if err != nil {
				return err
			}
			urls[i] = url
			mu.Lock()
			stored = append(stored, url)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		for _, url := range stored {
			s.files.remove(ctx, url)
		}
		return nil, err
	}

	now := s.now()
	images := make([]*domain.ArchiveImage, 0, len(urls))
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		for _, url := range urls {
			img := &domain.ArchiveImage{YearID: yearID, DayLabel: dayLabel, ImageURL: url, CreatedAt: now}
			if err := s.repo.CreateImage(ctx, img); err != nil {
				return fmt.Errorf("create archive image: %w", err)
			}
			images = append(images, img)
		}
		return nil
	})
	if err != nil {
		for _, url := range urls {
			s.files.remove(ctx, url)
		}
		return nil, err
	}
	return images, nil
}

func (s *archiveService) ListImages(ctx context.Context, yearID string) ([]*domain.ArchiveImage, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.repo.GetYearByID(ctx, yearID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get archive year: %w", err)
	}
	images, err := s.repo.ListImages(ctx, yearID)
	if err != nil {
		return nil, fmt.Errorf("list archive images: %w", err)
	}
	return images, nil
}

func (s *archiveService) DeleteImage(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	img, err := s.repo.GetImageByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get archive image: %w", err)
	}
	s.files.remove(ctx, img.ImageURL)
	if err := s.repo.DeleteImage(ctx, id); err != nil {
		return fmt.Errorf("delete archive image: %w", err)
	}
	return nil
}
