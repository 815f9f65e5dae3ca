package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"festivalcms/internal/domain"
)

const videoFolder = "VideoBlog"

var youtubeURLRegexp = regexp.MustCompile(`^https://((www\.)?youtube\.com/watch\?v=|youtu\.be/)[\w-]+$`)

type videoBlogService struct {
	repo           domain.VideoBlogRepository
	files          attachments
	contextTimeout time.Duration
	now            func() time.Time
}

// NewVideoBlogService creates a VideoBlogService.
func NewVideoBlogService(repo domain.VideoBlogRepository, storage domain.FileStorage, logger *slog.Logger, timeout time.Duration) domain.VideoBlogService {
	return &videoBlogService{
		repo:           repo,
		files:          attachments{storage: storage, logger: logger},
		contextTimeout: timeout,
		now:            time.Now,
	}
}

func (s *videoBlogService) AddVideo(ctx context.Context, in domain.VideoBlogInput) (*domain.VideoBlog, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}
	v := &domain.VideoBlog{Title: title, VideoType: domain.VideoType(in.VideoType), AddedAt: s.now()}
	if in.AddedAt != nil {
		v.AddedAt = *in.AddedAt
	}
	switch v.VideoType {
	case domain.VideoYoutube:
		if !youtubeURLRegexp.MatchString(in.YoutubeURL) {
			return nil, fmt.Errorf("%w: youtubeUrl must be a youtube.com/watch or youtu.be link", domain.ErrInvalidInput)
		}
		v.YoutubeURL = in.YoutubeURL
	case domain.VideoRaw:
		if in.Video == nil {
			return nil, fmt.Errorf("%w: video file is required for videoType raw", domain.ErrInvalidInput)
		}
		url, err := s.files.save(ctx, videoFolder, in.Video)
		if err != nil {
			return nil, err
		}
		v.VideoURL = url
	default:
		return nil, fmt.Errorf("%w: videoType must be \"youtube\" or \"raw\"", domain.ErrInvalidInput)
	}

	if err := s.repo.Create(ctx, v); err != nil {
		s.files.remove(ctx, v.VideoURL)
		return nil, fmt.Errorf("create video: %w", err)
	}
	return v, nil
}

func (s *videoBlogService) ListVideos(ctx context.Context, videoType domain.VideoType) ([]*domain.VideoBlog, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	list, err := s.repo.List(ctx, videoType)
	if err != nil {
		return nil, fmt.Errorf("list videos: %w", err)
	}
	return list, nil
}

// GetVideo returns the entry with id. A non-empty videoType must match as well.
func (s *videoBlogService) GetVideo(ctx context.Context, id string, videoType domain.VideoType) (*domain.VideoBlog, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get video: %w", err)
	}
	if videoType != "" && v.VideoType != videoType {
		return nil, domain.ErrNotFound
	}
	return v, nil
}

func (s *videoBlogService) UpdateVideo(ctx context.Context, id string, in domain.VideoBlogInput) (*domain.VideoBlog, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get video: %w", err)
	}
	if title := strings.TrimSpace(in.Title); title != "" {
		v.Title = title
	}
	if in.AddedAt != nil {
		v.AddedAt = *in.AddedAt
	}
	target := v.VideoType
	if in.VideoType != "" {
		target = domain.VideoType(in.VideoType)
	}

	switch target {
	case domain.VideoYoutube:
		url := v.YoutubeURL
		if in.YoutubeURL != "" {
			url = in.YoutubeURL
		}
		if !youtubeURLRegexp.MatchString(url) {
			return nil, fmt.Errorf("%w: youtubeUrl must be a youtube.com/watch or youtu.be link", domain.ErrInvalidInput)
		}
		s.files.remove(ctx, v.VideoURL)
		v.YoutubeURL, v.VideoURL = url, ""
	case domain.VideoRaw:
		if in.Video == nil && v.VideoURL == "" {
			return nil, fmt.Errorf("%w: video file is required for videoType raw", domain.ErrInvalidInput)
		}
		if v.VideoURL, err = s.files.replace(ctx, videoFolder, v.VideoURL, in.Video); err != nil {
			return nil, err
		}
		v.YoutubeURL = ""
	default:
		return nil, fmt.Errorf("%w: videoType must be \"youtube\" or \"raw\"", domain.ErrInvalidInput)
	}
	v.VideoType = target

	if err := s.repo.Update(ctx, v); err != nil {
		return nil, fmt.Errorf("update video: %w", err)
	}
	return v, nil
}

func (s *videoBlogService) DeleteVideo(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get video: %w", err)
	}
	s.files.remove(ctx, v.VideoURL)
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete video: %w", err)
	}
	return nil
}
