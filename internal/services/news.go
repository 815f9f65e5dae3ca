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

const newsFolder = "NewsAndBlog"

type newsService struct {
	repo           domain.NewsRepository
	files          attachments
	contextTimeout time.Duration
	now            func() time.Time
}

// NewNewsService creates a NewsService.
func NewNewsService(repo domain.NewsRepository, storage domain.FileStorage, logger *slog.Logger, timeout time.Duration) domain.NewsService {
	return &newsService{
		repo:           repo,
		files:          attachments{storage: storage, logger: logger},
		contextTimeout: timeout,
		now:            time.Now,
	}
}

func (s *newsService) AddPost(ctx context.Context, in domain.NewsInput) (*domain.NewsAndBlog, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	n := &domain.NewsAndBlog{
		CategoryID:  in.CategoryID,
		Author:      strings.TrimSpace(in.Author),
		Title:       strings.TrimSpace(in.Title),
		ContentType: domain.ContentType(in.ContentType),
		Link:        strings.TrimSpace(in.Link),
		Contents:    in.Contents,
	}
	if n.Author == "" {
		n.Author = domain.DefaultAuthor
	}
	if n.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}
	if err := validatePostBody(n); err != nil {
		return nil, err
	}
	if err := s.checkCategory(ctx, n.CategoryID); err != nil {
		return nil, err
	}

	now := s.now()
	n.PublishedDate = now
	if in.PublishedDate != nil {
		n.PublishedDate = *in.PublishedDate
	}
	n.CreatedAt, n.UpdatedAt = now, now

	url, err := s.files.save(ctx, newsFolder, in.Image)
	if err != nil {
		return nil, err
	}
	n.ImageURL = url
	if err := s.repo.Create(ctx, n); err != nil {
		s.files.remove(ctx, url)
		return nil, fmt.Errorf("create post: %w", err)
	}
	return n, nil
}

func (s *newsService) ListPosts(ctx context.Context, params domain.PaginationParams) ([]*domain.NewsAndBlog, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	list, total, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list posts: %w", err)
	}
	return list, total, nil
}

func (s *newsService) GetPost(ctx context.Context, id string) (*domain.NewsAndBlog, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	n, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get post: %w", err)
	}
	return n, nil
}

// GetBlog returns a hosted blog post. Link posts are reported as not found.
func (s *newsService) GetBlog(ctx context.Context, id string) (*domain.NewsAndBlog, error) {
	n, err := s.GetPost(ctx, id)
	if err != nil {
		return nil, err
	}
	if n.ContentType != domain.ContentBlog {
		return nil, domain.ErrNotFound
	}
	return n, nil
}

func (s *newsService) UpdatePost(ctx context.Context, id string, in domain.NewsInput) (*domain.NewsAndBlog, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	n, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get post: %w", err)
	}
	if in.CategoryID != "" && in.CategoryID != n.CategoryID {
		if err := s.checkCategory(ctx, in.CategoryID); err != nil {
			return nil, err
		}
		n.CategoryID = in.CategoryID
	}
	if v := strings.TrimSpace(in.Author); v != "" {
		n.Author = v
	}
	if v := strings.TrimSpace(in.Title); v != "" {
		n.Title = v
	}
	if in.ContentType != "" {
		n.ContentType = domain.ContentType(in.ContentType)
	}
	if v := strings.TrimSpace(in.Link); v != "" {
		n.Link = v
	}
	if in.Contents != "" {
		n.Contents = in.Contents
	}
	if in.PublishedDate != nil {
		n.PublishedDate = *in.PublishedDate
	}
	if err := validatePostBody(n); err != nil {
		return nil, err
	}
	if n.ImageURL, err = s.files.replace(ctx, newsFolder, n.ImageURL, in.Image); err != nil {
		return nil, err
	}
	n.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, n); err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}
	return n, nil
}

func (s *newsService) DeletePost(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	n, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get post: %w", err)
	}
	s.files.remove(ctx, n.ImageURL)
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	return nil
}

func (s *newsService) AddCategory(ctx context.Context, name string) (*domain.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: category name is required", domain.ErrInvalidInput)
	}
	existing, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	for _, c := range existing {
		if strings.EqualFold(c.Name, name) {
			return nil, fmt.Errorf("%w: category %q already exists", domain.ErrInvalidInput, name)
		}
	}
	now := s.now()
	c := &domain.Category{Name: name, CreatedAt: now, UpdatedAt: now}
	if err := s.repo.CreateCategory(ctx, c); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return c, nil
}

func (s *newsService) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	list, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return list, nil
}

func (s *newsService) checkCategory(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: categoryId is required", domain.ErrInvalidInput)
	}
	if _, err := s.repo.GetCategoryByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("%w: category %q does not exist", domain.ErrInvalidInput, id)
		}
		return fmt.Errorf("get category: %w", err)
	}
	return nil
}

func validatePostBody(n *domain.NewsAndBlog) error {
	switch n.ContentType {
	case domain.ContentLink:
		if n.Link == "" {
			return fmt.Errorf("%w: link is required for contentType link", domain.ErrInvalidInput)
		}
	case domain.ContentBlog:
		if strings.TrimSpace(n.Contents) == "" {
			return fmt.Errorf("%w: contents are required for contentType blog", domain.ErrInvalidInput)
		}
	default:
		return fmt.Errorf("%w: contentType must be \"link\" or \"blog\"", domain.ErrInvalidInput)
	}
	return nil
}
