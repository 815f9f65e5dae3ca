package domain

import (
	"context"
	"time"
)

// MediaKind selects the table a single-file media record lives in.
type MediaKind string

const (
	MediaBanner   MediaKind = "banner"
	MediaBrochure MediaKind = "brochure"
)

// Media is a record that exists only to own one uploaded file: a home-page banner
// image or an event brochure PDF.
// swagger:model Media
type Media struct {
	ID        string    `json:"id"`
	Kind      MediaKind `json:"kind"`
	FileURL   string    `json:"fileUrl"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// MediaRepository defines the interface for single-file media storage.
type MediaRepository interface {
	Create(ctx context.Context, m *Media) error
	GetByID(ctx context.Context, kind MediaKind, id string) (*Media, error)
	List(ctx context.Context, kind MediaKind) ([]*Media, error)
	Update(ctx context.Context, m *Media) error
	Delete(ctx context.Context, kind MediaKind, id string) error
}

// MediaService manages banners and brochures.
type MediaService interface {
	Add(ctx context.Context, kind MediaKind, file *UploadedFile) (*Media, error)
	List(ctx context.Context, kind MediaKind) ([]*Media, error)
	Replace(ctx context.Context, kind MediaKind, id string, file *UploadedFile) (*Media, error)
	Delete(ctx context.Context, kind MediaKind, id string) error
}
