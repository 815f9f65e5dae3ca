package domain

import (
	"context"
	"time"
)

// ArchiveYear is a past edition of the festival whose photos are kept in the archive.
// swagger:model ArchiveYear
type ArchiveYear struct {
	ID        string    `json:"id"`
	Year      int       `json:"year"`
	Month     int       `json:"month"`
	TotalDays int       `json:"totalDays"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ArchiveImage is one archived photo, labelled with the festival day it was taken on.
// swagger:model ArchiveImage
type ArchiveImage struct {
	ID        string    `json:"id"`
	YearID    string    `json:"yearId"`
	DayLabel  string    `json:"dayLabel"`
	ImageURL  string    `json:"imageUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

// MaxArchiveUpload is the number of images accepted in one upload.
const MaxArchiveUpload = 10

// ArchiveRepository defines the interface for archive storage.
type ArchiveRepository interface {
	CreateYear(ctx context.Context, y *ArchiveYear) error
	GetYearByID(ctx context.Context, id string) (*ArchiveYear, error)
	FindYear(ctx context.Context, year, month int) (*ArchiveYear, error)
	ListYears(ctx context.Context) ([]*ArchiveYear, error)
	DeleteYear(ctx context.Context, id string) error

	CreateImage(ctx context.Context, img *ArchiveImage) error
	GetImageByID(ctx context.Context, id string) (*ArchiveImage, error)
	ListImages(ctx context.Context, yearID string) ([]*ArchiveImage, error)
	DeleteImage(ctx context.Context, id string) error
	DeleteImagesByYear(ctx context.Context, yearID string) (int64, error)
}

// ArchiveService manages archive years and their photos.
type ArchiveService interface {
	AddYear(ctx context.Context, year, month, totalDays int) (*ArchiveYear, error)
	ListYears(ctx context.Context) ([]*ArchiveYear, error)
	DeleteYear(ctx context.Context, id string) error
	UploadImages(ctx context.Context, yearID, dayLabel string, files []*UploadedFile) ([]*ArchiveImage, error)
	ListImages(ctx context.Context, yearID string) ([]*ArchiveImage, error)
	DeleteImage(ctx context.Context, id string) error
}
