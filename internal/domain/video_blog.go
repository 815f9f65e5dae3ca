package domain

import (
	"context"
	"time"
)

// VideoType distinguishes embedded YouTube videos from uploaded video files.
type VideoType string

const (
	VideoYoutube VideoType = "youtube"
	VideoRaw     VideoType = "raw"
)

// VideoBlog is a video entry shown on the video blog page.
// swagger:model VideoBlog
type VideoBlog struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	VideoType  VideoType `json:"videoType"`
	YoutubeURL string    `json:"youtubeUrl,omitempty"`
	VideoURL   string    `json:"videoUrl,omitempty"`
	AddedAt    time.Time `json:"addedAt"`
}

// VideoBlogInput carries the fields of a create or update.
type VideoBlogInput struct {
	Title      string
	VideoType  string
	YoutubeURL string
	AddedAt    *time.Time
	Video      *UploadedFile
}

// VideoBlogRepository defines the interface for video blog storage.
type VideoBlogRepository interface {
	Create(ctx context.Context, v *VideoBlog) error
	GetByID(ctx context.Context, id string) (*VideoBlog, error)
	List(ctx context.Context, videoType VideoType) ([]*VideoBlog, error)
	Update(ctx context.Context, v *VideoBlog) error
	Delete(ctx context.Context, id string) error
}

// VideoBlogService manages video blog entries. An empty VideoType lists all entries.
type VideoBlogService interface {
	AddVideo(ctx context.Context, in VideoBlogInput) (*VideoBlog, error)
	ListVideos(ctx context.Context, videoType VideoType) ([]*VideoBlog, error)
	GetVideo(ctx context.Context, id string, videoType VideoType) (*VideoBlog, error)
	UpdateVideo(ctx context.Context, id string, in VideoBlogInput) (*VideoBlog, error)
	DeleteVideo(ctx context.Context, id string) error
}
