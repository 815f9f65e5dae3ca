package domain

import (
	"context"
	"time"
)

// Speaker is a festival speaker with an optional portrait.
// swagger:model Speaker
type Speaker struct {
	ID        string    `json:"id"`
	EventID   string    `json:"eventId"`
	Name      string    `json:"name"`
	About     string    `json:"about"`
	ImageURL  string    `json:"imageUrl"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SpeakerInput carries the fields of a create or update. On update, empty strings keep
// the current value and a nil Image keeps the current portrait.
type SpeakerInput struct {
	Name  string
	About string
	Image *UploadedFile
}

// SpeakerRepository defines the interface for speaker storage.
type SpeakerRepository interface {
	Create(ctx context.Context, s *Speaker) error
	GetByID(ctx context.Context, id string) (*Speaker, error)
	List(ctx context.Context) ([]*Speaker, error)
	Update(ctx context.Context, s *Speaker) error
	Delete(ctx context.Context, id string) error
}

// SpeakerService manages speakers and their portraits.
type SpeakerService interface {
	AddSpeaker(ctx context.Context, eventID string, in SpeakerInput) (*Speaker, error)
	ListSpeakers(ctx context.Context) ([]*Speaker, error)
	UpdateSpeaker(ctx context.Context, id string, in SpeakerInput) (*Speaker, error)
	DeleteSpeaker(ctx context.Context, id string) error
}
