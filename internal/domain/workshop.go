package domain

import (
	"context"
	"time"
)

// Workshop is a registration-based session linked to an external sign-up form.
// swagger:model Workshop
type Workshop struct {
	ID                  string    `json:"id"`
	EventID             string    `json:"eventId"`
	Name                string    `json:"name"`
	About               string    `json:"about"`
	ImageURL            string    `json:"imageUrl"`
	RegistrationFormURL string    `json:"registrationFormUrl"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// WorkshopInput carries the fields of a create or update.
type WorkshopInput struct {
	Name                string
	About               string
	RegistrationFormURL string
	Image               *UploadedFile
}

// WorkshopRepository defines the interface for workshop storage.
type WorkshopRepository interface {
	Create(ctx context.Context, w *Workshop) error
	GetByID(ctx context.Context, id string) (*Workshop, error)
	List(ctx context.Context) ([]*Workshop, error)
	Update(ctx context.Context, w *Workshop) error
	Delete(ctx context.Context, id string) error
}

// WorkshopService manages workshops.
type WorkshopService interface {
	AddWorkshop(ctx context.Context, eventID string, in WorkshopInput) (*Workshop, error)
	ListWorkshops(ctx context.Context) ([]*Workshop, error)
	UpdateWorkshop(ctx context.Context, id string, in WorkshopInput) (*Workshop, error)
	DeleteWorkshop(ctx context.Context, id string) error
}
