package domain

import (
	"context"
	"time"
)

// ContactMessage is a message submitted through the public contact form.
// swagger:model ContactMessage
type ContactMessage struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Message     string    `json:"message"`
	SenderMails []string  `json:"senderMail"`
	CreatedAt   time.Time `json:"createdAt"`
}

// SenderMail is a staff inbox that receives contact-form notifications.
// swagger:model SenderMail
type SenderMail struct {
	ID   string `json:"id"`
	Mail string `json:"mail"`
}

// ContactSubmission reports the stored message and whether every notification went out.
type ContactSubmission struct {
	Contact   *ContactMessage `json:"contact"`
	EmailSent bool            `json:"emailSent"`
}

// ContactRepository defines the interface for contact message and sender mail storage.
type ContactRepository interface {
	CreateMessage(ctx context.Context, m *ContactMessage) error

	CreateSender(ctx context.Context, s *SenderMail) error
	GetSenderByID(ctx context.Context, id string) (*SenderMail, error)
	ListSenders(ctx context.Context) ([]*SenderMail, error)
	UpdateSender(ctx context.Context, s *SenderMail) error
	DeleteSender(ctx context.Context, id string) error
}

// ContactService handles contact-form submissions and the notification inbox list.
type ContactService interface {
	Submit(ctx context.Context, name, email, phone, message string) (*ContactSubmission, error)
	AddSender(ctx context.Context, mail string) (*SenderMail, error)
	ListSenders(ctx context.Context) ([]*SenderMail, error)
	UpdateSender(ctx context.Context, id, mail string) (*SenderMail, error)
	DeleteSender(ctx context.Context, id string) error
}
