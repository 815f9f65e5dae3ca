package postgres

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"festivalcms/internal/domain"
)

type contactRepository struct {
	DB *sql.DB
}

func NewContactRepository(db *sql.DB) domain.ContactRepository {
	return &contactRepository{DB: db}
}

func (r *contactRepository) CreateMessage(ctx context.Context, m *domain.ContactMessage) error {
	query := `
		INSERT INTO contact_messages (name, email, phone, message, sender_mails, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	return conn(ctx, r.DB).QueryRowContext(ctx, query,
		m.Name, m.Email, m.Phone, m.Message, pq.Array(m.SenderMails), m.CreatedAt).Scan(&m.ID)
}

func (r *contactRepository) CreateSender(ctx context.Context, s *domain.SenderMail) error {
	err := conn(ctx, r.DB).QueryRowContext(ctx, `INSERT INTO sender_mails (mail) VALUES ($1) RETURNING id`, s.Mail).Scan(&s.ID)
	if isUniqueViolation(err) {
		return domain.ErrDuplicateEmail
	}
	return err
}

func (r *contactRepository) GetSenderByID(ctx context.Context, id string) (*domain.SenderMail, error) {
	s := &domain.SenderMail{}
	if err := conn(ctx, r.DB).QueryRowContext(ctx, `SELECT id, mail FROM sender_mails WHERE id = $1`, id).Scan(&s.ID, &s.Mail); err != nil {
		return nil, noRows(err)
	}
	return s, nil
}

func (r *contactRepository) ListSenders(ctx context.Context) ([]*domain.SenderMail, error) {
	rows, err := conn(ctx, r.DB).QueryContext(ctx, `SELECT id, mail FROM sender_mails ORDER BY mail`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]*domain.SenderMail, 0)
	for rows.Next() {
		s := &domain.SenderMail{}
		if err := rows.Scan(&s.ID, &s.Mail); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *contactRepository) UpdateSender(ctx context.Context, s *domain.SenderMail) error {
	err := affected(conn(ctx, r.DB).ExecContext(ctx, `UPDATE sender_mails SET mail = $1 WHERE id = $2`, s.Mail, s.ID))
	if isUniqueViolation(err) {
		return domain.ErrDuplicateEmail
	}
	return err
}

func (r *contactRepository) DeleteSender(ctx context.Context, id string) error {
	return affected(conn(ctx, r.DB).ExecContext(ctx, `DELETE FROM sender_mails WHERE id = $1`, id))
}
