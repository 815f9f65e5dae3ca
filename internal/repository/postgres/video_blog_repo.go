package postgres

import (
	"context"
	"database/sql"

	"festivalcms/internal/domain"
)

const videoColumns = `id, title, video_type, youtube_url, video_url, added_at`

type videoBlogRepository struct {
	DB *sql.DB
}

func NewVideoBlogRepository(db *sql.DB) domain.VideoBlogRepository {
	return &videoBlogRepository{DB: db}
}

func scanVideo(row interface{ Scan(...any) error }) (*domain.VideoBlog, error) {
	v := &domain.VideoBlog{}
	var videoType string
	if err := row.Scan(&v.ID, &v.Title, &videoType, &v.YoutubeURL, &v.VideoURL, &v.AddedAt); err != nil {
		return nil, err
	}
	v.VideoType = domain.VideoType(videoType)
	return v, nil
}

func (r *videoBlogRepository) Create(ctx context.Context, v *domain.VideoBlog) error {
	query := `
		INSERT INTO video_blogs (title, video_type, youtube_url, video_url, added_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	return conn(ctx, r.DB).QueryRowContext(ctx, query, v.Title, string(v.VideoType), v.YoutubeURL, v.VideoURL, v.AddedAt).Scan(&v.ID)
}

func (r *videoBlogRepository) GetByID(ctx context.Context, id string) (*domain.VideoBlog, error) {
	v, err := scanVideo(conn(ctx, r.DB).QueryRowContext(ctx, `SELECT `+videoColumns+` FROM video_blogs WHERE id = $1`, id))
	if err != nil {
		return nil, noRows(err)
	}
	return v, nil
}

// List returns entries newest first. An empty videoType matches every entry.
func (r *videoBlogRepository) List(ctx context.Context, videoType domain.VideoType) ([]*domain.VideoBlog, error) {
	query := `SELECT ` + videoColumns + ` FROM video_blogs WHERE ($1 = '' OR video_type = $1) ORDER BY added_at DESC`
	rows, err := conn(ctx, r.DB).QueryContext(ctx, query, string(videoType))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]*domain.VideoBlog, 0)
	for rows.Next() {
		v, err := scanVideo(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *videoBlogRepository) Update(ctx context.Context, v *domain.VideoBlog) error {
	query := `UPDATE video_blogs SET title = $1, video_type = $2, youtube_url = $3, video_url = $4, added_at = $5 WHERE id = $6`
	return affected(conn(ctx, r.DB).ExecContext(ctx, query, v.Title, string(v.VideoType), v.YoutubeURL, v.VideoURL, v.AddedAt, v.ID))
}

func (r *videoBlogRepository) Delete(ctx context.Context, id string) error {
	return affected(conn(ctx, r.DB).ExecContext(ctx, `DELETE FROM video_blogs WHERE id = $1`, id))
}
