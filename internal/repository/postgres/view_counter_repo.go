package postgres

import (
	"context"
	"database/sql"
	"time"

	"festivalcms/internal/domain"
)

type viewCounterRepository struct {
	DB *sql.DB
}

func NewViewCounterRepository(db *sql.DB) domain.ViewCounterRepository {
	return &viewCounterRepository{DB: db}
}

// RecordVisit counts one view for day and, when visitorID was not seen that day yet,
// one unique visitor.
func (r *viewCounterRepository) RecordVisit(ctx context.Context, day time.Time, visitorID string) error {
	query := `
		WITH visitor AS (
			INSERT INTO page_visitors (day, visitor_id) VALUES ($1, $2)
			ON CONFLICT DO NOTHING
			RETURNING 1
		)
		INSERT INTO page_views (day, views, unique_visitors)
		VALUES ($1, 1, (SELECT COUNT(*) FROM visitor))
		ON CONFLICT (day) DO UPDATE
		SET views = page_views.views + 1,
		    unique_visitors = page_views.unique_visitors + EXCLUDED.unique_visitors
	`
	_, err := conn(ctx, r.DB).ExecContext(ctx, query, day, visitorID)
	return err
}

func (r *viewCounterRepository) List(ctx context.Context) ([]*domain.DailyViews, error) {
	rows, err := conn(ctx, r.DB).QueryContext(ctx, `SELECT day, views, unique_visitors FROM page_views ORDER BY day`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]*domain.DailyViews, 0)
	for rows.Next() {
		v := &domain.DailyViews{}
		if err := rows.Scan(&v.Date, &v.Views, &v.UniqueVisitors); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
