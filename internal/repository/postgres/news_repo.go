package postgres

import (
	"context"
	"database/sql"

	"festivalcms/internal/domain"
)

const newsColumns = `id, category_id, author, title, image_url, content_type, link, contents, published_date, created_at, updated_at`

type newsRepository struct {
	DB *sql.DB
}

func NewNewsRepository(db *sql.DB) domain.NewsRepository {
	return &newsRepository{DB: db}
}

func scanNews(row interface{ Scan(...any) error }) (*domain.NewsAndBlog, error) {
	n := &domain.NewsAndBlog{}
	var contentType string
	err := row.Scan(&n.ID, &n.CategoryID, &n.Author, &n.Title, &n.ImageURL, &contentType, &n.Link, &n.Contents,
		&n.PublishedDate, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		return nil, err
	}
	n.ContentType = domain.ContentType(contentType)
	return n, nil
}

func (r *newsRepository) Create(ctx context.Context, n *domain.NewsAndBlog) error {
	query := `
		INSERT INTO news_and_blogs (category_id, author, title, image_url, content_type, link, contents, published_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`
	return conn(ctx, r.DB).QueryRowContext(ctx, query,
		n.CategoryID, n.Author, n.Title, n.ImageURL, string(n.ContentType), n.Link, n.Contents, n.PublishedDate, n.CreatedAt, n.UpdatedAt,
	).Scan(&n.ID)
}

func (r *newsRepository) GetByID(ctx context.Context, id string) (*domain.NewsAndBlog, error) {
	n, err := scanNews(conn(ctx, r.DB).QueryRowContext(ctx, `SELECT `+newsColumns+` FROM news_and_blogs WHERE id = $1`, id))
	if err != nil {
		return nil, noRows(err)
	}
	return n, nil
}

// List returns one page of posts, newest first, and the total number of posts.
func (r *newsRepository) List(ctx context.Context, params domain.PaginationParams) ([]*domain.NewsAndBlog, int, error) {
	db := conn(ctx, r.DB)
	var total int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM news_and_blogs`).Scan(&total); err != nil {
		return nil, 0, err
	}
	query := `SELECT ` + newsColumns + ` FROM news_and_blogs ORDER BY published_date DESC, id LIMIT $1 OFFSET $2`
	rows, err := db.QueryContext(ctx, query, params.Limit(), params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	out := make([]*domain.NewsAndBlog, 0)
	for rows.Next() {
		n, err := scanNews(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, n)
	}
	return out, total, rows.Err()
}

func (r *newsRepository) Update(ctx context.Context, n *domain.NewsAndBlog) error {
	query := `
		UPDATE news_and_blogs
		SET category_id = $1, author = $2, title = $3, image_url = $4, content_type = $5, link = $6, contents = $7,
		    published_date = $8, updated_at = $9
		WHERE id = $10
	`
	return affected(conn(ctx, r.DB).ExecContext(ctx, query,
		n.CategoryID, n.Author, n.Title, n.ImageURL, string(n.ContentType), n.Link, n.Contents, n.PublishedDate, n.UpdatedAt, n.ID))
}

func (r *newsRepository) Delete(ctx context.Context, id string) error {
	return affected(conn(ctx, r.DB).ExecContext(ctx, `DELETE FROM news_and_blogs WHERE id = $1`, id))
}

func (r *newsRepository) CreateCategory(ctx context.Context, c *domain.Category) error {
	query := `INSERT INTO categories (name, created_at, updated_at) VALUES ($1, $2, $3) RETURNING id`
	err := conn(ctx, r.DB).QueryRowContext(ctx, query, c.Name, c.CreatedAt, c.UpdatedAt).Scan(&c.ID)
	if isUniqueViolation(err) {
		return domain.ErrInvalidInput
	}
	return err
}

func (r *newsRepository) GetCategoryByID(ctx context.Context, id string) (*domain.Category, error) {
	c := &domain.Category{}
	query := `SELECT id, name, created_at, updated_at FROM categories WHERE id = $1`
	if err := conn(ctx, r.DB).QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, noRows(err)
	}
	return c, nil
}

func (r *newsRepository) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	rows, err := conn(ctx, r.DB).QueryContext(ctx, `SELECT id, name, created_at, updated_at FROM categories ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]*domain.Category, 0)
	for rows.Next() {
		c := &domain.Category{}
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
