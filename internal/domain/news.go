package domain

import (
	"context"
	"time"
)

// ContentType distinguishes external news links from hosted blog posts.
type ContentType string

const (
	ContentLink ContentType = "link"
	ContentBlog ContentType = "blog"
)

// DefaultAuthor is used when a post is created without an author.
const DefaultAuthor = "Arunachal literature"

// Category groups news and blog posts. Names are unique.
// swagger:model Category
type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewsAndBlog is either a link to external news or a hosted blog post.
// swagger:model NewsAndBlog
type NewsAndBlog struct {
	ID            string      `json:"id"`
	CategoryID    string      `json:"categoryId"`
	Author        string      `json:"author"`
	Title         string      `json:"title"`
	ImageURL      string      `json:"imageUrl"`
	ContentType   ContentType `json:"contentType"`
	Link          string      `json:"link,omitempty"`
	Contents      string      `json:"contents,omitempty"`
	PublishedDate time.Time   `json:"publishedDate"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}

// NewsInput carries the fields of a create or update.
type NewsInput struct {
	CategoryID    string
	Author        string
	Title         string
	ContentType   string
	Link          string
	Contents      string
	PublishedDate *time.Time
	Image         *UploadedFile
}

// NewsRepository defines the interface for news, blog and category storage.
type NewsRepository interface {
	Create(ctx context.Context, n *NewsAndBlog) error
	GetByID(ctx context.Context, id string) (*NewsAndBlog, error)
	List(ctx context.Context, params PaginationParams) ([]*NewsAndBlog, int, error)
	Update(ctx context.Context, n *NewsAndBlog) error
	Delete(ctx context.Context, id string) error

	CreateCategory(ctx context.Context, c *Category) error
	GetCategoryByID(ctx context.Context, id string) (*Category, error)
	ListCategories(ctx context.Context) ([]*Category, error)
}

// NewsService manages news links, blog posts and their categories.
type NewsService interface {
	AddPost(ctx context.Context, in NewsInput) (*NewsAndBlog, error)
	ListPosts(ctx context.Context, params PaginationParams) ([]*NewsAndBlog, int, error)
	GetPost(ctx context.Context, id string) (*NewsAndBlog, error)
	GetBlog(ctx context.Context, id string) (*NewsAndBlog, error)
	UpdatePost(ctx context.Context, id string, in NewsInput) (*NewsAndBlog, error)
	DeletePost(ctx context.Context, id string) error
	AddCategory(ctx context.Context, name string) (*Category, error)
	ListCategories(ctx context.Context) ([]*Category, error)
}
