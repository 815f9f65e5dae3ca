package controllers

import (
	"log/slog"
	"net/http"
	"time"

	"festivalcms/internal/delivery/http/helpers"
	"festivalcms/internal/domain"
)

// NewsImageField is the multipart field carrying a post cover image.
const NewsImageField = "image_url"

type NewsController struct {
	Logger  *slog.Logger
	Service domain.NewsService
}

func NewNewsController(logger *slog.Logger, svc domain.NewsService) *NewsController {
	return &NewsController{Logger: logger, Service: svc}
}

// CategoryRequest is the body of addCategory.
type CategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

// parseDate accepts an RFC 3339 timestamp or a plain YYYY-MM-DD date. Empty input is nil.
func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *NewsController) input(w http.ResponseWriter, form *helpers.Form, image *domain.UploadedFile) (domain.NewsInput, bool) {
	published, err := parseDate(form.Value("publishedDate"))
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "publishedDate must be YYYY-MM-DD or RFC 3339")
		return domain.NewsInput{}, false
	}
	return domain.NewsInput{
		CategoryID:    form.Value("categoryId"),
		Author:        form.Value("author"),
		Title:         form.Value("title"),
		ContentType:   form.Value("contentType"),
		Link:          form.Value("link"),
		Contents:      form.Value("contents"),
		PublishedDate: published,
		Image:         image,
	}, true
}

// AddPost godoc
// @Summary Add a news link or blog post
// @Description contentType link requires link; blog requires contents.
// @Tags newsAndBlog
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param categoryId formData string true "Category ID"
// @Param title formData string true "Title"
// @Param contentType formData string true "link or blog"
// @Param author formData string false "Author"
// @Param link formData string false "External link"
// @Param contents formData string false "Blog contents"
// @Param publishedDate formData string false "Publication date"
// @Param image_url formData file false "Cover image"
// @Success 201 {object} helpers.APIResponse "data contains the post"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /newsAndBlog/addNewsAndBlog [post]
func (c *NewsController) AddPost(w http.ResponseWriter, r *http.Request) {
	form, image, ok := openForm(w, r, NewsImageField, helpers.ImageExts)
	if !ok {
		return
	}
	defer form.Close()
	in, ok := c.input(w, form, image)
	if !ok {
		return
	}
	post, err := c.Service.AddPost(r.Context(), in)
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "category")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, post)
}

// ListPosts godoc
// @Summary List news and blog posts, newest first
// @Tags newsAndBlog
// @Produce json
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 10, max 100)"
// @Success 200 {object} helpers.APIResponse "data contains items and pagination"
// @Router /newsAndBlog/getNewsAndBlog [get]
func (c *NewsController) ListPosts(w http.ResponseWriter, r *http.Request) {
	params := helpers.ParsePagination(r)
	posts, total, err := c.Service.ListPosts(r.Context(), params)
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, helpers.Page[*domain.NewsAndBlog]{
		Items:      posts,
		Pagination: helpers.NewPaginationMeta(params, total),
	})
}

// GetPost godoc
// @Summary Get a news or blog post
// @Tags newsAndBlog
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Success 200 {object} helpers.APIResponse "data contains the post"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /newsAndBlog/getNewsAndBlogById/{id} [get]
func (c *NewsController) GetPost(w http.ResponseWriter, r *http.Request) {
	post, err := c.Service.GetPost(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "post")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, post)
}

// GetBlog godoc
// @Summary Get a blog post
// @Description Link posts are reported as not found.
// @Tags newsAndBlog
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} helpers.APIResponse "data contains the post"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /newsAndBlog/getBlogById/{id} [get]
func (c *NewsController) GetBlog(w http.ResponseWriter, r *http.Request) {
	post, err := c.Service.GetBlog(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "blog")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, post)
}

// UpdatePost godoc
// @Summary Update a news or blog post
// @Tags newsAndBlog
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Success 200 {object} helpers.APIResponse "data contains the post"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /newsAndBlog/updateNewsAndBlog/{id} [post]
func (c *NewsController) UpdatePost(w http.ResponseWriter, r *http.Request) {
	form, image, ok := openForm(w, r, NewsImageField, helpers.ImageExts)
	if !ok {
		return
	}
	defer form.Close()
	in, ok := c.input(w, form, image)
	if !ok {
		return
	}
	post, err := c.Service.UpdatePost(r.Context(), r.PathValue("id"), in)
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "post")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, post)
}

// DeletePost godoc
// @Summary Delete a news or blog post
// @Tags newsAndBlog
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Success 200 {object} helpers.APIResponse
// @Router /newsAndBlog/deleteNewsAndBlog/{id} [delete]
func (c *NewsController) DeletePost(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.DeletePost(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(c.Logger, w, r, err, "post")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, MessageResponse{Message: "Post deleted successfully"})
}

// AddCategory godoc
// @Summary Add a post category
// @Tags newsAndBlog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CategoryRequest true "Category"
// @Success 201 {object} helpers.APIResponse "data contains the category"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /newsAndBlog/addCategory [post]
func (c *NewsController) AddCategory(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	cat, err := c.Service.AddCategory(r.Context(), req.Name)
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, cat)
}

// ListCategories godoc
// @Summary List post categories
// @Tags newsAndBlog
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains categories"
// @Router /newsAndBlog/getCategory [get]
func (c *NewsController) ListCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := c.Service.ListCategories(r.Context())
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, cats)
}
