package controllers

import (
	"log/slog"
	"net/http"

	"festivalcms/internal/delivery/http/helpers"
	"festivalcms/internal/domain"
)

// VideoField is the multipart field carrying an uploaded video file.
const VideoField = "video"

type VideoBlogController struct {
	Logger  *slog.Logger
	Service domain.VideoBlogService
}

func NewVideoBlogController(logger *slog.Logger, svc domain.VideoBlogService) *VideoBlogController {
	return &VideoBlogController{Logger: logger, Service: svc}
}

func (c *VideoBlogController) input(w http.ResponseWriter, form *helpers.Form, video *domain.UploadedFile) (domain.VideoBlogInput, bool) {
	added, err := parseDate(form.Value("addedAt"))
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "addedAt must be YYYY-MM-DD or RFC 3339")
		return domain.VideoBlogInput{}, false
	}
	return domain.VideoBlogInput{
		Title:      form.Value("title"),
		VideoType:  form.Value("videoType"),
		YoutubeURL: form.Value("youtubeUrl"),
		AddedAt:    added,
		Video:      video,
	}, true
}

// AddVideo godoc
// @Summary Add a video blog entry
// @Description videoType youtube requires youtubeUrl; raw requires a video file.
// @Tags videoBlog
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Title"
// @Param videoType formData string true "youtube or raw"
// @Param youtubeUrl formData string false "YouTube URL"
// @Param addedAt formData string false "Date added"
// @Param video formData file false "Video file"
// @Success 201 {object} helpers.APIResponse "data contains the entry"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /videoBlog/addVideoBlog [post]
func (c *VideoBlogController) AddVideo(w http.ResponseWriter, r *http.Request) {
	form, video, ok := openForm(w, r, VideoField, helpers.VideoExts)
	if !ok {
		return
	}
	defer form.Close()
	in, ok := c.input(w, form, video)
	if !ok {
		return
	}
	v, err := c.Service.AddVideo(r.Context(), in)
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, v)
}

func (c *VideoBlogController) list(w http.ResponseWriter, r *http.Request, videoType domain.VideoType) {
	videos, err := c.Service.ListVideos(r.Context(), videoType)
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, videos)
}

// ListVideos godoc
// @Summary List all video blog entries
// @Tags videoBlog
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains entries"
// @Router /videoBlog/getVideoBlog [get]
func (c *VideoBlogController) ListVideos(w http.ResponseWriter, r *http.Request) {
	c.list(w, r, "")
}

// ListYoutube godoc
// @Summary List YouTube entries
// @Tags videoBlog
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains entries"
// @Router /videoBlog/getYoutubeVideo [get]
func (c *VideoBlogController) ListYoutube(w http.ResponseWriter, r *http.Request) {
	c.list(w, r, domain.VideoYoutube)
}

// ListRaw godoc
// @Summary List uploaded video entries
// @Tags videoBlog
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains entries"
// @Router /videoBlog/getRawVideo [get]
func (c *VideoBlogController) ListRaw(w http.ResponseWriter, r *http.Request) {
	c.list(w, r, domain.VideoRaw)
}

func (c *VideoBlogController) get(w http.ResponseWriter, r *http.Request, videoType domain.VideoType) {
	v, err := c.Service.GetVideo(r.Context(), r.PathValue("videoId"), videoType)
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "video")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, v)
}

// GetVideo godoc
// @Summary Get a video blog entry
// @Tags videoBlog
// @Produce json
// @Param videoId path string true "Video ID"
// @Success 200 {object} helpers.APIResponse "data contains the entry"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /videoBlog/getVideoById/{videoId} [get]
func (c *VideoBlogController) GetVideo(w http.ResponseWriter, r *http.Request) {
	c.get(w, r, "")
}

// GetRawVideo godoc
// @Summary Get an uploaded video entry
// @Tags videoBlog
// @Produce json
// @Param videoId path string true "Video ID"
// @Success 200 {object} helpers.APIResponse "data contains the entry"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /videoBlog/getRawVideoById/{videoId} [get]
func (c *VideoBlogController) GetRawVideo(w http.ResponseWriter, r *http.Request) {
	c.get(w, r, domain.VideoRaw)
}

// UpdateVideo godoc
// @Summary Update a video blog entry
// @Tags videoBlog
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param videoId path string true "Video ID"
// @Success 200 {object} helpers.APIResponse "data contains the entry"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /videoBlog/updateVideo/{videoId} [post]
func (c *VideoBlogController) UpdateVideo(w http.ResponseWriter, r *http.Request) {
	form, video, ok := openForm(w, r, VideoField, helpers.VideoExts)
	if !ok {
		return
	}
	defer form.Close()
	in, ok := c.input(w, form, video)
	if !ok {
		return
	}
	v, err := c.Service.UpdateVideo(r.Context(), r.PathValue("videoId"), in)
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "video")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, v)
}

// DeleteVideo godoc
// @Summary Delete a video blog entry
// @Tags videoBlog
// @Produce json
// @Security BearerAuth
// @Param videoId path string true "Video ID"
// @Success 200 {object} helpers.APIResponse
// @Router /videoBlog/deleteVideo/{videoId} [delete]
func (c *VideoBlogController) DeleteVideo(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.DeleteVideo(r.Context(), r.PathValue("videoId")); err != nil {
		writeServiceError(c.Logger, w, r, err, "video")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, MessageResponse{Message: "Video deleted successfully"})
}
