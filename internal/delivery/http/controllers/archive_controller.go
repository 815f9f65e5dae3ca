package controllers

import (
	"log/slog"
	"net/http"

	"festivalcms/internal/delivery/http/helpers"
	"festivalcms/internal/domain"
)

// ArchiveImageField is the multipart field carrying archive photos.
const ArchiveImageField = "image_url"

type ArchiveController struct {
	Logger  *slog.Logger
	Service domain.ArchiveService
}

func NewArchiveController(logger *slog.Logger, svc domain.ArchiveService) *ArchiveController {
	return &ArchiveController{Logger: logger, Service: svc}
}

// ArchiveYearRequest is the body of addYear.
type ArchiveYearRequest struct {
	Year      int `json:"year" validate:"required,min=1900,max=9999"`
	Month     int `json:"month" validate:"required,min=1,max=12"`
	TotalDays int `json:"totalDays" validate:"required,min=1,max=31"`
}

// AddYear godoc
// @Summary Add an archive year
// @Tags archive
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body ArchiveYearRequest true "Year"
// @Success 201 {object} helpers.APIResponse "data contains the year"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /archive/addYear [post]
func (c *ArchiveController) AddYear(w http.ResponseWriter, r *http.Request) {
	var req ArchiveYearRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	year, err := c.Service.AddYear(r.Context(), req.Year, req.Month, req.TotalDays)
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, year)
}

// ListYears godoc
// @Summary List archive years
// @Tags archive
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains years"
// @Router /archive/getYear [get]
func (c *ArchiveController) ListYears(w http.ResponseWriter, r *http.Request) {
	years, err := c.Service.ListYears(r.Context())
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, years)
}

// DeleteYear godoc
// @Summary Delete an archive year and all of its images
// @Tags archive
// @Produce json
// @Security BearerAuth
// @Param yearId path string true "Year ID"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /archive/deleteYear/{yearId} [delete]
func (c *ArchiveController) DeleteYear(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.DeleteYear(r.Context(), r.PathValue("yearId")); err != nil {
		writeServiceError(c.Logger, w, r, err, "year")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, MessageResponse{Message: "Year deleted successfully"})
}

// UploadImages godoc
// @Summary Upload images to an archive year
// @Tags archive
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param yearId path string true "Year ID"
// @Param dayLabel formData string true "Festival day label"
// @Param image_url formData file true "Images (up to 10)"
// @Success 201 {object} helpers.APIResponse "data contains the stored images"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /archive/uploadImages/{yearId} [post]
func (c *ArchiveController) UploadImages(w http.ResponseWriter, r *http.Request) {
	form, ok := helpers.ParseForm(w, r, helpers.MaxUploadBytes)
	if !ok {
		return
	}
	defer form.Close()
	files, err := form.Files(ArchiveImageField, helpers.ImageExts, domain.MaxArchiveUpload)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	images, err := c.Service.UploadImages(r.Context(), r.PathValue("yearId"), form.Value("dayLabel"), files)
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "year")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, images)
}

// ListImages godoc
// @Summary List the images of an archive year
// @Tags archive
// @Produce json
// @Param yearId query string true "Year ID"
// @Success 200 {object} helpers.APIResponse "data contains images"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /archive/getImages [get]
func (c *ArchiveController) ListImages(w http.ResponseWriter, r *http.Request) {
	yearID, ok := requireQuery(w, r, "yearId")
	if !ok {
		return
	}
	images, err := c.Service.ListImages(r.Context(), yearID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "year")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, images)
}

// DeleteImage godoc
// @Summary Delete an archive image
// @Tags archive
// @Produce json
// @Security BearerAuth
// @Param imageId path string true "Image ID"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /archive/deleteImage/{imageId} [delete]
func (c *ArchiveController) DeleteImage(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.DeleteImage(r.Context(), r.PathValue("imageId")); err != nil {
		writeServiceError(c.Logger, w, r, err, "image")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, MessageResponse{Message: "Image deleted successfully"})
}
