package controllers

import (
	"log/slog"
	"net/http"

	"festivalcms/internal/delivery/http/helpers"
	"festivalcms/internal/domain"
)

// Multipart fields for each media kind.
const (
	BannerField   = "image_url"
	BrochureField = "pdf"
)

// MediaController serves one media kind. The router mounts one instance for banners and
// one for brochures.
type MediaController struct {
	Logger  *slog.Logger
	Service domain.MediaService
	Kind    domain.MediaKind
	field   string
	exts    []string
}

func NewBannerController(logger *slog.Logger, svc domain.MediaService) *MediaController {
	return &MediaController{Logger: logger, Service: svc, Kind: domain.MediaBanner, field: BannerField, exts: helpers.ImageExts}
}

func NewBrochureController(logger *slog.Logger, svc domain.MediaService) *MediaController {
	return &MediaController{Logger: logger, Service: svc, Kind: domain.MediaBrochure, field: BrochureField, exts: helpers.PDFExts}
}

func (c *MediaController) requireFile(w http.ResponseWriter, r *http.Request) (*helpers.Form, *domain.UploadedFile, bool) {
	form, file, ok := openForm(w, r, c.field, c.exts)
	if !ok {
		return nil, nil, false
	}
	if file == nil {
		form.Close()
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing file field "+c.field)
		return nil, nil, false
	}
	return form, file, true
}

// Add godoc
// @Summary Upload a banner or brochure
// @Description Banners: POST /homePage/addBanner with image_url. Brochures: POST /event/addPdf with pdf.
// @Tags media
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Success 201 {object} helpers.APIResponse "data contains the media record"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /homePage/addBanner [post]
// @Router /event/addPdf [post]
func (c *MediaController) Add(w http.ResponseWriter, r *http.Request) {
	form, file, ok := c.requireFile(w, r)
	if !ok {
		return
	}
	defer form.Close()
	m, err := c.Service.Add(r.Context(), c.Kind, file)
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, m)
}

// List godoc
// @Summary List banners or brochures
// @Tags media
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains media records"
// @Router /homePage/getBanner [get]
// @Router /event/getEventBroucher [get]
func (c *MediaController) List(w http.ResponseWriter, r *http.Request) {
	items, err := c.Service.List(r.Context(), c.Kind)
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, items)
}

// Replace godoc
// @Summary Replace a banner or brochure file
// @Tags media
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "Media ID"
// @Success 200 {object} helpers.APIResponse "data contains the media record"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /homePage/updateBanner/{id} [post]
// @Router /event/updateEventBroucher/{id} [post]
func (c *MediaController) Replace(w http.ResponseWriter, r *http.Request) {
	form, file, ok := c.requireFile(w, r)
	if !ok {
		return
	}
	defer form.Close()
	m, err := c.Service.Replace(r.Context(), c.Kind, r.PathValue("id"), file)
	if err != nil {
		writeServiceError(c.Logger, w, r, err, string(c.Kind))
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, m)
}

// Delete godoc
// @Summary Delete a banner or brochure
// @Tags media
// @Produce json
// @Security BearerAuth
// @Param id path string true "Media ID"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /homePage/deleteBanner/{id} [delete]
// @Router /event/deleteEventBroucher/{id} [delete]
func (c *MediaController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.Delete(r.Context(), c.Kind, r.PathValue("id")); err != nil {
		writeServiceError(c.Logger, w, r, err, string(c.Kind))
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, MessageResponse{Message: "Deleted successfully"})
}
