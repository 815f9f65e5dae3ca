package controllers

import (
	"log/slog"
	"net/http"

	"festivalcms/internal/delivery/http/helpers"
	"festivalcms/internal/domain"
)

// WorkshopImageField is the multipart field carrying the workshop image.
const WorkshopImageField = "imageUrl"

var workshopImageExts = []string{".jpg", ".jpeg", ".png"}

type WorkshopController struct {
	Logger  *slog.Logger
	Service domain.WorkshopService
}

func NewWorkshopController(logger *slog.Logger, svc domain.WorkshopService) *WorkshopController {
	return &WorkshopController{Logger: logger, Service: svc}
}

func workshopInput(form *helpers.Form, image *domain.UploadedFile) domain.WorkshopInput {
	return domain.WorkshopInput{
		Name:                form.Value("name"),
		About:               form.Value("about"),
		RegistrationFormURL: form.Value("registrationFormUrl"),
		Image:               image,
	}
}

// AddWorkshop godoc
// @Summary Add a workshop registration
// @Tags registration
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param eventId path string true "Event ID"
// @Param name formData string true "Name"
// @Param about formData string false "About"
// @Param registrationFormUrl formData string true "Google Forms URL"
// @Param imageUrl formData file false "Image (jpg, jpeg, png)"
// @Success 201 {object} helpers.APIResponse "data contains the workshop"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /registration/addRegistration/{eventId} [post]
func (c *WorkshopController) AddWorkshop(w http.ResponseWriter, r *http.Request) {
	form, image, ok := openForm(w, r, WorkshopImageField, workshopImageExts)
	if !ok {
		return
	}
	defer form.Close()
	workshop, err := c.Service.AddWorkshop(r.Context(), r.PathValue("eventId"), workshopInput(form, image))
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "event")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, workshop)
}

// GetWorkshops godoc
// @Summary List workshops
// @Tags registration
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains workshops"
// @Router /registration/getRegistration [get]
func (c *WorkshopController) GetWorkshops(w http.ResponseWriter, r *http.Request) {
	workshops, err := c.Service.ListWorkshops(r.Context())
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, workshops)
}

// UpdateWorkshop godoc
// @Summary Update a workshop
// @Tags registration
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param workshopId path string true "Workshop ID"
// @Success 200 {object} helpers.APIResponse "data contains the workshop"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /registration/updateRegistration/{workshopId} [post]
func (c *WorkshopController) UpdateWorkshop(w http.ResponseWriter, r *http.Request) {
	form, image, ok := openForm(w, r, WorkshopImageField, workshopImageExts)
	if !ok {
		return
	}
	defer form.Close()
	workshop, err := c.Service.UpdateWorkshop(r.Context(), r.PathValue("workshopId"), workshopInput(form, image))
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "workshop")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, workshop)
}

// DeleteWorkshop godoc
// @Summary Delete a workshop
// @Tags registration
// @Produce json
// @Security BearerAuth
// @Param workshopId path string true "Workshop ID"
// @Success 200 {object} helpers.APIResponse
// @Router /registration/deleteRegistration/{workshopId} [delete]
func (c *WorkshopController) DeleteWorkshop(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.DeleteWorkshop(r.Context(), r.PathValue("workshopId")); err != nil {
		writeServiceError(c.Logger, w, r, err, "workshop")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, MessageResponse{Message: "Workshop deleted successfully"})
}
