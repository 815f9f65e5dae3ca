package controllers

import (
	"log/slog"
	"net/http"

	"festivalcms/internal/delivery/http/helpers"
	"festivalcms/internal/domain"
)

// SpeakerImageField is the multipart field carrying the speaker portrait.
const SpeakerImageField = "image_url"

type SpeakerController struct {
	Logger  *slog.Logger
	Service domain.SpeakerService
}

func NewSpeakerController(logger *slog.Logger, svc domain.SpeakerService) *SpeakerController {
	return &SpeakerController{Logger: logger, Service: svc}
}

// AddSpeaker godoc
// @Summary Add a speaker to an event
// @Tags speakers
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param eventId path string true "Event ID"
// @Param name formData string true "Name"
// @Param about formData string false "About"
// @Param image_url formData file false "Portrait (jpg, jpeg, png, webp, gif)"
// @Success 201 {object} helpers.APIResponse "data contains the speaker"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /speaker/addSpeaker/{eventId} [post]
func (c *SpeakerController) AddSpeaker(w http.ResponseWriter, r *http.Request) {
	form, image, ok := openForm(w, r, SpeakerImageField, helpers.ImageExts)
	if !ok {
		return
	}
	defer form.Close()
	speaker, err := c.Service.AddSpeaker(r.Context(), r.PathValue("eventId"), domain.SpeakerInput{
		Name:  form.Value("name"),
		About: form.Value("about"),
		Image: image,
	})
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "event")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, speaker)
}

// GetSpeakers godoc
// @Summary List speakers
// @Tags speakers
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains speakers"
// @Router /speaker/getSpeaker [get]
func (c *SpeakerController) GetSpeakers(w http.ResponseWriter, r *http.Request) {
	speakers, err := c.Service.ListSpeakers(r.Context())
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, speakers)
}

// UpdateSpeaker godoc
// @Summary Update a speaker
// @Description Omitted fields are unchanged. A new portrait replaces the stored one.
// @Tags speakers
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param speakerId path string true "Speaker ID"
// @Param name formData string false "Name"
// @Param about formData string false "About"
// @Param image_url formData file false "Portrait"
// @Success 200 {object} helpers.APIResponse "data contains the speaker"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /speaker/updateSpeaker/{speakerId} [post]
func (c *SpeakerController) UpdateSpeaker(w http.ResponseWriter, r *http.Request) {
	form, image, ok := openForm(w, r, SpeakerImageField, helpers.ImageExts)
	if !ok {
		return
	}
	defer form.Close()
	speaker, err := c.Service.UpdateSpeaker(r.Context(), r.PathValue("speakerId"), domain.SpeakerInput{
		Name:  form.Value("name"),
		About: form.Value("about"),
		Image: image,
	})
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "speaker")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, speaker)
}

// DeleteSpeaker godoc
// @Summary Delete a speaker and their portrait
// @Tags speakers
// @Produce json
// @Security BearerAuth
// @Param speakerId path string true "Speaker ID"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /speaker/deleteSpeaker/{speakerId} [delete]
func (c *SpeakerController) DeleteSpeaker(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.DeleteSpeaker(r.Context(), r.PathValue("speakerId")); err != nil {
		writeServiceError(c.Logger, w, r, err, "speaker")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, MessageResponse{Message: "Speaker deleted successfully"})
}
