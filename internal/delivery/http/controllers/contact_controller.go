package controllers

import (
	"log/slog"
	"net/http"

	"festivalcms/internal/delivery/http/helpers"
	"festivalcms/internal/domain"
)

type ContactController struct {
	Logger  *slog.Logger
	Service domain.ContactService
}

func NewContactController(logger *slog.Logger, svc domain.ContactService) *ContactController {
	return &ContactController{Logger: logger, Service: svc}
}

// ContactRequest is the public contact-form body.
type ContactRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"omitempty,max=32"`
	Message string `json:"message" validate:"required,max=5000"`
}

// SenderMailRequest is the body of the sender mail endpoints.
type SenderMailRequest struct {
	Mail string `json:"mail" validate:"required,email"`
}

// ContactUs godoc
// @Summary Submit the contact form
// @Description Stores the message and notifies every sender mail. emailSent is false when any notification failed.
// @Tags sendMail
// @Accept json
// @Produce json
// @Param body body ContactRequest true "Message"
// @Success 201 {object} helpers.APIResponse "data contains contact and emailSent"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /sendMail/contactUsMail [post]
func (c *ContactController) ContactUs(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	sub, err := c.Service.Submit(r.Context(), req.Name, req.Email, req.Phone, req.Message)
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, sub)
}

// AddSender godoc
// @Summary Add a notification inbox
// @Tags sendMail
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body SenderMailRequest true "Mail"
// @Success 201 {object} helpers.APIResponse "data contains the sender mail"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /sendMail/addsenderMail [post]
func (c *ContactController) AddSender(w http.ResponseWriter, r *http.Request) {
	var req SenderMailRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	s, err := c.Service.AddSender(r.Context(), req.Mail)
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, s)
}

// ListSenders godoc
// @Summary List notification inboxes
// @Tags sendMail
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains sender mails"
// @Router /sendMail/getSenderMail [get]
func (c *ContactController) ListSenders(w http.ResponseWriter, r *http.Request) {
	senders, err := c.Service.ListSenders(r.Context())
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, senders)
}

// UpdateSender godoc
// @Summary Update a notification inbox
// @Tags sendMail
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param mailId path string true "Sender mail ID"
// @Param body body SenderMailRequest true "Mail"
// @Success 200 {object} helpers.APIResponse "data contains the sender mail"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /sendMail/updateSenderMail/{mailId} [post]
func (c *ContactController) UpdateSender(w http.ResponseWriter, r *http.Request) {
	var req SenderMailRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	s, err := c.Service.UpdateSender(r.Context(), r.PathValue("mailId"), req.Mail)
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "sender mail")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, s)
}

// DeleteSender godoc
// @Summary Delete a notification inbox
// @Tags sendMail
// @Produce json
// @Security BearerAuth
// @Param mailId path string true "Sender mail ID"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /sendMail/deleteSenderMail/{mailId} [delete]
func (c *ContactController) DeleteSender(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.DeleteSender(r.Context(), r.PathValue("mailId")); err != nil {
		writeServiceError(c.Logger, w, r, err, "sender mail")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, MessageResponse{Message: "Sender mail deleted successfully"})
}
