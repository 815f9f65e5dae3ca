package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"festivalcms/internal/delivery/http/helpers"
	"festivalcms/internal/delivery/http/middleware"
	"festivalcms/internal/domain"
)

// AddUserRequest is the request body for POST /onboarding/addUser
type AddUserRequest struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6,max=128"`
	ConfirmPassword string `json:"confirmPassword"`
	Role            string `json:"role" validate:"omitempty,oneof=admin user"`
}

// Validate implements Validator.
func (a AddUserRequest) Validate() []string {
	if a.ConfirmPassword != "" && a.ConfirmPassword != a.Password {
		return []string{"passwords do not match"}
	}
	return nil
}

// EditUserRequest is the request body for PUT /onboarding/editUser/{userId}. Omitted fields are unchanged.
type EditUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=6,max=128"`
	Role     *string `json:"role" validate:"omitempty,oneof=admin user"`
}

func (e EditUserRequest) update() domain.UserUpdate {
	upd := domain.UserUpdate{Name: e.Name, Email: e.Email, Password: e.Password}
	if e.Role != nil {
		role := domain.Role(strings.ToLower(*e.Role))
		upd.Role = &role
	}
	return upd
}

type UserController struct {
	Logger  *slog.Logger
	Service domain.UserService
}

func NewUserController(logger *slog.Logger, svc domain.UserService) *UserController {
	return &UserController{Logger: logger, Service: svc}
}

// AddUser godoc
// @Summary Add a staff user
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body AddUserRequest true "User data"
// @Success 201 {object} helpers.APIResponse "data contains the user"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /onboarding/addUser [post]
func (c *UserController) AddUser(w http.ResponseWriter, r *http.Request) {
	var req AddUserRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	user, err := c.Service.AddUser(r.Context(), strings.TrimSpace(req.Name), req.Email, req.Password, domain.Role(req.Role))
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, user)
}

// GetUsers godoc
// @Summary List staff users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains users"
// @Router /onboarding/getUsers [get]
func (c *UserController) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := c.Service.ListUsers(r.Context())
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, users)
}

// GetMyProfile godoc
// @Summary Get the caller's profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains the user"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /onboarding/getMyProfile [get]
func (c *UserController) GetMyProfile(w http.ResponseWriter, r *http.Request) {
	p, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	user, err := c.Service.GetUser(r.Context(), p.UserID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "user")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, user)
}

// EditUser godoc
// @Summary Edit a user
// @Description Users may edit themselves; admins may edit anyone and change roles.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User ID"
// @Param body body EditUserRequest true "Fields to change"
// @Success 200 {object} helpers.APIResponse "data contains the user"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /onboarding/editUser/{userId} [put]
func (c *UserController) EditUser(w http.ResponseWriter, r *http.Request) {
	p, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	var req EditUserRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	user, err := c.Service.EditUser(r.Context(), p, r.PathValue("userId"), req.update())
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "user")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, user)
}

// DeleteUser godoc
// @Summary Delete a user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User ID"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /onboarding/deleteUser/{userId} [delete]
func (c *UserController) DeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.DeleteUser(r.Context(), r.PathValue("userId")); err != nil {
		writeServiceError(c.Logger, w, r, err, "user")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, MessageResponse{Message: "User deleted successfully"})
}
