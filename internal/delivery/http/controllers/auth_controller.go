package controllers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"festivalcms/internal/delivery/http/helpers"
	"festivalcms/internal/delivery/http/middleware"
	"festivalcms/internal/domain"
)

// LoginRequest is the request body for POST /onboarding/login
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is the response body for POST /onboarding/login
type LoginResponse struct {
	Token     string       `json:"token"`
	TokenType string       `json:"tokenType"`
	User      *domain.User `json:"user"`
}

type AuthController struct {
	Logger       *slog.Logger
	Service      domain.AuthService
	TokenExpiry  time.Duration
	CookieSecure bool
}

func NewAuthController(logger *slog.Logger, svc domain.AuthService, tokenExpiry time.Duration, cookieSecure bool) *AuthController {
	return &AuthController{Logger: logger, Service: svc, TokenExpiry: tokenExpiry, CookieSecure: cookieSecure}
}

// Login godoc
// @Summary Log in
// @Description Authenticate with email and password. Returns a JWT and also sets it as the httpOnly "token" cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Login credentials"
// @Success 200 {object} helpers.APIResponse "data contains token and user"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /onboarding/login [post]
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	token, user, err := c.Service.Login(r.Context(), strings.TrimSpace(req.Email), req.Password)
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "")
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.TokenCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(c.TokenExpiry.Seconds()),
		HttpOnly: true,
		Secure:   c.CookieSecure,
		SameSite: http.SameSiteStrictMode,
	})
	helpers.WriteJSONSuccess(w, http.StatusOK, LoginResponse{Token: token, TokenType: "Bearer", User: user})
}

// Logout godoc
// @Summary Log out
// @Description Clears the token cookie.
// @Tags auth
// @Produce json
// @Success 200 {object} helpers.APIResponse
// @Router /onboarding/logout [post]
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.TokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.CookieSecure,
		SameSite: http.SameSiteStrictMode,
	})
	helpers.WriteJSONSuccess(w, http.StatusOK, MessageResponse{Message: "Logged out"})
}
