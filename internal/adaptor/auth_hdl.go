package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"movie-reviews/internal/dto/request"
	"movie-reviews/internal/dto/response"
	"movie-reviews/internal/usecase"
	"movie-reviews/pkg/utils"
	"movie-reviews/pkg/view"

	"go.uber.org/zap"
)

const homePath = "/movies"

type AuthHandler struct {
	service usecase.AuthService
	view    *view.Renderer
	session utils.SessionConfig
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, renderer *view.Renderer, session utils.SessionConfig, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		view:    renderer,
		session: session,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// SignupPage handles GET /signup
func (h *AuthHandler) SignupPage(w http.ResponseWriter, r *http.Request) {
	h.view.Render(w, r, http.StatusOK, "signup.html", view.H{"title": "Sign up"})
}

// Signup handles POST /signup
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	req := request.RegisterRequest{
		Username: strings.TrimSpace(r.PostFormValue("username")),
		Email:    strings.TrimSpace(r.PostFormValue("email")),
		Password: r.PostFormValue("password"),
	}

	auth, err := h.service.Register(r.Context(), &req, sessionMeta(r))
	if err != nil {
		data := view.H{"title": "Sign up", "form": req}
		switch {
		case errors.Is(err, usecase.ErrValidation):
			data["errors"] = usecase.FieldErrors(err)
			h.view.Render(w, r, http.StatusBadRequest, "signup.html", data)

		case errors.Is(err, usecase.ErrAlreadyExists):
			h.log.Warn("signup failed - already exists", zap.Error(err))
			data["error"] = "That username or email is already taken."
			h.view.Render(w, r, http.StatusConflict, "signup.html", data)

		default:
			h.handleServiceError(w, r, err, "signup")
		}
		return
	}

	h.setSessionCookie(w, auth)
	utils.Redirect(w, r, homePath)
}

// LoginPage handles GET /login?next=
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	h.view.Render(w, r, http.StatusOK, "login.html", view.H{
		"title": "Login",
		"next":  safeNext(r.URL.Query().Get("next")),
	})
}

// Login handles POST /login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	req := request.LoginRequest{
		Username: strings.TrimSpace(r.PostFormValue("username")),
		Password: r.PostFormValue("password"),
	}
	next := safeNext(r.PostFormValue("next"))

	auth, err := h.service.Login(r.Context(), &req, sessionMeta(r))
	if err != nil {
		data := view.H{"title": "Login", "next": next, "username": req.Username}
		switch {
		case errors.Is(err, usecase.ErrValidation),
			errors.Is(err, usecase.ErrInvalidCredentials):
			data["error"] = "Invalid username or password."
			h.view.Render(w, r, http.StatusUnauthorized, "login.html", data)

		case errors.Is(err, usecase.ErrInactive):
			data["error"] = "This account is deactivated."
			h.view.Render(w, r, http.StatusForbidden, "login.html", data)

		default:
			h.handleServiceError(w, r, err, "login")
		}
		return
	}

	h.setSessionCookie(w, auth)
	utils.Redirect(w, r, next)
}

// Logout handles POST /logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if token, ok := utils.GetTokenFromContext(r.Context()); ok {
		if err := h.service.Logout(r.Context(), token); err != nil && !errors.Is(err, usecase.ErrNotFound) {
			h.handleServiceError(w, r, err, "logout")
			return
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.session.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	utils.Redirect(w, r, homePath)
}

// APILogin handles POST /api/login and returns the session token for use as
// a Bearer header.
func (h *AuthHandler) APILogin(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	auth, err := h.service.Login(r.Context(), &req, sessionMeta(r))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrValidation):
			utils.ResponseBadRequest(w, "Validation failed", usecase.FieldErrors(err))
		case errors.Is(err, usecase.ErrInvalidCredentials):
			utils.ResponseUnauthorized(w, "Invalid username or password")
		case errors.Is(err, usecase.ErrInactive):
			utils.ResponseForbidden(w, "Account is deactivated")
		default:
			h.log.Error("Failed to login", zap.Error(err), zap.String("operation", "api login"))
			utils.ResponseInternalError(w, "Internal server error")
		}
		return
	}

	utils.ResponseSuccess(w, "Login successful", auth)
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, auth *response.AuthResponse) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.session.CookieName,
		Value:    auth.Token,
		Path:     "/",
		Expires:  auth.ExpiresAt,
		MaxAge:   int(time.Until(auth.ExpiresAt).Seconds()),
		HttpOnly: true,
		Secure:   h.session.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

// safeNext keeps post-login redirects on this site.
func safeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.Contains(next, `\`) {
		return homePath
	}
	return next
}

// handleServiceError handles different types of errors
func (h *AuthHandler) handleServiceError(w http.ResponseWriter, r *http.Request, err error, operation string) {
	h.log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
	h.view.Error(w, r, http.StatusInternalServerError, "Something went wrong. Please try again later.")
}
