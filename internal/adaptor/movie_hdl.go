package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"movie-reviews/internal/dto/request"
	"movie-reviews/internal/usecase"
	"movie-reviews/pkg/utils"
	"movie-reviews/pkg/view"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MovieHandler struct {
	service usecase.MovieService
	view    *view.Renderer
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, renderer *view.Renderer, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		view:    renderer,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// Index handles GET /movies?search=
func (h *MovieHandler) Index(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")

	movies, err := h.service.ListMovies(r.Context(), search)
	if err != nil {
		h.handleServiceError(w, r, err, "list movies")
		return
	}

	h.view.Render(w, r, http.StatusOK, "index.html", view.H{
		"title":  "Movies",
		"movies": movies,
		"search": search,
	})
}

// Show handles GET /movies/{id}
func (h *MovieHandler) Show(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")

	detail, err := h.service.GetMovieDetail(r.Context(), movieID)
	if err != nil {
		h.handleServiceError(w, r, err, "show movie")
		return
	}

	h.view.Render(w, r, http.StatusOK, "show.html", view.H{
		"title":   detail.Movie.Name,
		"movie":   detail.Movie,
		"reviews": detail.Reviews,
	})
}

// CreateMovie handles POST /api/admin/movies (admin only)
func (h *MovieHandler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var req request.MovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	movie, err := h.service.CreateMovie(r.Context(), &req)
	if err != nil {
		h.handleAPIError(w, err, "create movie")
		return
	}

	utils.ResponseCreated(w, "Movie created", movie)
}

// UpdateMovie handles PUT /api/admin/movies/{id} (admin only)
func (h *MovieHandler) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")

	var req request.MovieUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	movie, err := h.service.UpdateMovie(r.Context(), movieID, &req)
	if err != nil {
		h.handleAPIError(w, err, "update movie")
		return
	}

	utils.ResponseSuccess(w, "Movie updated", movie)
}

// DeleteMovie handles DELETE /api/admin/movies/{id} (admin only)
func (h *MovieHandler) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")

	if err := h.service.DeleteMovie(r.Context(), movieID); err != nil {
		h.handleAPIError(w, err, "delete movie")
		return
	}

	utils.ResponseSuccess(w, "Movie deleted", nil)
}

// handleServiceError renders the error page for the HTML routes
func (h *MovieHandler) handleServiceError(w http.ResponseWriter, r *http.Request, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		h.log.Debug(operation+" failed - not found", zap.Error(err))
		h.view.NotFound(w, r)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		h.view.Error(w, r, http.StatusInternalServerError, "Something went wrong. Please try again later.")
	}
}

// handleAPIError answers the admin JSON routes
func (h *MovieHandler) handleAPIError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, "Movie not found")

	case errors.Is(err, usecase.ErrValidation):
		h.log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, "Validation failed", usecase.FieldErrors(err))

	default:
		h.log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
