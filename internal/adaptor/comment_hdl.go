package adaptor

import (
	"errors"
	"net/http"

	"movie-reviews/internal/dto/request"
	"movie-reviews/internal/usecase"
	"movie-reviews/pkg/utils"
	"movie-reviews/pkg/view"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CommentHandler struct {
	service usecase.CommentService
	movies  usecase.MovieService
	view    *view.Renderer
	log     *zap.Logger
}

func NewCommentHandler(service usecase.CommentService, movies usecase.MovieService, renderer *view.Renderer, log *zap.Logger) *CommentHandler {
	return &CommentHandler{
		service: service,
		movies:  movies,
		view:    renderer,
		log:     log.With(zap.String("handler", "comment")),
	}
}

// Create handles /movies/{id}/reviews/{reviewID}/comments/new
//
// A rejected form re-renders the movie page with the field errors under the
// review that was commented on.
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")
	reviewID := chi.URLParam(r, "reviewID")

	review, err := h.service.GetReview(r.Context(), movieID, reviewID)
	if err != nil {
		h.handleServiceError(w, r, err, "find review")
		return
	}

	if r.Method != http.MethodPost {
		utils.Redirect(w, r, moviePath(movieID))
		return
	}

	authorID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.Redirect(w, r, moviePath(movieID))
		return
	}

	req := request.CommentRequest{
		Body:   r.PostFormValue("body"),
		Parent: r.PostFormValue("parent"),
	}

	_, err = h.service.CreateComment(r.Context(), movieID, reviewID, authorID, &req)
	if err == nil {
		utils.Redirect(w, r, moviePath(movieID))
		return
	}

	fields := usecase.FieldErrors(err)
	if fields == nil {
		h.handleServiceError(w, r, err, "create comment")
		return
	}

	detail, err := h.movies.GetMovieDetail(r.Context(), movieID)
	if err != nil {
		h.handleServiceError(w, r, err, "reload movie")
		return
	}

	h.view.Render(w, r, http.StatusOK, "show.html", view.H{
		"title":   detail.Movie.Name,
		"movie":   detail.Movie,
		"reviews": detail.Reviews,
		"comment_form": &view.CommentForm{
			ReviewID: review.ID,
			Body:     req.Body,
			Errors:   fields,
		},
	})
}

// handleServiceError handles different types of errors
func (h *CommentHandler) handleServiceError(w http.ResponseWriter, r *http.Request, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		h.log.Debug(operation+" failed - not found", zap.Error(err))
		h.view.NotFound(w, r)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		h.view.Error(w, r, http.StatusInternalServerError, "Something went wrong. Please try again later.")
	}
}
