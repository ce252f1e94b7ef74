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

// ReviewHandler serves the review form actions. Every route sits behind
// RequireLogin, so a user is always present in the context. Rejected input
// and actions on someone else's review go back to the movie page without a
// message.
type ReviewHandler struct {
	service usecase.ReviewService
	view    *view.Renderer
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, renderer *view.Renderer, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		view:    renderer,
		log:     log.With(zap.String("handler", "review")),
	}
}

// Create handles /movies/{id}/reviews/create
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")

	if r.Method != http.MethodPost {
		utils.Redirect(w, r, moviePath(movieID))
		return
	}

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.Redirect(w, r, moviePath(movieID))
		return
	}

	req := request.ReviewRequest{Comment: r.PostFormValue("comment")}

	if _, err := h.service.CreateReview(r.Context(), movieID, userID, &req); err != nil {
		h.handleServiceError(w, r, err, movieID, "create review")
		return
	}

	utils.Redirect(w, r, moviePath(movieID))
}

// Edit handles /movies/{id}/reviews/{reviewID}/edit
func (h *ReviewHandler) Edit(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")
	reviewID := chi.URLParam(r, "reviewID")

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.Redirect(w, r, moviePath(movieID))
		return
	}

	review, err := h.service.GetOwnedReview(r.Context(), reviewID, userID)
	if err != nil {
		h.handleServiceError(w, r, err, movieID, "edit review")
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.view.Render(w, r, http.StatusOK, "edit_review.html", view.H{
			"title":  "Edit Review",
			"review": review,
		})
		return

	case http.MethodPost:
		req := request.ReviewRequest{Comment: r.PostFormValue("comment")}
		if _, err := h.service.UpdateReview(r.Context(), reviewID, userID, &req); err != nil {
			h.handleServiceError(w, r, err, movieID, "update review")
			return
		}
	}

	utils.Redirect(w, r, moviePath(movieID))
}

// Delete handles GET|POST /movies/{id}/reviews/{reviewID}/delete
func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")
	reviewID := chi.URLParam(r, "reviewID")

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.Redirect(w, r, moviePath(movieID))
		return
	}

	if err := h.service.DeleteReview(r.Context(), reviewID, userID); err != nil {
		h.handleServiceError(w, r, err, movieID, "delete review")
		return
	}

	utils.Redirect(w, r, moviePath(movieID))
}

// handleServiceError handles different types of errors
func (h *ReviewHandler) handleServiceError(w http.ResponseWriter, r *http.Request, err error, movieID, operation string) {
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		h.log.Debug(operation+" failed - not found", zap.Error(err))
		h.view.NotFound(w, r)

	case errors.Is(err, usecase.ErrNotOwner),
		errors.Is(err, usecase.ErrValidation):
		h.log.Debug(operation+" rejected", zap.Error(err))
		utils.Redirect(w, r, moviePath(movieID))

	default:
		h.log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		h.view.Error(w, r, http.StatusInternalServerError, "Something went wrong. Please try again later.")
	}
}
