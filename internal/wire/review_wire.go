package wire

import (
	"movie-reviews/internal/adaptor"
	"movie-reviews/internal/data/repository"
	"movie-reviews/pkg/middleware"
	"movie-reviews/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReview(
	r chi.Router,
	reviewHandler *adaptor.ReviewHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require login) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireLogin(loginPath))

		// Any method; only a POST with a comment creates anything
		r.HandleFunc("/movies/{id}/reviews/create", reviewHandler.Create)

		// GET shows the form, POST saves it (owner only)
		r.HandleFunc("/movies/{id}/reviews/{reviewID}/edit", reviewHandler.Edit)

		// Owner only
		r.Get("/movies/{id}/reviews/{reviewID}/delete", reviewHandler.Delete)
		r.Post("/movies/{id}/reviews/{reviewID}/delete", reviewHandler.Delete)
	})
}
