package wire

import (
	"movie-reviews/internal/adaptor"
	"movie-reviews/internal/data/repository"
	"movie-reviews/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PAGES ====================
	r.Get("/signup", authHandler.SignupPage)
	r.Post("/signup", authHandler.Signup)
	r.Get(loginPath, authHandler.LoginPage)
	r.Post(loginPath, authHandler.Login)
	r.Post("/logout", authHandler.Logout)

	// ==================== API ====================
	r.Post("/api/login", authHandler.APILogin)
}
