package adaptor

import (
	"net"
	"net/http"

	"movie-reviews/internal/dto/request"
	"movie-reviews/internal/usecase"
	"movie-reviews/pkg/utils"
	"movie-reviews/pkg/view"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	Movie   *MovieHandler
	Review  *ReviewHandler
	Comment *CommentHandler
}

func NewHandler(service *usecase.Service, renderer *view.Renderer, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, renderer, config.Session, log),
		Movie:   NewMovieHandler(service.Movie, renderer, log),
		Review:  NewReviewHandler(service.Review, renderer, log),
		Comment: NewCommentHandler(service.Comment, service.Movie, renderer, log),
	}
}

// moviePath is where every review and comment action lands afterwards.
func moviePath(movieID string) string {
	return "/movies/" + movieID
}

func sessionMeta(r *http.Request) request.SessionMeta {
	ip := r.RemoteAddr
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		ip = host
	}
	return request.SessionMeta{
		UserAgent: r.UserAgent(),
		IPAddress: ip,
	}
}
