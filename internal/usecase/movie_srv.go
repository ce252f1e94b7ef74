package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"movie-reviews/internal/data/entity"
	"movie-reviews/internal/data/repository"
	"movie-reviews/internal/dto/request"
	"movie-reviews/internal/dto/response"
	"movie-reviews/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MovieService interface {
	// Public pages
	ListMovies(ctx context.Context, search string) ([]response.MovieResponse, error)
	GetMovieDetail(ctx context.Context, movieID string) (*response.MovieDetailResponse, error)

	// Admin
	CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error)
	UpdateMovie(ctx context.Context, movieID string, req *request.MovieUpdateRequest) (*response.MovieResponse, error)
	DeleteMovie(ctx context.Context, movieID string) error
}

type movieService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMovieService(repo *repository.Repository, log *zap.Logger) MovieService {
	return &movieService{
		repo: repo,
		log:  log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) ListMovies(ctx context.Context, search string) ([]response.MovieResponse, error) {
	movies, err := s.repo.Movie.FindAll(ctx, search)
	if err != nil {
		s.log.Error("Failed to list movies", zap.Error(err), zap.String("search", search))
		return nil, fmt.Errorf("list movies: %w", err)
	}

	out := make([]response.MovieResponse, len(movies))
	for i, movie := range movies {
		out[i] = response.MovieToResponse(movie)
	}

	s.log.Debug("Movies listed",
		zap.String("search", search),
		zap.Int("count", len(out)),
	)

	return out, nil
}

// GetMovieDetail loads the movie, its reviews (oldest first) and all comments
// of those reviews in one query, then buckets the comments per review.
func (s *movieService) GetMovieDetail(ctx context.Context, movieID string) (*response.MovieDetailResponse, error) {
	movieUUID, err := parseID("movie", movieID)
	if err != nil {
		return nil, err
	}

	movie, err := s.repo.Movie.FindByID(ctx, movieUUID)
	if err != nil {
		return nil, fmt.Errorf("find movie %s: %w", movieID, err)
	}
	if movie == nil {
		return nil, fmt.Errorf("movie %s: %w", movieID, ErrNotFound)
	}

	reviews, err := s.repo.Review.FindByMovieID(ctx, movieUUID)
	if err != nil {
		s.log.Error("Failed to get movie reviews", zap.Error(err), zap.String("movie_id", movieID))
		return nil, fmt.Errorf("get movie reviews: %w", err)
	}

	reviewIDs := make([]uuid.UUID, len(reviews))
	for i, r := range reviews {
		reviewIDs[i] = r.ID
	}

	comments, err := s.repo.Comment.FindByReviewIDs(ctx, reviewIDs)
	if err != nil {
		s.log.Error("Failed to get review comments", zap.Error(err), zap.String("movie_id", movieID))
		return nil, fmt.Errorf("get review comments: %w", err)
	}

	buckets := bucketComments(reviews, comments)

	return &response.MovieDetailResponse{
		Movie:   response.MovieToResponse(movie),
		Reviews: attachComments(reviews, buckets),
	}, nil
}

func (s *movieService) CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create movie validation failed", zap.Any("errors", errs))
		return nil, &ValidationError{Fields: errs}
	}

	now := time.Now()
	movie := &entity.Movie{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        req.Name,
		Description: req.Description,
		PosterURL:   req.PosterURL,
	}

	if err := s.repo.Movie.Create(ctx, movie); err != nil {
		return nil, fmt.Errorf("create movie: %w", err)
	}

	s.log.Info("Movie created",
		zap.String("movie_id", movie.ID.String()),
		zap.String("name", movie.Name),
	)

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *movieService) UpdateMovie(ctx context.Context, movieID string, req *request.MovieUpdateRequest) (*response.MovieResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update movie validation failed", zap.Any("errors", errs))
		return nil, &ValidationError{Fields: errs}
	}

	movieUUID, err := parseID("movie", movieID)
	if err != nil {
		return nil, err
	}

	current, err := s.repo.Movie.FindByID(ctx, movieUUID)
	if err != nil {
		return nil, fmt.Errorf("find movie %s: %w", movieID, err)
	}
	if current == nil {
		return nil, fmt.Errorf("movie %s: %w", movieID, ErrNotFound)
	}

	updated := *current
	if req.Name != nil {
		updated.Name = *req.Name
	}
	if req.Description != nil {
		updated.Description = req.Description
	}
	if req.PosterURL != nil {
		updated.PosterURL = req.PosterURL
	}
	updated.UpdatedAt = time.Now()

	if err := s.repo.Movie.Update(ctx, &updated); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("movie %s: %w", movieID, ErrNotFound)
		}
		return nil, fmt.Errorf("update movie: %w", err)
	}

	s.log.Info("Movie updated", zap.String("movie_id", movieID))

	resp := response.MovieToResponse(&updated)
	return &resp, nil
}

func (s *movieService) DeleteMovie(ctx context.Context, movieID string) error {
	movieUUID, err := parseID("movie", movieID)
	if err != nil {
		return err
	}

	if err := s.repo.Movie.Delete(ctx, movieUUID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("movie %s: %w", movieID, ErrNotFound)
		}
		return fmt.Errorf("delete movie: %w", err)
	}

	return nil
}
