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

// ReviewService takes the current user explicitly; callers resolve it from
// the session before calling in.
type ReviewService interface {
	CreateReview(ctx context.Context, movieID string, userID uuid.UUID, req *request.ReviewRequest) (*response.ReviewResponse, error)
	GetOwnedReview(ctx context.Context, reviewID string, userID uuid.UUID) (*response.ReviewResponse, error)
	UpdateReview(ctx context.Context, reviewID string, userID uuid.UUID, req *request.ReviewRequest) (*response.ReviewResponse, error)
	DeleteReview(ctx context.Context, reviewID string, userID uuid.UUID) error
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) CreateReview(ctx context.Context, movieID string, userID uuid.UUID, req *request.ReviewRequest) (*response.ReviewResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Debug("Create review rejected", zap.Any("errors", errs))
		return nil, &ValidationError{Fields: errs}
	}

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

	review := &entity.Review{
		ID:      uuid.New(),
		MovieID: movie.ID,
		UserID:  userID,
		Comment: req.Comment,
		Date:    time.Now(),
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		s.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("movie_id", movieID),
		)
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.log.Info("Review created",
		zap.String("review_id", review.ID.String()),
		zap.String("user_id", userID.String()),
		zap.String("movie_id", movieID),
	)

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *reviewService) GetOwnedReview(ctx context.Context, reviewID string, userID uuid.UUID) (*response.ReviewResponse, error) {
	review, err := s.findOwned(ctx, reviewID, userID)
	if err != nil {
		return nil, err
	}

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

// UpdateReview checks existence, then ownership, then the new body, and
// persists a copy of the review with only the body replaced.
func (s *reviewService) UpdateReview(ctx context.Context, reviewID string, userID uuid.UUID, req *request.ReviewRequest) (*response.ReviewResponse, error) {
	current, err := s.findOwned(ctx, reviewID, userID)
	if err != nil {
		return nil, err
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Debug("Update review rejected", zap.Any("errors", errs))
		return nil, &ValidationError{Fields: errs}
	}

	updated := *current
	updated.Comment = req.Comment

	if err := s.repo.Review.Update(ctx, &updated); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("review %s: %w", reviewID, ErrNotFound)
		}
		s.log.Error("Failed to update review",
			zap.Error(err),
			zap.String("review_id", reviewID),
		)
		return nil, fmt.Errorf("update review: %w", err)
	}

	s.log.Info("Review updated",
		zap.String("review_id", reviewID),
		zap.String("user_id", userID.String()),
	)

	resp := response.ReviewToResponse(&updated)
	return &resp, nil
}

// DeleteReview removes the review only when userID owns it. A review owned by
// someone else is reported as not found.
func (s *reviewService) DeleteReview(ctx context.Context, reviewID string, userID uuid.UUID) error {
	reviewUUID, err := parseID("review", reviewID)
	if err != nil {
		return err
	}

	if err := s.repo.Review.DeleteOwned(ctx, reviewUUID, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("review %s: %w", reviewID, ErrNotFound)
		}
		s.log.Error("Failed to delete review",
			zap.Error(err),
			zap.String("review_id", reviewID),
		)
		return fmt.Errorf("delete review: %w", err)
	}

	s.log.Info("Review deleted",
		zap.String("review_id", reviewID),
		zap.String("user_id", userID.String()),
	)

	return nil
}

// ==================== HELPER METHODS ====================

func (s *reviewService) findOwned(ctx context.Context, reviewID string, userID uuid.UUID) (*entity.Review, error) {
	reviewUUID, err := parseID("review", reviewID)
	if err != nil {
		return nil, err
	}

	review, err := s.repo.Review.FindByID(ctx, reviewUUID)
	if err != nil {
		return nil, fmt.Errorf("find review %s: %w", reviewID, err)
	}
	if review == nil {
		return nil, fmt.Errorf("review %s: %w", reviewID, ErrNotFound)
	}

	if !review.OwnedBy(userID) {
		s.log.Warn("Review access by non-owner",
			zap.String("review_id", reviewID),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("review %s: %w", reviewID, ErrNotOwner)
	}

	return review, nil
}
