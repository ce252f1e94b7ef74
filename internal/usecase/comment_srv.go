package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"movie-reviews/internal/data/entity"
	"movie-reviews/internal/data/repository"
	"movie-reviews/internal/dto/request"
	"movie-reviews/internal/dto/response"
	"movie-reviews/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	msgUnknownParent = "Select a valid parent comment."
	msgInvalidParent = "Invalid parent comment."
)

type CommentService interface {
	// GetReview resolves a review under its movie, or ErrNotFound.
	GetReview(ctx context.Context, movieID, reviewID string) (*response.ReviewResponse, error)
	CreateComment(ctx context.Context, movieID, reviewID string, authorID uuid.UUID, req *request.CommentRequest) (*response.CommentResponse, error)
}

type commentService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCommentService(repo *repository.Repository, log *zap.Logger) CommentService {
	return &commentService{
		repo: repo,
		log:  log.With(zap.String("service", "comment")),
	}
}

func (s *commentService) GetReview(ctx context.Context, movieID, reviewID string) (*response.ReviewResponse, error) {
	review, err := s.findReview(ctx, movieID, reviewID)
	if err != nil {
		return nil, err
	}

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

// CreateComment trims and validates the form, then requires a parent (when given) to
// belong to the same review. Rejections return a *ValidationError with a
// message per field and write nothing.
func (s *commentService) CreateComment(ctx context.Context, movieID, reviewID string, authorID uuid.UUID, req *request.CommentRequest) (*response.CommentResponse, error) {
	review, err := s.findReview(ctx, movieID, reviewID)
	if err != nil {
		return nil, err
	}

	req.Body = strings.TrimSpace(req.Body)
	fields := utils.ValidateStruct(req)
	if fields == nil {
		fields = make(map[string]string)
	}

	var parent *entity.Comment
	if _, bad := fields["parent"]; !bad && req.Parent != "" {
		if parentID, perr := uuid.Parse(req.Parent); perr == nil {
			parent, err = s.repo.Comment.FindByID(ctx, parentID)
			if err != nil {
				return nil, fmt.Errorf("find parent comment %s: %w", req.Parent, err)
			}
		}
		if parent == nil {
			fields["parent"] = msgUnknownParent
		}
	}

	if len(fields) == 0 && parent != nil && parent.ReviewID != review.ID {
		s.log.Warn("Reply to comment of another review rejected",
			zap.String("review_id", review.ID.String()),
			zap.String("parent_id", parent.ID.String()),
			zap.String("parent_review_id", parent.ReviewID.String()),
		)
		fields["parent"] = msgInvalidParent
	}

	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	comment := &entity.Comment{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		ReviewID: review.ID,
		AuthorID: authorID,
		Body:     req.Body,
	}
	if parent != nil {
		comment.ParentID = &parent.ID
	}

	if err := s.repo.Comment.Create(ctx, comment); err != nil {
		s.log.Error("Failed to create comment",
			zap.Error(err),
			zap.String("review_id", review.ID.String()),
			zap.String("author_id", authorID.String()),
		)
		return nil, fmt.Errorf("create comment: %w", err)
	}

	s.log.Info("Comment created",
		zap.String("comment_id", comment.ID.String()),
		zap.String("review_id", review.ID.String()),
		zap.String("author_id", authorID.String()),
		zap.Bool("reply", parent != nil),
	)

	resp := response.CommentToResponse(comment)
	return &resp, nil
}

func (s *commentService) findReview(ctx context.Context, movieID, reviewID string) (*entity.Review, error) {
	movieUUID, err := parseID("movie", movieID)
	if err != nil {
		return nil, err
	}
	reviewUUID, err := parseID("review", reviewID)
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

	review, err := s.repo.Review.FindByIDAndMovie(ctx, reviewUUID, movieUUID)
	if err != nil {
		return nil, fmt.Errorf("find review %s: %w", reviewID, err)
	}
	if review == nil {
		return nil, fmt.Errorf("review %s of movie %s: %w", reviewID, movieID, ErrNotFound)
	}

	return review, nil
}
