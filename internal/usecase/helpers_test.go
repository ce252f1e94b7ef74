package usecase

import (
	"context"
	"testing"
	"time"

	"movie-reviews/internal/data/entity"
	"movie-reviews/internal/data/repository"
	"movie-reviews/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) (*Service, *repository.Repository) {
	t.Helper()
	repo := repository.NewMemoryRepository(zap.NewNop())
	config := &utils.Config{
		Session: utils.SessionConfig{CookieName: "session_token", ExpiryHours: 1},
	}
	return NewService(repo, config, zap.NewNop()), repo
}

func seedUser(t *testing.T, repo *repository.Repository, username string) *entity.User {
	t.Helper()
	now := time.Now()
	user := &entity.User{
		Base:     entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Username: username,
		Email:    username + "@example.com",
		Role:     entity.RoleMember,
		IsActive: true,
	}
	require.NoError(t, repo.User.Create(context.Background(), user))
	return user
}

func seedMovie(t *testing.T, repo *repository.Repository, name string) *entity.Movie {
	t.Helper()
	now := time.Now()
	movie := &entity.Movie{
		Base: entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Name: name,
	}
	require.NoError(t, repo.Movie.Create(context.Background(), movie))
	return movie
}

func seedReview(t *testing.T, repo *repository.Repository, movie *entity.Movie, user *entity.User, body string, date time.Time) *entity.Review {
	t.Helper()
	review := &entity.Review{ID: uuid.New(), MovieID: movie.ID, UserID: user.ID, Comment: body, Date: date}
	require.NoError(t, repo.Review.Create(context.Background(), review))
	return review
}

func seedComment(t *testing.T, repo *repository.Repository, review *entity.Review, author *entity.User, body string, at time.Time) *entity.Comment {
	t.Helper()
	comment := &entity.Comment{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: at},
		ReviewID:   review.ID,
		AuthorID:   author.ID,
		Body:       body,
	}
	require.NoError(t, repo.Comment.Create(context.Background(), comment))
	return comment
}

func countComments(t *testing.T, repo *repository.Repository, reviewIDs ...uuid.UUID) int {
	t.Helper()
	comments, err := repo.Comment.FindByReviewIDs(context.Background(), reviewIDs)
	require.NoError(t, err)
	return len(comments)
}
