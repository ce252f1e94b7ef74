package usecase

import (
	"context"
	"testing"
	"time"

	"movie-reviews/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewService_CreateReview(t *testing.T) {
	ctx := context.Background()
	srv, repo := newTestService(t)
	alice := seedUser(t, repo, "alice")
	movie := seedMovie(t, repo, "Heat")

	created, err := srv.Review.CreateReview(ctx, movie.ID.String(), alice.ID, &request.ReviewRequest{Comment: "Great"})
	require.NoError(t, err)
	assert.Equal(t, "Great", created.Comment)
	assert.Equal(t, alice.ID.String(), created.UserID)
	assert.WithinDuration(t, time.Now(), created.Date, time.Minute)

	detail, err := srv.Movie.GetMovieDetail(ctx, movie.ID.String())
	require.NoError(t, err)
	require.Len(t, detail.Reviews, 1)
	assert.Equal(t, "Great", detail.Reviews[0].Comment)
	assert.Equal(t, "alice", detail.Reviews[0].Username)
}

func TestReviewService_CreateReview_Rejected(t *testing.T) {
	ctx := context.Background()
	srv, repo := newTestService(t)
	alice := seedUser(t, repo, "alice")
	movie := seedMovie(t, repo, "Heat")

	_, err := srv.Review.CreateReview(ctx, movie.ID.String(), alice.ID, &request.ReviewRequest{})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, FieldErrors(err), "comment")

	_, err = srv.Review.CreateReview(ctx, uuid.NewString(), alice.ID, &request.ReviewRequest{Comment: "Great"})
	assert.ErrorIs(t, err, ErrNotFound)

	reviews, err := repo.Review.FindByMovieID(ctx, movie.ID)
	require.NoError(t, err)
	assert.Empty(t, reviews)
}

func TestReviewService_UpdateReview(t *testing.T) {
	ctx := context.Background()
	srv, repo := newTestService(t)
	alice := seedUser(t, repo, "alice")
	bob := seedUser(t, repo, "bob")
	movie := seedMovie(t, repo, "Heat")
	review := seedReview(t, repo, movie, alice, "original", time.Now())

	t.Run("non-owner cannot change the body", func(t *testing.T) {
		_, err := srv.Review.UpdateReview(ctx, review.ID.String(), bob.ID, &request.ReviewRequest{Comment: "hijacked"})
		assert.ErrorIs(t, err, ErrNotOwner)

		stored, err := repo.Review.FindByID(ctx, review.ID)
		require.NoError(t, err)
		assert.Equal(t, "original", stored.Comment)
	})

	t.Run("owner with empty body", func(t *testing.T) {
		_, err := srv.Review.UpdateReview(ctx, review.ID.String(), alice.ID, &request.ReviewRequest{})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("owner updates body only", func(t *testing.T) {
		updated, err := srv.Review.UpdateReview(ctx, review.ID.String(), alice.ID, &request.ReviewRequest{Comment: "revised"})
		require.NoError(t, err)
		assert.Equal(t, "revised", updated.Comment)

		stored, err := repo.Review.FindByID(ctx, review.ID)
		require.NoError(t, err)
		assert.Equal(t, "revised", stored.Comment)
		assert.Equal(t, movie.ID, stored.MovieID)
		assert.Equal(t, alice.ID, stored.UserID)
		assert.True(t, review.Date.Equal(stored.Date))
	})

	t.Run("unknown review", func(t *testing.T) {
		_, err := srv.Review.UpdateReview(ctx, uuid.NewString(), alice.ID, &request.ReviewRequest{Comment: "x"})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestReviewService_GetOwnedReview(t *testing.T) {
	ctx := context.Background()
	srv, repo := newTestService(t)
	alice := seedUser(t, repo, "alice")
	bob := seedUser(t, repo, "bob")
	review := seedReview(t, repo, seedMovie(t, repo, "Heat"), alice, "mine", time.Now())

	got, err := srv.Review.GetOwnedReview(ctx, review.ID.String(), alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "mine", got.Comment)

	_, err = srv.Review.GetOwnedReview(ctx, review.ID.String(), bob.ID)
	assert.ErrorIs(t, err, ErrNotOwner)

	_, err = srv.Review.GetOwnedReview(ctx, "not-a-uuid", alice.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReviewService_DeleteReview(t *testing.T) {
	ctx := context.Background()
	srv, repo := newTestService(t)
	alice := seedUser(t, repo, "alice")
	bob := seedUser(t, repo, "bob")
	review := seedReview(t, repo, seedMovie(t, repo, "Heat"), alice, "mine", time.Now())
	seedComment(t, repo, review, bob, "reply", time.Now())

	err := srv.Review.DeleteReview(ctx, review.ID.String(), bob.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	stored, err := repo.Review.FindByID(ctx, review.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)

	require.NoError(t, srv.Review.DeleteReview(ctx, review.ID.String(), alice.ID))

	stored, err = repo.Review.FindByID(ctx, review.ID)
	require.NoError(t, err)
	assert.Nil(t, stored)
	assert.Zero(t, countComments(t, repo, review.ID))

	assert.ErrorIs(t, srv.Review.DeleteReview(ctx, review.ID.String(), alice.ID), ErrNotFound)
}
