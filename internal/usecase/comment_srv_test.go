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

func TestCommentService_CreateComment(t *testing.T) {
	ctx := context.Background()
	srv, repo := newTestService(t)
	alice := seedUser(t, repo, "alice")
	bob := seedUser(t, repo, "bob")
	movie := seedMovie(t, repo, "Heat")
	review := seedReview(t, repo, movie, alice, "tense", time.Now())

	created, err := srv.Comment.CreateComment(ctx, movie.ID.String(), review.ID.String(), bob.ID, &request.CommentRequest{Body: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "hi", created.Body)
	assert.Equal(t, bob.ID.String(), created.AuthorID)
	assert.Equal(t, review.ID.String(), created.ReviewID)
	assert.Empty(t, created.ParentID)
	assert.Equal(t, 1, countComments(t, repo, review.ID))

	reply, err := srv.Comment.CreateComment(ctx, movie.ID.String(), review.ID.String(), alice.ID,
		&request.CommentRequest{Body: "hello back", Parent: created.ID})
	require.NoError(t, err)
	assert.Equal(t, created.ID, reply.ParentID)
	assert.Equal(t, 2, countComments(t, repo, review.ID))
}

func TestCommentService_CreateComment_Rejected(t *testing.T) {
	ctx := context.Background()
	srv, repo := newTestService(t)
	alice := seedUser(t, repo, "alice")
	movie := seedMovie(t, repo, "Heat")
	review := seedReview(t, repo, movie, alice, "tense", time.Now())
	otherReview := seedReview(t, repo, movie, alice, "long", time.Now())
	foreign := seedComment(t, repo, otherReview, alice, "elsewhere", time.Now())

	tests := []struct {
		name    string
		req     request.CommentRequest
		field   string
		message string
	}{
		{
			name:  "empty body",
			req:   request.CommentRequest{},
			field: "body",
		},
		{
			name:  "whitespace-only body",
			req:   request.CommentRequest{Body: "   \n\t"},
			field: "body",
		},
		{
			name:    "parent from another review",
			req:     request.CommentRequest{Body: "hi", Parent: foreign.ID.String()},
			field:   "parent",
			message: "Invalid parent comment.",
		},
		{
			name:    "unknown parent",
			req:     request.CommentRequest{Body: "hi", Parent: uuid.NewString()},
			field:   "parent",
			message: "Select a valid parent comment.",
		},
		{
			name:  "malformed parent",
			req:   request.CommentRequest{Body: "hi", Parent: "12"},
			field: "parent",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.req
			created, err := srv.Comment.CreateComment(ctx, movie.ID.String(), review.ID.String(), alice.ID, &req)
			assert.Nil(t, created)
			require.ErrorIs(t, err, ErrValidation)

			fields := FieldErrors(err)
			require.Contains(t, fields, tt.field)
			if tt.message != "" {
				assert.Equal(t, tt.message, fields[tt.field])
			}

			assert.Zero(t, countComments(t, repo, review.ID))
			assert.Equal(t, 1, countComments(t, repo, otherReview.ID))
		})
	}
}

func TestCommentService_ReviewMustBelongToMovie(t *testing.T) {
	ctx := context.Background()
	srv, repo := newTestService(t)
	alice := seedUser(t, repo, "alice")
	heat := seedMovie(t, repo, "Heat")
	ronin := seedMovie(t, repo, "Ronin")
	review := seedReview(t, repo, heat, alice, "tense", time.Now())

	_, err := srv.Comment.CreateComment(ctx, ronin.ID.String(), review.ID.String(), alice.ID, &request.CommentRequest{Body: "hi"})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = srv.Comment.CreateComment(ctx, heat.ID.String(), uuid.NewString(), alice.ID, &request.CommentRequest{Body: "hi"})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = srv.Comment.GetReview(ctx, ronin.ID.String(), review.ID.String())
	assert.ErrorIs(t, err, ErrNotFound)

	got, err := srv.Comment.GetReview(ctx, heat.ID.String(), review.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "tense", got.Comment)

	assert.Zero(t, countComments(t, repo, review.ID))
}

func TestCommentService_CreateComment_TrimsBody(t *testing.T) {
	ctx := context.Background()
	srv, repo := newTestService(t)
	alice := seedUser(t, repo, "alice")
	movie := seedMovie(t, repo, "Heat")
	review := seedReview(t, repo, movie, alice, "tense", time.Now())

	created, err := srv.Comment.CreateComment(ctx, movie.ID.String(), review.ID.String(), alice.ID,
		&request.CommentRequest{Body: "  agreed \n"})
	require.NoError(t, err)
	assert.Equal(t, "agreed", created.Body)
}

func TestCommentService_DeletedMovie(t *testing.T) {
	ctx := context.Background()
	srv, repo := newTestService(t)
	alice := seedUser(t, repo, "alice")
	movie := seedMovie(t, repo, "Heat")
	review := seedReview(t, repo, movie, alice, "tense", time.Now())
	require.NoError(t, repo.Movie.Delete(ctx, movie.ID))

	_, err := srv.Comment.GetReview(ctx, movie.ID.String(), review.ID.String())
	assert.ErrorIs(t, err, ErrNotFound)

	created, err := srv.Comment.CreateComment(ctx, movie.ID.String(), review.ID.String(), alice.ID,
		&request.CommentRequest{Body: "hi"})
	assert.Nil(t, created)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Zero(t, countComments(t, repo, review.ID))
}
