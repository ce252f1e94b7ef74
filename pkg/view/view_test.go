package view

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"movie-reviews/internal/dto/response"
	"movie-reviews/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newRenderer(t *testing.T) *Renderer {
	t.Helper()
	v, err := New(zap.NewNop())
	require.NoError(t, err)
	return v
}

func TestRender_Index(t *testing.T) {
	v := newRenderer(t)
	req := httptest.NewRequest(http.MethodGet, "/movies?search=<b>", nil)
	rec := httptest.NewRecorder()

	v.Render(rec, req, http.StatusOK, "index.html", H{
		"title":  "Movies",
		"search": "<b>",
		"movies": []response.MovieResponse{{ID: uuid.NewString(), Name: "Heat"}},
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	body := rec.Body.String()
	assert.Contains(t, body, "Heat")
	assert.Contains(t, body, "&lt;b&gt;")
	assert.NotContains(t, body, `value="<b>"`)
	assert.Contains(t, body, "Login")
}

func TestRender_ShowWithCommentErrors(t *testing.T) {
	v := newRenderer(t)
	userID := uuid.New()
	movieID := uuid.NewString()
	reviewID := uuid.NewString()

	req := httptest.NewRequest(http.MethodPost, "/movies/"+movieID, nil)
	req = req.WithContext(utils.SetUserContext(context.Background(), userID, "alice", "member"))
	rec := httptest.NewRecorder()

	v.Render(rec, req, http.StatusBadRequest, "show.html", H{
		"title": "Heat",
		"movie": response.MovieResponse{ID: movieID, Name: "Heat"},
		"reviews": []response.ReviewResponse{{
			ID:       reviewID,
			MovieID:  movieID,
			UserID:   userID.String(),
			Username: "alice",
			Comment:  "tense",
			Date:     time.Now(),
			Comments: []response.CommentResponse{{ID: uuid.NewString(), AuthorName: "bob", Body: "agreed"}},
		}},
		"comment_form": &CommentForm{
			ReviewID: reviewID,
			Body:     "hi",
			Errors:   map[string]string{"parent": "Invalid parent comment."},
		},
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Invalid parent comment.")
	assert.Contains(t, body, "agreed")
	assert.Contains(t, body, "/reviews/"+reviewID+"/edit")
	assert.Contains(t, body, "Signed in as alice")
}

func TestRender_ShowAnonymous(t *testing.T) {
	v := newRenderer(t)
	movieID := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/movies/"+movieID, nil)
	rec := httptest.NewRecorder()

	v.Render(rec, req, http.StatusOK, "show.html", H{
		"title":   "Heat",
		"movie":   response.MovieResponse{ID: movieID, Name: "Heat"},
		"reviews": []response.ReviewResponse{},
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "No reviews yet.")
	assert.NotContains(t, body, "Write a review")
}

func TestRender_SignupWithoutForm(t *testing.T) {
	v := newRenderer(t)
	rec := httptest.NewRecorder()

	v.Render(rec, httptest.NewRequest(http.MethodGet, "/signup", nil), http.StatusOK, "signup.html", H{"title": "Sign up"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Create account")
}

func TestNotFoundAndError(t *testing.T) {
	v := newRenderer(t)

	rec := httptest.NewRecorder()
	v.NotFound(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Not Found")

	rec = httptest.NewRecorder()
	v.Error(rec, httptest.NewRequest(http.MethodGet, "/", nil), http.StatusInternalServerError, "boom")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "boom")
}

func TestRender_UnknownTemplate(t *testing.T) {
	v := newRenderer(t)
	rec := httptest.NewRecorder()

	v.Render(rec, httptest.NewRequest(http.MethodGet, "/", nil), http.StatusOK, "missing.html", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
