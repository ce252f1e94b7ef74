package response

import (
	"movie-reviews/internal/data/entity"
	"time"
)

type MovieResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	PosterURL   *string   `json:"poster_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// MovieDetailResponse is the movie page: the movie and its reviews, each
// carrying its own comments.
type MovieDetailResponse struct {
	Movie   MovieResponse    `json:"movie"`
	Reviews []ReviewResponse `json:"reviews"`
}

func MovieToResponse(movie *entity.Movie) MovieResponse {
	return MovieResponse{
		ID:          movie.ID.String(),
		Name:        movie.Name,
		Description: movie.Description,
		PosterURL:   movie.PosterURL,
		CreatedAt:   movie.CreatedAt,
	}
}
