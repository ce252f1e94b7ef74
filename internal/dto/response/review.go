package response

import (
	"movie-reviews/internal/data/entity"
	"time"
)

type ReviewResponse struct {
	ID       string            `json:"id"`
	MovieID  string            `json:"movie_id"`
	UserID   string            `json:"user_id"`
	Username string            `json:"username,omitempty"`
	Comment  string            `json:"comment"`
	Date     time.Time         `json:"date"`
	Comments []CommentResponse `json:"comments"`
}

// ReviewToResponse converts a review; comments are attached by the caller.
func ReviewToResponse(review *entity.Review) ReviewResponse {
	return ReviewResponse{
		ID:       review.ID.String(),
		MovieID:  review.MovieID.String(),
		UserID:   review.UserID.String(),
		Username: review.Username,
		Comment:  review.Comment,
		Date:     review.Date,
		Comments: []CommentResponse{},
	}
}
