package response

import (
	"movie-reviews/internal/data/entity"
	"time"
)

type CommentResponse struct {
	ID         string    `json:"id"`
	ReviewID   string    `json:"review_id"`
	AuthorID   string    `json:"author_id"`
	AuthorName string    `json:"author_name,omitempty"`
	ParentID   string    `json:"parent_id,omitempty"`
	Body       string    `json:"body"`
	CreatedAt  time.Time `json:"created_at"`
}

func CommentToResponse(comment *entity.Comment) CommentResponse {
	resp := CommentResponse{
		ID:         comment.ID.String(),
		ReviewID:   comment.ReviewID.String(),
		AuthorID:   comment.AuthorID.String(),
		AuthorName: comment.AuthorName,
		Body:       comment.Body,
		CreatedAt:  comment.CreatedAt,
	}
	if comment.ParentID != nil {
		resp.ParentID = comment.ParentID.String()
	}
	return resp
}
