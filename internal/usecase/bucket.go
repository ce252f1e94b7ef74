package usecase

import (
	"movie-reviews/internal/data/entity"
	"movie-reviews/internal/dto/response"

	"github.com/google/uuid"
)

// bucketComments groups comments by review id in a single pass, keeping the
// order comments arrive in. Every review gets a key, with an empty slice when
// it has no comments.
func bucketComments(reviews []*entity.Review, comments []*entity.Comment) map[uuid.UUID][]*entity.Comment {
	buckets := make(map[uuid.UUID][]*entity.Comment, len(reviews))
	for _, r := range reviews {
		buckets[r.ID] = []*entity.Comment{}
	}
	for _, c := range comments {
		buckets[c.ReviewID] = append(buckets[c.ReviewID], c)
	}
	return buckets
}

// attachComments converts reviews, in order, with their bucketed comments.
func attachComments(reviews []*entity.Review, buckets map[uuid.UUID][]*entity.Comment) []response.ReviewResponse {
	out := make([]response.ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		resp := response.ReviewToResponse(r)
		for _, c := range buckets[r.ID] {
			resp.Comments = append(resp.Comments, response.CommentToResponse(c))
		}
		out = append(out, resp)
	}
	return out
}
