package request

// CommentRequest is the comment form. Parent is the hidden id of the comment
// being replied to, empty for a top-level comment.
type CommentRequest struct {
	Body   string `form:"body" validate:"required"`
	Parent string `form:"parent" validate:"omitempty,uuid"`
}
