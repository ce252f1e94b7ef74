package request

// ReviewRequest is the create/edit review form. Comment is the review body.
type ReviewRequest struct {
	Comment string `form:"comment" validate:"required"`
}
