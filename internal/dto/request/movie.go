package request

type MovieRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=255"`
	Description *string `json:"description,omitempty"`
	PosterURL   *string `json:"poster_url,omitempty" validate:"omitempty,url"`
}

type MovieUpdateRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description,omitempty"`
	PosterURL   *string `json:"poster_url,omitempty" validate:"omitempty,url"`
}
