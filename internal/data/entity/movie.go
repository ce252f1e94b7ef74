package entity

type Movie struct {
	Base
	Name        string  `db:"name"`
	Description *string `db:"description"`
	PosterURL   *string `db:"poster_url"`
}
