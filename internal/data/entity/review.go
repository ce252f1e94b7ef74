package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review is a user's text entry on a movie. UserID is set once at creation
// and never rewritten.
type Review struct {
	ID      uuid.UUID `db:"id"`
	MovieID uuid.UUID `db:"movie_id"`
	UserID  uuid.UUID `db:"user_id"`
	Comment string    `db:"comment"`
	Date    time.Time `db:"date"`

	// Joined from users on read.
	Username string `db:"-"`
}

func (r *Review) OwnedBy(userID uuid.UUID) bool {
	return r.UserID == userID
}
