package entity

import (
	"github.com/google/uuid"
)

// Comment belongs to one review. When ParentID is set, the parent comment
// must belong to the same review.
type Comment struct {
	BaseSimple
	ReviewID uuid.UUID  `db:"review_id"`
	AuthorID uuid.UUID  `db:"author_id"`
	ParentID *uuid.UUID `db:"parent_id"`
	Body     string     `db:"body"`

	// Joined from users on read.
	AuthorName string `db:"-"`
}
