package repository

import (
	"errors"
	"strings"

	"movie-reviews/pkg/database"

	"go.uber.org/zap"
)

// ErrNotFound is returned by writes that matched no row. Single-row reads
// return (nil, nil) instead.
var ErrNotFound = errors.New("record not found")

type Repository struct {
	User    UserRepository
	Session SessionRepository
	Movie   MovieRepository
	Review  ReviewRepository
	Comment CommentRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:    NewUserRepository(db, log),
		Session: NewSessionRepository(db, log),
		Movie:   NewMovieRepository(db, log),
		Review:  NewReviewRepository(db, log),
		Comment: NewCommentRepository(db, log),
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching term literally.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}
