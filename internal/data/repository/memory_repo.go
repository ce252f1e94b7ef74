package repository

import (
	"bytes"
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"movie-reviews/internal/data/entity"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NewMemoryRepository returns a Repository backed by process memory. It keeps
// the same filtering, ordering and join semantics as the Postgres
// repositories and is used for local runs without a database and in tests.
func NewMemoryRepository(log *zap.Logger) *Repository {
	store := &memoryStore{
		users:    make(map[uuid.UUID]entity.User),
		sessions: make(map[uuid.UUID]entity.Session),
		movies:   make(map[uuid.UUID]entity.Movie),
		reviews:  make(map[uuid.UUID]entity.Review),
		comments: make(map[uuid.UUID]entity.Comment),
		log:      log.With(zap.String("repository", "memory")),
	}

	return &Repository{
		User:    &memoryUserRepository{store},
		Session: &memorySessionRepository{store},
		Movie:   &memoryMovieRepository{store},
		Review:  &memoryReviewRepository{store},
		Comment: &memoryCommentRepository{store},
	}
}

// memoryStore holds rows by value; callers always receive copies.
type memoryStore struct {
	mu       sync.RWMutex
	users    map[uuid.UUID]entity.User
	sessions map[uuid.UUID]entity.Session // keyed by token
	movies   map[uuid.UUID]entity.Movie
	reviews  map[uuid.UUID]entity.Review
	comments map[uuid.UUID]entity.Comment
	log      *zap.Logger
}

// ==================== USERS ====================

type memoryUserRepository struct{ s *memoryStore }

func (r *memoryUserRepository) Create(ctx context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.users[user.ID]; exists {
		return fmt.Errorf("create user %s: duplicate id", user.Username)
	}
	for _, u := range r.s.users {
		if u.Username == user.Username || strings.EqualFold(u.Email, user.Email) {
			return fmt.Errorf("create user %s: duplicate username or email", user.Username)
		}
	}

	r.s.users[user.ID] = *user
	return nil
}

func (r *memoryUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.find(func(u entity.User) bool { return u.ID == id }), nil
}

func (r *memoryUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.find(func(u entity.User) bool { return strings.EqualFold(u.Email, email) }), nil
}

func (r *memoryUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.find(func(u entity.User) bool { return u.Username == username }), nil
}

func (r *memoryUserRepository) find(match func(entity.User) bool) *entity.User {
	for _, u := range r.s.users {
		if u.DeletedAt == nil && match(u) {
			user := u
			return &user
		}
	}
	return nil
}

// ==================== SESSIONS ====================

type memorySessionRepository struct{ s *memoryStore }

func (r *memorySessionRepository) Create(ctx context.Context, session *entity.Session) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.sessions[session.Token]; exists {
		return fmt.Errorf("failed to create session: duplicate token")
	}
	r.s.sessions[session.Token] = *session
	return nil
}

func (r *memorySessionRepository) FindValidSession(ctx context.Context, token uuid.UUID) (*entity.Session, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	session, ok := r.s.sessions[token]
	if !ok || !session.ValidAt(time.Now()) {
		return nil, nil
	}
	return &session, nil
}

func (r *memorySessionRepository) Revoke(ctx context.Context, token uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	session, ok := r.s.sessions[token]
	if !ok || session.RevokedAt != nil {
		return fmt.Errorf("session: %w", ErrNotFound)
	}
	now := time.Now()
	session.RevokedAt = &now
	r.s.sessions[token] = session
	return nil
}

// ==================== MOVIES ====================

type memoryMovieRepository struct{ s *memoryStore }

func (r *memoryMovieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.movies[movie.ID]; exists {
		return fmt.Errorf("failed to create movie: duplicate id %s", movie.ID)
	}
	r.s.movies[movie.ID] = *movie
	return nil
}

func (r *memoryMovieRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	movie, ok := r.s.movies[id]
	if !ok || movie.DeletedAt != nil {
		return nil, nil
	}
	return &movie, nil
}

func (r *memoryMovieRepository) FindAll(ctx context.Context, search string) ([]*entity.Movie, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	needle := strings.ToLower(search)
	var movies []*entity.Movie
	for _, m := range r.s.movies {
		if m.DeletedAt != nil {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(m.Name), needle) {
			continue
		}
		movie := m
		movies = append(movies, &movie)
	}

	slices.SortFunc(movies, func(a, b *entity.Movie) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})

	return movies, nil
}

func (r *memoryMovieRepository) Update(ctx context.Context, movie *entity.Movie) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.movies[movie.ID]
	if !ok || current.DeletedAt != nil {
		return fmt.Errorf("movie %s: %w", movie.ID, ErrNotFound)
	}
	current.Name = movie.Name
	current.Description = movie.Description
	current.PosterURL = movie.PosterURL
	current.UpdatedAt = movie.UpdatedAt
	r.s.movies[movie.ID] = current
	return nil
}

func (r *memoryMovieRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	movie, ok := r.s.movies[id]
	if !ok || movie.DeletedAt != nil {
		return fmt.Errorf("movie %s: %w", id, ErrNotFound)
	}
	now := time.Now()
	movie.DeletedAt = &now
	r.s.movies[id] = movie

	r.s.log.Info("Movie soft deleted", zap.String("movie_id", id.String()))
	return nil
}

// ==================== REVIEWS ====================

type memoryReviewRepository struct{ s *memoryStore }

func (r *memoryReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.movies[review.MovieID]; !ok {
		return fmt.Errorf("create review: movie %s does not exist", review.MovieID)
	}
	if _, ok := r.s.users[review.UserID]; !ok {
		return fmt.Errorf("create review: user %s does not exist", review.UserID)
	}

	stored := *review
	stored.Username = ""
	r.s.reviews[review.ID] = stored
	return nil
}

func (r *memoryReviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	review, ok := r.s.reviews[id]
	if !ok {
		return nil, nil
	}
	return r.withAuthor(review), nil
}

func (r *memoryReviewRepository) FindByIDAndMovie(ctx context.Context, id, movieID uuid.UUID) (*entity.Review, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	review, ok := r.s.reviews[id]
	if !ok || review.MovieID != movieID {
		return nil, nil
	}
	return r.withAuthor(review), nil
}

func (r *memoryReviewRepository) FindByMovieID(ctx context.Context, movieID uuid.UUID) ([]*entity.Review, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var reviews []*entity.Review
	for _, review := range r.s.reviews {
		if review.MovieID != movieID {
			continue
		}
		if joined := r.withAuthor(review); joined != nil {
			reviews = append(reviews, joined)
		}
	}

	slices.SortFunc(reviews, func(a, b *entity.Review) int {
		if c := a.Date.Compare(b.Date); c != 0 {
			return c
		}
		return bytes.Compare(a.ID[:], b.ID[:])
	})

	return reviews, nil
}

func (r *memoryReviewRepository) Update(ctx context.Context, review *entity.Review) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.reviews[review.ID]
	if !ok {
		return fmt.Errorf("review %s: %w", review.ID, ErrNotFound)
	}
	current.Comment = review.Comment
	r.s.reviews[review.ID] = current
	return nil
}

func (r *memoryReviewRepository) DeleteOwned(ctx context.Context, id, userID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	review, ok := r.s.reviews[id]
	if !ok || review.UserID != userID {
		return fmt.Errorf("review %s owned by %s: %w", id, userID, ErrNotFound)
	}

	delete(r.s.reviews, id)
	for commentID, c := range r.s.comments {
		if c.ReviewID == id {
			delete(r.s.comments, commentID)
		}
	}

	r.s.log.Info("Review deleted", zap.String("review_id", id.String()))
	return nil
}

// withAuthor mirrors the inner join on users: reviews without an author row
// are not returned. Caller holds the lock.
func (r *memoryReviewRepository) withAuthor(review entity.Review) *entity.Review {
	user, ok := r.s.users[review.UserID]
	if !ok {
		return nil
	}
	review.Username = user.Username
	return &review
}

// ==================== COMMENTS ====================

type memoryCommentRepository struct{ s *memoryStore }

func (r *memoryCommentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.reviews[comment.ReviewID]; !ok {
		return fmt.Errorf("create comment: review %s does not exist", comment.ReviewID)
	}
	if _, ok := r.s.users[comment.AuthorID]; !ok {
		return fmt.Errorf("create comment: user %s does not exist", comment.AuthorID)
	}
	if comment.ParentID != nil {
		if _, ok := r.s.comments[*comment.ParentID]; !ok {
			return fmt.Errorf("create comment: parent %s does not exist", *comment.ParentID)
		}
	}

	stored := *comment
	stored.AuthorName = ""
	r.s.comments[comment.ID] = stored
	return nil
}

func (r *memoryCommentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	comment, ok := r.s.comments[id]
	if !ok {
		return nil, nil
	}
	return r.withAuthor(comment), nil
}

func (r *memoryCommentRepository) FindByReviewIDs(ctx context.Context, reviewIDs []uuid.UUID) ([]*entity.Comment, error) {
	if len(reviewIDs) == 0 {
		return nil, nil
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	wanted := make(map[uuid.UUID]struct{}, len(reviewIDs))
	for _, id := range reviewIDs {
		wanted[id] = struct{}{}
	}

	var comments []*entity.Comment
	for _, c := range r.s.comments {
		if _, ok := wanted[c.ReviewID]; !ok {
			continue
		}
		if joined := r.withAuthor(c); joined != nil {
			comments = append(comments, joined)
		}
	}

	slices.SortFunc(comments, func(a, b *entity.Comment) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return bytes.Compare(a.ID[:], b.ID[:])
	})

	return comments, nil
}

func (r *memoryCommentRepository) withAuthor(comment entity.Comment) *entity.Comment {
	user, ok := r.s.users[comment.AuthorID]
	if !ok {
		return nil
	}
	comment.AuthorName = user.Username
	return &comment
}
