package usecase

import (
	"errors"
	"fmt"

	"movie-reviews/pkg/utils"

	"github.com/google/uuid"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrNotOwner           = errors.New("not the owner")
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAlreadyExists      = errors.New("already exists")
	ErrInactive           = errors.New("account is deactivated")
)

// ValidationError carries per-field messages for re-rendering a form.
// It matches ErrValidation with errors.Is.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + utils.FormatValidationErrors(e.Fields)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// FieldErrors extracts per-field messages from err, or nil.
func FieldErrors(err error) map[string]string {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Fields
	}
	return nil
}

// parseID treats a malformed id like an unknown one.
func parseID(kind, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s %q: %w", kind, raw, ErrNotFound)
	}
	return id, nil
}
