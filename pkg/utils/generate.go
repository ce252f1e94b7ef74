package utils

import (
	"github.com/google/uuid"
)

func ParseUUID(uuidStr string) (uuid.UUID, error) {
	return uuid.Parse(uuidStr)
}

// GenerateSessionToken returns a random (v4) token for a new session.
func GenerateSessionToken() uuid.UUID {
	return uuid.New()
}
