package types

import "github.com/google/uuid"

// NewID generates a new opaque entity identifier.
// IDs are UUID v7 so same-process creation order roughly sorts.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}
