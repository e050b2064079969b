package ports

import (
	"errors"

	"theoverse/internal/domain"
)

// ErrAcolyteNotFound is returned when no acolyte exists for a user id.
var ErrAcolyteNotFound = errors.New("acolyte not found")

// AcolyteStore defines the interface for the registry of onboarded acolytes.
type AcolyteStore interface {
	// IsRegistered reports whether an acolyte exists for the given user id.
	IsRegistered(userID string) bool

	// Find returns the acolyte for the given user id.
	// Returns ErrAcolyteNotFound if the user never completed genesis.
	Find(userID string) (domain.Acolyte, error)

	// Register stores a new acolyte. Registration is idempotent: if the user
	// id is already registered the existing record is returned unchanged, so
	// the first successful power pick always wins.
	Register(acolyte domain.Acolyte) (domain.Acolyte, error)
}
