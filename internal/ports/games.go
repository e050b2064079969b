package ports

import (
	"errors"

	"theoverse/internal/domain"
)

var (
	// ErrGameNotFound is returned when no game exists for a game id.
	ErrGameNotFound = errors.New("game not found")
	// ErrGameExists is returned when creating a game under an id already in use.
	ErrGameExists = errors.New("game already exists")
	// ErrChallengeTaken is returned when a second challenger tries to accept.
	ErrChallengeTaken = errors.New("challenge already accepted")
	// ErrSelfChallenge is returned when a player tries to accept their own challenge.
	ErrSelfChallenge = errors.New("cannot accept own challenge")
	// ErrSlotEmpty is returned when recording a move for an unassigned player slot.
	ErrSlotEmpty = errors.New("player slot not assigned")
)

// GameStore defines the interface for in-progress arena games.
//
// Implementations must serialize mutations: concurrent webhook deliveries for
// the same game id (both players submitting near-simultaneously) must resolve
// to deterministic last-write-wins ordering. Returned games are value copies;
// callers never observe later mutations through them.
type GameStore interface {
	// Create stores a new game holding only player1.
	// Returns ErrGameExists if the id is already present.
	Create(gameID string, player1 domain.Acolyte) (domain.Game, error)

	// AttachChallenger fills the player2 slot.
	// Returns ErrGameNotFound, ErrChallengeTaken if player2 is already set,
	// or ErrSelfChallenge if player2 matches player1.
	AttachChallenger(gameID string, player2 domain.Acolyte) (domain.Game, error)

	// RecordMove attaches free-text move to the given slot, overwriting any
	// previous move for that slot within the round.
	// Returns ErrGameNotFound or ErrSlotEmpty.
	RecordMove(gameID string, slot domain.Slot, move string) (domain.Game, error)

	// Get returns the game for the given id, or ErrGameNotFound.
	Get(gameID string) (domain.Game, error)
}
