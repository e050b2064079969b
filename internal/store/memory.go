package store

import (
	"sync"

	"theoverse/internal/domain"
	"theoverse/internal/ports"
)

// MemoryAcolyteStore keeps registered acolytes in process memory for the
// lifetime of the bot. The registry is a flat slice scanned linearly; the
// roster is small and registration order carries no meaning.
type MemoryAcolyteStore struct {
	mu       sync.RWMutex
	acolytes []domain.Acolyte
}

// NewMemoryAcolyteStore constructs an empty registry.
func NewMemoryAcolyteStore() *MemoryAcolyteStore {
	return &MemoryAcolyteStore{}
}

// IsRegistered reports whether an acolyte exists for the given user id.
func (s *MemoryAcolyteStore) IsRegistered(userID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.find(userID)
	return ok
}

// Find returns the acolyte for the given user id.
func (s *MemoryAcolyteStore) Find(userID string) (domain.Acolyte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	acolyte, ok := s.find(userID)
	if !ok {
		return domain.Acolyte{}, ports.ErrAcolyteNotFound
	}
	return acolyte, nil
}

// Register stores a new acolyte, or returns the existing record when the user
// id is already registered.
func (s *MemoryAcolyteStore) Register(acolyte domain.Acolyte) (domain.Acolyte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.find(acolyte.ID); ok {
		return existing, nil
	}
	s.acolytes = append(s.acolytes, acolyte)
	return acolyte, nil
}

func (s *MemoryAcolyteStore) find(userID string) (domain.Acolyte, bool) {
	for _, a := range s.acolytes {
		if a.ID == userID {
			return a, true
		}
	}
	return domain.Acolyte{}, false
}

// MemoryGameStore keeps in-progress games in process memory. A single mutex
// serializes all mutations, which gives deterministic ordering when both
// players' webhooks land at the same time. Games are never removed; abandoned
// games live until the process exits.
type MemoryGameStore struct {
	mu    sync.Mutex
	games map[string]*domain.Game
}

// NewMemoryGameStore constructs an empty game store.
func NewMemoryGameStore() *MemoryGameStore {
	return &MemoryGameStore{games: make(map[string]*domain.Game)}
}

// Create stores a new game holding only player1.
func (s *MemoryGameStore) Create(gameID string, player1 domain.Acolyte) (domain.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.games[gameID]; ok {
		return domain.Game{}, ports.ErrGameExists
	}
	game := &domain.Game{
		ID:      gameID,
		Player1: player1,
		Round:   domain.FirstRound,
	}
	s.games[gameID] = game
	return *game, nil
}

// AttachChallenger fills the player2 slot.
func (s *MemoryGameStore) AttachChallenger(gameID string, player2 domain.Acolyte) (domain.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	game, ok := s.games[gameID]
	if !ok {
		return domain.Game{}, ports.ErrGameNotFound
	}
	if game.HasChallenger() {
		return domain.Game{}, ports.ErrChallengeTaken
	}
	if game.Player1.ID == player2.ID {
		return domain.Game{}, ports.ErrSelfChallenge
	}
	game.Player2 = player2
	return *game, nil
}

// RecordMove attaches a move to the given slot.
func (s *MemoryGameStore) RecordMove(gameID string, slot domain.Slot, move string) (domain.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	game, ok := s.games[gameID]
	if !ok {
		return domain.Game{}, ports.ErrGameNotFound
	}
	if game.Player(slot).ID == "" {
		return domain.Game{}, ports.ErrSlotEmpty
	}
	if slot == domain.SlotPlayer2 {
		game.Player2Move = move
	} else {
		game.Player1Move = move
	}
	return *game, nil
}

// Get returns the game for the given id.
func (s *MemoryGameStore) Get(gameID string) (domain.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	game, ok := s.games[gameID]
	if !ok {
		return domain.Game{}, ports.ErrGameNotFound
	}
	return *game, nil
}
