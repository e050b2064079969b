package app

import (
	"theoverse/internal/domain"
	"theoverse/internal/ports"
)

// Service contains arena use-cases operating on game state.
// All mutations go through the game store, which serializes them.
type Service struct {
	games ports.GameStore
}

// NewService constructs a Service over the given game store.
func NewService(games ports.GameStore) *Service {
	return &Service{games: games}
}

// Challenge opens a new game with the challenger in the player1 slot.
// gameID is the interaction id of the triggering command, which the platform
// guarantees unique; a collision is surfaced as ports.ErrGameExists.
func (s *Service) Challenge(gameID string, challenger domain.Acolyte) (domain.Game, error) {
	return s.games.Create(gameID, challenger)
}

// Accept places the accepting acolyte in the player2 slot.
// Self-acceptance and double-acceptance are rejected by the store.
func (s *Service) Accept(gameID string, challenger domain.Acolyte) (domain.Game, error) {
	return s.games.AttachChallenger(gameID, challenger)
}

// RecordMove stores the actor's free-text move in the given slot.
// The actor must occupy one of the game's seats; outsiders are rejected
// before any mutation happens.
func (s *Service) RecordMove(gameID string, slot domain.Slot, actorID, move string) (domain.Game, error) {
	game, err := s.games.Get(gameID)
	if err != nil {
		return domain.Game{}, err
	}
	if !game.HasPlayer(actorID) {
		return domain.Game{}, ports.ErrAcolyteNotFound
	}
	return s.games.RecordMove(gameID, slot, move)
}

// Game returns the current state of the given game.
func (s *Service) Game(gameID string) (domain.Game, error) {
	return s.games.Get(gameID)
}
