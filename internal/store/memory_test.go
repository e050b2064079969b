package store

import (
	"errors"
	"testing"

	"theoverse/internal/domain"
	"theoverse/internal/ports"
)

func TestMemoryAcolyteStore_RegisterIsIdempotent(t *testing.T) {
	s := NewMemoryAcolyteStore()

	first, err := s.Register(domain.NewAcolyte("user-1", "Aven", "Flame"))
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	// A second pick with a different power must not create a second record
	// and must not change the original choice.
	second, err := s.Register(domain.NewAcolyte("user-1", "Aven", "Tide"))
	if err != nil {
		t.Fatalf("Repeat Register returned error: %v", err)
	}
	if second.Power != "Flame" {
		t.Fatalf("Expected first power to win, got %q", second.Power)
	}
	if first != second {
		t.Fatalf("Expected identical record, got %+v vs %+v", first, second)
	}

	found, err := s.Find("user-1")
	if err != nil {
		t.Fatalf("Find returned error: %v", err)
	}
	if found.Power != "Flame" || found.HP != domain.StartingHP || found.PowerLevel != domain.StartingPowerLevel {
		t.Fatalf("Unexpected stored acolyte: %+v", found)
	}
}

func TestMemoryAcolyteStore_FindUnknownUser(t *testing.T) {
	s := NewMemoryAcolyteStore()

	if s.IsRegistered("nobody") {
		t.Fatal("Expected empty registry to report unregistered")
	}
	if _, err := s.Find("nobody"); !errors.Is(err, ports.ErrAcolyteNotFound) {
		t.Fatalf("Expected ErrAcolyteNotFound, got %v", err)
	}
}

func TestMemoryGameStore_FullRoundLifecycle(t *testing.T) {
	s := NewMemoryGameStore()
	p1 := domain.NewAcolyte("user-a", "Aven", "Flame")
	p2 := domain.NewAcolyte("user-b", "Brel", "Tide")

	if _, err := s.Create("42", p1); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if _, err := s.AttachChallenger("42", p2); err != nil {
		t.Fatalf("AttachChallenger returned error: %v", err)
	}
	if _, err := s.RecordMove("42", domain.SlotPlayer1, "Summons a wall of fire"); err != nil {
		t.Fatalf("RecordMove player1 returned error: %v", err)
	}
	if _, err := s.RecordMove("42", domain.SlotPlayer2, "Calls forth the tide"); err != nil {
		t.Fatalf("RecordMove player2 returned error: %v", err)
	}

	game, err := s.Get("42")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if game.Player1Move != "Summons a wall of fire" {
		t.Fatalf("Unexpected player1 move: %q", game.Player1Move)
	}
	if game.Player2Move != "Calls forth the tide" {
		t.Fatalf("Unexpected player2 move: %q", game.Player2Move)
	}
	if game.Round != domain.FirstRound {
		t.Fatalf("Expected round %d, got %d", domain.FirstRound, game.Round)
	}
}

func TestMemoryGameStore_CreateRejectsCollision(t *testing.T) {
	s := NewMemoryGameStore()
	p1 := domain.NewAcolyte("user-a", "Aven", "Flame")

	if _, err := s.Create("42", p1); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if _, err := s.Create("42", p1); !errors.Is(err, ports.ErrGameExists) {
		t.Fatalf("Expected ErrGameExists, got %v", err)
	}
}

func TestMemoryGameStore_AttachChallengerGuards(t *testing.T) {
	s := NewMemoryGameStore()
	p1 := domain.NewAcolyte("user-a", "Aven", "Flame")
	p2 := domain.NewAcolyte("user-b", "Brel", "Tide")
	p3 := domain.NewAcolyte("user-c", "Cor", "Gale")

	if _, err := s.AttachChallenger("missing", p2); !errors.Is(err, ports.ErrGameNotFound) {
		t.Fatalf("Expected ErrGameNotFound, got %v", err)
	}

	if _, err := s.Create("42", p1); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if _, err := s.AttachChallenger("42", p1); !errors.Is(err, ports.ErrSelfChallenge) {
		t.Fatalf("Expected ErrSelfChallenge, got %v", err)
	}
	if _, err := s.AttachChallenger("42", p2); err != nil {
		t.Fatalf("AttachChallenger returned error: %v", err)
	}
	if _, err := s.AttachChallenger("42", p3); !errors.Is(err, ports.ErrChallengeTaken) {
		t.Fatalf("Expected ErrChallengeTaken, got %v", err)
	}
}

func TestMemoryGameStore_RecordMoveGuards(t *testing.T) {
	s := NewMemoryGameStore()
	p1 := domain.NewAcolyte("user-a", "Aven", "Flame")

	if _, err := s.RecordMove("missing", domain.SlotPlayer1, "x"); !errors.Is(err, ports.ErrGameNotFound) {
		t.Fatalf("Expected ErrGameNotFound, got %v", err)
	}

	if _, err := s.Create("42", p1); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if _, err := s.RecordMove("42", domain.SlotPlayer2, "x"); !errors.Is(err, ports.ErrSlotEmpty) {
		t.Fatalf("Expected ErrSlotEmpty for unset player2, got %v", err)
	}

	// Overwriting a move within the round keeps the latest submission.
	if _, err := s.RecordMove("42", domain.SlotPlayer1, "first"); err != nil {
		t.Fatalf("RecordMove returned error: %v", err)
	}
	game, err := s.RecordMove("42", domain.SlotPlayer1, "second")
	if err != nil {
		t.Fatalf("RecordMove returned error: %v", err)
	}
	if game.Player1Move != "second" {
		t.Fatalf("Expected overwrite to win, got %q", game.Player1Move)
	}
}

func TestMemoryGameStore_GetReturnsCopy(t *testing.T) {
	s := NewMemoryGameStore()
	p1 := domain.NewAcolyte("user-a", "Aven", "Flame")
	if _, err := s.Create("42", p1); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	game, _ := s.Get("42")
	game.Player1Move = "tampered"

	stored, _ := s.Get("42")
	if stored.Player1Move != "" {
		t.Fatal("Expected store state to be unaffected by caller mutation")
	}
}
