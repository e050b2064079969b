package domain

import "testing"

func TestGame_HasPlayer(t *testing.T) {
	game := Game{
		ID:      "42",
		Player1: NewAcolyte("user-a", "Aven", "Flame"),
		Round:   FirstRound,
	}

	if !game.HasPlayer("user-a") {
		t.Fatal("Expected player1 to be in the game")
	}
	if game.HasPlayer("user-b") {
		t.Fatal("Expected outsider to not be in the game")
	}
	if game.HasPlayer("") {
		t.Fatal("Expected empty user id to not match the unset player2 slot")
	}
	if game.HasChallenger() {
		t.Fatal("Expected no challenger before acceptance")
	}

	game.Player2 = NewAcolyte("user-b", "Brel", "Tide")
	if !game.HasChallenger() || !game.HasPlayer("user-b") {
		t.Fatal("Expected challenger to be attached")
	}
}

func TestGame_PlayerBySlot(t *testing.T) {
	game := Game{
		Player1: NewAcolyte("user-a", "Aven", "Flame"),
		Player2: NewAcolyte("user-b", "Brel", "Tide"),
	}

	if got := game.Player(SlotPlayer1).ID; got != "user-a" {
		t.Fatalf("Expected user-a in player1 slot, got %q", got)
	}
	if got := game.Player(SlotPlayer2).ID; got != "user-b" {
		t.Fatalf("Expected user-b in player2 slot, got %q", got)
	}
}
