package domain

// Slot identifies which side of a game a move belongs to.
type Slot string

const (
	SlotPlayer1 Slot = "player1"
	SlotPlayer2 Slot = "player2"
)

// FirstRound is the only round the arena currently plays. Multi-round
// progression would bump this per exchange.
const FirstRound = 1

// Game holds authoritative state for one challenge-through-resolution match.
// It is keyed externally by the interaction id that issued the challenge.
type Game struct {
	ID string

	Player1 Acolyte
	Player2 Acolyte // zero value until the challenge is accepted

	Player1Move string
	Player2Move string

	Round int
}

// HasChallenger reports whether a second player has accepted the challenge.
func (g Game) HasChallenger() bool {
	return g.Player2.ID != ""
}

// HasPlayer reports whether the given user occupies either side of the game.
func (g Game) HasPlayer(userID string) bool {
	if userID == "" {
		return false
	}
	return g.Player1.ID == userID || g.Player2.ID == userID
}

// Player returns the acolyte occupying the given slot.
func (g Game) Player(slot Slot) Acolyte {
	if slot == SlotPlayer2 {
		return g.Player2
	}
	return g.Player1
}
