package ports

import "context"

// BattleReport is the wire schema the arbiter service expects. Field names
// and casing are part of the external contract and must not change.
type BattleReport struct {
	Acolytes     []AcolyteReport `json:"Acolytes"`
	Environment  string          `json:"Environment"`
	CurrentRound int             `json:"CurrentRound"`
}

// AcolyteReport describes one combatant in a battle report.
type AcolyteReport struct {
	Name    string         `json:"Name"`
	Powers  []PowerReport  `json:"Powers"`
	HP      int            `json:"HP"`
	Actions []ActionReport `json:"Actions"`
}

// PowerReport describes one power held by a combatant.
type PowerReport struct {
	Name       string `json:"Name"`
	PowerLevel int    `json:"PowerLevel"`
}

// ActionReport describes a move taken in a given round.
type ActionReport struct {
	Round  int    `json:"Round"`
	Action string `json:"Action"`
}

// Arbiter defines the interface to the remote narrative service.
// Calls block on network I/O; callers dispatch them off the reply path and
// bound them with the context deadline.
type Arbiter interface {
	// Intro requests the opening narrative for a freshly staged battle.
	Intro(ctx context.Context, report BattleReport) (string, error)

	// Finale requests the closing narrative once both moves are recorded.
	Finale(ctx context.Context, report BattleReport) (string, error)
}
