package domain

const (
	// StartingHP is the hit point total granted at genesis. Combat damage is
	// resolved narratively by the arbiter, so this never changes afterwards.
	StartingHP = 1
	// StartingPowerLevel is the power level granted at genesis.
	StartingPowerLevel = 1
)

// Acolyte holds the profile of a registered arena participant.
type Acolyte struct {
	ID         string // Discord user id, unique per acolyte
	Name       string // display name captured at genesis; not re-synced
	HP         int
	PowerLevel int
	Power      string // chosen at genesis, immutable
}

// NewAcolyte constructs an acolyte with baseline stats.
func NewAcolyte(id, name, power string) Acolyte {
	return Acolyte{
		ID:         id,
		Name:       name,
		HP:         StartingHP,
		PowerLevel: StartingPowerLevel,
		Power:      power,
	}
}
