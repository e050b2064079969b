package domain

import "math/rand"

// Power is one entry of the starting power roster offered at genesis.
type Power struct {
	Name        string
	Description string
}

// powerRoster is the fixed set of starting powers the Ecclesia offers.
var powerRoster = []Power{
	{Name: "Flame", Description: "Command fire and cinder"},
	{Name: "Tide", Description: "Bend water and the deep currents"},
	{Name: "Gale", Description: "Ride and hurl the winds"},
	{Name: "Stone", Description: "Shape earth and unyielding rock"},
	{Name: "Storm", Description: "Call lightning from a split sky"},
	{Name: "Shadow", Description: "Move unseen between lights"},
	{Name: "Radiance", Description: "Burn with the first dawn's light"},
	{Name: "Thorn", Description: "Wake the hunger of growing things"},
}

// Powers returns a copy of the full power roster in fixed order.
func Powers() []Power {
	roster := make([]Power, len(powerRoster))
	copy(roster, powerRoster)
	return roster
}

// ShuffledPowers returns the roster in a random order for presentation, so no
// option benefits from always sitting first in the select menu.
func ShuffledPowers(rng *rand.Rand) []Power {
	roster := Powers()
	rng.Shuffle(len(roster), func(i, j int) { roster[i], roster[j] = roster[j], roster[i] })
	return roster
}

// IsKnownPower reports whether name matches a roster entry. Select menus only
// submit offered values, but the check guards against forged payloads.
func IsKnownPower(name string) bool {
	for _, p := range powerRoster {
		if p.Name == name {
			return true
		}
	}
	return false
}
