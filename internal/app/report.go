package app

import (
	"theoverse/internal/domain"
	"theoverse/internal/ports"
)

const (
	// battleEnvironment is sent verbatim to the arbiter with every report.
	// The text (spelling included) is part of the established service contract.
	battleEnvironment = "clear day, moderate temparature, no wind, dry terrain"

	// reportHP is the hit point figure presented to the arbiter. The arbiter
	// narrates against a 100-point scale regardless of stored acolyte HP.
	reportHP = 100

	// introPlaceholderAction stands in for moves that have not been made yet
	// when requesting the opening narrative.
	introPlaceholderAction = "I do stuff with my powers"
)

// IntroReport builds the arbiter payload for a freshly staged battle, before
// either player has acted.
func IntroReport(game domain.Game) ports.BattleReport {
	return battleReport(game, introPlaceholderAction, introPlaceholderAction)
}

// FinaleReport builds the arbiter payload carrying both recorded moves.
func FinaleReport(game domain.Game) ports.BattleReport {
	return battleReport(game, game.Player1Move, game.Player2Move)
}

func battleReport(game domain.Game, action1, action2 string) ports.BattleReport {
	return ports.BattleReport{
		Acolytes: []ports.AcolyteReport{
			acolyteReport(game.Player1, game.Round, action1),
			acolyteReport(game.Player2, game.Round, action2),
		},
		Environment:  battleEnvironment,
		CurrentRound: game.Round,
	}
}

func acolyteReport(acolyte domain.Acolyte, round int, action string) ports.AcolyteReport {
	return ports.AcolyteReport{
		Name: acolyte.Name,
		Powers: []ports.PowerReport{
			{Name: acolyte.Power, PowerLevel: acolyte.PowerLevel},
		},
		HP: reportHP,
		Actions: []ports.ActionReport{
			{Round: round, Action: action},
		},
	}
}
