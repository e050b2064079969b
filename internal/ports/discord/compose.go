package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"theoverse/internal/domain"
)

// Composers for every outbound payload. Each state transition gets exactly
// one synchronous reply built here; follow-up messages posted after the reply
// window use the WebhookParams builders at the bottom.

func messageResponse(content string) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Content: content},
	}
}

func ephemeralResponse(content string) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	}
}

func pongResponse() *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{Type: discordgo.InteractionResponsePong}
}

// challengeIssued announces an open challenge with its accept button.
func challengeIssued(challengerName, gameID string) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: fmt.Sprintf("<%s> asks if anybody dares to face them in the arena", challengerName),
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.Button{
							Label:    "Accept Challenge",
							Style:    discordgo.PrimaryButton,
							CustomID: Ref{Kind: KindAcceptButton, GameID: gameID}.CustomID(),
						},
					},
				},
			},
		},
	}
}

func notYetAcolyte() *discordgo.InteractionResponse {
	return messageResponse("You do not have the blood of theos flowing through you yet unnamed one.\nGo to the genesis before you try step into the arena.")
}

func notWorthyToAccept() *discordgo.InteractionResponse {
	return messageResponse("You are not yet worthy to accept challenges.\nGo to the genesis before you try step into the arena.")
}

func selfChallengeRejected() *discordgo.InteractionResponse {
	return messageResponse("You cannot battle yourself, Acolyte. Find a worthier opponent.")
}

func challengeAlreadyTaken() *discordgo.InteractionResponse {
	return messageResponse("The challenge has already been answered. The arena holds two, no more.")
}

func whoAreYou() *discordgo.InteractionResponse {
	return messageResponse("Who are you ?")
}

func youShouldNotBeHere() *discordgo.InteractionResponse {
	return messageResponse("You shouldn't be here.")
}

// genesisGreeting invites an unregistered user to enter the Theoverse.
func genesisGreeting(userName, gameID string) *discordgo.InteractionResponse {
	content := fmt.Sprintf("Greetings Acolyte, we'll call you %s.\n%s, The Ecclesia has allowed you to pick your starting power - choose wisely.\nBut first, do you dare to enter the Theoverse ?", userName, userName)
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.Button{
							Label:    "Enter",
							Style:    discordgo.PrimaryButton,
							CustomID: Ref{Kind: KindEnterButton, GameID: gameID}.CustomID(),
						},
					},
				},
			},
		},
	}
}

// genesisReturning greets a user who already completed genesis.
func genesisReturning(userName, power string) *discordgo.InteractionResponse {
	return ephemeralResponse(fmt.Sprintf("Greetings %s,\nIt seems you've been past here before, the acolyte with the %s, yes ?\nGo into the Arena and battle for glory.", userName, power))
}

// powerPrompt offers the shuffled starting power roster.
func powerPrompt(gameID string, options []domain.Power) *discordgo.InteractionResponse {
	menuOptions := make([]discordgo.SelectMenuOption, len(options))
	for i, p := range options {
		menuOptions[i] = discordgo.SelectMenuOption{
			Label:       p.Name,
			Value:       p.Name,
			Description: p.Description,
		}
	}
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: "What is your power of choice?",
			Flags:   discordgo.MessageFlagsEphemeral,
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.SelectMenu{
							MenuType: discordgo.StringSelectMenu,
							CustomID: Ref{Kind: KindSelectChoice, GameID: gameID}.CustomID(),
							Options:  menuOptions,
						},
					},
				},
			},
		},
	}
}

// powerChosen confirms a completed registration.
func powerChosen(userName, power string) *discordgo.InteractionResponse {
	return ephemeralResponse(fmt.Sprintf("Good choice Acolyte %s, you selected %s.\nYour starting HP is 1 and Power Level is 1 as you begin your journey.\nWelcome to Theosis.", userName, power))
}

// powerAlreadyChosen answers a repeat registration attempt without changing
// anything; the original pick stands.
func powerAlreadyChosen(userName, power string) *discordgo.InteractionResponse {
	return ephemeralResponse(fmt.Sprintf("You have chosen already, Acolyte %s. The %s answers to you alone.", userName, power))
}

// battleStaged announces the matchup after a challenge is accepted.
func battleStaged(player1Name, player2Name string) *discordgo.InteractionResponse {
	return messageResponse(fmt.Sprintf("The stage is set, the battle will be between %s and %s.\nThe arbiter will take the stage now.", player1Name, player2Name))
}

// moveModal prompts one player for their free-text action.
func moveModal(modalKind Kind, gameID, playerName, inputID string) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			Title:    fmt.Sprintf("%s, time to make your move!", playerName),
			CustomID: Ref{Kind: modalKind, GameID: gameID}.CustomID(),
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.TextInput{
							CustomID:    inputID,
							Label:       "Action",
							Style:       discordgo.TextInputShort,
							Placeholder: "Super move!",
							Required:    true,
							MinLength:   1,
							MaxLength:   4000,
						},
					},
				},
			},
		},
	}
}

// player1MoveRecorded prompts player2 to answer.
func player1MoveRecorded(player1Name, player2Name, gameID string) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: fmt.Sprintf("%s has made their move, are you ready %s?", player1Name, player2Name),
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.Button{
							Label:    "I do not know fear!",
							Style:    discordgo.PrimaryButton,
							CustomID: Ref{Kind: KindContinueBattle, GameID: gameID}.CustomID(),
						},
					},
				},
			},
		},
	}
}

// bothMovesRecorded offers the conclude button.
func bothMovesRecorded(gameID string) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: "Both players have made their move, the arbiter ponders.",
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.Button{
							Label:    "Look to the arbiter",
							Style:    discordgo.PrimaryButton,
							CustomID: Ref{Kind: KindConcludeBattle, GameID: gameID}.CustomID(),
						},
					},
				},
			},
		},
	}
}

// concludeAcknowledged is the placeholder reply sent while the finale
// narrative is fetched in the background. The flow must never hang on the
// arbiter, so this goes out regardless of how that call ends.
func concludeAcknowledged() *discordgo.InteractionResponse {
	return messageResponse("...")
}

// introFollowup carries the opening narrative and the start button, posted as
// a follow-up once the arbiter answers.
func introFollowup(narrative, gameID string) *discordgo.WebhookParams {
	return &discordgo.WebhookParams{
		Content: narrative,
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.Button{
						Label:    "Start battle",
						Style:    discordgo.PrimaryButton,
						CustomID: Ref{Kind: KindStartBattle, GameID: gameID}.CustomID(),
					},
				},
			},
		},
	}
}

// finaleFollowup carries the closing narrative.
func finaleFollowup(narrative string) *discordgo.WebhookParams {
	return &discordgo.WebhookParams{Content: narrative}
}
