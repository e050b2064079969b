// Package discord adapts Discord's interactions webhook to the arena and
// genesis services. Every inbound event is classified by interaction type and
// custom-id prefix, dispatched to one transition handler, and answered with
// exactly one synchronous reply; events nobody minted get no reply at all.
package discord

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"

	"theoverse/internal/app"
	"theoverse/internal/app/genesis"
	"theoverse/internal/domain"
	"theoverse/internal/ports"
	"theoverse/internal/task"
)

const (
	CommandFight   = "fight"
	CommandGenesis = "genesis"

	inputPlayer1Move = "player_one_move"
	inputPlayer2Move = "player_two_move"
)

// Handler routes interaction events to the arena and genesis services.
type Handler struct {
	appID   string
	log     *logrus.Logger
	genesis *genesis.Service
	arena   *app.Service
	arbiter ports.Arbiter
	rest    WebhookClient
	tasks   *task.Runner
}

// NewHandler constructs the interaction handler. All collaborators are
// required; rest and arbiter calls are dispatched through tasks so the
// synchronous reply never waits on them.
func NewHandler(appID string, log *logrus.Logger, gen *genesis.Service, arena *app.Service, arbiter ports.Arbiter, rest WebhookClient, tasks *task.Runner) *Handler {
	return &Handler{
		appID:   appID,
		log:     log,
		genesis: gen,
		arena:   arena,
		arbiter: arbiter,
		rest:    rest,
		tasks:   tasks,
	}
}

// ServeHTTP decodes the interaction envelope and writes the synchronous
// reply. Signature verification happens in middleware before this runs.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var interaction discordgo.Interaction
	if err := json.NewDecoder(r.Body).Decode(&interaction); err != nil {
		h.log.Warnf("Failed to decode interaction: %v", err)
		http.Error(w, "malformed interaction", http.StatusBadRequest)
		return
	}

	resp := h.Handle(&interaction)
	if resp == nil {
		// No handler matched. Let the interaction expire on the platform
		// side rather than inventing a reply.
		w.WriteHeader(http.StatusOK)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.log.Errorf("Failed to encode interaction response: %v", err)
	}
}

// Handle runs one interaction through the state machine and returns the
// synchronous reply, or nil when the event matches nothing we minted.
func (h *Handler) Handle(i *discordgo.Interaction) *discordgo.InteractionResponse {
	if i.Type == discordgo.InteractionPing {
		return pongResponse()
	}
	if i.Data == nil {
		h.log.Debug("Interaction without data ignored")
		return nil
	}

	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		data := i.ApplicationCommandData()
		switch data.Name {
		case CommandFight:
			return h.handleFight(i)
		case CommandGenesis:
			return h.handleGenesis(i)
		default:
			h.log.Debugf("Unknown command %q ignored", data.Name)
			return nil
		}

	case discordgo.InteractionMessageComponent:
		ref, ok := ParseRef(i.MessageComponentData().CustomID)
		if !ok {
			h.log.Debugf("Component with unknown custom id %q ignored", i.MessageComponentData().CustomID)
			return nil
		}
		switch ref.Kind {
		case KindAcceptButton:
			return h.handleAccept(i, ref)
		case KindEnterButton:
			return h.handleEnter(i, ref)
		case KindSelectChoice:
			return h.handleSelectChoice(i, ref)
		case KindStartBattle:
			return h.handleStartBattle(i, ref)
		case KindContinueBattle:
			return h.handleContinueBattle(i, ref)
		case KindConcludeBattle:
			return h.handleConclude(i, ref)
		default:
			return nil
		}

	case discordgo.InteractionModalSubmit:
		ref, ok := ParseRef(i.ModalSubmitData().CustomID)
		if !ok {
			h.log.Debugf("Modal with unknown custom id %q ignored", i.ModalSubmitData().CustomID)
			return nil
		}
		switch ref.Kind {
		case KindPlayer1Action:
			return h.handleMoveSubmit(i, ref, domain.SlotPlayer1)
		case KindPlayer2Action:
			return h.handleMoveSubmit(i, ref, domain.SlotPlayer2)
		default:
			return nil
		}
	}

	h.log.Debugf("Interaction type %d ignored", i.Type)
	return nil
}

// handleFight opens a challenge. The command's own interaction id becomes the
// game id, carried through every later component's custom id.
func (h *Handler) handleFight(i *discordgo.Interaction) *discordgo.InteractionResponse {
	userID, userName := actor(i)
	acolyte, ok := h.genesis.Lookup(userID)
	if !ok {
		return notYetAcolyte()
	}

	game, err := h.arena.Challenge(i.ID, acolyte)
	if err != nil {
		h.log.WithField("game_id", i.ID).Warnf("Failed to open challenge: %v", err)
		return challengeAlreadyTaken()
	}

	h.log.WithField("game_id", game.ID).Infof("Challenge opened by %s", acolyte.Name)
	return challengeIssued(userName, game.ID)
}

// handleGenesis greets the user: returning acolytes get a reminder of their
// power, newcomers get the enter button that starts registration.
func (h *Handler) handleGenesis(i *discordgo.Interaction) *discordgo.InteractionResponse {
	userID, userName := actor(i)
	if acolyte, ok := h.genesis.Lookup(userID); ok {
		return genesisReturning(userName, acolyte.Power)
	}
	return genesisGreeting(userName, i.ID)
}

// handleAccept attaches the challenger and stages the battle. The intro
// narrative and the cleanup of the challenge message both run in the
// background; the reply goes out immediately.
func (h *Handler) handleAccept(i *discordgo.Interaction, ref Ref) *discordgo.InteractionResponse {
	userID, _ := actor(i)
	acolyte, ok := h.genesis.Lookup(userID)
	if !ok {
		return notWorthyToAccept()
	}

	game, err := h.arena.Accept(ref.GameID, acolyte)
	switch {
	case errors.Is(err, ports.ErrSelfChallenge):
		return selfChallengeRejected()
	case errors.Is(err, ports.ErrChallengeTaken):
		return challengeAlreadyTaken()
	case err != nil:
		h.log.WithField("game_id", ref.GameID).Warnf("Failed to accept challenge: %v", err)
		return whoAreYou()
	}

	token := i.Token
	h.tasks.Go("intro-narrative", func(ctx context.Context) error {
		narrative, err := h.arbiter.Intro(ctx, app.IntroReport(game))
		if err != nil {
			return fmt.Errorf("intro narrative for game %s: %w", game.ID, err)
		}
		if _, err := h.rest.WebhookExecute(h.appID, token, false, introFollowup(narrative, game.ID)); err != nil {
			return fmt.Errorf("post intro follow-up for game %s: %w", game.ID, err)
		}
		return nil
	})
	h.deleteSourceMessage(i, "delete-challenge-message")

	h.log.WithField("game_id", game.ID).Infof("Challenge accepted by %s", acolyte.Name)
	return battleStaged(game.Player1.Name, game.Player2.Name)
}

// handleEnter swaps the genesis greeting for the power select menu.
func (h *Handler) handleEnter(i *discordgo.Interaction, ref Ref) *discordgo.InteractionResponse {
	h.deleteSourceMessage(i, "delete-genesis-greeting")
	return powerPrompt(ref.GameID, h.genesis.PowerOptions())
}

// handleSelectChoice completes registration with the picked power.
func (h *Handler) handleSelectChoice(i *discordgo.Interaction, ref Ref) *discordgo.InteractionResponse {
	values := i.MessageComponentData().Values
	if len(values) == 0 {
		h.log.Debug("Power select without values ignored")
		return nil
	}

	userID, userName := actor(i)
	result, err := h.genesis.Register(userID, userName, values[0])
	if err != nil {
		h.log.Warnf("Rejected registration for %s: %v", userID, err)
		return nil
	}
	h.deleteSourceMessage(i, "delete-power-prompt")

	if !result.Created {
		return powerAlreadyChosen(result.Acolyte.Name, result.Acolyte.Power)
	}
	h.log.Infof("Acolyte %s registered with power %s", result.Acolyte.Name, result.Acolyte.Power)
	return powerChosen(result.Acolyte.Name, result.Acolyte.Power)
}

// handleStartBattle opens player1's move modal.
func (h *Handler) handleStartBattle(i *discordgo.Interaction, ref Ref) *discordgo.InteractionResponse {
	userID, _ := actor(i)
	if _, ok := h.genesis.Lookup(userID); !ok {
		return whoAreYou()
	}
	game, err := h.arena.Game(ref.GameID)
	if err != nil {
		return whoAreYou()
	}
	return moveModal(KindPlayer1Action, game.ID, game.Player1.Name, inputPlayer1Move)
}

// handleContinueBattle opens player2's move modal.
func (h *Handler) handleContinueBattle(i *discordgo.Interaction, ref Ref) *discordgo.InteractionResponse {
	userID, _ := actor(i)
	if _, ok := h.genesis.Lookup(userID); !ok {
		return whoAreYou()
	}
	game, err := h.arena.Game(ref.GameID)
	if err != nil || !game.HasChallenger() {
		return whoAreYou()
	}
	return moveModal(KindPlayer2Action, game.ID, game.Player2.Name, inputPlayer2Move)
}

// handleMoveSubmit records a modal move for the slot its custom id names.
func (h *Handler) handleMoveSubmit(i *discordgo.Interaction, ref Ref, slot domain.Slot) *discordgo.InteractionResponse {
	move := modalInputValue(i.ModalSubmitData())
	if move == "" {
		h.log.Debugf("Modal submit for game %s without input ignored", ref.GameID)
		return nil
	}

	userID, _ := actor(i)
	game, err := h.arena.RecordMove(ref.GameID, slot, userID, move)
	if err != nil {
		h.log.WithField("game_id", ref.GameID).Warnf("Rejected move submission: %v", err)
		return youShouldNotBeHere()
	}

	if slot == domain.SlotPlayer2 {
		return bothMovesRecorded(game.ID)
	}
	return player1MoveRecorded(game.Player1.Name, game.Player2.Name, game.ID)
}

// handleConclude fires the finale narrative and acknowledges immediately.
func (h *Handler) handleConclude(i *discordgo.Interaction, ref Ref) *discordgo.InteractionResponse {
	userID, _ := actor(i)
	if _, ok := h.genesis.Lookup(userID); !ok {
		return whoAreYou()
	}
	game, err := h.arena.Game(ref.GameID)
	if err != nil {
		return whoAreYou()
	}

	token := i.Token
	h.tasks.Go("finale-narrative", func(ctx context.Context) error {
		narrative, err := h.arbiter.Finale(ctx, app.FinaleReport(game))
		if err != nil {
			return fmt.Errorf("finale narrative for game %s: %w", game.ID, err)
		}
		if _, err := h.rest.WebhookExecute(h.appID, token, false, finaleFollowup(narrative)); err != nil {
			return fmt.Errorf("post finale follow-up for game %s: %w", game.ID, err)
		}
		return nil
	})

	h.log.WithField("game_id", game.ID).Info("Battle concluded, awaiting the arbiter")
	return concludeAcknowledged()
}

// deleteSourceMessage removes the message whose component fired this
// interaction. Cleanup is best-effort: failures land in the log and never
// touch the reply.
func (h *Handler) deleteSourceMessage(i *discordgo.Interaction, taskName string) {
	if i.Message == nil {
		return
	}
	token := i.Token
	messageID := i.Message.ID
	h.tasks.Go(taskName, func(ctx context.Context) error {
		if err := h.rest.WebhookMessageDelete(h.appID, token, messageID); err != nil {
			return fmt.Errorf("delete message %s: %w", messageID, err)
		}
		return nil
	})
}

// actor extracts the acting user from the interaction. Guild interactions
// carry a member, direct messages carry a bare user.
func actor(i *discordgo.Interaction) (userID, userName string) {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID, i.Member.User.Username
	}
	if i.User != nil {
		return i.User.ID, i.User.Username
	}
	return "", ""
}

// modalInputValue digs the first text input value out of a modal submission.
func modalInputValue(data discordgo.ModalSubmitInteractionData) string {
	for _, component := range data.Components {
		row, ok := component.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, inner := range row.Components {
			if input, ok := inner.(*discordgo.TextInput); ok {
				return input.Value
			}
		}
	}
	return ""
}
