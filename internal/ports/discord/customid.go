package discord

import "strings"

// Kind identifies which UI component a custom id belongs to. The string value
// is the wire prefix without its trailing separator; Discord dictates that
// correlation happens through these literal prefixes on component ids.
type Kind string

const (
	KindAcceptButton   Kind = "accept_button"
	KindEnterButton    Kind = "enter_button"
	KindSelectChoice   Kind = "select_choice"
	KindStartBattle    Kind = "start_battle"
	KindContinueBattle Kind = "continue_battle"
	KindConcludeBattle Kind = "conclude_battle"
	KindPlayer1Action  Kind = "p1_action_input"
	KindPlayer2Action  Kind = "p2_action_input"
)

// kinds lists every prefix the router dispatches on. Parsing matches exactly
// one entry because no entry's wire prefix is a prefix of another's; the
// invariant is pinned by a test.
var kinds = []Kind{
	KindAcceptButton,
	KindEnterButton,
	KindSelectChoice,
	KindStartBattle,
	KindContinueBattle,
	KindConcludeBattle,
	KindPlayer1Action,
	KindPlayer2Action,
}

const separator = "_"

// Ref is a parsed component custom id: which component kind fired and which
// game the component was minted for.
type Ref struct {
	Kind   Kind
	GameID string
}

// ParseRef splits a component custom id into its typed form. ok is false for
// ids minted by nobody we know, which the router must ignore without a reply.
func ParseRef(customID string) (ref Ref, ok bool) {
	for _, kind := range kinds {
		prefix := string(kind) + separator
		if strings.HasPrefix(customID, prefix) {
			return Ref{Kind: kind, GameID: strings.TrimPrefix(customID, prefix)}, true
		}
	}
	return Ref{}, false
}

// CustomID renders the ref back into its wire form for outbound components.
func (r Ref) CustomID() string {
	return string(r.Kind) + separator + r.GameID
}
