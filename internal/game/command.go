package game

import "fmt"

// Action names accepted by Roster.Apply.
const (
	ActionSelectCharacter  = "select_character"
	ActionSetTier          = "set_tier"
	ActionSwitchTeamMember = "switch_team_member"
	ActionUnlock           = "unlock"
	ActionAddCard          = "add_card"
	ActionRemove           = "remove"
	ActionAddEpiphany      = "add_epiphany"
	ActionConvert          = "convert"
	ActionDuplicate        = "duplicate"
	ActionDelete           = "delete"
	ActionResetRun         = "reset_run"
	ActionUndo             = "undo"
)

// Actions lists every action name in display order.
var Actions = []string{
	ActionSelectCharacter,
	ActionSetTier,
	ActionSwitchTeamMember,
	ActionUnlock,
	ActionAddCard,
	ActionRemove,
	ActionAddEpiphany,
	ActionConvert,
	ActionDuplicate,
	ActionDelete,
	ActionResetRun,
	ActionUndo,
}

// Command is an engine action invoked by name. Only the fields the action
// needs are read.
type Command struct {
	Action     string `json:"action" mapstructure:"action"`
	CardID     string `json:"card_id,omitempty" mapstructure:"card_id"`
	CardType   string `json:"card_type,omitempty" mapstructure:"card_type"`
	Epiphany   string `json:"epiphany,omitempty" mapstructure:"epiphany"`
	Tier       int    `json:"tier,omitempty" mapstructure:"tier"`
	TeamMember int    `json:"team_member,omitempty" mapstructure:"team_member"`
	Character  string `json:"character,omitempty" mapstructure:"character"`
}

// Result reports what a command did. Applied is false when a card-level
// guard refused the action; CardID is set for commands that create a card.
type Result struct {
	Applied bool   `json:"applied"`
	CardID  string `json:"card_id,omitempty"`
}

// Apply dispatches a command to the matching roster method. Card actions
// naming an id that is not in the active deck return ErrCardNotFound so the
// caller can tell a typo from a refused action; the state is untouched
// either way.
func (r *Roster) Apply(cmd Command) (Result, error) {
	switch cmd.Action {
	case ActionSelectCharacter:
		if err := r.SelectCharacter(cmd.Character); err != nil {
			return Result{}, err
		}
		return Result{Applied: true}, nil

	case ActionSetTier:
		before := r.State().Tier
		if err := r.SetTier(cmd.Tier); err != nil {
			return Result{}, err
		}
		return Result{Applied: before != cmd.Tier}, nil

	case ActionSwitchTeamMember:
		before := r.ActiveTeamMember()
		if err := r.SwitchTeamMember(cmd.TeamMember); err != nil {
			return Result{}, err
		}
		return Result{Applied: before != cmd.TeamMember}, nil

	case ActionAddCard:
		t, err := ParseCardType(cmd.CardType)
		if err != nil {
			return Result{}, err
		}
		return Result{Applied: true, CardID: r.AddAdditionalCard(t)}, nil

	case ActionResetRun:
		if err := r.ResetRun(); err != nil {
			return Result{}, err
		}
		return Result{Applied: true}, nil

	case ActionUndo:
		return Result{Applied: r.Undo()}, nil

	case ActionUnlock, ActionRemove, ActionAddEpiphany, ActionConvert, ActionDuplicate, ActionDelete:
		return r.applyCardAction(cmd)

	default:
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownAction, cmd.Action)
	}
}

func (r *Roster) applyCardAction(cmd Command) (Result, error) {
	if _, ok := r.GetCard(cmd.CardID); !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrCardNotFound, cmd.CardID)
	}
	switch cmd.Action {
	case ActionUnlock:
		return Result{Applied: r.UnlockBaseCard(cmd.CardID)}, nil
	case ActionRemove:
		return Result{Applied: r.RemoveCard(cmd.CardID)}, nil
	case ActionAddEpiphany:
		kind, err := ParseEpiphanyType(cmd.Epiphany)
		if err != nil {
			return Result{}, err
		}
		return Result{Applied: r.AddEpiphany(cmd.CardID, kind)}, nil
	case ActionConvert:
		return Result{Applied: r.ConvertCard(cmd.CardID)}, nil
	case ActionDuplicate:
		id, ok := r.DuplicateCard(cmd.CardID)
		return Result{Applied: ok, CardID: id}, nil
	default:
		return Result{Applied: r.DeleteOrResetCard(cmd.CardID)}, nil
	}
}
