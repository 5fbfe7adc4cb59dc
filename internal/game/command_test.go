package game

import (
	"errors"
	"testing"
)

func TestApplyDispatchesActions(t *testing.T) {
	r, _ := newTestRoster(t)

	steps := []struct {
		cmd     Command
		applied bool
	}{
		{Command{Action: ActionSelectCharacter, Character: "amir"}, true},
		{Command{Action: ActionSetTier, Tier: 10}, true},
		{Command{Action: ActionSetTier, Tier: 10}, false},
	}
	for i, st := range steps {
		res, err := r.Apply(st.cmd)
		if err != nil || res.Applied != st.applied {
			t.Fatalf("Step %d (%s): applied=%v err=%v", i, st.cmd.Action, res.Applied, err)
		}
	}

	// Card ids change on select_character, so resolve them afterwards.
	res, err := r.Apply(Command{Action: ActionUnlock, CardID: baseID(r, 6)})
	if err != nil || !res.Applied {
		t.Fatalf("unlock: applied=%v err=%v", res.Applied, err)
	}
	res, err = r.Apply(Command{Action: ActionAddCard, CardType: "monster"})
	if err != nil || !res.Applied || res.CardID == "" {
		t.Fatalf("add_card: %+v err=%v", res, err)
	}
	monster := res.CardID

	res, err = r.Apply(Command{Action: ActionAddEpiphany, CardID: monster, Epiphany: "regular"})
	if err != nil || !res.Applied {
		t.Fatalf("add_epiphany: applied=%v err=%v", res.Applied, err)
	}
	res, err = r.Apply(Command{Action: ActionDuplicate, CardID: monster})
	if err != nil || !res.Applied || res.CardID == "" {
		t.Fatalf("duplicate: %+v err=%v", res, err)
	}
	dup := res.CardID
	res, _ = r.Apply(Command{Action: ActionConvert, CardID: dup})
	if !res.Applied {
		t.Error("Expected convert to apply")
	}
	res, _ = r.Apply(Command{Action: ActionRemove, CardID: monster})
	if !res.Applied {
		t.Error("Expected remove to apply")
	}
	res, _ = r.Apply(Command{Action: ActionRemove, CardID: monster})
	if res.Applied {
		t.Error("Expected second remove to be refused")
	}
	res, _ = r.Apply(Command{Action: ActionDelete, CardID: dup})
	if !res.Applied {
		t.Error("Expected delete to apply")
	}
	res, _ = r.Apply(Command{Action: ActionUndo})
	if !res.Applied {
		t.Error("Expected undo to apply")
	}
	if _, ok := r.GetCard(dup); !ok {
		t.Error("Expected undo to restore the deleted duplicate")
	}

	res, err = r.Apply(Command{Action: ActionSwitchTeamMember, TeamMember: 3})
	if err != nil || !res.Applied || r.ActiveTeamMember() != 3 {
		t.Errorf("switch_team_member: applied=%v err=%v active=%d", res.Applied, err, r.ActiveTeamMember())
	}
	res, err = r.Apply(Command{Action: ActionResetRun})
	if err != nil || !res.Applied {
		t.Errorf("reset_run: applied=%v err=%v", res.Applied, err)
	}
}

func TestApplyErrors(t *testing.T) {
	r, _ := newTestRoster(t)
	id := baseID(r, 0)

	cases := []struct {
		name string
		cmd  Command
		want error
	}{
		{"unknown action", Command{Action: "shuffle"}, ErrUnknownAction},
		{"unknown card", Command{Action: ActionRemove, CardID: "nope"}, ErrCardNotFound},
		{"bad card type", Command{Action: ActionAddCard, CardType: "legendary"}, ErrUnknownCardType},
		{"bad epiphany", Command{Action: ActionAddEpiphany, CardID: id, Epiphany: "cosmic"}, ErrUnknownEpiphany},
		{"bad tier", Command{Action: ActionSetTier, Tier: 0}, ErrInvalidTier},
		{"bad member", Command{Action: ActionSwitchTeamMember, TeamMember: 7}, ErrInvalidTeamMember},
		{"bad character", Command{Action: ActionSelectCharacter, Character: "x"}, ErrUnknownCharacter},
	}
	for _, tc := range cases {
		if _, err := r.Apply(tc.cmd); !errors.Is(err, tc.want) {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
	if r.CanUndo() || r.CurrentPoints() != 0 {
		t.Error("Failed commands changed the roster")
	}
}
