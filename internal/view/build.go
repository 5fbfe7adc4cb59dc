package view

import (
	"github.com/peterkuimelis/savedata/internal/game"
	"github.com/peterkuimelis/savedata/internal/log"
)

// BuildStateView renders the roster from the active team member's
// perspective.
func BuildStateView(r *game.Roster) *StateView {
	s := r.State()
	sv := &StateView{
		ActiveTeamMember:    r.ActiveTeamMember(),
		Character:           r.Characters().DisplayName(s.SelectedCharacter),
		Tier:                s.Tier,
		Cap:                 r.Cap(),
		CurrentPoints:       r.CurrentPoints(),
		Status:              BuildStatusView(r.Status()),
		CanUndo:             r.CanUndo(),
		Breakdown:           BuildBreakdownView(r.Breakdown()),
		NextRemovalCost:     game.NextRemovalCost(s),
		NextDuplicationCost: game.NextDuplicationCost(s),
		AdditionalCards:     []CardView{},
	}

	for n := 1; n <= game.TeamSize; n++ {
		ms, _ := r.TeamMemberState(n)
		name, _ := r.TeamMemberCharacter(n)
		sv.Team = append(sv.Team, TeamMemberView{
			Number:    n,
			Character: name,
			Points:    game.TotalPoints(ms),
			Cap:       ms.Cap(),
		})
	}

	for i, c := range s.BaseCards {
		cv := BuildCardView(c)
		cv.Slot = i + 1
		sv.BaseCards = append(sv.BaseCards, cv)
	}
	for _, c := range s.AdditionalCards {
		sv.AdditionalCards = append(sv.AdditionalCards, BuildCardView(c))
	}
	return sv
}

// BuildCardView describes one card.
func BuildCardView(c game.Card) CardView {
	a := game.AvailableActions(c)
	cv := CardView{
		ID:             c.ID,
		Name:           c.Name,
		Type:           c.Type.String(),
		Epiphany:       c.Epiphany.String(),
		IsLocked:       c.IsLocked,
		IsRemoved:      c.IsRemoved,
		IsConverted:    c.IsConverted,
		IsDuplicate:    c.IsDuplicate,
		OriginalCardID: c.OriginalCardID,
		Points:         game.CardPoints(c),
		DisplayPoints:  game.DisplayPoints(c),
		Actions: CardActionsView{
			Unlock:    a.Unlock,
			Epiphany:  a.Epiphany,
			Convert:   a.Convert,
			Duplicate: a.Duplicate,
			Remove:    a.Remove,
			Delete:    a.Delete,
		},
	}
	if c.IsDuplicate {
		idx := c.DuplicationIndex
		cv.DuplicationIndex = &idx
	}
	return cv
}

func BuildStatusView(s game.Status) StatusView {
	return StatusView{Kind: s.Kind.String(), Message: s.Message}
}

func BuildBreakdownView(b game.Breakdown) BreakdownView {
	tally := func(t game.Tally) TallyView {
		return TallyView{Count: t.Count, Points: t.Points}
	}
	return BreakdownView{
		BaseCards:         tally(b.BaseCards),
		NeutralCards:      tally(b.NeutralCards),
		MonsterCards:      tally(b.MonsterCards),
		ForbiddenCards:    tally(b.ForbiddenCards),
		RegularEpiphanies: tally(b.RegularEpiphanies),
		DivineEpiphanies:  tally(b.DivineEpiphanies),
		Removals: TallyView{
			Count:      b.Removals.Count,
			BonusCount: b.Removals.BonusCount,
			Points:     b.Removals.Points,
		},
		Duplications:       tally(b.Duplications),
		Conversions:        tally(b.Conversions),
		CardsSubtotal:      b.CardsSubtotal(),
		EpiphaniesSubtotal: b.EpiphaniesSubtotal(),
		ActionsSubtotal:    b.ActionsSubtotal(),
		Total:              b.Total,
	}
}

// BuildEventView converts a logged event.
func BuildEventView(e log.GameEvent) EventView {
	return EventView{
		Seq:        e.Seq,
		TeamMember: e.TeamMember,
		Type:       e.Type.String(),
		CardID:     e.CardID,
		Card:       e.Card,
		Details:    e.Details,
		Points:     e.Points,
		Cap:        e.Cap,
	}
}

// BuildEventViews converts a batch of events; the result is never nil.
func BuildEventViews(events []log.GameEvent) []EventView {
	views := make([]EventView, 0, len(events))
	for _, e := range events {
		views = append(views, BuildEventView(e))
	}
	return views
}

// BuildCharacterViews lists the selectable characters.
func BuildCharacterViews(t *game.CharacterTable) []CharacterView {
	var views []CharacterView
	for _, ch := range t.List() {
		views = append(views, CharacterView{
			Key:           ch.Key,
			DisplayName:   ch.DisplayName,
			StartingCards: ch.StartingCards,
			UniqueCards:   ch.UniqueCards,
		})
	}
	return views
}

// BuildLookupView converts a quick-lookup result.
func BuildLookupView(res game.LookupResult) LookupView {
	return LookupView{CardValue: res.CardValue, DuplicationCost: res.DuplicationCost, Total: res.Total}
}
