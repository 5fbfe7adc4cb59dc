package console

import (
	"fmt"
	"strings"

	"github.com/peterkuimelis/savedata/internal/view"
)

func (c *Console) renderState(sv *view.StateView) {
	if sv == nil {
		return
	}
	w := c.out

	fmt.Fprintln(w)
	fmt.Fprintln(w, "╔══════════════════════════════════════════════════════╗")

	var tabs []string
	for _, m := range sv.Team {
		name := m.Character
		if name == "" {
			name = "-"
		}
		tab := fmt.Sprintf("%d:%s %d/%d", m.Number, name, m.Points, m.Cap)
		if m.Number == sv.ActiveTeamMember {
			tab = "[" + tab + "]"
		}
		tabs = append(tabs, tab)
	}
	fmt.Fprintf(w, "║  Team: %s\n", strings.Join(tabs, "  "))

	character := sv.Character
	if character == "" {
		character = "(no character)"
	}
	fmt.Fprintf(w, "║  %s  Tier %d  %d/%d pts  %s\n", character, sv.Tier, sv.CurrentPoints, sv.Cap, sv.Status.Message)
	fmt.Fprintln(w, "║──────────────────────────────────────────────────────")

	fmt.Fprintln(w, "║  Base cards:")
	for _, cv := range sv.BaseCards {
		fmt.Fprintf(w, "║    b%d %s\n", cv.Slot, formatCard(cv))
	}
	if len(sv.AdditionalCards) > 0 {
		fmt.Fprintln(w, "║  Additional cards:")
		for i, cv := range sv.AdditionalCards {
			fmt.Fprintf(w, "║    a%d %s\n", i+1, formatCard(cv))
		}
	}
	fmt.Fprintln(w, "╚══════════════════════════════════════════════════════╝")

	fmt.Fprintf(w, "Next removal: +%d  Next duplication: +%d", sv.NextRemovalCost, sv.NextDuplicationCost)
	if sv.CanUndo {
		fmt.Fprint(w, "  (undo available)")
	}
	fmt.Fprintln(w)
}

func formatCard(cv view.CardView) string {
	var flags []string
	if cv.IsLocked {
		flags = append(flags, "LOCKED")
	}
	if cv.Epiphany != "none" {
		flags = append(flags, cv.Epiphany)
	}
	if cv.IsConverted {
		flags = append(flags, "converted")
	}
	if cv.IsDuplicate && cv.DuplicationIndex != nil {
		flags = append(flags, fmt.Sprintf("dup #%d", *cv.DuplicationIndex+1))
	}
	if cv.IsRemoved {
		flags = append(flags, "REMOVED")
	}
	label := "[" + cv.Type + "]"
	if cv.Name != "" {
		label = fmt.Sprintf("[%s %s]", cv.Name, cv.Type)
	}
	s := fmt.Sprintf("%s %d pts", label, cv.DisplayPoints)
	if len(flags) > 0 {
		s += " (" + strings.Join(flags, ", ") + ")"
	}
	return s
}

func (c *Console) renderBreakdown(b view.BreakdownView) {
	w := c.out
	line := func(label string, t view.TallyView) {
		fmt.Fprintf(w, "  %-22s %3d  %4d pts\n", label, t.Count, t.Points)
	}
	fmt.Fprintln(w, "\nBreakdown:")
	line("Base cards", b.BaseCards)
	line("Neutral cards", b.NeutralCards)
	line("Monster cards", b.MonsterCards)
	line("Forbidden cards", b.ForbiddenCards)
	fmt.Fprintf(w, "  %-27s %4d pts\n", "Cards subtotal", b.CardsSubtotal)
	line("Regular epiphanies", b.RegularEpiphanies)
	line("Divine epiphanies", b.DivineEpiphanies)
	fmt.Fprintf(w, "  %-27s %4d pts\n", "Epiphanies subtotal", b.EpiphaniesSubtotal)
	line(fmt.Sprintf("Removals (%d bonus)", b.Removals.BonusCount), b.Removals)
	line("Duplications", b.Duplications)
	line("Conversions", b.Conversions)
	fmt.Fprintf(w, "  %-27s %4d pts\n", "Actions subtotal", b.ActionsSubtotal)
	fmt.Fprintf(w, "  %-27s %4d pts\n", "TOTAL", b.Total)
}

func (c *Console) renderCharacters(chars []view.CharacterView) {
	for _, ch := range chars {
		fmt.Fprintf(c.out, "  %-10s %s\n", ch.Key, ch.DisplayName)
	}
}

func (c *Console) renderHelp() {
	fmt.Fprint(c.out, `Commands:
  select <character>          start a new run with a character
  characters                  list characters
  tier <1-15>                 set the tier
  team <1-3>                  switch team member
  unlock <card>               unlock a base card
  add <type>                  add a base/neutral/monster/forbidden card
  remove <card>               remove a card
  epiphany <card> <kind>      add a regular or divine epiphany
  convert <card>              convert a card to neutral
  dup <card>                  duplicate a card
  delete <card>               reset a base card / delete an additional card
  reset                       start the run over
  undo                        undo the last action
  state | breakdown           show the deck or its point breakdown
  lookup <type> [kind] [pos]  price a hypothetical card
  quit
Cards are b1-b8 (base slots), a1, a2, ... (additional cards) or an id.
`)
}
