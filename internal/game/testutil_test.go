package game

import (
	"fmt"
	"testing"

	"github.com/peterkuimelis/savedata/internal/log"
)

// useSequentialIDs makes card ids predictable ("card-1", "card-2", ...) for
// the duration of a test.
func useSequentialIDs(t *testing.T) {
	t.Helper()
	old := newCardID
	n := 0
	newCardID = func() string {
		n++
		return fmt.Sprintf("card-%d", n)
	}
	t.Cleanup(func() { newCardID = old })
}

// newTestRoster returns a roster with default settings and a memory logger.
func newTestRoster(t *testing.T) (*Roster, *log.MemoryLogger) {
	t.Helper()
	logger := log.NewMemoryLogger()
	r, err := NewRoster(RosterConfig{Logger: logger})
	if err != nil {
		t.Fatalf("NewRoster: %v", err)
	}
	return r, logger
}

// baseID returns the id of base slot i (0-based) of the active deck.
func baseID(r *Roster, i int) string {
	return r.State().BaseCards[i].ID
}

// mustCard fetches a card from s or fails the test.
func mustCard(t *testing.T, s DeckState, id string) Card {
	t.Helper()
	c, ok := s.FindCard(id)
	if !ok {
		t.Fatalf("card %s not found", id)
	}
	return c
}

// assertTotalMatchesBreakdown checks the grand-total identity on s.
func assertTotalMatchesBreakdown(t *testing.T, s DeckState) {
	t.Helper()
	b := ComputeBreakdown(s)
	if got, want := b.Total, TotalPoints(s); got != want {
		t.Errorf("Breakdown total %d != TotalPoints %d", got, want)
	}
	if sum := b.CardsSubtotal() + b.EpiphaniesSubtotal() + b.ActionsSubtotal(); sum != b.Total {
		t.Errorf("Subtotals sum to %d, Total is %d", sum, b.Total)
	}
}

// duplicationIndices returns the DuplicationIndex of each duplicate in
// insertion order.
func duplicationIndices(s DeckState) []int {
	var idx []int
	for _, c := range s.Duplicates() {
		idx = append(idx, c.DuplicationIndex)
	}
	return idx
}
