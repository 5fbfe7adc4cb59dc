package game

import (
	"fmt"
	"slices"
	"sort"
)

const (
	BaseCardCount = 8
	// StartingSlots is how many base cards begin unlocked.
	StartingSlots = 4
)

// DeckState is one team member's deck: the eight fixed base slots, the
// cards added during the run, and the global action counters. Every action
// is a method on a value receiver returning a new DeckState; the receiver is
// never modified, and AdditionalCards is copied before any change.
type DeckState struct {
	Tier              int
	BaseCards         [BaseCardCount]Card
	AdditionalCards   []Card
	SelectedCharacter string // key into the character table, empty if none

	TotalRemovals      int
	RemovalsBonusCount int
	TotalDuplications  int
	TotalConversions   int
}

// NewDeckState returns a fresh deck at DefaultTier. With a character, the
// base slots carry its three starting cards followed by its five unique
// cards; the first four slots start unlocked either way.
func NewDeckState(ch *Character) DeckState {
	s := DeckState{Tier: DefaultTier}
	var names []string
	if ch != nil {
		s.SelectedCharacter = ch.Key
		names = ch.BaseCardNames()
	}
	for i := range s.BaseCards {
		name := ""
		if i < len(names) {
			name = names[i]
		}
		s.BaseCards[i] = NewCard(CardTypeBase, i >= StartingSlots, name)
	}
	return s
}

// Cap returns the point limit for the deck's tier.
func (s DeckState) Cap() int {
	return Cap(s.Tier)
}

// AllCards returns base cards followed by additional cards.
func (s DeckState) AllCards() []Card {
	all := make([]Card, 0, BaseCardCount+len(s.AdditionalCards))
	all = append(all, s.BaseCards[:]...)
	return append(all, s.AdditionalCards...)
}

// Duplicates returns the duplicate cards in insertion order.
func (s DeckState) Duplicates() []Card {
	var dups []Card
	for _, c := range s.AdditionalCards {
		if c.IsDuplicate {
			dups = append(dups, c)
		}
	}
	return dups
}

// FindCard looks a card up by id in both sections.
func (s DeckState) FindCard(id string) (Card, bool) {
	loc, idx := s.locate(id)
	switch loc {
	case inBase:
		return s.BaseCards[idx], true
	case inAdditional:
		return s.AdditionalCards[idx], true
	default:
		return Card{}, false
	}
}

// IsBaseSlot reports whether id belongs to one of the eight fixed slots,
// whatever its current type.
func (s DeckState) IsBaseSlot(id string) bool {
	loc, _ := s.locate(id)
	return loc == inBase
}

type cardLocation int

const (
	notFound cardLocation = iota
	inBase
	inAdditional
)

func (s DeckState) locate(id string) (cardLocation, int) {
	for i, c := range s.BaseCards {
		if c.ID == id {
			return inBase, i
		}
	}
	for i, c := range s.AdditionalCards {
		if c.ID == id {
			return inAdditional, i
		}
	}
	return notFound, -1
}

// withCard returns a copy of s with the card at (loc, idx) replaced.
func (s DeckState) withCard(loc cardLocation, idx int, c Card) DeckState {
	switch loc {
	case inBase:
		s.BaseCards[idx] = c
	case inAdditional:
		s.AdditionalCards = slices.Clone(s.AdditionalCards)
		s.AdditionalCards[idx] = c
	}
	return s
}

// --- Actions ---
//
// Each action returns the new state and whether anything changed. Failed
// preconditions and unknown ids leave the state untouched.

// WithTier changes the tier. Tiers outside [MinTier, MaxTier] are rejected.
func (s DeckState) WithTier(tier int) (DeckState, error) {
	if !ValidTier(tier) {
		return s, fmt.Errorf("%w: %d (want %d-%d)", ErrInvalidTier, tier, MinTier, MaxTier)
	}
	s.Tier = tier
	return s, nil
}

// UnlockBaseCard unlocks a locked base slot.
func (s DeckState) UnlockBaseCard(id string) (DeckState, bool) {
	loc, idx := s.locate(id)
	if loc != inBase || !s.BaseCards[idx].IsLocked {
		return s, false
	}
	c := s.BaseCards[idx]
	c.IsLocked = false
	return s.withCard(loc, idx, c), true
}

// AddAdditionalCard appends a new unlocked card and returns its id.
func (s DeckState) AddAdditionalCard(t CardType) (DeckState, string) {
	c := NewCard(t, false, "")
	s.AdditionalCards = append(slices.Clone(s.AdditionalCards), c)
	return s, c.ID
}

// RemoveCard flags a card as removed and charges the removal counters.
// bonus decides whether the flat removal bonus applies; nil means
// BaseCardBonus. Already-removed cards are refused.
func (s DeckState) RemoveCard(id string, bonus BonusRule) (DeckState, bool) {
	loc, idx := s.locate(id)
	if loc == notFound {
		return s, false
	}
	c := s.cardAt(loc, idx)
	if c.IsRemoved {
		return s, false
	}
	if bonus == nil {
		bonus = BaseCardBonus
	}
	c.BonusRemoval = bonus(c)
	c.IsRemoved = true

	s = s.withCard(loc, idx, c)
	s.TotalRemovals++
	if c.BonusRemoval {
		s.RemovalsBonusCount++
	}
	return s, true
}

// AddEpiphany applies a regular or divine epiphany to a card that has none.
func (s DeckState) AddEpiphany(id string, kind EpiphanyType) (DeckState, bool) {
	if kind != EpiphanyRegular && kind != EpiphanyDivine {
		return s, false
	}
	loc, idx := s.locate(id)
	if loc == notFound {
		return s, false
	}
	c := s.cardAt(loc, idx)
	if !canAddEpiphany(c) {
		return s, false
	}
	c.Epiphany = kind
	return s.withCard(loc, idx, c), true
}

// ConvertCard turns a non-neutral card into a neutral one, once.
func (s DeckState) ConvertCard(id string) (DeckState, bool) {
	loc, idx := s.locate(id)
	if loc == notFound {
		return s, false
	}
	c := s.cardAt(loc, idx)
	if !canConvert(c) {
		return s, false
	}
	c.Type = CardTypeNeutral
	c.IsConverted = true
	c.ConversionCharged = true

	s = s.withCard(loc, idx, c)
	s.TotalConversions++
	return s, true
}

// DuplicateCard appends a copy of any card, removed or not, to the
// additional cards. The copy keeps type, name, epiphany and conversion
// state and takes the next duplication rank. The copy is not charged for
// the source's conversion.
func (s DeckState) DuplicateCard(id string) (DeckState, string, bool) {
	src, ok := s.FindCard(id)
	if !ok {
		return s, "", false
	}
	dup := NewCard(src.Type, false, src.Name)
	dup.Epiphany = src.Epiphany
	dup.IsConverted = src.IsConverted
	dup.IsDuplicate = true
	dup.OriginalCardID = src.ID
	dup.DuplicationIndex = s.TotalDuplications

	s.AdditionalCards = append(slices.Clone(s.AdditionalCards), dup)
	s.TotalDuplications++
	return s, dup.ID, true
}

// DeleteOrResetCard resets a base slot back to a plain base card, or
// permanently deletes an additional card. Either way, the counters the card
// had charged are given back. Deleting a duplicate compacts the remaining
// duplication ranks.
func (s DeckState) DeleteOrResetCard(id string) (DeckState, bool) {
	loc, idx := s.locate(id)
	switch loc {
	case inBase:
		old := s.BaseCards[idx]
		reset := Card{
			ID:       old.ID,
			Type:     CardTypeBase,
			IsLocked: old.IsLocked,
			Name:     old.Name,
		}
		if reset == old {
			return s, false
		}
		s = s.refund(old)
		return s.withCard(loc, idx, reset), true

	case inAdditional:
		old := s.AdditionalCards[idx]
		s.AdditionalCards = slices.Delete(slices.Clone(s.AdditionalCards), idx, idx+1)
		s = s.refund(old)
		if old.IsDuplicate {
			s.TotalDuplications = max(s.TotalDuplications-1, 0)
			s.reindexDuplicates()
		}
		return s, true
	}
	return s, false
}

// refund gives back the removal and conversion counters c was charged.
func (s DeckState) refund(c Card) DeckState {
	if c.IsRemoved {
		s.TotalRemovals = max(s.TotalRemovals-1, 0)
		if c.BonusRemoval {
			s.RemovalsBonusCount = max(s.RemovalsBonusCount-1, 0)
		}
	}
	if c.ConversionCharged {
		s.TotalConversions = max(s.TotalConversions-1, 0)
	}
	return s
}

// reindexDuplicates rewrites DuplicationIndex so the live duplicates hold
// 0..n-1 in their original relative order. AdditionalCards must already be
// a private copy.
func (s *DeckState) reindexDuplicates() {
	var positions []int
	for i, c := range s.AdditionalCards {
		if c.IsDuplicate {
			positions = append(positions, i)
		}
	}
	sort.SliceStable(positions, func(a, b int) bool {
		return s.AdditionalCards[positions[a]].DuplicationIndex < s.AdditionalCards[positions[b]].DuplicationIndex
	})
	for rank, pos := range positions {
		s.AdditionalCards[pos].DuplicationIndex = rank
	}
}

func (s DeckState) cardAt(loc cardLocation, idx int) Card {
	if loc == inBase {
		return s.BaseCards[idx]
	}
	return s.AdditionalCards[idx]
}
