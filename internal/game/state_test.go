package game

import (
	"errors"
	"reflect"
	"slices"
	"testing"
)

func TestNewDeckStateWithoutCharacter(t *testing.T) {
	s := NewDeckState(nil)
	if s.Tier != DefaultTier {
		t.Errorf("Expected tier %d, got %d", DefaultTier, s.Tier)
	}
	for i, c := range s.BaseCards {
		if c.Type != CardTypeBase {
			t.Errorf("Slot %d: expected base card, got %s", i, c.Type)
		}
		if wantLocked := i >= StartingSlots; c.IsLocked != wantLocked {
			t.Errorf("Slot %d: IsLocked = %v, want %v", i, c.IsLocked, wantLocked)
		}
		if c.Name != "" {
			t.Errorf("Slot %d: expected blank name, got %q", i, c.Name)
		}
	}
	if len(s.AdditionalCards) != 0 || s.TotalRemovals != 0 || s.TotalDuplications != 0 || s.TotalConversions != 0 {
		t.Error("Expected empty deck with zeroed counters")
	}
	if TotalPoints(s) != 0 {
		t.Errorf("Expected 0 points, got %d", TotalPoints(s))
	}
}

func TestNewDeckStateWithCharacter(t *testing.T) {
	ch, err := DefaultCharacters().Lookup("amir")
	if err != nil {
		t.Fatal(err)
	}
	s := NewDeckState(ch)
	want := []string{"Rapier", "Rapier", "Steel Barrier", "Hovering Metal", "Metal Pierce",
		"Metal Extraction", "Full Metal Hurricane", "Iron Skin"}
	for i, c := range s.BaseCards {
		if c.Name != want[i] {
			t.Errorf("Slot %d: name %q, want %q", i, c.Name, want[i])
		}
	}
	if s.SelectedCharacter != "amir" {
		t.Errorf("Expected selected character amir, got %q", s.SelectedCharacter)
	}
	// Slot 4 holds the first unique card and is already unlocked.
	if s.BaseCards[3].IsLocked || !s.BaseCards[4].IsLocked {
		t.Error("Expected slots 1-4 unlocked and 5-8 locked")
	}
}

func TestWithTier(t *testing.T) {
	s := NewDeckState(nil)
	next, err := s.WithTier(15)
	if err != nil {
		t.Fatal(err)
	}
	if next.Tier != 15 || next.Cap() != 170 {
		t.Errorf("Expected tier 15 cap 170, got tier %d cap %d", next.Tier, next.Cap())
	}
	for _, bad := range []int{0, 16, -3} {
		same, err := s.WithTier(bad)
		if !errors.Is(err, ErrInvalidTier) {
			t.Errorf("WithTier(%d): expected ErrInvalidTier, got %v", bad, err)
		}
		if same.Tier != DefaultTier {
			t.Errorf("WithTier(%d) changed the tier to %d", bad, same.Tier)
		}
	}
}

func TestUnlockBaseCard(t *testing.T) {
	s := NewDeckState(nil)
	locked := s.BaseCards[5].ID

	next, ok := s.UnlockBaseCard(locked)
	if !ok {
		t.Fatal("Expected unlock to succeed")
	}
	if next.BaseCards[5].IsLocked {
		t.Error("Expected slot 6 to be unlocked")
	}
	if !s.BaseCards[5].IsLocked {
		t.Error("Original state was modified")
	}
	if _, ok := next.UnlockBaseCard(locked); ok {
		t.Error("Expected second unlock to be refused")
	}
	if _, ok := s.UnlockBaseCard(s.BaseCards[0].ID); ok {
		t.Error("Expected unlock of an unlocked slot to be refused")
	}

	withExtra, id := s.AddAdditionalCard(CardTypeMonster)
	if _, ok := withExtra.UnlockBaseCard(id); ok {
		t.Error("Expected unlock of an additional card to be refused")
	}
	if _, ok := s.UnlockBaseCard("missing"); ok {
		t.Error("Expected unlock of an unknown id to be refused")
	}
}

func TestRemoveCardChargesBonusForBaseCards(t *testing.T) {
	s := NewDeckState(nil)
	id := s.BaseCards[0].ID

	next, ok := s.RemoveCard(id, nil)
	if !ok {
		t.Fatal("Expected removal to succeed")
	}
	c := mustCard(t, next, id)
	if !c.IsRemoved || !c.BonusRemoval {
		t.Errorf("Expected removed bonus card, got %+v", c)
	}
	if next.TotalRemovals != 1 || next.RemovalsBonusCount != 1 {
		t.Errorf("Expected 1 removal with 1 bonus, got %d/%d", next.TotalRemovals, next.RemovalsBonusCount)
	}
	if got := TotalPoints(next); got != 20 {
		t.Errorf("Expected 20 points after first base removal, got %d", got)
	}

	if _, ok := next.RemoveCard(id, nil); ok {
		t.Error("Expected removal of an already removed card to be refused")
	}
}

func TestRemoveCardWithoutBonus(t *testing.T) {
	s, id := NewDeckState(nil).AddAdditionalCard(CardTypeNeutral)
	s, _ = s.AddEpiphany(id, EpiphanyRegular)

	narrow, _ := s.RemoveCard(id, BaseCardBonus)
	if narrow.RemovalsBonusCount != 0 || narrow.TotalRemovals != 1 {
		t.Errorf("Base rule: expected 1 removal without bonus, got %d/%d", narrow.TotalRemovals, narrow.RemovalsBonusCount)
	}

	broad, _ := s.RemoveCard(id, BaseOrEpiphanyBonus)
	if broad.RemovalsBonusCount != 1 {
		t.Errorf("Broader rule: expected the epiphany card to pay the bonus, got %d", broad.RemovalsBonusCount)
	}
}

func TestAddEpiphany(t *testing.T) {
	s, id := NewDeckState(nil).AddAdditionalCard(CardTypeNeutral)

	if _, ok := s.AddEpiphany(id, EpiphanyNone); ok {
		t.Error("Expected EpiphanyNone to be refused")
	}
	next, ok := s.AddEpiphany(id, EpiphanyDivine)
	if !ok {
		t.Fatal("Expected epiphany to apply")
	}
	if got := TotalPoints(next); got != 50 {
		t.Errorf("Expected 50 points for divine neutral, got %d", got)
	}
	if _, ok := next.AddEpiphany(id, EpiphanyRegular); ok {
		t.Error("Expected a second epiphany to be refused")
	}

	removed, _ := s.RemoveCard(id, nil)
	if _, ok := removed.AddEpiphany(id, EpiphanyRegular); ok {
		t.Error("Expected epiphany on a removed card to be refused")
	}
}

func TestConvertCard(t *testing.T) {
	s := NewDeckState(nil)
	id := s.BaseCards[1].ID

	next, ok := s.ConvertCard(id)
	if !ok {
		t.Fatal("Expected conversion to succeed")
	}
	c := mustCard(t, next, id)
	if c.Type != CardTypeNeutral || !c.IsConverted {
		t.Errorf("Expected converted neutral card, got %+v", c)
	}
	// 20 for the neutral card, 10 for the conversion.
	if got := TotalPoints(next); got != 30 {
		t.Errorf("Expected 30 points, got %d", got)
	}
	if _, ok := next.ConvertCard(id); ok {
		t.Error("Expected second conversion to be refused")
	}

	withNeutral, nid := s.AddAdditionalCard(CardTypeNeutral)
	if _, ok := withNeutral.ConvertCard(nid); ok {
		t.Error("Expected conversion of a native neutral card to be refused")
	}
	removed, _ := s.RemoveCard(id, nil)
	if _, ok := removed.ConvertCard(id); ok {
		t.Error("Expected conversion of a removed card to be refused")
	}
}

func TestDuplicateCardCopiesModifiers(t *testing.T) {
	s, id := NewDeckState(nil).AddAdditionalCard(CardTypeForbidden)
	s, _ = s.ConvertCard(id)
	s, _ = s.AddEpiphany(id, EpiphanyRegular)
	s, _ = s.RemoveCard(id, nil)

	next, dupID, ok := s.DuplicateCard(id)
	if !ok {
		t.Fatal("Expected duplication of a removed card to succeed")
	}
	dup := mustCard(t, next, dupID)
	if dup.Type != CardTypeNeutral || dup.Epiphany != EpiphanyRegular || !dup.IsConverted {
		t.Errorf("Duplicate did not copy modifiers: %+v", dup)
	}
	if dup.IsRemoved || dup.IsLocked {
		t.Errorf("Duplicate should be active and unlocked: %+v", dup)
	}
	if dup.ConversionCharged {
		t.Error("Duplicate should not carry the source's conversion charge")
	}
	if !dup.IsDuplicate || dup.OriginalCardID != id || dup.DuplicationIndex != 0 {
		t.Errorf("Unexpected duplicate bookkeeping: %+v", dup)
	}
	if next.TotalDuplications != 1 {
		t.Errorf("Expected TotalDuplications 1, got %d", next.TotalDuplications)
	}
	if _, _, ok := s.DuplicateCard("missing"); ok {
		t.Error("Expected duplication of an unknown id to fail")
	}
}

// TestDuplicationIndicesStayContiguous: five duplicates, delete the third,
// the rest are renumbered 0..3 in their original order.
func TestDuplicationIndicesStayContiguous(t *testing.T) {
	useSequentialIDs(t)
	s := NewDeckState(nil)
	src := s.BaseCards[0].ID

	var dups []string
	for i := 0; i < 5; i++ {
		var id string
		s, id, _ = s.DuplicateCard(src)
		dups = append(dups, id)
	}
	if got := duplicationIndices(s); !slices.Equal(got, []int{0, 1, 2, 3, 4}) {
		t.Fatalf("Expected indices 0..4, got %v", got)
	}
	if got := TotalPoints(s); got != 160 {
		t.Errorf("Expected 160 points for five base duplicates, got %d", got)
	}

	s, ok := s.DeleteOrResetCard(dups[2])
	if !ok {
		t.Fatal("Expected delete to succeed")
	}
	if got := duplicationIndices(s); !slices.Equal(got, []int{0, 1, 2, 3}) {
		t.Errorf("Expected indices 0..3 after delete, got %v", got)
	}
	var order []string
	for _, c := range s.Duplicates() {
		order = append(order, c.ID)
	}
	if want := []string{dups[0], dups[1], dups[3], dups[4]}; !slices.Equal(order, want) {
		t.Errorf("Expected order %v, got %v", want, order)
	}
	if s.TotalDuplications != 4 {
		t.Errorf("Expected TotalDuplications 4, got %d", s.TotalDuplications)
	}
	if got := TotalPoints(s); got != 90 {
		t.Errorf("Expected 90 points, got %d", got)
	}

	// New duplicates continue after the compacted ranks.
	s, id, _ := s.DuplicateCard(src)
	if c := mustCard(t, s, id); c.DuplicationIndex != 4 {
		t.Errorf("Expected next duplicate at index 4, got %d", c.DuplicationIndex)
	}
}

func TestResetBaseSlotRefundsCounters(t *testing.T) {
	s := NewDeckState(nil)
	slot := s.BaseCards[6]
	id := slot.ID

	s, _ = s.UnlockBaseCard(id)
	s, _ = s.AddEpiphany(id, EpiphanyDivine)
	s, _ = s.RemoveCard(id, nil)
	if s.TotalRemovals != 1 || s.RemovalsBonusCount != 1 {
		t.Fatalf("Setup: expected bonus removal, got %d/%d", s.TotalRemovals, s.RemovalsBonusCount)
	}

	next, ok := s.DeleteOrResetCard(id)
	if !ok {
		t.Fatal("Expected reset to succeed")
	}
	c := mustCard(t, next, id)
	want := Card{ID: id, Type: CardTypeBase, IsLocked: false, Name: slot.Name}
	if c != want {
		t.Errorf("Expected pristine slot %+v, got %+v", want, c)
	}
	if next.TotalRemovals != 0 || next.RemovalsBonusCount != 0 {
		t.Errorf("Expected refunded removal counters, got %d/%d", next.TotalRemovals, next.RemovalsBonusCount)
	}
	if TotalPoints(next) != 0 {
		t.Errorf("Expected 0 points after reset, got %d", TotalPoints(next))
	}
	if _, ok := next.DeleteOrResetCard(id); ok {
		t.Error("Expected reset of a pristine slot to report no change")
	}
}

func TestResetConvertedBaseSlot(t *testing.T) {
	s := NewDeckState(nil)
	id := s.BaseCards[0].ID
	s, _ = s.ConvertCard(id)
	s, _ = s.RemoveCard(id, nil)

	// A converted slot is neutral, so its removal paid no bonus.
	if s.RemovalsBonusCount != 0 || s.TotalConversions != 1 {
		t.Fatalf("Setup: got bonus %d conversions %d", s.RemovalsBonusCount, s.TotalConversions)
	}
	s, _ = s.DeleteOrResetCard(id)
	if s.TotalRemovals != 0 || s.TotalConversions != 0 {
		t.Errorf("Expected counters refunded, got removals %d conversions %d", s.TotalRemovals, s.TotalConversions)
	}
	if c := mustCard(t, s, id); c.Type != CardTypeBase {
		t.Errorf("Expected slot back to base, got %s", c.Type)
	}
}

func TestDeleteAdditionalCard(t *testing.T) {
	s := NewDeckState(nil)
	s, dupID, _ := s.DuplicateCard(s.BaseCards[2].ID)
	s, _ = s.ConvertCard(dupID)
	s, _ = s.RemoveCard(dupID, nil)

	next, ok := s.DeleteOrResetCard(dupID)
	if !ok {
		t.Fatal("Expected delete to succeed")
	}
	if _, found := next.FindCard(dupID); found {
		t.Error("Expected card to be gone")
	}
	if next.TotalRemovals != 0 || next.TotalConversions != 0 || next.TotalDuplications != 0 {
		t.Errorf("Expected all counters refunded, got %+v", next)
	}
	if len(s.AdditionalCards) != 1 {
		t.Error("Original state was modified")
	}
	if _, ok := next.DeleteOrResetCard("missing"); ok {
		t.Error("Expected delete of an unknown id to fail")
	}
}

// TestDeleteDuplicateOfConvertedCardKeepsConversion: the duplicate inherits
// the converted type but the conversion was paid once, by the source.
func TestDeleteDuplicateOfConvertedCardKeepsConversion(t *testing.T) {
	s := NewDeckState(nil)
	id := s.BaseCards[0].ID
	s, _ = s.ConvertCard(id)
	if got := TotalPoints(s); got != 30 {
		t.Fatalf("Setup: expected 30 points after conversion, got %d", got)
	}

	s, dupID, _ := s.DuplicateCard(id)
	s, ok := s.DeleteOrResetCard(dupID)
	if !ok {
		t.Fatal("Expected delete to succeed")
	}
	if s.TotalConversions != 1 {
		t.Errorf("Expected the source's conversion to remain, got %d", s.TotalConversions)
	}
	if got := TotalPoints(s); got != 30 {
		t.Errorf("Expected 30 points after deleting the duplicate, got %d", got)
	}
	assertTotalMatchesBreakdown(t, s)

	// Resetting the source then gives the conversion back exactly once.
	s, _ = s.DeleteOrResetCard(id)
	if s.TotalConversions != 0 || TotalPoints(s) != 0 {
		t.Errorf("Expected clean deck after reset, got conversions %d points %d", s.TotalConversions, TotalPoints(s))
	}
}

// TestDeleteConvertedDuplicateRefundsOwnConversion: a duplicate converted
// after creation paid for that conversion itself.
func TestDeleteConvertedDuplicateRefundsOwnConversion(t *testing.T) {
	s, src := NewDeckState(nil).AddAdditionalCard(CardTypeMonster)
	s, dupID, _ := s.DuplicateCard(src)
	s, _ = s.ConvertCard(dupID)
	if s.TotalConversions != 1 {
		t.Fatalf("Setup: expected 1 conversion, got %d", s.TotalConversions)
	}
	s, _ = s.DeleteOrResetCard(dupID)
	if s.TotalConversions != 0 {
		t.Errorf("Expected the duplicate's conversion refunded, got %d", s.TotalConversions)
	}
}

// TestActionsDoNotAliasPreviousState: every action leaves the prior value
// exactly as it was.
func TestActionsDoNotAliasPreviousState(t *testing.T) {
	s, id := NewDeckState(nil).AddAdditionalCard(CardTypeMonster)
	s, _, _ = s.DuplicateCard(id)
	before := s
	beforeCards := slices.Clone(s.AdditionalCards)

	s.ConvertCard(id)
	s.AddEpiphany(id, EpiphanyRegular)
	s.RemoveCard(id, nil)
	s.DeleteOrResetCard(id)
	s.DuplicateCard(id)
	s.AddAdditionalCard(CardTypeBase)

	if !reflect.DeepEqual(before, s) || !slices.Equal(beforeCards, s.AdditionalCards) {
		t.Error("An action mutated its receiver")
	}
}

func TestAvailableActions(t *testing.T) {
	s := NewDeckState(nil)
	locked := AvailableActions(s.BaseCards[7])
	if !locked.Unlock || !locked.Epiphany || !locked.Convert || !locked.Remove {
		t.Errorf("Unexpected actions for locked base card: %+v", locked)
	}

	removed := AvailableActions(Card{Type: CardTypeMonster, IsRemoved: true})
	if removed.Remove || removed.Epiphany || removed.Convert {
		t.Errorf("Removed card should only allow duplicate/delete: %+v", removed)
	}
	if !removed.Duplicate || !removed.Delete {
		t.Errorf("Removed card should allow duplicate and delete: %+v", removed)
	}

	neutral := AvailableActions(Card{Type: CardTypeNeutral, Epiphany: EpiphanyDivine})
	if neutral.Convert || neutral.Epiphany || neutral.Unlock {
		t.Errorf("Unexpected actions for neutral divine card: %+v", neutral)
	}
}
