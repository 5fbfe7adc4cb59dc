package game

import "fmt"

const (
	MinTier     = 1
	MaxTier     = 15
	DefaultTier = 8
)

// Cap returns the save-data point limit for a tier: 30 at tier 1, rising by
// 10 per tier up to 170 at tier 15.
func Cap(tier int) int {
	return 20 + 10*tier
}

// ValidTier reports whether tier is inside [MinTier, MaxTier].
func ValidTier(tier int) bool {
	return tier >= MinTier && tier <= MaxTier
}

// Tally is a count and the points it contributes.
type Tally struct {
	Count  int
	Points int
}

// RemovalTally adds the bonus-eligible subset to a removal count.
type RemovalTally struct {
	Count      int
	BonusCount int
	Points     int
}

// Breakdown groups a deck's points by category. Card and epiphany counts
// include duplicates but not removed cards; Total always equals TotalPoints.
type Breakdown struct {
	BaseCards      Tally
	NeutralCards   Tally
	MonsterCards   Tally
	ForbiddenCards Tally

	// RegularEpiphanies.Count includes the free ones on base and monster
	// cards; Points only the charged ones.
	RegularEpiphanies Tally
	DivineEpiphanies  Tally

	Removals     RemovalTally
	Duplications Tally
	Conversions  Tally

	Total int
}

// CardsSubtotal sums the four card-type categories.
func (b Breakdown) CardsSubtotal() int {
	return b.BaseCards.Points + b.NeutralCards.Points + b.MonsterCards.Points + b.ForbiddenCards.Points
}

// EpiphaniesSubtotal sums both epiphany categories.
func (b Breakdown) EpiphaniesSubtotal() int {
	return b.RegularEpiphanies.Points + b.DivineEpiphanies.Points
}

// ActionsSubtotal sums removals, duplications and conversions.
func (b Breakdown) ActionsSubtotal() int {
	return b.Removals.Points + b.Duplications.Points + b.Conversions.Points
}

// TotalPoints returns the deck's save-data value.
func TotalPoints(s DeckState) int {
	total := 0
	for _, c := range s.AllCards() {
		total += CardPoints(c)
	}
	total += RemovalPoints(s.TotalRemovals, s.RemovalsBonusCount)
	total += DuplicationPoints(s.Duplicates())
	total += ConversionCost(s.TotalConversions)
	return total
}

// ComputeBreakdown categorizes the deck's points.
func ComputeBreakdown(s DeckState) Breakdown {
	var b Breakdown
	for _, c := range s.AllCards() {
		if c.IsRemoved {
			continue
		}
		tally := b.typeTally(c.Type)
		tally.Count++
		tally.Points += TypePoints(c.Type)

		switch c.Epiphany {
		case EpiphanyRegular:
			b.RegularEpiphanies.Count++
			b.RegularEpiphanies.Points += EpiphanyPoints(c.Type, c.Epiphany)
		case EpiphanyDivine:
			b.DivineEpiphanies.Count++
			b.DivineEpiphanies.Points += EpiphanyPoints(c.Type, c.Epiphany)
		}
	}

	b.Removals = RemovalTally{
		Count:      s.TotalRemovals,
		BonusCount: s.RemovalsBonusCount,
		Points:     RemovalPoints(s.TotalRemovals, s.RemovalsBonusCount),
	}
	b.Duplications = Tally{Count: s.TotalDuplications, Points: DuplicationPoints(s.Duplicates())}
	b.Conversions = Tally{Count: s.TotalConversions, Points: ConversionCost(s.TotalConversions)}

	b.Total = b.CardsSubtotal() + b.EpiphaniesSubtotal() + b.ActionsSubtotal()
	return b
}

func (b *Breakdown) typeTally(t CardType) *Tally {
	switch t {
	case CardTypeNeutral:
		return &b.NeutralCards
	case CardTypeMonster:
		return &b.MonsterCards
	case CardTypeForbidden:
		return &b.ForbiddenCards
	default:
		return &b.BaseCards
	}
}

// --- Status ---

type StatusKind int

const (
	StatusSafe StatusKind = iota
	StatusNearLimit
	StatusAtCap
	StatusOverLimit
)

func (k StatusKind) String() string {
	switch k {
	case StatusNearLimit:
		return "near-limit"
	case StatusAtCap:
		return "at-cap"
	case StatusOverLimit:
		return "over-limit"
	default:
		return "safe"
	}
}

// Status describes how a point total compares to its cap.
type Status struct {
	Kind    StatusKind
	Message string
}

// ComputeStatus classifies current against cap: above 100% is over the
// limit, exactly 100% is at cap, 90% up to (excluding) 100% is near the
// limit, anything lower is safe. Percentages are compared in integers so
// the 90% and 100% boundaries are exact.
func ComputeStatus(current, cap int) Status {
	switch {
	case current > cap:
		return Status{Kind: StatusOverLimit, Message: "OVER LIMIT - Cards Will Be Lost"}
	case current == cap:
		return Status{Kind: StatusAtCap, Message: "PERFECT - Exactly at Cap"}
	case current*10 >= cap*9:
		return Status{Kind: StatusNearLimit, Message: "WARNING - Close to Limit"}
	default:
		return Status{Kind: StatusSafe, Message: "SAFE"}
	}
}

func (s Status) String() string {
	return fmt.Sprintf("%s: %s", s.Kind, s.Message)
}

// NextRemovalCost is what the next removal would add, excluding the bonus.
func NextRemovalCost(s DeckState) int {
	return ProgressiveCost(s.TotalRemovals)
}

// NextDuplicationCost is the progressive cost the next duplicate would add.
func NextDuplicationCost(s DeckState) int {
	return ProgressiveCost(s.TotalDuplications)
}
