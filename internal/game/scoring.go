package game

import "sort"

// Point values per card type.
const (
	BaseCardPoints      = 0
	NeutralCardPoints   = 20
	MonsterCardPoints   = 80
	ForbiddenCardPoints = 20

	RegularEpiphanyPoints = 10
	DivineEpiphanyPoints  = 20

	// DivineNeutralBugPoints is the extra regular-epiphany proc the game
	// charges for a divine epiphany on a neutral card (50 instead of 40).
	DivineNeutralBugPoints = 10

	RemovalBonusPoints = 20
	ConversionPoints   = 10
)

// progressiveCosts holds the first steps of the removal/duplication
// progression; every later step costs progressiveCap.
var progressiveCosts = [...]int{0, 10, 30, 50}

const progressiveCap = 70

// ProgressiveCost returns the cost of an action given how many of the same
// action already happened before it (0-based).
func ProgressiveCost(index int) int {
	if index < 0 {
		return 0
	}
	if index < len(progressiveCosts) {
		return progressiveCosts[index]
	}
	return progressiveCap
}

// progressiveSum returns the total cost of the first n actions.
func progressiveSum(n int) int {
	total := 0
	for i := 0; i < n; i++ {
		total += ProgressiveCost(i)
	}
	return total
}

// TypePoints returns the flat value of a card type.
func TypePoints(t CardType) int {
	switch t {
	case CardTypeNeutral:
		return NeutralCardPoints
	case CardTypeMonster:
		return MonsterCardPoints
	case CardTypeForbidden:
		return ForbiddenCardPoints
	default:
		return BaseCardPoints
	}
}

// EpiphanyPoints returns what an epiphany of the given kind costs on a card
// of the given type. Both in-game bugs are reproduced: a regular epiphany
// on a monster card is free like on a base card, and a divine epiphany on a
// neutral card also pays the regular proc.
func EpiphanyPoints(t CardType, e EpiphanyType) int {
	switch e {
	case EpiphanyRegular:
		if t == CardTypeBase || t == CardTypeMonster {
			return 0
		}
		return RegularEpiphanyPoints
	case EpiphanyDivine:
		if t == CardTypeNeutral {
			return DivineEpiphanyPoints + DivineNeutralBugPoints
		}
		return DivineEpiphanyPoints
	default:
		return 0
	}
}

// CardPoints returns what a card contributes to the deck total. Removed
// cards contribute nothing. The progressive duplication cost is not part of
// a card's value; it is accounted once for the whole deck by
// DuplicationPoints.
func CardPoints(c Card) int {
	if c.IsRemoved {
		return 0
	}
	return TypePoints(c.Type) + EpiphanyPoints(c.Type, c.Epiphany)
}

// DisplayPoints is CardPoints plus the duplicate's own progressive
// surcharge, as shown on a single card. It must never be summed into a deck
// total.
func DisplayPoints(c Card) int {
	points := CardPoints(c)
	if c.IsDuplicate && !c.IsRemoved {
		points += ProgressiveCost(c.DuplicationIndex)
	}
	return points
}

// RemovalPoints returns the progressive cost of totalRemovals removals plus
// the flat bonus for each bonus-eligible removal.
func RemovalPoints(totalRemovals, bonusCount int) int {
	return progressiveSum(totalRemovals) + bonusCount*RemovalBonusPoints
}

// DuplicationPoints returns only the progressive part of duplication cost:
// each duplicate pays ProgressiveCost of its rank in creation order. The
// duplicates' own values are counted by CardPoints.
func DuplicationPoints(duplicates []Card) int {
	ranked := make([]Card, 0, len(duplicates))
	for _, c := range duplicates {
		if c.IsDuplicate {
			ranked = append(ranked, c)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DuplicationIndex < ranked[j].DuplicationIndex
	})
	total := 0
	for rank := range ranked {
		total += ProgressiveCost(rank)
	}
	return total
}

// ConversionCost returns the cost of the given number of conversions.
func ConversionCost(totalConversions int) int {
	return totalConversions * ConversionPoints
}

// --- Removal bonus rules ---

// BonusRule decides whether removing a card also charges the flat removal
// bonus.
type BonusRule func(c Card) bool

// BaseCardBonus charges the bonus for base-type cards only. This is the
// game's current behaviour.
func BaseCardBonus(c Card) bool {
	return c.Type == CardTypeBase
}

// BaseOrEpiphanyBonus also charges the bonus for any card carrying an
// epiphany. Earlier versions of the calculator used this rule.
func BaseOrEpiphanyBonus(c Card) bool {
	return c.Type == CardTypeBase || c.Epiphany != EpiphanyNone
}

// BonusRuleByName maps configuration values to rules.
func BonusRuleByName(name string) (BonusRule, bool) {
	switch name {
	case "", "base":
		return BaseCardBonus, true
	case "base-or-epiphany":
		return BaseOrEpiphanyBonus, true
	default:
		return nil, false
	}
}
