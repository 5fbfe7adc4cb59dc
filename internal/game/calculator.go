package game

// LookupResult is the value of a single hypothetical card.
type LookupResult struct {
	CardValue       int
	DuplicationCost int
	Total           int
}

// QuickLookup prices a card without touching any deck. duplicatePosition
// is 1-based (1 = first duplicate); 0 means the card is not a duplicate.
func QuickLookup(t CardType, e EpiphanyType, duplicatePosition int) LookupResult {
	res := LookupResult{CardValue: CardPoints(Card{Type: t, Epiphany: e})}
	if duplicatePosition > 0 {
		res.DuplicationCost = ProgressiveCost(duplicatePosition - 1)
	}
	res.Total = res.CardValue + res.DuplicationCost
	return res
}

// BulkCounts describes a deck by counts alone.
type BulkCounts struct {
	BaseCards      int `json:"base_cards" mapstructure:"base_cards"`
	NeutralCards   int `json:"neutral_cards" mapstructure:"neutral_cards"`
	MonsterCards   int `json:"monster_cards" mapstructure:"monster_cards"`
	ForbiddenCards int `json:"forbidden_cards" mapstructure:"forbidden_cards"`

	RegularEpiphanies int `json:"regular_epiphanies" mapstructure:"regular_epiphanies"`
	RegularOnBase     int `json:"regular_on_base" mapstructure:"regular_on_base"`
	RegularOnMonster  int `json:"regular_on_monster" mapstructure:"regular_on_monster"`
	DivineEpiphanies  int `json:"divine_epiphanies" mapstructure:"divine_epiphanies"`
	DivineOnNeutral   int `json:"divine_on_neutral" mapstructure:"divine_on_neutral"`

	Removals      int `json:"removals" mapstructure:"removals"`
	BonusRemovals int `json:"bonus_removals" mapstructure:"bonus_removals"`
	Duplications  int `json:"duplications" mapstructure:"duplications"`
	Conversions   int `json:"conversions" mapstructure:"conversions"`
}

// BulkTotals is the point breakdown of a BulkCounts.
type BulkTotals struct {
	BaseCardPoints      int `json:"base_card_points"`
	NeutralCardPoints   int `json:"neutral_card_points"`
	MonsterCardPoints   int `json:"monster_card_points"`
	ForbiddenCardPoints int `json:"forbidden_card_points"`

	RegularEpiphanyPoints int `json:"regular_epiphany_points"`
	DivineEpiphanyPoints  int `json:"divine_epiphany_points"`

	RemovalPoints     int `json:"removal_points"`
	DuplicationPoints int `json:"duplication_points"`
	ConversionPoints  int `json:"conversion_points"`

	CardsTotal      int `json:"cards_total"`
	EpiphaniesTotal int `json:"epiphanies_total"`
	ActionsTotal    int `json:"actions_total"`
	GrandTotal      int `json:"grand_total"`
}

// normalize clamps negative counts to zero and every sub-count to its
// parent count.
func (b BulkCounts) normalize() BulkCounts {
	for _, p := range []*int{
		&b.BaseCards, &b.NeutralCards, &b.MonsterCards, &b.ForbiddenCards,
		&b.RegularEpiphanies, &b.RegularOnBase, &b.RegularOnMonster,
		&b.DivineEpiphanies, &b.DivineOnNeutral,
		&b.Removals, &b.BonusRemovals, &b.Duplications, &b.Conversions,
	} {
		*p = max(*p, 0)
	}
	b.BaseCards = min(b.BaseCards, BaseCardCount)
	b.RegularOnBase = min(b.RegularOnBase, b.RegularEpiphanies)
	b.RegularOnMonster = min(b.RegularOnMonster, b.RegularEpiphanies-b.RegularOnBase)
	b.DivineOnNeutral = min(b.DivineOnNeutral, b.DivineEpiphanies)
	b.BonusRemovals = min(b.BonusRemovals, b.Removals)
	return b
}

// BulkTotalsFor prices a deck described by counts with the same rules the
// engine uses for real cards.
func BulkTotalsFor(counts BulkCounts) BulkTotals {
	b := counts.normalize()
	t := BulkTotals{
		BaseCardPoints:      b.BaseCards * BaseCardPoints,
		NeutralCardPoints:   b.NeutralCards * NeutralCardPoints,
		MonsterCardPoints:   b.MonsterCards * MonsterCardPoints,
		ForbiddenCardPoints: b.ForbiddenCards * ForbiddenCardPoints,

		RegularEpiphanyPoints: (b.RegularEpiphanies - b.RegularOnBase - b.RegularOnMonster) * RegularEpiphanyPoints,
		DivineEpiphanyPoints:  b.DivineEpiphanies*DivineEpiphanyPoints + b.DivineOnNeutral*DivineNeutralBugPoints,

		RemovalPoints:     RemovalPoints(b.Removals, b.BonusRemovals),
		DuplicationPoints: progressiveSum(b.Duplications),
		ConversionPoints:  ConversionCost(b.Conversions),
	}
	t.CardsTotal = t.BaseCardPoints + t.NeutralCardPoints + t.MonsterCardPoints + t.ForbiddenCardPoints
	t.EpiphaniesTotal = t.RegularEpiphanyPoints + t.DivineEpiphanyPoints
	t.ActionsTotal = t.RemovalPoints + t.DuplicationPoints + t.ConversionPoints
	t.GrandTotal = t.CardsTotal + t.EpiphaniesTotal + t.ActionsTotal
	return t
}
