package game

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// --- Enums ---

type CardType int

const (
	CardTypeBase CardType = iota
	CardTypeNeutral
	CardTypeMonster
	CardTypeForbidden
)

func (ct CardType) String() string {
	switch ct {
	case CardTypeBase:
		return "base"
	case CardTypeNeutral:
		return "neutral"
	case CardTypeMonster:
		return "monster"
	case CardTypeForbidden:
		return "forbidden"
	default:
		return "unknown"
	}
}

// DisplayName returns the label shown next to a card, e.g. "Monster Card".
func (ct CardType) DisplayName() string {
	switch ct {
	case CardTypeBase:
		return "Base Card"
	case CardTypeNeutral:
		return "Neutral Card"
	case CardTypeMonster:
		return "Monster Card"
	case CardTypeForbidden:
		return "Forbidden Card"
	default:
		return "Unknown"
	}
}

// ParseCardType accepts the lower-case names produced by String.
func ParseCardType(s string) (CardType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "base":
		return CardTypeBase, nil
	case "neutral":
		return CardTypeNeutral, nil
	case "monster":
		return CardTypeMonster, nil
	case "forbidden":
		return CardTypeForbidden, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownCardType, s)
	}
}

type EpiphanyType int

const (
	EpiphanyNone EpiphanyType = iota
	EpiphanyRegular
	EpiphanyDivine
)

func (e EpiphanyType) String() string {
	switch e {
	case EpiphanyRegular:
		return "regular"
	case EpiphanyDivine:
		return "divine"
	default:
		return "none"
	}
}

// ParseEpiphanyType accepts "none", "regular" or "divine". The empty
// string is treated as "none".
func ParseEpiphanyType(s string) (EpiphanyType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return EpiphanyNone, nil
	case "regular":
		return EpiphanyRegular, nil
	case "divine":
		return EpiphanyDivine, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownEpiphany, s)
	}
}

// --- Card ---

// Card is one card in a team member's deck. Cards are values: every change
// produces a modified copy, so snapshots held by the history never see later
// edits.
type Card struct {
	ID       string
	Type     CardType
	IsLocked bool
	Name     string // empty until a character is selected

	Epiphany    EpiphanyType
	IsRemoved   bool
	IsConverted bool

	// BonusRemoval records whether this card's removal was charged the flat
	// removal bonus, so a later delete/reset can give it back exactly.
	BonusRemoval bool
	// ConversionCharged is set only by the conversion itself. Duplicates
	// inherit IsConverted but never paid for it.
	ConversionCharged bool

	IsDuplicate      bool
	OriginalCardID   string // source card, lookup only
	DuplicationIndex int    // rank among live duplicates, 0-based
}

// newCardID is swapped out by tests that need predictable ids.
var newCardID = func() string {
	return "card-" + uuid.NewString()
}

// NewCard creates a card with all modifiers cleared and a fresh id.
func NewCard(t CardType, locked bool, name string) Card {
	return Card{
		ID:       newCardID(),
		Type:     t,
		IsLocked: locked,
		Name:     name,
	}
}

func (c Card) String() string {
	if c.Name != "" {
		return c.Name
	}
	return c.Type.DisplayName()
}

// DisplayString returns a human-readable description for the event log.
func (c Card) DisplayString() string {
	var flags []string
	if c.Epiphany != EpiphanyNone {
		flags = append(flags, c.Epiphany.String()+" epiphany")
	}
	if c.IsConverted {
		flags = append(flags, "converted")
	}
	if c.IsDuplicate {
		flags = append(flags, fmt.Sprintf("duplicate #%d", c.DuplicationIndex+1))
	}
	if c.IsRemoved {
		flags = append(flags, "removed")
	}
	if len(flags) == 0 {
		return fmt.Sprintf("%s (%s)", c, c.Type)
	}
	return fmt.Sprintf("%s (%s, %s)", c, c.Type, strings.Join(flags, ", "))
}

// --- Card action availability ---

// CardActions reports which card-level commands would currently change the
// given card.
type CardActions struct {
	Unlock    bool
	Epiphany  bool
	Convert   bool
	Duplicate bool
	Remove    bool
	Delete    bool
}

// AvailableActions derives the allowed actions from the same guards the
// engine applies.
func AvailableActions(c Card) CardActions {
	return CardActions{
		Unlock:    c.IsLocked,
		Epiphany:  canAddEpiphany(c),
		Convert:   canConvert(c),
		Duplicate: true,
		Remove:    !c.IsRemoved,
		Delete:    true,
	}
}

func canAddEpiphany(c Card) bool {
	return c.Epiphany == EpiphanyNone && !c.IsRemoved
}

func canConvert(c Card) bool {
	return !c.IsConverted && c.Type != CardTypeNeutral && !c.IsRemoved
}
