package log

import (
	"fmt"
	"io"
	"strings"
)

// EventLogger is the interface for logging engine events.
type EventLogger interface {
	Log(event GameEvent)
	Events() []GameEvent
}

// --- MemoryLogger: stores events in memory for test assertions ---

type MemoryLogger struct {
	events []GameEvent
	seq    int
}

func NewMemoryLogger() *MemoryLogger {
	return &MemoryLogger{}
}

func (l *MemoryLogger) Log(event GameEvent) {
	l.seq++
	event.Seq = l.seq
	l.events = append(l.events, event)
}

func (l *MemoryLogger) Events() []GameEvent {
	return l.events
}

// EventsOfType returns all events matching the given type.
func (l *MemoryLogger) EventsOfType(t EventType) []GameEvent {
	var result []GameEvent
	for _, e := range l.events {
		if e.Type == t {
			result = append(result, e)
		}
	}
	return result
}

// LastEvent returns the most recent event, or a zero event if none.
func (l *MemoryLogger) LastEvent() GameEvent {
	if len(l.events) == 0 {
		return GameEvent{}
	}
	return l.events[len(l.events)-1]
}

// Take returns the buffered events and empties the buffer. Sequence
// numbers keep counting across calls.
func (l *MemoryLogger) Take() []GameEvent {
	events := l.events
	l.events = nil
	return events
}

// --- TextLogger: writes human-readable lines to an io.Writer ---

type TextLogger struct {
	MemoryLogger
	w io.Writer
}

func NewTextLogger(w io.Writer) *TextLogger {
	return &TextLogger{w: w}
}

func (l *TextLogger) Log(event GameEvent) {
	l.MemoryLogger.Log(event)
	fmt.Fprintln(l.w, FormatEvent(event))
}

// --- Formatting ---

// memberName returns "M1".."M3" for display.
func memberName(n int) string {
	return fmt.Sprintf("M%d", n)
}

// FormatEvent formats a single event as a human-readable line.
func FormatEvent(e GameEvent) string {
	return fmt.Sprintf("%s [%3d/%3d] | %s", memberName(e.TeamMember), e.Points, e.Cap, e.Details)
}

// FormatAll formats all events as a multi-line string.
func FormatAll(events []GameEvent) string {
	var sb strings.Builder
	for _, e := range events {
		sb.WriteString(FormatEvent(e))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// --- Helper constructors for common events ---

func NewSelectCharacterEvent(member int, displayName string) GameEvent {
	return GameEvent{
		TeamMember: member,
		Type:       EventSelectCharacter,
		Details:    fmt.Sprintf("%s selects %s (new run)", memberName(member), displayName),
	}
}

func NewSetTierEvent(member int, oldTier, newTier int) GameEvent {
	return GameEvent{
		TeamMember: member,
		Type:       EventSetTier,
		Details:    fmt.Sprintf("Tier %d → %d", oldTier, newTier),
	}
}

func NewSwitchTeamMemberEvent(from, to int) GameEvent {
	return GameEvent{
		TeamMember: to,
		Type:       EventSwitchTeamMember,
		Details:    fmt.Sprintf("Active team member %s → %s", memberName(from), memberName(to)),
	}
}

func NewUnlockEvent(member int, cardID, card string) GameEvent {
	return GameEvent{
		TeamMember: member,
		Type:       EventUnlock,
		CardID:     cardID,
		Card:       card,
		Details:    fmt.Sprintf("%s unlocks %s", memberName(member), card),
	}
}

func NewAddCardEvent(member int, cardID, cardType string) GameEvent {
	return GameEvent{
		TeamMember: member,
		Type:       EventAddCard,
		CardID:     cardID,
		Card:       cardType,
		Details:    fmt.Sprintf("%s adds a %s card", memberName(member), cardType),
	}
}

func NewRemoveEvent(member int, cardID, card string, bonus bool) GameEvent {
	details := fmt.Sprintf("%s removes %s", memberName(member), card)
	if bonus {
		details += " (+removal bonus)"
	}
	return GameEvent{
		TeamMember: member,
		Type:       EventRemove,
		CardID:     cardID,
		Card:       card,
		Details:    details,
	}
}

func NewEpiphanyEvent(member int, cardID, card, kind string) GameEvent {
	return GameEvent{
		TeamMember: member,
		Type:       EventEpiphany,
		CardID:     cardID,
		Card:       card,
		Details:    fmt.Sprintf("%s gives %s a %s epiphany", memberName(member), card, kind),
	}
}

func NewConvertEvent(member int, cardID, card string) GameEvent {
	return GameEvent{
		TeamMember: member,
		Type:       EventConvert,
		CardID:     cardID,
		Card:       card,
		Details:    fmt.Sprintf("%s converts %s to neutral", memberName(member), card),
	}
}

func NewDuplicateEvent(member int, cardID, card string, rank int) GameEvent {
	return GameEvent{
		TeamMember: member,
		Type:       EventDuplicate,
		CardID:     cardID,
		Card:       card,
		Details:    fmt.Sprintf("%s duplicates %s (duplicate #%d)", memberName(member), card, rank+1),
	}
}

func NewDeleteEvent(member int, cardID, card string) GameEvent {
	return GameEvent{
		TeamMember: member,
		Type:       EventDelete,
		CardID:     cardID,
		Card:       card,
		Details:    fmt.Sprintf("%s deletes %s", memberName(member), card),
	}
}

func NewResetCardEvent(member int, cardID, card string) GameEvent {
	return GameEvent{
		TeamMember: member,
		Type:       EventResetCard,
		CardID:     cardID,
		Card:       card,
		Details:    fmt.Sprintf("%s resets %s to a plain base card", memberName(member), card),
	}
}

func NewResetRunEvent(member int) GameEvent {
	return GameEvent{
		TeamMember: member,
		Type:       EventResetRun,
		Details:    fmt.Sprintf("%s starts a new run", memberName(member)),
	}
}

func NewUndoEvent(member int) GameEvent {
	return GameEvent{
		TeamMember: member,
		Type:       EventUndo,
		Details:    fmt.Sprintf("%s undoes the last action", memberName(member)),
	}
}
