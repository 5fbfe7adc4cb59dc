package log

// EventType enumerates all observable engine events.
type EventType int

const (
	EventSelectCharacter EventType = iota
	EventSetTier
	EventSwitchTeamMember
	EventUnlock
	EventAddCard
	EventRemove
	EventEpiphany
	EventConvert
	EventDuplicate
	EventDelete
	EventResetCard
	EventResetRun
	EventUndo
)

func (e EventType) String() string {
	switch e {
	case EventSelectCharacter:
		return "SelectCharacter"
	case EventSetTier:
		return "SetTier"
	case EventSwitchTeamMember:
		return "SwitchTeamMember"
	case EventUnlock:
		return "Unlock"
	case EventAddCard:
		return "AddCard"
	case EventRemove:
		return "Remove"
	case EventEpiphany:
		return "Epiphany"
	case EventConvert:
		return "Convert"
	case EventDuplicate:
		return "Duplicate"
	case EventDelete:
		return "Delete"
	case EventResetCard:
		return "ResetCard"
	case EventResetRun:
		return "ResetRun"
	case EventUndo:
		return "Undo"
	default:
		return "Unknown"
	}
}

// GameEvent represents a single applied command.
type GameEvent struct {
	Seq        int       // monotonic sequence number
	TeamMember int       // team member the command applied to (1-based)
	Type       EventType // event type
	CardID     string    // card id (if applicable)
	Card       string    // card name or type label (if applicable)
	Details    string    // human-readable detail string
	Points     int       // deck total after the command
	Cap        int       // cap after the command
}
