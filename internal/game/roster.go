package game

import (
	"fmt"

	"github.com/peterkuimelis/savedata/internal/log"
)

// TeamSize is the number of team members in a run.
const TeamSize = 3

// RosterConfig holds configuration for creating a roster.
type RosterConfig struct {
	Characters   *CharacterTable // nil means DefaultCharacters
	HistoryLimit int             // snapshots per team member (default DefaultHistoryLimit)
	DefaultTier  int             // tier of a fresh deck (default DefaultTier)
	RemovalBonus BonusRule       // nil means BaseCardBonus
	Logger       log.EventLogger // optional
}

type member struct {
	state   DeckState
	history *History
}

// Roster holds the decks of the three team members and which one is
// active. Every command applies to the active member. A Roster is not safe
// for concurrent use; callers serialize access.
type Roster struct {
	members [TeamSize]member
	active  int // 0-based

	characters  *CharacterTable
	defaultTier int
	bonus       BonusRule
	logger      log.EventLogger
}

// NewRoster creates a roster with three fresh, characterless decks and team
// member 1 active.
func NewRoster(cfg RosterConfig) (*Roster, error) {
	if cfg.Characters == nil {
		cfg.Characters = DefaultCharacters()
	}
	if cfg.HistoryLimit == 0 {
		cfg.HistoryLimit = DefaultHistoryLimit
	}
	if cfg.DefaultTier == 0 {
		cfg.DefaultTier = DefaultTier
	}
	if !ValidTier(cfg.DefaultTier) {
		return nil, fmt.Errorf("default %w: %d", ErrInvalidTier, cfg.DefaultTier)
	}
	if cfg.RemovalBonus == nil {
		cfg.RemovalBonus = BaseCardBonus
	}

	r := &Roster{
		characters:  cfg.Characters,
		defaultTier: cfg.DefaultTier,
		bonus:       cfg.RemovalBonus,
		logger:      cfg.Logger,
	}
	for i := range r.members {
		r.members[i] = member{
			state:   r.fresh(nil),
			history: NewHistory(cfg.HistoryLimit),
		}
	}
	return r, nil
}

func (r *Roster) fresh(ch *Character) DeckState {
	s := NewDeckState(ch)
	s.Tier = r.defaultTier
	return s
}

func (r *Roster) cur() *member {
	return &r.members[r.active]
}

// commit snapshots the current state, installs next and logs ev.
func (r *Roster) commit(next DeckState, ev log.GameEvent) {
	m := r.cur()
	m.history.Push(m.state)
	m.state = next
	r.emit(ev)
}

func (r *Roster) emit(ev log.GameEvent) {
	if r.logger == nil {
		return
	}
	ev.Points = r.CurrentPoints()
	ev.Cap = r.Cap()
	r.logger.Log(ev)
}

// --- Queries ---

// Characters returns the character table the roster draws from.
func (r *Roster) Characters() *CharacterTable {
	return r.characters
}

// ActiveTeamMember returns the active team member (1-based).
func (r *Roster) ActiveTeamMember() int {
	return r.active + 1
}

// State returns the active team member's deck.
func (r *Roster) State() DeckState {
	return r.cur().state
}

// TeamMemberState returns team member n's deck.
func (r *Roster) TeamMemberState(n int) (DeckState, error) {
	if err := validTeamMember(n); err != nil {
		return DeckState{}, err
	}
	return r.members[n-1].state, nil
}

func (r *Roster) CurrentPoints() int {
	return TotalPoints(r.cur().state)
}

func (r *Roster) Cap() int {
	return r.cur().state.Cap()
}

func (r *Roster) Breakdown() Breakdown {
	return ComputeBreakdown(r.cur().state)
}

func (r *Roster) Status() Status {
	return ComputeStatus(r.CurrentPoints(), r.Cap())
}

func (r *Roster) CanUndo() bool {
	return r.cur().history.CanUndo()
}

// GetCard looks up a card in the active deck.
func (r *Roster) GetCard(id string) (Card, bool) {
	return r.cur().state.FindCard(id)
}

// TeamMemberCharacter returns the display name of team member n's selected
// character, or "" if none is selected.
func (r *Roster) TeamMemberCharacter(n int) (string, error) {
	if err := validTeamMember(n); err != nil {
		return "", err
	}
	return r.characters.DisplayName(r.members[n-1].state.SelectedCharacter), nil
}

func validTeamMember(n int) error {
	if n < 1 || n > TeamSize {
		return fmt.Errorf("%w: %d (want 1-%d)", ErrInvalidTeamMember, n, TeamSize)
	}
	return nil
}

// --- Commands ---

// SwitchTeamMember changes which team member commands apply to.
func (r *Roster) SwitchTeamMember(n int) error {
	if err := validTeamMember(n); err != nil {
		return err
	}
	from := r.ActiveTeamMember()
	if from == n {
		return nil
	}
	r.active = n - 1
	r.emit(log.NewSwitchTeamMemberEvent(from, n))
	return nil
}

// SelectCharacter starts a new run for the active team member with the
// given character. History is cleared; the previous run cannot be undone
// back into.
func (r *Roster) SelectCharacter(key string) error {
	ch, err := r.characters.Lookup(key)
	if err != nil {
		return err
	}
	m := r.cur()
	m.state = r.fresh(ch)
	m.history.Clear()
	r.emit(log.NewSelectCharacterEvent(r.ActiveTeamMember(), ch.DisplayName))
	return nil
}

// ResetRun replaces the active deck with a fresh one for the same
// character (blank names if none was selected) and clears history. A
// selected character missing from the table leaves the deck untouched.
func (r *Roster) ResetRun() error {
	m := r.cur()
	var ch *Character
	if key := m.state.SelectedCharacter; key != "" {
		var err error
		if ch, err = r.characters.Lookup(key); err != nil {
			return err
		}
	}
	m.state = r.fresh(ch)
	m.history.Clear()
	r.emit(log.NewResetRunEvent(r.ActiveTeamMember()))
	return nil
}

// SetTier changes the active deck's tier.
func (r *Roster) SetTier(n int) error {
	old := r.cur().state
	next, err := old.WithTier(n)
	if err != nil {
		return err
	}
	if next.Tier == old.Tier {
		return nil
	}
	r.commit(next, log.NewSetTierEvent(r.ActiveTeamMember(), old.Tier, n))
	return nil
}

func (r *Roster) UnlockBaseCard(id string) bool {
	next, ok := r.cur().state.UnlockBaseCard(id)
	if !ok {
		return false
	}
	c, _ := next.FindCard(id)
	r.commit(next, log.NewUnlockEvent(r.ActiveTeamMember(), id, c.String()))
	return true
}

// AddAdditionalCard adds a card of the given type and returns its id.
func (r *Roster) AddAdditionalCard(t CardType) string {
	next, id := r.cur().state.AddAdditionalCard(t)
	r.commit(next, log.NewAddCardEvent(r.ActiveTeamMember(), id, t.String()))
	return id
}

func (r *Roster) RemoveCard(id string) bool {
	next, ok := r.cur().state.RemoveCard(id, r.bonus)
	if !ok {
		return false
	}
	c, _ := next.FindCard(id)
	r.commit(next, log.NewRemoveEvent(r.ActiveTeamMember(), id, c.String(), c.BonusRemoval))
	return true
}

func (r *Roster) AddEpiphany(id string, kind EpiphanyType) bool {
	next, ok := r.cur().state.AddEpiphany(id, kind)
	if !ok {
		return false
	}
	c, _ := next.FindCard(id)
	r.commit(next, log.NewEpiphanyEvent(r.ActiveTeamMember(), id, c.String(), kind.String()))
	return true
}

func (r *Roster) ConvertCard(id string) bool {
	next, ok := r.cur().state.ConvertCard(id)
	if !ok {
		return false
	}
	c, _ := next.FindCard(id)
	r.commit(next, log.NewConvertEvent(r.ActiveTeamMember(), id, c.String()))
	return true
}

// DuplicateCard copies a card and returns the duplicate's id.
func (r *Roster) DuplicateCard(id string) (string, bool) {
	next, dupID, ok := r.cur().state.DuplicateCard(id)
	if !ok {
		return "", false
	}
	dup, _ := next.FindCard(dupID)
	r.commit(next, log.NewDuplicateEvent(r.ActiveTeamMember(), dupID, dup.String(), dup.DuplicationIndex))
	return dupID, true
}

func (r *Roster) DeleteOrResetCard(id string) bool {
	prev := r.cur().state
	old, found := prev.FindCard(id)
	if !found {
		return false
	}
	next, ok := prev.DeleteOrResetCard(id)
	if !ok {
		return false
	}
	ev := log.NewDeleteEvent(r.ActiveTeamMember(), id, old.String())
	if prev.IsBaseSlot(id) {
		ev = log.NewResetCardEvent(r.ActiveTeamMember(), id, old.String())
	}
	r.commit(next, ev)
	return true
}

// Undo restores the active team member's most recent snapshot.
func (r *Roster) Undo() bool {
	m := r.cur()
	prev, ok := m.history.Pop()
	if !ok {
		return false
	}
	m.state = prev
	r.emit(log.NewUndoEvent(r.ActiveTeamMember()))
	return true
}
