package game

// DefaultHistoryLimit is how many snapshots a team member keeps.
const DefaultHistoryLimit = 20

// History is a bounded LIFO of deck snapshots. When full, pushing evicts the
// oldest snapshot. Snapshots are DeckState values, so card ids stay the same
// before and after a restore.
type History struct {
	buf   []DeckState
	start int // index of the oldest snapshot
	n     int
}

// NewHistory returns a history holding at most limit snapshots. A limit
// below 1 is treated as 1.
func NewHistory(limit int) *History {
	if limit < 1 {
		limit = 1
	}
	return &History{buf: make([]DeckState, limit)}
}

// Push records a snapshot, evicting the oldest one if the history is full.
func (h *History) Push(s DeckState) {
	if h.n == len(h.buf) {
		h.buf[h.start] = DeckState{}
		h.start = (h.start + 1) % len(h.buf)
		h.n--
	}
	h.buf[(h.start+h.n)%len(h.buf)] = s
	h.n++
}

// Pop removes and returns the most recent snapshot.
func (h *History) Pop() (DeckState, bool) {
	if h.n == 0 {
		return DeckState{}, false
	}
	i := (h.start + h.n - 1) % len(h.buf)
	s := h.buf[i]
	h.buf[i] = DeckState{}
	h.n--
	return s, true
}

// Clear drops every snapshot.
func (h *History) Clear() {
	clear(h.buf)
	h.start, h.n = 0, 0
}

func (h *History) Len() int      { return h.n }
func (h *History) Cap() int      { return len(h.buf) }
func (h *History) CanUndo() bool { return h.n > 0 }
