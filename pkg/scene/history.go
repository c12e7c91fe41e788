package scene

// DefaultHistoryLimit is the number of undo snapshots kept
const DefaultHistoryLimit = 50

// History is a bounded stack of scene snapshots; pushing beyond the limit
// evicts the oldest entry.
type History struct {
	limit   int
	entries []Snapshot
}

// NewHistory creates a history holding at most limit snapshots
func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &History{limit: limit}
}

// Push records a snapshot
func (h *History) Push(s Snapshot) {
	h.entries = append(h.entries, s)
	if len(h.entries) > h.limit {
		h.entries = h.entries[len(h.entries)-h.limit:]
	}
}

// Pop removes and returns the most recent snapshot
func (h *History) Pop() (Snapshot, bool) {
	if len(h.entries) == 0 {
		return Snapshot{}, false
	}
	last := h.entries[len(h.entries)-1]
	h.entries = h.entries[:len(h.entries)-1]
	return last, true
}

// Len returns the number of stored snapshots
func (h *History) Len() int {
	return len(h.entries)
}

// Clear drops all snapshots
func (h *History) Clear() {
	h.entries = nil
}
