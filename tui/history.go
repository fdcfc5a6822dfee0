// Package tui provides a Bubble Tea terminal UI for the game.
package tui

// History keeps recently submitted commands for Up/Down recall. Whatever
// was typed before browsing started is kept as a draft and restored when
// browsing runs past the newest entry.
type History struct {
	entries []string
	max     int
	cursor  int // -1 when not browsing
	draft   string
}

// NewHistory creates a history holding at most max entries.
func NewHistory(max int) *History {
	return &History{entries: make([]string, 0, max), max: max, cursor: -1}
}

// Push records a submitted command and stops browsing. Repeating the last
// command does not add a new entry.
func (h *History) Push(cmd string) {
	h.cursor = -1
	h.draft = ""
	if n := len(h.entries); n > 0 && h.entries[n-1] == cmd {
		return
	}
	h.entries = append(h.entries, cmd)
	if len(h.entries) > h.max {
		h.entries = h.entries[len(h.entries)-h.max:]
	}
}

// Prev steps to an older entry. current is the input line at the time
// browsing starts. At the oldest entry it stays put.
func (h *History) Prev(current string) (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	switch {
	case h.cursor == -1:
		h.draft = current
		h.cursor = len(h.entries) - 1
	case h.cursor > 0:
		h.cursor--
	}
	return h.entries[h.cursor], true
}

// Next steps to a newer entry. Past the newest it ends browsing and
// returns the draft. ok is false when not browsing.
func (h *History) Next() (string, bool) {
	if h.cursor == -1 {
		return "", false
	}
	h.cursor++
	if h.cursor >= len(h.entries) {
		h.cursor = -1
		return h.draft, true
	}
	return h.entries[h.cursor], true
}

// Len returns the number of stored entries.
func (h *History) Len() int {
	return len(h.entries)
}
