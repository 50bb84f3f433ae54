package terminal

import (
	"time"

	"github.com/younwookim/ringball/internal/application/system"
)

// DefaultHoldWindow is how long a key counts as held after its last event
const DefaultHoldWindow = 200 * time.Millisecond

// HoldTracker approximates held keys from key-down events.
// Terminals report presses and auto-repeats but never releases, so a key
// is held while its last event is at most window old.
type HoldTracker struct {
	window time.Duration
	last   map[system.Key]time.Time
}

// NewHoldTracker creates a tracker with the given hold window
func NewHoldTracker(window time.Duration) *HoldTracker {
	return &HoldTracker{window: window, last: make(map[system.Key]time.Time)}
}

// Press records a key event. It returns true for a fresh press and false
// for an auto-repeat of a key that is still held.
func (h *HoldTracker) Press(k system.Key, now time.Time) bool {
	fresh := !h.Held(k, now)
	h.last[k] = now
	return fresh
}

// Held reports whether k is considered down at now
func (h *HoldTracker) Held(k system.Key, now time.Time) bool {
	t, ok := h.last[k]
	return ok && now.Sub(t) <= h.window
}
