package sapling

import "time"

// MoveThrottle rate-limits pointer-move forwarding. Dropping intermediate
// moves never changes committed state because MouseUp carries the final
// pointer position.
type MoveThrottle struct {
	interval time.Duration
	last     time.Time
	primed   bool
}

// NewMoveThrottle returns a throttle that allows at most one move per
// interval. A zero interval allows every move.
func NewMoveThrottle(interval time.Duration) *MoveThrottle {
	return &MoveThrottle{interval: interval}
}

// Allow reports whether a move observed at now should be forwarded.
func (t *MoveThrottle) Allow(now time.Time) bool {
	if t == nil || t.interval <= 0 {
		return true
	}
	if t.primed && now.Sub(t.last) < t.interval {
		return false
	}
	t.last = now
	t.primed = true
	return true
}

// Reset forgets the last forwarded move, so the next one always passes.
// Hosts call it on pointer down.
func (t *MoveThrottle) Reset() {
	if t != nil {
		t.primed = false
	}
}
