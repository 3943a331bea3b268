package domain

import "fmt"

// OperatingWindow bounds the bookable part of a day. Immutable per
// evaluation; the caller supplies it fresh for every day it evaluates.
type OperatingWindow struct {
	OpensAt  MinuteOfDay `json:"opens_at"`
	ClosesAt MinuteOfDay `json:"closes_at"`
}

// TotalSlots returns how many whole slots fit in the window. A degenerate
// window (closing at or before opening) has zero slots rather than being an
// error, so a misconfigured window degrades to "no capacity".
func (w OperatingWindow) TotalSlots() int {
	if w.ClosesAt <= w.OpensAt {
		return 0
	}
	return int(w.ClosesAt-w.OpensAt) / SlotMinutes
}

// Validate rejects windows that cannot be used for configuration. The
// allocator itself never calls this; it treats bad windows as infeasible.
func (w OperatingWindow) Validate() error {
	if w.OpensAt >= w.ClosesAt {
		return fmt.Errorf("%w: opens %s, closes %s", ErrInvalidWindow, w.OpensAt.Clock(), w.ClosesAt.Clock())
	}
	if int(w.ClosesAt-w.OpensAt)%SlotMinutes != 0 {
		return fmt.Errorf("%w: %s-%s not aligned to %d-minute slots", ErrInvalidWindow, w.OpensAt.Clock(), w.ClosesAt.Clock(), SlotMinutes)
	}
	return nil
}
