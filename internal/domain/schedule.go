package domain

import "time"

// DaySchedule is the set of bookings for one calendar date. Revision is the
// store's optimistic-concurrency counter: a conditional append against a
// stale revision fails with ErrDayConflict instead of committing an overlap.
type DaySchedule struct {
	Date     time.Time `json:"date"`
	Bookings []Booking `json:"bookings"`
	Revision int64     `json:"revision"`
}

func EmptyDaySchedule(date time.Time) *DaySchedule {
	return &DaySchedule{
		Date:     TruncateToDay(date),
		Bookings: []Booking{},
	}
}

// HasOverlap reports whether any two bookings occupy intersecting slot
// ranges. The schedule invariant is that this is always false; the allocator
// preserves it and tests assert it on allocator output.
func (d *DaySchedule) HasOverlap() bool {
	for i := range d.Bookings {
		for j := i + 1; j < len(d.Bookings); j++ {
			a, b := d.Bookings[i], d.Bookings[j]
			if a.StartsAt < b.EndsAt() && b.StartsAt < a.EndsAt() {
				return true
			}
		}
	}
	return false
}
