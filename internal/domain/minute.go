package domain

import (
	"fmt"
	"time"
)

// SlotMinutes is the fixed slot granularity. The estimator, the occupancy
// array sizing and the slot-to-clock conversion all derive from it and must
// stay consistent.
const SlotMinutes = 30

// SlotsPerHour is how many slots fit into one hour at the fixed granularity.
const SlotsPerHour = 60 / SlotMinutes

// MinuteOfDay is a time of day expressed as minutes since midnight.
// The core works exclusively on this representation; "HH:MM" strings exist
// only at the API and storage edges.
type MinuteOfDay int

// ParseClock parses an "HH:MM" clock string into minutes since midnight.
func ParseClock(s string) (MinuteOfDay, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	return MinuteOfDay(h*60 + m), nil
}

// Clock renders the minute offset as "HH:MM".
func (m MinuteOfDay) Clock() string {
	return fmt.Sprintf("%02d:%02d", int(m)/60, int(m)%60)
}

// AddSlots returns the time of day n slots after m.
func (m MinuteOfDay) AddSlots(n int) MinuteOfDay {
	return m + MinuteOfDay(n*SlotMinutes)
}

const dayKeyLayout = "2006-01-02"

// DayKey returns the calendar-date key used for day schedules.
func DayKey(t time.Time) string {
	return t.UTC().Format(dayKeyLayout)
}

// ParseDayKey parses a "YYYY-MM-DD" date key.
func ParseDayKey(key string) (time.Time, error) {
	return time.Parse(dayKeyLayout, key)
}

// TruncateToDay drops the time-of-day component, keeping the UTC date.
func TruncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
