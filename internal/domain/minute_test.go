package domain

import (
	"errors"
	"testing"
	"time"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    MinuteOfDay
		wantErr bool
	}{
		{in: "08:00", want: 480},
		{in: "18:00", want: 1080},
		{in: "00:00", want: 0},
		{in: "23:59", want: 1439},
		{in: "24:00", wantErr: true},
		{in: "08:60", wantErr: true},
		{in: "morning", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseClock(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidClock) {
					t.Fatalf("ParseClock(%q) error = %v, want ErrInvalidClock", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseClock(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseClock(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestMinuteOfDay_Clock_RoundTrip(t *testing.T) {
	for _, clock := range []string{"08:00", "10:30", "00:05", "23:30"} {
		m, err := ParseClock(clock)
		if err != nil {
			t.Fatalf("ParseClock(%q) error = %v", clock, err)
		}
		if got := m.Clock(); got != clock {
			t.Errorf("Clock() = %q, want %q", got, clock)
		}
	}
}

func TestOperatingWindow_TotalSlots(t *testing.T) {
	tests := []struct {
		name   string
		opens  MinuteOfDay
		closes MinuteOfDay
		want   int
	}{
		{name: "standard day", opens: 480, closes: 1080, want: 20},
		{name: "single slot", opens: 480, closes: 510, want: 1},
		{name: "degenerate", opens: 1080, closes: 480, want: 0},
		{name: "zero width", opens: 480, closes: 480, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := OperatingWindow{OpensAt: tt.opens, ClosesAt: tt.closes}
			if got := w.TotalSlots(); got != tt.want {
				t.Errorf("TotalSlots() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestOperatingWindow_Validate(t *testing.T) {
	valid := OperatingWindow{OpensAt: 480, ClosesAt: 1080}
	if err := valid.Validate(); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}

	inverted := OperatingWindow{OpensAt: 1080, ClosesAt: 480}
	if err := inverted.Validate(); !errors.Is(err, ErrInvalidWindow) {
		t.Errorf("Validate() error = %v, want ErrInvalidWindow", err)
	}

	misaligned := OperatingWindow{OpensAt: 480, ClosesAt: 1095}
	if err := misaligned.Validate(); !errors.Is(err, ErrInvalidWindow) {
		t.Errorf("Validate() error = %v, want ErrInvalidWindow", err)
	}
}

func TestDayKey(t *testing.T) {
	d := time.Date(2026, 3, 15, 13, 45, 0, 0, time.UTC)
	if got := DayKey(d); got != "2026-03-15" {
		t.Errorf("DayKey() = %q, want %q", got, "2026-03-15")
	}

	parsed, err := ParseDayKey("2026-03-15")
	if err != nil {
		t.Fatalf("ParseDayKey() error = %v", err)
	}
	if !parsed.Equal(TruncateToDay(d)) {
		t.Errorf("ParseDayKey() = %v, want %v", parsed, TruncateToDay(d))
	}
}

func TestDaySchedule_HasOverlap(t *testing.T) {
	clean := &DaySchedule{Bookings: []Booking{
		{StartsAt: 480, SlotCount: 4},
		{StartsAt: 600, SlotCount: 2},
	}}
	if clean.HasOverlap() {
		t.Error("HasOverlap() = true for adjacent bookings, want false")
	}

	dirty := &DaySchedule{Bookings: []Booking{
		{StartsAt: 480, SlotCount: 4},
		{StartsAt: 570, SlotCount: 2},
	}}
	if !dirty.HasOverlap() {
		t.Error("HasOverlap() = false for intersecting bookings, want true")
	}
}
