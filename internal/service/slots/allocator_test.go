package slots

import (
	"errors"
	"testing"

	"github.com/agrocoop-dev/delivery-scheduling/internal/domain"
)

// testWindow is 08:00-18:00, 20 slots at 30-minute granularity.
var testWindow = domain.OperatingWindow{OpensAt: 480, ClosesAt: 1080}

func booking(startsAt domain.MinuteOfDay, slotCount int) domain.Booking {
	return domain.Booking{StartsAt: startsAt, SlotCount: slotCount}
}

func TestFindGap_EmptyDayStartsAtOpening(t *testing.T) {
	gap, ok, err := FindGap(nil, testWindow, 4)
	if err != nil {
		t.Fatalf("FindGap() error = %v", err)
	}
	if !ok {
		t.Fatal("FindGap() ok = false, want true")
	}
	if gap.Start.Clock() != "08:00" || gap.End.Clock() != "10:00" {
		t.Errorf("gap = %s-%s, want 08:00-10:00", gap.Start.Clock(), gap.End.Clock())
	}
}

func TestFindGap_FirstFitAfterOccupiedRun(t *testing.T) {
	// 08:00-10:00 booked; a 2-slot request lands at 10:00-11:00.
	bookings := []domain.Booking{booking(480, 4)}

	gap, ok, err := FindGap(bookings, testWindow, 2)
	if err != nil {
		t.Fatalf("FindGap() error = %v", err)
	}
	if !ok {
		t.Fatal("FindGap() ok = false, want true")
	}
	if gap.Start.Clock() != "10:00" || gap.End.Clock() != "11:00" {
		t.Errorf("gap = %s-%s, want 10:00-11:00", gap.Start.Clock(), gap.End.Clock())
	}
}

func TestFindGap_HoleBetweenBookings(t *testing.T) {
	// Free: 09:00-10:30 (3 slots) and 12:00 onward. A 3-slot request must
	// take the earliest fitting hole, not the larger one.
	bookings := []domain.Booking{
		booking(480, 2),  // 08:00-09:00
		booking(630, 3),  // 10:30-12:00
	}

	gap, ok, err := FindGap(bookings, testWindow, 3)
	if err != nil {
		t.Fatalf("FindGap() error = %v", err)
	}
	if !ok {
		t.Fatal("FindGap() ok = false, want true")
	}
	if gap.Start.Clock() != "09:00" || gap.End.Clock() != "10:30" {
		t.Errorf("gap = %s-%s, want 09:00-10:30", gap.Start.Clock(), gap.End.Clock())
	}
}

func TestFindGap_SkipsTooSmallHole(t *testing.T) {
	// Only a 2-slot hole at 09:00-10:00; a 3-slot request must skip it.
	bookings := []domain.Booking{
		booking(480, 2), // 08:00-09:00
		booking(600, 4), // 10:00-12:00
	}

	gap, ok, err := FindGap(bookings, testWindow, 3)
	if err != nil {
		t.Fatalf("FindGap() error = %v", err)
	}
	if !ok {
		t.Fatal("FindGap() ok = false, want true")
	}
	if gap.Start.Clock() != "12:00" {
		t.Errorf("gap start = %s, want 12:00", gap.Start.Clock())
	}
}

func TestFindGap_FullyBookedDay(t *testing.T) {
	bookings := []domain.Booking{booking(480, 20)}

	_, ok, err := FindGap(bookings, testWindow, 1)
	if err != nil {
		t.Fatalf("FindGap() error = %v", err)
	}
	if ok {
		t.Error("FindGap() ok = true on a fully booked day, want false")
	}
}

func TestFindGap_RequestExceedsWindow(t *testing.T) {
	_, ok, err := FindGap(nil, testWindow, 25)
	if err != nil {
		t.Fatalf("FindGap() error = %v", err)
	}
	if ok {
		t.Error("FindGap() ok = true for 25 slots in a 20-slot window, want false")
	}
}

func TestFindGap_DegenerateWindow(t *testing.T) {
	inverted := domain.OperatingWindow{OpensAt: 1080, ClosesAt: 480}
	_, ok, err := FindGap(nil, inverted, 1)
	if err != nil {
		t.Fatalf("FindGap() error = %v, want nil for degenerate window", err)
	}
	if ok {
		t.Error("FindGap() ok = true for degenerate window, want false")
	}
}

func TestFindGap_InvalidSlotCount(t *testing.T) {
	if _, _, err := FindGap(nil, testWindow, 0); !errors.Is(err, domain.ErrInvalidSlotCount) {
		t.Errorf("FindGap(0) error = %v, want ErrInvalidSlotCount", err)
	}
	if _, _, err := FindGap(nil, testWindow, -3); !errors.Is(err, domain.ErrInvalidSlotCount) {
		t.Errorf("FindGap(-3) error = %v, want ErrInvalidSlotCount", err)
	}
}

func TestFindGap_ClampsBookingsOutsideWindow(t *testing.T) {
	// Bookings starting before opening or running past closing must mark
	// only their in-window slots and never panic.
	bookings := []domain.Booking{
		booking(420, 4),  // 07:00-09:00, first two slots out of range
		booking(1050, 4), // 17:30-19:30, last three slots out of range
	}

	gap, ok, err := FindGap(bookings, testWindow, 2)
	if err != nil {
		t.Fatalf("FindGap() error = %v", err)
	}
	if !ok {
		t.Fatal("FindGap() ok = false, want true")
	}
	if gap.Start.Clock() != "09:00" {
		t.Errorf("gap start = %s, want 09:00", gap.Start.Clock())
	}

	// The tail booking still blocks its in-window slot.
	_, ok, err = FindGap(bookings, testWindow, 19)
	if err != nil {
		t.Fatalf("FindGap() error = %v", err)
	}
	if ok {
		t.Error("FindGap() ok = true, want false with 17:30 slot occupied")
	}
}

func TestFindGap_OutputNeverOverlapsExisting(t *testing.T) {
	sets := [][]domain.Booking{
		{booking(480, 4)},
		{booking(540, 2), booking(720, 6)},
		{booking(480, 1), booking(540, 1), booking(600, 1), booking(660, 8)},
		{},
	}

	for _, bookings := range sets {
		for slotsNeeded := 1; slotsNeeded <= 6; slotsNeeded++ {
			gap, ok, err := FindGap(bookings, testWindow, slotsNeeded)
			if err != nil {
				t.Fatalf("FindGap() error = %v", err)
			}
			if !ok {
				continue
			}
			day := &domain.DaySchedule{Bookings: append([]domain.Booking{}, bookings...)}
			day.Bookings = append(day.Bookings, domain.Booking{StartsAt: gap.Start, SlotCount: slotsNeeded})
			if day.HasOverlap() {
				t.Errorf("gap %s-%s overlaps existing bookings %v", gap.Start.Clock(), gap.End.Clock(), bookings)
			}
		}
	}
}

func TestFindGap_MonotonicFeasibility(t *testing.T) {
	// If k slots fit, every smaller request fits too, starting no later.
	bookings := []domain.Booking{booking(540, 2), booking(720, 6)}

	prevStart := domain.MinuteOfDay(-1)
	for k := 6; k >= 1; k-- {
		gap, ok, err := FindGap(bookings, testWindow, k)
		if err != nil {
			t.Fatalf("FindGap(%d) error = %v", k, err)
		}
		if !ok {
			t.Fatalf("FindGap(%d) ok = false, want true", k)
		}
		if prevStart >= 0 && gap.Start > prevStart {
			t.Errorf("FindGap(%d) start %s later than start for larger request %s", k, gap.Start.Clock(), prevStart.Clock())
		}
		prevStart = gap.Start
	}
}

func TestFindGap_Idempotent(t *testing.T) {
	bookings := []domain.Booking{booking(480, 4), booking(720, 2)}

	first, ok1, err1 := FindGap(bookings, testWindow, 3)
	second, ok2, err2 := FindGap(bookings, testWindow, 3)
	if err1 != nil || err2 != nil {
		t.Fatalf("FindGap() errors = %v, %v", err1, err2)
	}
	if ok1 != ok2 || first != second {
		t.Errorf("repeated calls disagree: (%v, %v) vs (%v, %v)", first, ok1, second, ok2)
	}
}
