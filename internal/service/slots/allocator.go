package slots

import (
	"github.com/agrocoop-dev/delivery-scheduling/internal/domain"
)

// Gap is a contiguous run of free slots, exactly slotsNeeded long, expressed
// as half-open [Start, End) times of day.
type Gap struct {
	Start domain.MinuteOfDay `json:"start"`
	End   domain.MinuteOfDay `json:"end"`
}

// FindGap locates the earliest run of free slots of the required length
// within one day's operating window. First fit, earliest start wins; no
// best-fit or fragmentation heuristics.
//
// The occupancy array is rebuilt per call and never outlives it. Bookings
// that extend outside the window mark only the in-range slots; malformed
// upstream rows must never write out of bounds or abort the scan.
func FindGap(bookings []domain.Booking, window domain.OperatingWindow, slotsNeeded int) (Gap, bool, error) {
	if slotsNeeded <= 0 {
		return Gap{}, false, domain.ErrInvalidSlotCount
	}

	totalSlots := window.TotalSlots()
	if totalSlots == 0 || slotsNeeded > totalSlots {
		return Gap{}, false, nil
	}

	occupied := make([]bool, totalSlots)
	for _, b := range bookings {
		startSlot := int(b.StartsAt-window.OpensAt) / domain.SlotMinutes
		for i := startSlot; i < startSlot+b.SlotCount; i++ {
			if i >= 0 && i < totalSlots {
				occupied[i] = true
			}
		}
	}

	for start := 0; start <= totalSlots-slotsNeeded; start++ {
		free := true
		for i := start; i < start+slotsNeeded; i++ {
			if occupied[i] {
				free = false
				break
			}
		}
		if free {
			return Gap{
				Start: window.OpensAt.AddSlots(start),
				End:   window.OpensAt.AddSlots(start + slotsNeeded),
			}, true, nil
		}
	}

	return Gap{}, false, nil
}
