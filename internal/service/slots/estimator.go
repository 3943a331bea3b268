package slots

import (
	"math"

	"github.com/agrocoop-dev/delivery-scheduling/internal/domain"
)

// ReferenceQuantityKg is the quantity a product's delivery time factor is
// calibrated against: a factor of 1.5 means 500 kg take 1.5 hours.
const ReferenceQuantityKg = 500

// Estimate is the slot demand of a request. Hours is the quantized duration
// (rounded up to slot boundaries), not the raw quantity/factor ratio; it is
// what actually gets reserved and what callers must display.
type Estimate struct {
	SlotCount int
	Hours     float64
}

// EstimateSlots converts a requested quantity into whole slots. Partial slot
// needs consume a full slot, and any positive quantity occupies at least one.
func EstimateSlots(quantityKg, timeFactor float64) (Estimate, error) {
	if quantityKg <= 0 {
		return Estimate{}, domain.ErrInvalidQuantity
	}
	if timeFactor <= 0 {
		return Estimate{}, domain.ErrInvalidTimeFactor
	}

	hours := quantityKg / ReferenceQuantityKg * timeFactor
	slotCount := int(math.Ceil(hours * domain.SlotsPerHour))
	if slotCount < 1 {
		slotCount = 1
	}

	return Estimate{
		SlotCount: slotCount,
		Hours:     float64(slotCount) / domain.SlotsPerHour,
	}, nil
}
