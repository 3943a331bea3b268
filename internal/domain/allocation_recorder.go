package domain

import (
	"context"
	"time"
)

// Allocation record kinds and outcomes.
const (
	AllocationKindPlan   = "plan"
	AllocationKindSearch = "search"

	OutcomePlaced     = "placed"
	OutcomeNoCapacity = "no_capacity"
	OutcomeNotFound   = "not_found"
	OutcomeConflict   = "conflict"
)

// AllocationRecord is one scheduling decision, emitted for analysis.
type AllocationRecord struct {
	Kind         string
	Outcome      string
	Date         time.Time
	ProductCode  string
	QuantityKg   float64
	SlotsNeeded  int
	DaysSearched int
	StartsAt     MinuteOfDay
}

// AllocationRecorder streams allocation outcomes to an analytics sink.
// Recording is best-effort; implementations must not fail the scheduling
// path.
type AllocationRecorder interface {
	RecordAllocation(ctx context.Context, record AllocationRecord) error
	Flush(ctx context.Context) error
	Close() error
}
