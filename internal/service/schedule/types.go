package schedule

import (
	"time"

	"github.com/agrocoop-dev/delivery-scheduling/internal/domain"
	"github.com/agrocoop-dev/delivery-scheduling/internal/service/slots"
)

type PlanRequest struct {
	Date        time.Time
	MemberID    string
	ProductCode string
	QuantityKg  float64
}

type PlanResult struct {
	Booking  domain.Booking
	Gap      slots.Gap
	Estimate slots.Estimate
	// Attempts is how many read-search-append cycles ran before the
	// booking committed.
	Attempts int
}

type AvailabilityRequest struct {
	From        time.Time
	ProductCode string
	QuantityKg  float64
}

type AvailabilityResult struct {
	Found        bool
	Date         time.Time
	Gap          slots.Gap
	Estimate     slots.Estimate
	DaysSearched int
}
