package slots

import (
	"context"
	"log/slog"
	"time"

	"github.com/agrocoop-dev/delivery-scheduling/internal/domain"
)

// DefaultHorizonDays is how many calendar days the multi-day search examines
// before giving up.
const DefaultHorizonDays = 30

// DayProvider looks up the existing bookings of one calendar date. A date
// with no schedule yet must yield an empty list, not an error.
type DayProvider interface {
	BookingsOn(ctx context.Context, date time.Time) ([]domain.Booking, error)
}

// SearchResult is the outcome of a multi-day scan. When Found is false,
// DaysSearched reports how far the horizon was exhausted.
type SearchResult struct {
	Found        bool
	Date         time.Time
	Gap          Gap
	DaysSearched int
}

// Searcher scans forward day by day for the first date with a fitting gap.
// It is a pure, re-entrant computation; nothing survives between calls.
type Searcher struct {
	provider    DayProvider
	horizonDays int
}

func NewSearcher(provider DayProvider, horizonDays int) *Searcher {
	if horizonDays <= 0 {
		horizonDays = DefaultHorizonDays
	}
	return &Searcher{
		provider:    provider,
		horizonDays: horizonDays,
	}
}

// Find returns the first date from `from` (inclusive) whose single-day
// search succeeds, within the horizon. A failed day lookup degrades to an
// unbooked day rather than aborting the search; the only hard stops are
// invalid input and context cancellation between days.
func (s *Searcher) Find(ctx context.Context, from time.Time, window domain.OperatingWindow, slotsNeeded int) (SearchResult, error) {
	if slotsNeeded <= 0 {
		return SearchResult{}, domain.ErrInvalidSlotCount
	}

	date := domain.TruncateToDay(from)
	for day := 0; day < s.horizonDays; day++ {
		if err := ctx.Err(); err != nil {
			return SearchResult{DaysSearched: day}, err
		}

		bookings, err := s.provider.BookingsOn(ctx, date)
		if err != nil {
			slog.WarnContext(ctx, "day lookup failed, treating day as unbooked",
				slog.String("date", domain.DayKey(date)),
				slog.String("error", err.Error()),
			)
			bookings = nil
		}

		gap, ok, err := FindGap(bookings, window, slotsNeeded)
		if err != nil {
			return SearchResult{DaysSearched: day}, err
		}
		if ok {
			return SearchResult{
				Found:        true,
				Date:         date,
				Gap:          gap,
				DaysSearched: day + 1,
			}, nil
		}

		date = date.AddDate(0, 0, 1)
	}

	return SearchResult{DaysSearched: s.horizonDays}, nil
}
