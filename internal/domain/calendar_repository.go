package domain

import (
	"context"
	"time"
)

//go:generate mockgen -source=calendar_repository.go -destination=calendar_repository_mock.go -package=domain

// CalendarRepository is the persistence boundary for day schedules.
//
// AppendBooking is conditional: it commits only when the stored day revision
// still equals expectedRevision, otherwise it returns ErrDayConflict. This
// is what serializes the read-gap-append cycle per date; two concurrent
// planners observing the same snapshot cannot both commit.
type CalendarRepository interface {
	DayScheduleFor(ctx context.Context, date time.Time) (*DaySchedule, error)
	BookingsOn(ctx context.Context, date time.Time) ([]Booking, error)
	AppendBooking(ctx context.Context, date time.Time, booking Booking, expectedRevision int64) error
}
