package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/agrocoop-dev/delivery-scheduling/internal/domain"
)

const (
	dayKeyPrefix = "calendar:day:"

	// Conditional appends retry a handful of times inside Watch before the
	// conflict is surfaced to the caller.
	appendMaxAttempts = 3
)

// Clock strings are stored in the day records so the persisted form matches
// the API's wire representation.
type bookingRecord struct {
	ID          string  `json:"id"`
	MemberID    string  `json:"member_id"`
	ProductCode string  `json:"product_code"`
	QuantityKg  float64 `json:"quantity_kg"`
	StartClock  string  `json:"start_clock"`
	SlotCount   int     `json:"slot_count"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"created_at"`
}

type dayRecord struct {
	Date     string          `json:"date"`
	Revision int64           `json:"revision"`
	Bookings []bookingRecord `json:"bookings"`
}

type calendarRepository struct {
	client *redis.Client
}

func NewCalendarRepository(client *redis.Client) domain.CalendarRepository {
	return &calendarRepository{client: client}
}

func dayKey(date time.Time) string {
	return dayKeyPrefix + domain.DayKey(date)
}

// DayScheduleFor returns the stored schedule for a date. A date with no
// record yet yields an empty schedule at revision zero, indistinguishable
// from a day whose bookings were all removed.
func (r *calendarRepository) DayScheduleFor(ctx context.Context, date time.Time) (*domain.DaySchedule, error) {
	raw, err := r.client.Get(ctx, dayKey(date)).Result()
	if errors.Is(err, redis.Nil) {
		return domain.EmptyDaySchedule(date), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRedisConnection, err)
	}

	var rec dayRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDayData, err)
	}
	return recordToSchedule(date, rec)
}

func (r *calendarRepository) BookingsOn(ctx context.Context, date time.Time) ([]domain.Booking, error) {
	day, err := r.DayScheduleFor(ctx, date)
	if err != nil {
		return nil, err
	}
	return day.Bookings, nil
}

// AppendBooking commits a booking only if the day is still at
// expectedRevision. The key is watched, so a concurrent commit between read
// and write aborts the transaction; either way the caller gets
// ErrDayConflict and must re-read, re-run the gap search and retry.
func (r *calendarRepository) AppendBooking(ctx context.Context, date time.Time, booking domain.Booking, expectedRevision int64) error {
	key := dayKey(date)

	txf := func(tx *redis.Tx) error {
		rec := dayRecord{Date: domain.DayKey(date), Bookings: []bookingRecord{}}
		raw, err := tx.Get(ctx, key).Result()
		switch {
		case errors.Is(err, redis.Nil):
			// first booking of the day
		case err != nil:
			return fmt.Errorf("%w: %w", ErrRedisConnection, err)
		default:
			if err := json.Unmarshal([]byte(raw), &rec); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidDayData, err)
			}
		}

		if rec.Revision != expectedRevision {
			return domain.ErrDayConflict
		}

		rec.Bookings = append(rec.Bookings, bookingToRecord(booking))
		rec.Revision++

		data, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidDayData, err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, 0)
			return nil
		})
		return err
	}

	for attempt := 0; attempt < appendMaxAttempts; attempt++ {
		err := r.client.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return err
	}
	return domain.ErrDayConflict
}

func bookingToRecord(b domain.Booking) bookingRecord {
	return bookingRecord{
		ID:          b.ID,
		MemberID:    b.MemberID,
		ProductCode: b.ProductCode,
		QuantityKg:  b.QuantityKg,
		StartClock:  b.StartsAt.Clock(),
		SlotCount:   b.SlotCount,
		Status:      string(b.Status),
		CreatedAt:   b.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func recordToSchedule(date time.Time, rec dayRecord) (*domain.DaySchedule, error) {
	day := &domain.DaySchedule{
		Date:     domain.TruncateToDay(date),
		Bookings: make([]domain.Booking, 0, len(rec.Bookings)),
		Revision: rec.Revision,
	}
	for _, br := range rec.Bookings {
		startsAt, err := domain.ParseClock(br.StartClock)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDayData, err)
		}
		createdAt, _ := time.Parse(time.RFC3339, br.CreatedAt)
		day.Bookings = append(day.Bookings, domain.Booking{
			ID:          br.ID,
			MemberID:    br.MemberID,
			ProductCode: br.ProductCode,
			QuantityKg:  br.QuantityKg,
			StartsAt:    startsAt,
			SlotCount:   br.SlotCount,
			Status:      domain.BookingStatus(br.Status),
			CreatedAt:   createdAt,
		})
	}
	return day, nil
}
