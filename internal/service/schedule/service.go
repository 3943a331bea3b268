package schedule

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/agrocoop-dev/delivery-scheduling/internal/domain"
	"github.com/agrocoop-dev/delivery-scheduling/internal/infra/taskqueue"
	"github.com/agrocoop-dev/delivery-scheduling/internal/observability/metrics"
	"github.com/agrocoop-dev/delivery-scheduling/internal/observability/tracing"
	"github.com/agrocoop-dev/delivery-scheduling/internal/service/slots"
)

// maxPlanAttempts bounds the read-search-append retry loop. Each retry
// re-reads the day and re-runs the gap search against the fresh snapshot.
const maxPlanAttempts = 3

type Service struct {
	calendar      domain.CalendarRepository
	products      domain.ProductCatalog
	settings      domain.WindowSettingsStore
	recorder      domain.AllocationRecorder
	taskQueue     taskqueue.TaskQueue
	metrics       *metrics.SchedulingMetrics
	defaultWindow domain.OperatingWindow
	horizonDays   int
}

func NewService(
	calendar domain.CalendarRepository,
	products domain.ProductCatalog,
	settings domain.WindowSettingsStore,
	recorder domain.AllocationRecorder,
	taskQueue taskqueue.TaskQueue,
	schedulingMetrics *metrics.SchedulingMetrics,
	defaultWindow domain.OperatingWindow,
	horizonDays int,
) *Service {
	if horizonDays <= 0 {
		horizonDays = slots.DefaultHorizonDays
	}
	return &Service{
		calendar:      calendar,
		products:      products,
		settings:      settings,
		recorder:      recorder,
		taskQueue:     taskQueue,
		metrics:       schedulingMetrics,
		defaultWindow: defaultWindow,
		horizonDays:   horizonDays,
	}
}

// PlanDelivery books the earliest fitting gap on the requested date. The
// append is conditional on the day revision observed during the search;
// on a conflict the whole cycle reruns so concurrent requests for the
// same date serialize instead of double-booking.
func (s *Service) PlanDelivery(ctx context.Context, req PlanRequest) (*PlanResult, error) {
	date := domain.TruncateToDay(req.Date)

	ctx, span := tracing.StartPlanSpan(ctx, domain.DayKey(date), req.ProductCode, req.QuantityKg)
	defer span.End()

	product, err := s.products.GetByCode(ctx, req.ProductCode)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			s.recordAllocation(ctx, domain.AllocationRecord{
				Kind:        domain.AllocationKindPlan,
				Outcome:     domain.OutcomeNotFound,
				Date:        date,
				ProductCode: req.ProductCode,
				QuantityKg:  req.QuantityKg,
			})
			s.recordPlanMetric(ctx, domain.OutcomeNotFound, req.ProductCode)
		}
		tracing.RecordPlanResult(span, domain.OutcomeNotFound, 0, 0, err)
		return nil, err
	}

	estimate, err := slots.EstimateSlots(req.QuantityKg, product.DeliveryTimeFactor)
	if err != nil {
		tracing.RecordPlanResult(span, "invalid", 0, 0, err)
		return nil, err
	}

	window, err := s.operatingWindow(ctx)
	if err != nil {
		tracing.RecordPlanResult(span, "error", estimate.SlotCount, 0, err)
		return nil, err
	}

	for attempt := 1; attempt <= maxPlanAttempts; attempt++ {
		day, err := s.calendar.DayScheduleFor(ctx, date)
		if err != nil {
			tracing.RecordPlanResult(span, "error", estimate.SlotCount, attempt, err)
			return nil, err
		}

		searchStart := time.Now()
		gap, ok, err := slots.FindGap(day.Bookings, window, estimate.SlotCount)
		if s.metrics != nil {
			s.metrics.RecordGapSearchDuration(ctx, time.Since(searchStart))
		}
		if err != nil {
			tracing.RecordPlanResult(span, "error", estimate.SlotCount, attempt, err)
			return nil, err
		}
		if !ok {
			s.recordAllocation(ctx, domain.AllocationRecord{
				Kind:        domain.AllocationKindPlan,
				Outcome:     domain.OutcomeNoCapacity,
				Date:        date,
				ProductCode: req.ProductCode,
				QuantityKg:  req.QuantityKg,
				SlotsNeeded: estimate.SlotCount,
			})
			s.recordPlanMetric(ctx, domain.OutcomeNoCapacity, req.ProductCode)
			tracing.RecordPlanResult(span, domain.OutcomeNoCapacity, estimate.SlotCount, attempt, nil)
			return nil, domain.ErrNoCapacity
		}

		booking := domain.NewBooking(
			uuid.NewString(),
			req.MemberID,
			req.ProductCode,
			req.QuantityKg,
			gap.Start,
			estimate.SlotCount,
		)

		err = s.calendar.AppendBooking(ctx, date, booking, day.Revision)
		if errors.Is(err, domain.ErrDayConflict) {
			if s.metrics != nil {
				s.metrics.RecordPlanConflict(ctx)
			}
			slog.DebugContext(ctx, "day changed during planning, retrying",
				slog.String("date", domain.DayKey(date)),
				slog.Int("attempt", attempt),
				slog.Int64("observed_revision", day.Revision),
			)
			continue
		}
		if err != nil {
			tracing.RecordPlanResult(span, "error", estimate.SlotCount, attempt, err)
			return nil, fmt.Errorf("failed to persist booking: %w", err)
		}

		s.recordAllocation(ctx, domain.AllocationRecord{
			Kind:        domain.AllocationKindPlan,
			Outcome:     domain.OutcomePlaced,
			Date:        date,
			ProductCode: req.ProductCode,
			QuantityKg:  req.QuantityKg,
			SlotsNeeded: estimate.SlotCount,
			StartsAt:    gap.Start,
		})
		s.recordPlanMetric(ctx, domain.OutcomePlaced, req.ProductCode)
		if s.metrics != nil {
			s.metrics.RecordSlotsAllocated(ctx, estimate.SlotCount, req.ProductCode)
		}
		tracing.RecordPlanResult(span, domain.OutcomePlaced, estimate.SlotCount, attempt, nil)

		slog.InfoContext(ctx, "delivery planned",
			slog.String("booking_id", booking.ID),
			slog.String("date", domain.DayKey(date)),
			slog.String("member_id", req.MemberID),
			slog.String("product_code", req.ProductCode),
			slog.String("starts_at", gap.Start.Clock()),
			slog.Int("slot_count", estimate.SlotCount),
			slog.Int("attempt", attempt),
		)

		s.enqueueConfirmation(ctx, date, booking)

		return &PlanResult{
			Booking:  booking,
			Gap:      gap,
			Estimate: estimate,
			Attempts: attempt,
		}, nil
	}

	s.recordAllocation(ctx, domain.AllocationRecord{
		Kind:        domain.AllocationKindPlan,
		Outcome:     domain.OutcomeConflict,
		Date:        date,
		ProductCode: req.ProductCode,
		QuantityKg:  req.QuantityKg,
		SlotsNeeded: estimate.SlotCount,
	})
	s.recordPlanMetric(ctx, domain.OutcomeConflict, req.ProductCode)
	tracing.RecordPlanResult(span, domain.OutcomeConflict, estimate.SlotCount, maxPlanAttempts, domain.ErrDayConflict)

	slog.WarnContext(ctx, "plan attempts exhausted under contention",
		slog.String("date", domain.DayKey(date)),
		slog.Int("max_attempts", maxPlanAttempts),
	)
	return nil, domain.ErrDayConflict
}

// FindAvailability scans forward from req.From for the first date that can
// take the estimated slot run. Nothing is booked.
func (s *Service) FindAvailability(ctx context.Context, req AvailabilityRequest) (*AvailabilityResult, error) {
	from := domain.TruncateToDay(req.From)

	ctx, span := tracing.StartHorizonSearchSpan(ctx, domain.DayKey(from), s.horizonDays)
	defer span.End()

	product, err := s.products.GetByCode(ctx, req.ProductCode)
	if err != nil {
		tracing.RecordSearchResult(span, false, 0, err)
		return nil, err
	}

	estimate, err := slots.EstimateSlots(req.QuantityKg, product.DeliveryTimeFactor)
	if err != nil {
		tracing.RecordSearchResult(span, false, 0, err)
		return nil, err
	}

	window, err := s.operatingWindow(ctx)
	if err != nil {
		tracing.RecordSearchResult(span, false, 0, err)
		return nil, err
	}

	searcher := slots.NewSearcher(s.calendar, s.horizonDays)
	result, err := searcher.Find(ctx, from, window, estimate.SlotCount)
	if err != nil {
		tracing.RecordSearchResult(span, false, result.DaysSearched, err)
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.RecordDaysSearched(ctx, result.DaysSearched)
	}

	outcome := domain.OutcomePlaced
	if !result.Found {
		outcome = domain.OutcomeNoCapacity
	}
	s.recordAllocation(ctx, domain.AllocationRecord{
		Kind:         domain.AllocationKindSearch,
		Outcome:      outcome,
		Date:         result.Date,
		ProductCode:  req.ProductCode,
		QuantityKg:   req.QuantityKg,
		SlotsNeeded:  estimate.SlotCount,
		DaysSearched: result.DaysSearched,
		StartsAt:     result.Gap.Start,
	})
	tracing.RecordSearchResult(span, result.Found, result.DaysSearched, nil)

	return &AvailabilityResult{
		Found:        result.Found,
		Date:         result.Date,
		Gap:          result.Gap,
		Estimate:     estimate,
		DaysSearched: result.DaysSearched,
	}, nil
}

// DayScheduleFor reads one day; a date never booked comes back as an empty
// schedule.
func (s *Service) DayScheduleFor(ctx context.Context, date time.Time) (*domain.DaySchedule, error) {
	return s.calendar.DayScheduleFor(ctx, domain.TruncateToDay(date))
}

func (s *Service) operatingWindow(ctx context.Context) (domain.OperatingWindow, error) {
	if s.settings == nil {
		return s.defaultWindow, nil
	}
	settings, err := s.settings.OperatingWindow(ctx)
	if errors.Is(err, domain.ErrSettingsNotFound) {
		return s.defaultWindow, nil
	}
	if err != nil {
		slog.WarnContext(ctx, "failed to load window settings, using default",
			slog.String("error", err.Error()),
		)
		return s.defaultWindow, nil
	}
	return settings.Window(), nil
}

func (s *Service) recordAllocation(ctx context.Context, record domain.AllocationRecord) {
	if s.recorder == nil {
		return
	}
	if err := s.recorder.RecordAllocation(ctx, record); err != nil {
		slog.WarnContext(ctx, "failed to record allocation result",
			slog.String("error", err.Error()),
		)
	}
}

func (s *Service) recordPlanMetric(ctx context.Context, outcome, productCode string) {
	if s.metrics == nil {
		return
	}
	s.metrics.RecordPlan(ctx, outcome, productCode)
}

func (s *Service) enqueueConfirmation(ctx context.Context, date time.Time, booking domain.Booking) {
	if s.taskQueue == nil {
		return
	}
	task := &taskqueue.ConfirmationTask{
		BookingID:   booking.ID,
		MemberID:    booking.MemberID,
		ProductCode: booking.ProductCode,
		Date:        domain.DayKey(date),
		StartClock:  booking.StartsAt.Clock(),
		EndClock:    booking.EndsAt().Clock(),
		QuantityKg:  booking.QuantityKg,
	}
	if _, err := s.taskQueue.EnqueueConfirmation(ctx, task); err != nil {
		slog.WarnContext(ctx, "failed to enqueue delivery confirmation",
			slog.String("booking_id", booking.ID),
			slog.String("error", err.Error()),
		)
	}
}
