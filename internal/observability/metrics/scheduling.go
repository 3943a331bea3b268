package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	schedulingMeterName = "scheduling.service"
)

type SchedulingMetrics struct {
	plansTotal        metric.Int64Counter
	planConflicts     metric.Int64Counter
	slotsAllocated    metric.Int64Counter
	gapSearchDuration metric.Float64Histogram
	daysSearched      metric.Int64Histogram
}

func NewSchedulingMetrics() (*SchedulingMetrics, error) {
	meter := otel.Meter(schedulingMeterName)

	plansTotal, err := meter.Int64Counter(
		"scheduling_plans_total",
		metric.WithDescription("Total number of delivery plan requests"),
		metric.WithUnit("{plan}"),
	)
	if err != nil {
		return nil, err
	}

	planConflicts, err := meter.Int64Counter(
		"scheduling_plan_conflicts_total",
		metric.WithDescription("Total number of optimistic-concurrency conflicts during plan persistence"),
		metric.WithUnit("{conflict}"),
	)
	if err != nil {
		return nil, err
	}

	slotsAllocated, err := meter.Int64Counter(
		"scheduling_slots_allocated_total",
		metric.WithDescription("Total number of half-hour slots allocated to bookings"),
		metric.WithUnit("{slot}"),
	)
	if err != nil {
		return nil, err
	}

	gapSearchDuration, err := meter.Float64Histogram(
		"scheduling_gap_search_duration_seconds",
		metric.WithDescription("Time spent scanning a day for a free gap"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5,
		),
	)
	if err != nil {
		return nil, err
	}

	daysSearched, err := meter.Int64Histogram(
		"scheduling_days_searched",
		metric.WithDescription("Days examined before a horizon search finished"),
		metric.WithUnit("{day}"),
		metric.WithExplicitBucketBoundaries(
			1, 2, 3, 5, 7, 10, 14, 21, 30,
		),
	)
	if err != nil {
		return nil, err
	}

	return &SchedulingMetrics{
		plansTotal:        plansTotal,
		planConflicts:     planConflicts,
		slotsAllocated:    slotsAllocated,
		gapSearchDuration: gapSearchDuration,
		daysSearched:      daysSearched,
	}, nil
}

func (m *SchedulingMetrics) RecordPlan(ctx context.Context, outcome, productCode string) {
	m.plansTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", outcome),
		attribute.String("product", productCode),
	))
}

func (m *SchedulingMetrics) RecordPlanConflict(ctx context.Context) {
	m.planConflicts.Add(ctx, 1)
}

func (m *SchedulingMetrics) RecordSlotsAllocated(ctx context.Context, slots int, productCode string) {
	m.slotsAllocated.Add(ctx, int64(slots), metric.WithAttributes(
		attribute.String("product", productCode),
	))
}

func (m *SchedulingMetrics) RecordGapSearchDuration(ctx context.Context, duration time.Duration) {
	m.gapSearchDuration.Record(ctx, duration.Seconds())
}

func (m *SchedulingMetrics) RecordDaysSearched(ctx context.Context, days int) {
	m.daysSearched.Record(ctx, int64(days))
}
