package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const schedulingTracerName = "github.com/agrocoop-dev/delivery-scheduling/internal/service/schedule"

func SchedulingTracer() trace.Tracer {
	return otel.Tracer(schedulingTracerName)
}

func StartPlanSpan(ctx context.Context, date, productCode string, quantityKg float64) (context.Context, trace.Span) {
	return SchedulingTracer().Start(ctx, "schedule.plan",
		trace.WithAttributes(
			attribute.String("plan.date", date),
			attribute.String("plan.product_code", productCode),
			attribute.Float64("plan.quantity_kg", quantityKg),
		),
	)
}

func StartHorizonSearchSpan(ctx context.Context, from string, horizonDays int) (context.Context, trace.Span) {
	return SchedulingTracer().Start(ctx, "schedule.horizon_search",
		trace.WithAttributes(
			attribute.String("search.from", from),
			attribute.Int("search.horizon_days", horizonDays),
		),
	)
}

func RecordPlanResult(span trace.Span, outcome string, slotsNeeded, attempts int, err error) {
	span.SetAttributes(
		attribute.String("plan.outcome", outcome),
		attribute.Int("plan.slots_needed", slotsNeeded),
		attribute.Int("plan.attempts", attempts),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
}

func RecordSearchResult(span trace.Span, found bool, daysSearched int, err error) {
	span.SetAttributes(
		attribute.Bool("search.found", found),
		attribute.Int("search.days_searched", daysSearched),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
}
