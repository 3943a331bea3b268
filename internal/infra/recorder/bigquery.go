//go:build gcloud

package recorder

import (
	"context"
	"log/slog"
	"time"

	"cloud.google.com/go/bigquery"

	"github.com/agrocoop-dev/delivery-scheduling/internal/domain"
)

type bigQueryRecord struct {
	RecordedAt   time.Time `bigquery:"recorded_at"`
	Kind         string    `bigquery:"kind"`
	Outcome      string    `bigquery:"outcome"`
	Date         time.Time `bigquery:"date"`
	ProductCode  string    `bigquery:"product_code"`
	QuantityKg   float64   `bigquery:"quantity_kg"`
	SlotsNeeded  int64     `bigquery:"slots_needed"`
	DaysSearched int64     `bigquery:"days_searched"`
	StartMinute  int64     `bigquery:"start_minute"`
}

type bigQueryRecorder struct {
	client   *bigquery.Client
	inserter *bigquery.Inserter
	dataset  string
	table    string
}

func NewRecorder(ctx context.Context, cfg *Config) (domain.AllocationRecorder, error) {
	if cfg.Disabled {
		slog.InfoContext(ctx, "allocation result recording disabled")
		return NewNoopRecorder(), nil
	}

	if cfg.BigQueryProjectID == "" {
		slog.WarnContext(ctx, "BigQuery project ID not configured, allocation result recording disabled")
		return NewNoopRecorder(), nil
	}

	client, err := bigquery.NewClient(ctx, cfg.BigQueryProjectID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to create BigQuery client, allocation result recording disabled",
			slog.String("error", err.Error()),
			slog.String("project_id", cfg.BigQueryProjectID),
		)
		return NewNoopRecorder(), nil
	}

	table := client.Dataset(cfg.BigQueryDataset).Table(cfg.BigQueryTable)
	inserter := table.Inserter()

	slog.InfoContext(ctx, "allocation result recorder initialized",
		slog.String("type", "bigquery"),
		slog.String("project_id", cfg.BigQueryProjectID),
		slog.String("dataset", cfg.BigQueryDataset),
		slog.String("table", cfg.BigQueryTable),
	)

	return &bigQueryRecorder{
		client:   client,
		inserter: inserter,
		dataset:  cfg.BigQueryDataset,
		table:    cfg.BigQueryTable,
	}, nil
}

func (r *bigQueryRecorder) RecordAllocation(ctx context.Context, record domain.AllocationRecord) error {
	row := &bigQueryRecord{
		RecordedAt:   time.Now(),
		Kind:         record.Kind,
		Outcome:      record.Outcome,
		Date:         record.Date,
		ProductCode:  record.ProductCode,
		QuantityKg:   record.QuantityKg,
		SlotsNeeded:  int64(record.SlotsNeeded),
		DaysSearched: int64(record.DaysSearched),
		StartMinute:  int64(record.StartsAt),
	}

	if err := r.inserter.Put(ctx, []*bigQueryRecord{row}); err != nil {
		slog.WarnContext(ctx, "failed to insert allocation result to BigQuery",
			slog.String("error", err.Error()),
			slog.String("kind", record.Kind),
			slog.String("outcome", record.Outcome),
		)
	}

	return nil
}

func (r *bigQueryRecorder) Flush(ctx context.Context) error {
	return nil
}

func (r *bigQueryRecorder) Close() error {
	if r.client != nil {
		return r.client.Close()
	}
	return nil
}
