package recorder

import (
	"context"

	"github.com/agrocoop-dev/delivery-scheduling/internal/domain"
)

type noopRecorder struct{}

func NewNoopRecorder() domain.AllocationRecorder {
	return &noopRecorder{}
}

func (n *noopRecorder) RecordAllocation(_ context.Context, _ domain.AllocationRecord) error {
	return nil
}

func (n *noopRecorder) Flush(_ context.Context) error {
	return nil
}

func (n *noopRecorder) Close() error {
	return nil
}
