package taskqueue

import "context"

type TaskQueue interface {
	EnqueueConfirmation(ctx context.Context, task *ConfirmationTask) (*TaskResponse, error)
	DeleteTask(ctx context.Context, taskID string) error
}
