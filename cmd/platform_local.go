//go:build !gcloud

package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/agrocoop-dev/delivery-scheduling/internal/config"
	"github.com/agrocoop-dev/delivery-scheduling/internal/infra/taskqueue"
	"github.com/agrocoop-dev/delivery-scheduling/internal/observability"
	"github.com/agrocoop-dev/delivery-scheduling/internal/observability/logging"
)

func initTaskQueue(_ context.Context, cfg *config.Config) (taskqueue.TaskQueue, func() error, error) {
	if cfg.TaskQueue.LocalTasksURL == "" {
		slog.Warn("LOCAL_TASKS_URL not set, confirmation tasks will not be enqueued")
		return nil, nil, nil
	}

	client := taskqueue.NewLocalTasksClient(
		cfg.TaskQueue.LocalTasksURL,
		cfg.TaskQueue.QueueName,
		cfg.TaskQueue.MaxRetries,
	)
	return client, nil, nil
}

func initObservability(ctx context.Context, cfg *config.Config) (*observability.Resources, error) {
	serviceName := os.Getenv("SERVICE_NAME")
	if serviceName == "" {
		serviceName = "delivery-scheduling"
	}

	env := logging.EnvDev
	if v := os.Getenv("ENV"); v != "" {
		env = logging.Environment(v)
	}

	return observability.Init(ctx, observability.Config{
		ServiceInfo: logging.ServiceInfo{
			Name:    serviceName,
			Version: Version,
		},
		Environment:   env,
		SamplingRate:  1.0,
		DefaultModule: logging.Module("delivery-scheduling"),
		LogLevel:      cfg.LogLevel,
	})
}
