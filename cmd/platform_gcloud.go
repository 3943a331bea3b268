//go:build gcloud

package main

import (
	"context"
	"os"

	"github.com/agrocoop-dev/delivery-scheduling/internal/config"
	"github.com/agrocoop-dev/delivery-scheduling/internal/infra/taskqueue"
	"github.com/agrocoop-dev/delivery-scheduling/internal/observability"
	"github.com/agrocoop-dev/delivery-scheduling/internal/observability/logging"
)

func initTaskQueue(ctx context.Context, cfg *config.Config) (taskqueue.TaskQueue, func() error, error) {
	client, err := taskqueue.NewCloudTasksClient(ctx, taskqueue.CloudTasksConfig{
		ProjectID:  cfg.TaskQueue.GCloudProjectID,
		LocationID: cfg.TaskQueue.GCloudLocationID,
		QueueID:    cfg.TaskQueue.GCloudQueueID,
		TargetURL:  cfg.TaskQueue.GCloudTargetURL,
		MaxRetries: cfg.TaskQueue.MaxRetries,
	})
	if err != nil {
		return nil, nil, err
	}
	return client, client.Close, nil
}

func initObservability(ctx context.Context, cfg *config.Config) (*observability.Resources, error) {
	serviceName := os.Getenv("K_SERVICE")
	if serviceName == "" {
		serviceName = "delivery-scheduling"
	}

	projectID := os.Getenv("GOOGLE_CLOUD_PROJECT")
	if projectID == "" {
		projectID = os.Getenv("GCLOUD_PROJECT_ID")
	}

	return observability.Init(ctx, observability.Config{
		ServiceInfo: logging.ServiceInfo{
			Name:     serviceName,
			Version:  Version,
			Revision: os.Getenv("K_REVISION"),
		},
		Environment:   logging.EnvProd,
		GCPProjectID:  projectID,
		SamplingRate:  0.1,
		DefaultModule: logging.Module("delivery-scheduling"),
		LogLevel:      cfg.LogLevel,
	})
}
