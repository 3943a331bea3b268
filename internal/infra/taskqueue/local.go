//go:build !gcloud

package taskqueue

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"time"
)

// LocalTasksClient talks to a Cloud Tasks emulator exposing the
// same JSON task envelope over plain HTTP.
type LocalTasksClient struct {
	baseURL    string
	queueName  string
	httpClient *http.Client
	maxRetries int
}

func NewLocalTasksClient(baseURL, queueName string, maxRetries int) *LocalTasksClient {
	if maxRetries <= 0 {
		maxRetries = 3
	}
	return &LocalTasksClient{
		baseURL:   baseURL,
		queueName: queueName,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		maxRetries: maxRetries,
	}
}

func (c *LocalTasksClient) EnqueueConfirmation(ctx context.Context, task *ConfirmationTask) (*TaskResponse, error) {
	payload, err := json.Marshal(task)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal confirmation task: %w", err)
	}

	encodedBody := base64.StdEncoding.EncodeToString(payload)

	localReq := localTaskRequest{
		Task: localTask{
			HTTPRequest: localHTTPRequest{
				Body: encodedBody,
				Headers: map[string]string{
					"Content-Type": "application/json",
				},
			},
		},
	}

	if !task.ScheduleAt.IsZero() {
		localReq.Task.ScheduleTime = task.ScheduleAt.Format(time.RFC3339)
	}

	reqBody, err := json.Marshal(localReq)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal task request: %w", err)
	}

	url := fmt.Sprintf("%s/tasks", c.baseURL)
	if c.queueName != "" && c.queueName != "default" {
		url = fmt.Sprintf("%s/tasks/%s", c.baseURL, c.queueName)
	}

	var lastErr error
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(math.Pow(2, float64(attempt-1))) * 100 * time.Millisecond
			slog.Debug("retrying confirmation enqueue",
				slog.String("booking_id", task.BookingID),
				slog.String("member_id", task.MemberID),
				slog.Int("attempt", attempt+1),
				slog.Duration("backoff", backoff),
			)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}

		resp, err := c.doRequest(ctx, url, reqBody, task.BookingID, task.MemberID)
		if err == nil {
			return resp, nil
		}
		lastErr = err
	}

	slog.Error("all retries exhausted for confirmation enqueue",
		slog.String("booking_id", task.BookingID),
		slog.String("member_id", task.MemberID),
		slog.Int("max_retries", c.maxRetries),
		slog.String("error", lastErr.Error()),
	)
	return nil, fmt.Errorf("failed to enqueue task after %d retries: %w", c.maxRetries, lastErr)
}

func (c *LocalTasksClient) doRequest(ctx context.Context, url string, reqBody []byte, bookingID, memberID string) (*TaskResponse, error) {
	slog.Debug("enqueueing confirmation to local task queue",
		slog.String("url", url),
		slog.String("booking_id", bookingID),
		slog.String("member_id", memberID),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Warn("failed to send request to local task queue",
			slog.String("booking_id", bookingID),
			slog.String("member_id", memberID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		slog.Warn("unexpected status code from local task queue",
			slog.String("booking_id", bookingID),
			slog.String("member_id", memberID),
			slog.Int("status_code", resp.StatusCode),
		)
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var localResp localTaskResponse
	if err := json.NewDecoder(resp.Body).Decode(&localResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	scheduleTime, _ := time.Parse(time.RFC3339, localResp.ScheduleTime)
	createTime, _ := time.Parse(time.RFC3339, localResp.CreateTime)

	slog.Info("confirmation task enqueued to local task queue",
		slog.String("task_name", localResp.Name),
		slog.String("booking_id", bookingID),
		slog.String("member_id", memberID),
	)

	return &TaskResponse{
		Name:         localResp.Name,
		ScheduleTime: scheduleTime,
		CreateTime:   createTime,
	}, nil
}

func (c *LocalTasksClient) DeleteTask(ctx context.Context, taskID string) error {
	url := fmt.Sprintf("%s/tasks/%s", c.baseURL, taskID)
	if c.queueName != "" && c.queueName != "default" {
		url = fmt.Sprintf("%s/tasks/%s/%s", c.baseURL, c.queueName, taskID)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusNotFound {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	slog.Debug("confirmation task deleted from local task queue",
		slog.String("task_id", taskID),
	)
	return nil
}
