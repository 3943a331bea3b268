//go:build !gcloud

package config

// Validate is lenient locally: without LOCAL_TASKS_URL the task queue is
// simply disabled.
func (c *TaskQueueConfig) Validate() error {
	return nil
}
