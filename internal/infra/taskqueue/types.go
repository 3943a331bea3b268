package taskqueue

import "time"

type ConfirmationTask struct {
	BookingID  string    `json:"-"`
	ScheduleAt time.Time `json:"-"`

	MemberID    string  `json:"member_id"`
	ProductCode string  `json:"product_code"`
	Date        string  `json:"date"`
	StartClock  string  `json:"start_clock"`
	EndClock    string  `json:"end_clock"`
	QuantityKg  float64 `json:"quantity_kg"`
}

type TaskResponse struct {
	Name         string    `json:"name"`
	ScheduleTime time.Time `json:"schedule_time"`
	CreateTime   time.Time `json:"create_time"`
}

type localTaskRequest struct {
	Task localTask `json:"task"`
}

type localTask struct {
	HTTPRequest  localHTTPRequest `json:"httpRequest"`
	ScheduleTime string           `json:"scheduleTime,omitempty"`
}

type localHTTPRequest struct {
	Body    string            `json:"body"`
	Headers map[string]string `json:"headers,omitempty"`
}

type localTaskResponse struct {
	Name         string `json:"name"`
	ScheduleTime string `json:"scheduleTime"`
	CreateTime   string `json:"createTime"`
}
