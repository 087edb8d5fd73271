package events

import "time"

const EmployeeCreatedTopic = "hr.employee.lifecycle.v1"

type EmployeeCreatedEvent struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	EmployeeID string    `json:"employee_id"`
	Code       string    `json:"code"`
	OccurredAt time.Time `json:"occurred_at"`
}
