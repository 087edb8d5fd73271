package events

import "time"

const ApprovalDecisionTopic = "hr.approval.decision.v1"

// ApprovalDecidedEvent is emitted when a leave or overtime request reaches
// a decision stage (department sign-off, final approval, or rejection).
type ApprovalDecidedEvent struct {
	EventID     string    `json:"event_id"`
	EventType   string    `json:"event_type"`
	RequestKind string    `json:"request_kind"` // "leave" | "overtime"
	RequestID   string    `json:"request_id"`
	EmployeeID  string    `json:"employee_id"`
	ActorID     string    `json:"actor_id"`
	Status      string    `json:"status"`
	OccurredAt  time.Time `json:"occurred_at"`
}
