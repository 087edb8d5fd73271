// Package approval implements the two-stage approval flow shared by leave
// and overtime requests: a request is created pending, needs a department
// sign-off before the final approval, and can be rejected from either
// non-terminal state. Approved and rejected are terminal.
package approval

import (
	"strings"
	"time"

	"go-hrm/internal/shared/apperror"
)

type Status string

const (
	StatusPending            Status = "pending"
	StatusDepartmentApproved Status = "department_approved"
	StatusApproved           Status = "approved"
	StatusRejected           Status = "rejected"
)

var (
	ErrInvalidTransition = apperror.New(
		apperror.CodeInvalidState,
		"action is not allowed in the current approval status",
	)
	ErrImmutable = apperror.New(
		apperror.CodeInvalidState,
		"an approved or rejected request is immutable history",
	)
	ErrRejectionReasonRequired = apperror.New(
		apperror.CodeInvalidInput,
		"a rejection reason is required",
	)
)

// State is embedded by each request entity. Trail fields are written once
// when their stage is reached and never cleared by a later transition.
type State struct {
	Status Status `json:"status"`

	DepartmentApprovedByID string     `json:"department_approved_by_id,omitempty"`
	DepartmentApprovedAt   *time.Time `json:"department_approved_at,omitempty"`
	ApprovedByID           string     `json:"approved_by_id,omitempty"`
	ApprovedAt             *time.Time `json:"approved_at,omitempty"`
	RejectedByID           string     `json:"rejected_by_id,omitempty"`
	RejectedAt             *time.Time `json:"rejected_at,omitempty"`
	RejectionReason        string     `json:"rejection_reason,omitempty"`
}

// NewState is the state of a freshly created request.
func NewState() State {
	return State{Status: StatusPending}
}

// Mutable reports whether the owning request may still be updated or
// deleted. Terminal requests are kept as audit history.
func (s *State) Mutable() bool {
	return s.Status == StatusPending || s.Status == StatusDepartmentApproved
}

// DepartmentApprove records the first-stage sign-off. Legal only while
// pending.
func (s *State) DepartmentApprove(actorID string, now time.Time) error {
	if s.Status != StatusPending {
		return ErrInvalidTransition
	}
	s.Status = StatusDepartmentApproved
	s.DepartmentApprovedByID = actorID
	s.DepartmentApprovedAt = &now
	return nil
}

// Approve records the final sign-off. Legal only after the department
// stage; a request can never skip straight from pending to approved.
func (s *State) Approve(actorID string, now time.Time) error {
	if s.Status != StatusDepartmentApproved {
		return ErrInvalidTransition
	}
	s.Status = StatusApproved
	s.ApprovedByID = actorID
	s.ApprovedAt = &now
	return nil
}

// Reject moves the request to the rejected terminal state. Legal from
// either non-terminal state; the reason is validated before any mutation.
func (s *State) Reject(actorID, reason string, now time.Time) error {
	if strings.TrimSpace(reason) == "" {
		return ErrRejectionReasonRequired
	}
	if !s.Mutable() {
		return ErrInvalidTransition
	}
	s.Status = StatusRejected
	s.RejectedByID = actorID
	s.RejectedAt = &now
	s.RejectionReason = reason
	return nil
}

// Clone returns a deep copy; timestamps are the only pointer fields.
func (s State) Clone() State {
	c := s
	if s.DepartmentApprovedAt != nil {
		t := *s.DepartmentApprovedAt
		c.DepartmentApprovedAt = &t
	}
	if s.ApprovedAt != nil {
		t := *s.ApprovedAt
		c.ApprovedAt = &t
	}
	if s.RejectedAt != nil {
		t := *s.RejectedAt
		c.RejectedAt = &t
	}
	return c
}
