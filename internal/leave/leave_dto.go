package leave

type CreateLeaveTypeRequest struct {
	Name string `json:"name" validate:"required"`
}

type LeaveTypeResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CreateLeaveRequest struct {
	EmployeeID   string `json:"employee_id" validate:"required"`
	DepartmentID string `json:"department_id" validate:"required"`
	LeaveTypeID  string `json:"leave_type_id" validate:"required"`
	StartDate    string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate      string `json:"end_date" validate:"required,datetime=2006-01-02"`
	Reason       string `json:"reason"`
}

// UpdateLeaveRequest merges only the fields that are present. Approval
// status is never set through update; the transition operations own it.
type UpdateLeaveRequest struct {
	LeaveTypeID *string `json:"leave_type_id,omitempty" validate:"omitempty,min=1"`
	StartDate   *string `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EndDate     *string `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Reason      *string `json:"reason,omitempty"`
}

type LeaveResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	DepartmentID string `json:"department_id"`
	LeaveTypeID  string `json:"leave_type_id"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	NumberOfDays int    `json:"number_of_days"`
	Reason       string `json:"reason,omitempty"`

	Status                 string  `json:"status"`
	DepartmentApprovedByID string  `json:"department_approved_by_id,omitempty"`
	DepartmentApprovedAt   *string `json:"department_approved_at,omitempty"`
	ApprovedByID           string  `json:"approved_by_id,omitempty"`
	ApprovedAt             *string `json:"approved_at,omitempty"`
	RejectedByID           string  `json:"rejected_by_id,omitempty"`
	RejectedAt             *string `json:"rejected_at,omitempty"`
	RejectionReason        string  `json:"rejection_reason,omitempty"`
}
