package overtime

type CreateOvertimeTypeRequest struct {
	Name string `json:"name" validate:"required"`
}

type OvertimeTypeResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CreateOvertimeRequest struct {
	EmployeeID     string `json:"employee_id" validate:"required"`
	DepartmentID   string `json:"department_id" validate:"required"`
	OvertimeTypeID string `json:"overtime_type_id" validate:"required"`
	OvertimeDate   string `json:"overtime_date" validate:"required,datetime=2006-01-02"`
	StartTime      string `json:"start_time" validate:"required,datetime=15:04"`
	EndTime        string `json:"end_time" validate:"required,datetime=15:04"`
	Reason         string `json:"reason"`
}

// UpdateOvertimeRequest merges only the fields that are present. Approval
// status is never set through update; the transition operations own it.
type UpdateOvertimeRequest struct {
	OvertimeTypeID *string `json:"overtime_type_id,omitempty" validate:"omitempty,min=1"`
	OvertimeDate   *string `json:"overtime_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	StartTime      *string `json:"start_time,omitempty" validate:"omitempty,datetime=15:04"`
	EndTime        *string `json:"end_time,omitempty" validate:"omitempty,datetime=15:04"`
	Reason         *string `json:"reason,omitempty"`
}

type OvertimeResponse struct {
	ID             string  `json:"id"`
	EmployeeID     string  `json:"employee_id"`
	DepartmentID   string  `json:"department_id"`
	OvertimeTypeID string  `json:"overtime_type_id"`
	OvertimeDate   string  `json:"overtime_date"`
	StartTime      string  `json:"start_time"`
	EndTime        string  `json:"end_time"`
	Hours          float64 `json:"hours"`
	Reason         string  `json:"reason,omitempty"`

	Status                 string  `json:"status"`
	DepartmentApprovedByID string  `json:"department_approved_by_id,omitempty"`
	DepartmentApprovedAt   *string `json:"department_approved_at,omitempty"`
	ApprovedByID           string  `json:"approved_by_id,omitempty"`
	ApprovedAt             *string `json:"approved_at,omitempty"`
	RejectedByID           string  `json:"rejected_by_id,omitempty"`
	RejectedAt             *string `json:"rejected_at,omitempty"`
	RejectionReason        string  `json:"rejection_reason,omitempty"`
}
