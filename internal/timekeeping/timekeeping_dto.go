package timekeeping

type CreateWorkShiftRequest struct {
	Name      string `json:"name" validate:"required"`
	StartTime string `json:"start_time" validate:"required,datetime=15:04"`
	EndTime   string `json:"end_time" validate:"required,datetime=15:04"`
}

type WorkShiftResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type CreateTimeEntryRequest struct {
	EmployeeID   string `json:"employee_id" validate:"required"`
	DepartmentID string `json:"department_id" validate:"required"`
	WorkShiftID  string `json:"work_shift_id" validate:"required"`
	WorkDate     string `json:"work_date" validate:"required,datetime=2006-01-02"`
	Status       string `json:"status" validate:"required,oneof=present absent late on_leave"`
}

type UpdateTimeEntryRequest struct {
	WorkShiftID *string `json:"work_shift_id,omitempty" validate:"omitempty,min=1"`
	WorkDate    *string `json:"work_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Status      *string `json:"status,omitempty" validate:"omitempty,oneof=present absent late on_leave"`
}

type TimeEntryResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	DepartmentID string `json:"department_id"`
	WorkShiftID  string `json:"work_shift_id"`
	WorkDate     string `json:"work_date"`
	Status       string `json:"status"`
}
