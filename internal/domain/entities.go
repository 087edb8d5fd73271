// Package domain holds the normalized entity collections and the immutable
// snapshot aggregate they live in. Ids are opaque strings; every
// relationship is a value reference, never a pointer into another record.
package domain

import (
	"time"

	"go-hrm/internal/approval"
)

type Employee struct {
	ID               string    `json:"id"`
	Code             string    `json:"code"`
	Name             string    `json:"name"`
	Address          string    `json:"address,omitempty"`
	Phone            string    `json:"phone,omitempty"`
	IdentityCard     string    `json:"identity_card"`
	ContractDate     time.Time `json:"contract_date"`
	AcademicDegreeID string    `json:"academic_degree_id,omitempty"`
	AcademicTitleID  string    `json:"academic_title_id,omitempty"`
}

type Department struct {
	ID           string    `json:"id"`
	Code         string    `json:"code"`
	Name         string    `json:"name"`
	FoundingDate time.Time `json:"founding_date"`
	HeadID       string    `json:"head_id,omitempty"`
}

type Position struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DepartmentEmployee is one edge of the employee↔department relation.
type DepartmentEmployee struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	DepartmentID string `json:"department_id"`
}

// PositionEmployee is one edge of the employee↔position relation.
type PositionEmployee struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	PositionID string `json:"position_id"`
}

type ContractType struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Contract salary fields are integer VND major units.
type Contract struct {
	ID             string     `json:"id"`
	EmployeeID     string     `json:"employee_id"`
	ContractTypeID string     `json:"contract_type_id"`
	BaseSalary     int64      `json:"base_salary"`
	Allowance      int64      `json:"allowance,omitempty"`
	StartDate      time.Time  `json:"start_date"`
	EndDate        *time.Time `json:"end_date,omitempty"`
}

type LeaveType struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Leave struct {
	ID           string    `json:"id"`
	EmployeeID   string    `json:"employee_id"`
	DepartmentID string    `json:"department_id"`
	LeaveTypeID  string    `json:"leave_type_id"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	NumberOfDays int       `json:"number_of_days"`
	Reason       string    `json:"reason,omitempty"`

	Approval approval.State `json:"approval"`
}

type OvertimeType struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Overtime start/end are wall-clock HH:MM strings on OvertimeDate.
type Overtime struct {
	ID             string    `json:"id"`
	EmployeeID     string    `json:"employee_id"`
	DepartmentID   string    `json:"department_id"`
	OvertimeTypeID string    `json:"overtime_type_id"`
	OvertimeDate   time.Time `json:"overtime_date"`
	StartTime      string    `json:"start_time"`
	EndTime        string    `json:"end_time"`
	Hours          float64   `json:"hours"`
	Reason         string    `json:"reason,omitempty"`

	Approval approval.State `json:"approval"`
}

type WorkShift struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type TimeEntry struct {
	ID           string    `json:"id"`
	EmployeeID   string    `json:"employee_id"`
	DepartmentID string    `json:"department_id"`
	WorkShiftID  string    `json:"work_shift_id"`
	WorkDate     time.Time `json:"work_date"`
	Status       string    `json:"status"`
}
