package domain

// Collection names used by the id allocator and the persistence sinks.
const (
	ColEmployees           = "employees"
	ColDepartments         = "departments"
	ColPositions           = "positions"
	ColDepartmentEmployees = "department_employees"
	ColPositionEmployees   = "position_employees"
	ColContractTypes       = "contract_types"
	ColContracts           = "contracts"
	ColLeaveTypes          = "leave_types"
	ColLeaves              = "leaves"
	ColOvertimeTypes       = "overtime_types"
	ColOvertimes           = "overtimes"
	ColWorkShifts          = "work_shifts"
	ColTimeEntries         = "time_entries"
)

// Snapshot is the complete state of all collections at one point in time.
// A committed snapshot is never mutated; writers work on a Clone and swap.
type Snapshot struct {
	Employees           []Employee           `json:"employees"`
	Departments         []Department         `json:"departments"`
	Positions           []Position           `json:"positions"`
	DepartmentEmployees []DepartmentEmployee `json:"department_employees"`
	PositionEmployees   []PositionEmployee   `json:"position_employees"`
	ContractTypes       []ContractType       `json:"contract_types"`
	Contracts           []Contract           `json:"contracts"`
	LeaveTypes          []LeaveType          `json:"leave_types"`
	Leaves              []Leave              `json:"leaves"`
	OvertimeTypes       []OvertimeType       `json:"overtime_types"`
	Overtimes           []Overtime           `json:"overtimes"`
	WorkShifts          []WorkShift          `json:"work_shifts"`
	TimeEntries         []TimeEntry          `json:"time_entries"`
}

func NewSnapshot() *Snapshot {
	return &Snapshot{}
}

// Clone deep-copies the snapshot so a mutation can be built without the
// committed state ever observing it.
func (s *Snapshot) Clone() *Snapshot {
	c := &Snapshot{
		Employees:           append([]Employee(nil), s.Employees...),
		Departments:         append([]Department(nil), s.Departments...),
		Positions:           append([]Position(nil), s.Positions...),
		DepartmentEmployees: append([]DepartmentEmployee(nil), s.DepartmentEmployees...),
		PositionEmployees:   append([]PositionEmployee(nil), s.PositionEmployees...),
		ContractTypes:       append([]ContractType(nil), s.ContractTypes...),
		Contracts:           append([]Contract(nil), s.Contracts...),
		LeaveTypes:          append([]LeaveType(nil), s.LeaveTypes...),
		Leaves:              append([]Leave(nil), s.Leaves...),
		OvertimeTypes:       append([]OvertimeType(nil), s.OvertimeTypes...),
		Overtimes:           append([]Overtime(nil), s.Overtimes...),
		WorkShifts:          append([]WorkShift(nil), s.WorkShifts...),
		TimeEntries:         append([]TimeEntry(nil), s.TimeEntries...),
	}
	for i := range c.Contracts {
		if c.Contracts[i].EndDate != nil {
			t := *c.Contracts[i].EndDate
			c.Contracts[i].EndDate = &t
		}
	}
	for i := range c.Leaves {
		c.Leaves[i].Approval = c.Leaves[i].Approval.Clone()
	}
	for i := range c.Overtimes {
		c.Overtimes[i].Approval = c.Overtimes[i].Approval.Clone()
	}
	return c
}

// IDs returns the ids of one collection, used to seed the allocator.
func (s *Snapshot) IDs(collection string) []string {
	var ids []string
	switch collection {
	case ColEmployees:
		for _, v := range s.Employees {
			ids = append(ids, v.ID)
		}
	case ColDepartments:
		for _, v := range s.Departments {
			ids = append(ids, v.ID)
		}
	case ColPositions:
		for _, v := range s.Positions {
			ids = append(ids, v.ID)
		}
	case ColDepartmentEmployees:
		for _, v := range s.DepartmentEmployees {
			ids = append(ids, v.ID)
		}
	case ColPositionEmployees:
		for _, v := range s.PositionEmployees {
			ids = append(ids, v.ID)
		}
	case ColContractTypes:
		for _, v := range s.ContractTypes {
			ids = append(ids, v.ID)
		}
	case ColContracts:
		for _, v := range s.Contracts {
			ids = append(ids, v.ID)
		}
	case ColLeaveTypes:
		for _, v := range s.LeaveTypes {
			ids = append(ids, v.ID)
		}
	case ColLeaves:
		for _, v := range s.Leaves {
			ids = append(ids, v.ID)
		}
	case ColOvertimeTypes:
		for _, v := range s.OvertimeTypes {
			ids = append(ids, v.ID)
		}
	case ColOvertimes:
		for _, v := range s.Overtimes {
			ids = append(ids, v.ID)
		}
	case ColWorkShifts:
		for _, v := range s.WorkShifts {
			ids = append(ids, v.ID)
		}
	case ColTimeEntries:
		for _, v := range s.TimeEntries {
			ids = append(ids, v.ID)
		}
	}
	return ids
}

// Collections lists every collection name, in allocator seeding order.
func Collections() []string {
	return []string{
		ColEmployees,
		ColDepartments,
		ColPositions,
		ColDepartmentEmployees,
		ColPositionEmployees,
		ColContractTypes,
		ColContracts,
		ColLeaveTypes,
		ColLeaves,
		ColOvertimeTypes,
		ColOvertimes,
		ColWorkShifts,
		ColTimeEntries,
	}
}

func (s *Snapshot) EmployeeByID(id string) (*Employee, bool) {
	for i := range s.Employees {
		if s.Employees[i].ID == id {
			return &s.Employees[i], true
		}
	}
	return nil, false
}

func (s *Snapshot) DepartmentByID(id string) (*Department, bool) {
	for i := range s.Departments {
		if s.Departments[i].ID == id {
			return &s.Departments[i], true
		}
	}
	return nil, false
}

func (s *Snapshot) PositionByID(id string) (*Position, bool) {
	for i := range s.Positions {
		if s.Positions[i].ID == id {
			return &s.Positions[i], true
		}
	}
	return nil, false
}

func (s *Snapshot) ContractTypeByID(id string) (*ContractType, bool) {
	for i := range s.ContractTypes {
		if s.ContractTypes[i].ID == id {
			return &s.ContractTypes[i], true
		}
	}
	return nil, false
}

func (s *Snapshot) ContractByID(id string) (*Contract, bool) {
	for i := range s.Contracts {
		if s.Contracts[i].ID == id {
			return &s.Contracts[i], true
		}
	}
	return nil, false
}

func (s *Snapshot) LeaveTypeByID(id string) (*LeaveType, bool) {
	for i := range s.LeaveTypes {
		if s.LeaveTypes[i].ID == id {
			return &s.LeaveTypes[i], true
		}
	}
	return nil, false
}

func (s *Snapshot) LeaveByID(id string) (*Leave, bool) {
	for i := range s.Leaves {
		if s.Leaves[i].ID == id {
			return &s.Leaves[i], true
		}
	}
	return nil, false
}

func (s *Snapshot) OvertimeTypeByID(id string) (*OvertimeType, bool) {
	for i := range s.OvertimeTypes {
		if s.OvertimeTypes[i].ID == id {
			return &s.OvertimeTypes[i], true
		}
	}
	return nil, false
}

func (s *Snapshot) OvertimeByID(id string) (*Overtime, bool) {
	for i := range s.Overtimes {
		if s.Overtimes[i].ID == id {
			return &s.Overtimes[i], true
		}
	}
	return nil, false
}

func (s *Snapshot) WorkShiftByID(id string) (*WorkShift, bool) {
	for i := range s.WorkShifts {
		if s.WorkShifts[i].ID == id {
			return &s.WorkShifts[i], true
		}
	}
	return nil, false
}

func (s *Snapshot) TimeEntryByID(id string) (*TimeEntry, bool) {
	for i := range s.TimeEntries {
		if s.TimeEntries[i].ID == id {
			return &s.TimeEntries[i], true
		}
	}
	return nil, false
}
