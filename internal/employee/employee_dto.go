package employee

type CreateEmployeeRequest struct {
	Code             string   `json:"code" validate:"required"`
	Name             string   `json:"name" validate:"required"`
	Address          string   `json:"address"`
	Phone            string   `json:"phone"`
	IdentityCard     string   `json:"identity_card" validate:"required"`
	ContractDate     string   `json:"contract_date" validate:"required,datetime=2006-01-02"`
	AcademicDegreeID string   `json:"academic_degree_id"`
	AcademicTitleID  string   `json:"academic_title_id"`
	DepartmentIDs    []string `json:"department_ids"`
	PositionIDs      []string `json:"position_ids"`
}

// UpdateEmployeeRequest merges only the fields that are present. The link
// slices distinguish absent (nil, keep existing links) from present
// (replace the whole link set, an empty slice clears it).
type UpdateEmployeeRequest struct {
	Code             *string   `json:"code,omitempty" validate:"omitempty,min=1"`
	Name             *string   `json:"name,omitempty" validate:"omitempty,min=1"`
	Address          *string   `json:"address,omitempty"`
	Phone            *string   `json:"phone,omitempty"`
	IdentityCard     *string   `json:"identity_card,omitempty" validate:"omitempty,min=1"`
	ContractDate     *string   `json:"contract_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	AcademicDegreeID *string   `json:"academic_degree_id,omitempty"`
	AcademicTitleID  *string   `json:"academic_title_id,omitempty"`
	DepartmentIDs    *[]string `json:"department_ids,omitempty"`
	PositionIDs      *[]string `json:"position_ids,omitempty"`
}

type EmployeeResponse struct {
	ID               string   `json:"id"`
	Code             string   `json:"code"`
	Name             string   `json:"name"`
	Address          string   `json:"address,omitempty"`
	Phone            string   `json:"phone,omitempty"`
	IdentityCard     string   `json:"identity_card"`
	ContractDate     string   `json:"contract_date"`
	AcademicDegreeID string   `json:"academic_degree_id,omitempty"`
	AcademicTitleID  string   `json:"academic_title_id,omitempty"`
	DepartmentIDs    []string `json:"department_ids"`
	PositionIDs      []string `json:"position_ids"`
}
