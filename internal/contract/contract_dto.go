package contract

type CreateContractTypeRequest struct {
	Name string `json:"name" validate:"required"`
}

type ContractTypeResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CreateContractRequest struct {
	EmployeeID     string `json:"employee_id" validate:"required"`
	ContractTypeID string `json:"contract_type_id" validate:"required"`
	BaseSalary     int64  `json:"base_salary" validate:"required,gt=0"`
	Allowance      int64  `json:"allowance" validate:"gte=0"`
	StartDate      string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate        string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
}

type UpdateContractRequest struct {
	ContractTypeID *string `json:"contract_type_id,omitempty" validate:"omitempty,min=1"`
	BaseSalary     *int64  `json:"base_salary,omitempty" validate:"omitempty,gt=0"`
	Allowance      *int64  `json:"allowance,omitempty" validate:"omitempty,gte=0"`
	StartDate      *string `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EndDate        *string `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

type ContractResponse struct {
	ID             string `json:"id"`
	EmployeeID     string `json:"employee_id"`
	ContractTypeID string `json:"contract_type_id"`
	BaseSalary     int64  `json:"base_salary"`
	Allowance      int64  `json:"allowance,omitempty"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date,omitempty"`
}
