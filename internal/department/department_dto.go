package department

type CreateDepartmentRequest struct {
	Code         string `json:"code" validate:"required"`
	Name         string `json:"name" validate:"required"`
	FoundingDate string `json:"founding_date" validate:"required,datetime=2006-01-02"`
}

// UpdateDepartmentRequest merges only the fields that are present. HeadID
// distinguishes absent (nil, keep) from empty (clear the head reference).
type UpdateDepartmentRequest struct {
	Code         *string `json:"code,omitempty" validate:"omitempty,min=1"`
	Name         *string `json:"name,omitempty" validate:"omitempty,min=1"`
	FoundingDate *string `json:"founding_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	HeadID       *string `json:"head_id,omitempty"`
}

type DepartmentResponse struct {
	ID           string `json:"id"`
	Code         string `json:"code"`
	Name         string `json:"name"`
	FoundingDate string `json:"founding_date"`
	HeadID       string `json:"head_id,omitempty"`
}
