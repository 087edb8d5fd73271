package position

type CreatePositionRequest struct {
	Name string `json:"name" validate:"required"`
}

type UpdatePositionRequest struct {
	Name *string `json:"name,omitempty" validate:"omitempty,min=1"`
}

type PositionResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
