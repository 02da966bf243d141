package domain

// GetInput addresses one lookup list by name
type GetInput struct {
	Name string `json:"name" validate:"required,min=1,max=120" example:"vehicle_makes"`
}

// AddInput appends an option to a lookup list
type AddInput struct {
	Name  string `json:"name" validate:"required,min=1,max=120" example:"vehicle_makes"`
	Value string `json:"value" validate:"required,min=1,max=200" example:"rivian"`
	Label string `json:"label,omitempty" validate:"omitempty,max=200" example:"Rivian"`
}

// RemoveInput drops an option from a lookup list
type RemoveInput struct {
	Name  string `json:"name" validate:"required,min=1,max=120"`
	Value string `json:"value" validate:"required,min=1,max=200"`
}

// NamesOutput lists the known lookup list names
type NamesOutput struct {
	Names []string `json:"names"`
}
