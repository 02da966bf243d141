package domain

import "salesops/internal/tablekit"

// Page is the paged vehicle response shape shared with table clients
type Page = tablekit.Page[Vehicle]

// ListInput selects a page of vehicles
type ListInput struct {
	Page     int    `json:"page,omitempty" validate:"omitempty,min=1" example:"1"`
	PageSize int    `json:"page_size,omitempty" validate:"omitempty,min=1,max=200" example:"10"`
	SortBy   string `json:"sort_by,omitempty" validate:"omitempty,oneof=plate make model year status created_at" example:"plate"`
	SortDesc bool   `json:"sort_desc,omitempty" example:"false"`
}

// SearchInput selects a page of vehicles matching a query
type SearchInput struct {
	Query    string `json:"query" validate:"required,min=1,max=200" example:"civic"`
	Column   string `json:"column,omitempty" validate:"omitempty,oneof=plate make model" example:"model"`
	Page     int    `json:"page,omitempty" validate:"omitempty,min=1" example:"1"`
	PageSize int    `json:"page_size,omitempty" validate:"omitempty,min=1,max=200" example:"10"`
}

// FilterInput selects a page of vehicles matching column filters
type FilterInput struct {
	Filters  map[string]any `json:"filters" validate:"required"`
	Page     int            `json:"page,omitempty" validate:"omitempty,min=1" example:"1"`
	PageSize int            `json:"page_size,omitempty" validate:"omitempty,min=1,max=200" example:"10"`
}

// GetInput addresses a single vehicle
type GetInput struct {
	ID string `json:"id" validate:"required,uuid4"`
}

// ReviewInput approves or rejects a batch of pending vehicles.
// Reason is required on reject and ignored on approve
type ReviewInput struct {
	IDs    []string `json:"ids" validate:"required,min=1,max=100,dive,uuid4"`
	Reason string   `json:"reason,omitempty" validate:"omitempty,max=500" example:"failed inspection"`
}

// ReviewResult reports how many rows actually transitioned
type ReviewResult struct {
	Requested int `json:"requested"`
	Changed   int `json:"changed"`
}

// ExportInput selects the rows and format for a file export
type ExportInput struct {
	Format  string         `json:"format,omitempty" validate:"omitempty,oneof=csv xlsx" example:"xlsx"`
	Query   string         `json:"query,omitempty" validate:"omitempty,max=200"`
	Filters map[string]any `json:"filters,omitempty"`
}
