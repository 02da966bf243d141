package domain

import "salesops/internal/tablekit"

// Page is the paged payment response shape shared with table clients
type Page = tablekit.Page[Payment]

// ListInput selects a page of payments
type ListInput struct {
	Page     int    `json:"page,omitempty" validate:"omitempty,min=1" example:"1"`
	PageSize int    `json:"page_size,omitempty" validate:"omitempty,min=1,max=200" example:"10"`
	SortBy   string `json:"sort_by,omitempty" validate:"omitempty,oneof=reference amount currency status paid_at created_at" example:"paid_at"`
	SortDesc bool   `json:"sort_desc,omitempty" example:"true"`
}

// SearchInput selects a page of payments matching a query
type SearchInput struct {
	Query    string `json:"query" validate:"required,min=1,max=200" example:"INV-2041"`
	Column   string `json:"column,omitempty" validate:"omitempty,oneof=reference currency" example:"reference"`
	Page     int    `json:"page,omitempty" validate:"omitempty,min=1" example:"1"`
	PageSize int    `json:"page_size,omitempty" validate:"omitempty,min=1,max=200" example:"10"`
}

// FilterInput selects a page of payments matching column filters
type FilterInput struct {
	Filters  map[string]any `json:"filters" validate:"required"`
	Page     int            `json:"page,omitempty" validate:"omitempty,min=1" example:"1"`
	PageSize int            `json:"page_size,omitempty" validate:"omitempty,min=1,max=200" example:"10"`
}

// GetInput addresses a single payment
type GetInput struct {
	ID string `json:"id" validate:"required,uuid4"`
}

// ExportInput selects the rows and format for a file export
type ExportInput struct {
	Format  string         `json:"format,omitempty" validate:"omitempty,oneof=csv xlsx" example:"xlsx"`
	Query   string         `json:"query,omitempty" validate:"omitempty,max=200"`
	Filters map[string]any `json:"filters,omitempty"`
}

// Summary aggregates the current selection for the table footer
type Summary struct {
	Count    int     `json:"count"`
	Total    float64 `json:"total"`
	Currency string  `json:"currency,omitempty"`
}
