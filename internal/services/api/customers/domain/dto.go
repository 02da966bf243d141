package domain

import "salesops/internal/tablekit"

// Page is the paged customer response shape shared with table clients
type Page = tablekit.Page[Customer]

// ListInput selects a page of customers
type ListInput struct {
	Page     int    `json:"page,omitempty" validate:"omitempty,min=1" example:"1"`
	PageSize int    `json:"page_size,omitempty" validate:"omitempty,min=1,max=200" example:"10"`
	SortBy   string `json:"sort_by,omitempty" validate:"omitempty,oneof=name email city status created_at" example:"name"`
	SortDesc bool   `json:"sort_desc,omitempty" example:"false"`
}

// SearchInput selects a page of customers matching a query
type SearchInput struct {
	Query    string `json:"query" validate:"required,min=1,max=200" example:"jane"`
	Column   string `json:"column,omitempty" validate:"omitempty,oneof=name email phone city" example:"name"`
	Page     int    `json:"page,omitempty" validate:"omitempty,min=1" example:"1"`
	PageSize int    `json:"page_size,omitempty" validate:"omitempty,min=1,max=200" example:"10"`
}

// FilterInput selects a page of customers matching column filters
type FilterInput struct {
	Filters  map[string]any `json:"filters" validate:"required"`
	Page     int            `json:"page,omitempty" validate:"omitempty,min=1" example:"1"`
	PageSize int            `json:"page_size,omitempty" validate:"omitempty,min=1,max=200" example:"10"`
}

// GetInput addresses a single customer
type GetInput struct {
	ID string `json:"id" validate:"required,uuid4" example:"7b0d8c3e-0f4e-4b9a-9a57-2f8f2d6c1a11"`
}

// CreateInput creates a customer
type CreateInput struct {
	Name   string `json:"name" validate:"required,min=1,max=200" example:"Jane Cooper"`
	Email  string `json:"email" validate:"required,email" example:"jane@example.com"`
	Phone  string `json:"phone,omitempty" validate:"omitempty,max=40" example:"+1 555 0100"`
	City   string `json:"city,omitempty" validate:"omitempty,max=120" example:"Austin"`
	Status any    `json:"status,omitempty" example:"active"`
}

// UpdateInput updates a customer in place
type UpdateInput struct {
	ID     string `json:"id" validate:"required,uuid4"`
	Name   string `json:"name" validate:"required,min=1,max=200"`
	Email  string `json:"email" validate:"required,email"`
	Phone  string `json:"phone,omitempty" validate:"omitempty,max=40"`
	City   string `json:"city,omitempty" validate:"omitempty,max=120"`
	Status any    `json:"status,omitempty"`
}

// DeleteInput removes a customer
type DeleteInput struct {
	ID string `json:"id" validate:"required,uuid4"`
}

// ExportInput selects the rows and format for a file export
type ExportInput struct {
	Format  string         `json:"format,omitempty" validate:"omitempty,oneof=csv xlsx" example:"csv"`
	Query   string         `json:"query,omitempty" validate:"omitempty,max=200"`
	Filters map[string]any `json:"filters,omitempty"`
}
