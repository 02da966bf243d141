package domain

import "salesops/internal/tablekit"

// Page is the paged asset response shape shared with table clients
type Page = tablekit.Page[Asset]

// ListInput selects a page of assets, optionally scoped to one vehicle
type ListInput struct {
	VehicleID string `json:"vehicle_id,omitempty" validate:"omitempty,uuid4"`
	Page      int    `json:"page,omitempty" validate:"omitempty,min=1" example:"1"`
	PageSize  int    `json:"page_size,omitempty" validate:"omitempty,min=1,max=200" example:"10"`
	SortBy    string `json:"sort_by,omitempty" validate:"omitempty,oneof=kind label status created_at" example:"created_at"`
	SortDesc  bool   `json:"sort_desc,omitempty" example:"true"`
}

// SearchInput selects a page of assets matching a query
type SearchInput struct {
	Query    string `json:"query" validate:"required,min=1,max=200" example:"front"`
	Page     int    `json:"page,omitempty" validate:"omitempty,min=1" example:"1"`
	PageSize int    `json:"page_size,omitempty" validate:"omitempty,min=1,max=200" example:"10"`
}

// GetInput addresses a single asset
type GetInput struct {
	ID string `json:"id" validate:"required,uuid4" example:"7b0d8c3e-0f4e-4b9a-9a57-2f8f2d6c1a11"`
}

// CreateInput attaches an asset to a vehicle
type CreateInput struct {
	VehicleID string `json:"vehicle_id" validate:"required,uuid4"`
	Kind      string `json:"kind" validate:"required,oneof=photo document report" example:"photo"`
	Label     string `json:"label,omitempty" validate:"omitempty,max=200" example:"front left"`
	URL       string `json:"url" validate:"required,url,max=2000" example:"https://cdn.example.com/a/1.jpg"`
}

// DeleteInput removes an asset
type DeleteInput struct {
	ID string `json:"id" validate:"required,uuid4"`
}

// ReviewInput approves or rejects a batch of pending assets.
// Reason is required on reject and ignored on approve
type ReviewInput struct {
	IDs    []string `json:"ids" validate:"required,min=1,max=100,dive,uuid4"`
	Reason string   `json:"reason,omitempty" validate:"omitempty,max=500" example:"blurry photo"`
}

// ReviewResult reports how many rows actually transitioned
type ReviewResult struct {
	Requested int `json:"requested"`
	Changed   int `json:"changed"`
}
