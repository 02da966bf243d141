// Package domain holds the audit event shape and contracts
package domain

// Event is one admin action recorded for the audit trail
type Event struct {
	ID       string `json:"id"`
	At       string `json:"at"`
	Actor    string `json:"actor"`
	Entity   string `json:"entity"`
	EntityID string `json:"entity_id"`
	Action   string `json:"action"`
	Detail   string `json:"detail,omitempty"`
}

// ListInput selects recent audit events
type ListInput struct {
	Entity string `json:"entity,omitempty" validate:"omitempty,oneof=customers vehicles assets payments" example:"vehicles"`
	Action string `json:"action,omitempty" validate:"omitempty,printascii" example:"approve"`
	Limit  int    `json:"limit,omitempty" validate:"omitempty,min=1,max=500" example:"100"`
}
