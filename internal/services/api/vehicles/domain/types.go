// Package domain holds the vehicle entity and http/service contracts
package domain

import "salesops/internal/core/status"

// Vehicle is a unit in the dealer inventory
type Vehicle struct {
	ID         string        `json:"id"`
	CustomerID string        `json:"customer_id,omitempty"`
	Plate      string        `json:"plate"`
	Make       string        `json:"make"`
	Model      string        `json:"model"`
	Year       int           `json:"year"`
	Status     status.Status `json:"status"`
	CreatedAt  string        `json:"created_at"`
}
