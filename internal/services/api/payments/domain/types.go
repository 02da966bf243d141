// Package domain holds the payment entity and http/service contracts
package domain

import "salesops/internal/core/status"

// Payment is a settled or pending payment against a customer account
type Payment struct {
	ID         string        `json:"id"`
	CustomerID string        `json:"customer_id"`
	Reference  string        `json:"reference"`
	Amount     float64       `json:"amount"`
	Currency   string        `json:"currency"`
	Status     status.Status `json:"status"`
	PaidAt     string        `json:"paid_at,omitempty"`
	CreatedAt  string        `json:"created_at"`
}
