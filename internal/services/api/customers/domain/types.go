// Package domain holds the customer entity and http/service contracts
package domain

import "salesops/internal/core/status"

// Customer is an account holder in the dealer back office
type Customer struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Phone     string        `json:"phone"`
	City      string        `json:"city"`
	Status    status.Status `json:"status"`
	CreatedAt string        `json:"created_at"`
}
