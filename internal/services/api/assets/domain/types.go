// Package domain holds the asset entity and http/service contracts
package domain

import "salesops/internal/core/status"

// Asset is a file attached to a vehicle listing, such as a photo or an
// inspection report
type Asset struct {
	ID        string        `json:"id"`
	VehicleID string        `json:"vehicle_id"`
	Kind      string        `json:"kind"`
	Label     string        `json:"label"`
	URL       string        `json:"url"`
	Status    status.Status `json:"status"`
	CreatedAt string        `json:"created_at"`
}
