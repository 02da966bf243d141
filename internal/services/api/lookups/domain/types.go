// Package domain holds the lookup list types and http/service contracts
package domain

// Option is one selectable entry in a lookup list. The shape matches
// what table clients cache for their filter dropdowns
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// List is a named lookup list with its options
type List struct {
	Name    string   `json:"name"`
	Options []Option `json:"options"`
	Seeded  bool     `json:"seeded,omitempty"`
}
