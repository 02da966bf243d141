// Package tablekit implements a UI-agnostic server-paginated table
// controller. A host screen supplies a declarative Config (columns, a
// data Source, preferences) and the controller owns pagination, search,
// filtering, sorting, row selection, column visibility and stale-response
// discard. Rendering is the host's job; bubbletea, html templates and
// tests all drive the same controller
package tablekit

import "context"

// Page is the normalized result of any fetch operation.
// TotalPages is always the total page count, never the record count;
// every Source must conform to that convention
type Page[T any] struct {
	Rows       []T `json:"rows"`
	TotalPages int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
}

// Source fetches one page of rows. It is the only required capability
type Source[T any] interface {
	List(ctx context.Context, page, pageSize int) (Page[T], error)
}

// Searcher is an optional Source capability for free-text search.
// column narrows the search to one column key; empty means all
// searchable columns. A Source without it disables the search surface
type Searcher[T any] interface {
	Search(ctx context.Context, query string, page, pageSize int, column string) (Page[T], error)
}

// Filterer is an optional Source capability for field filters
// (distinct from column search). The payload semantics belong to the
// Source; the controller only carries it opaquely
type Filterer[T any] interface {
	FilterBy(ctx context.Context, payload map[string]any, page, pageSize int) (Page[T], error)
}

// Sorter is an optional Source capability. The controller never sorts
// rows itself; it hands the indicator state to the Source and re-fetches
type Sorter interface {
	SetSort(by string, desc bool)
}

// Fielder lets opaque row types expose display values by column key.
// Columns without a Render func fall back to it
type Fielder interface {
	Field(key string) string
}

// FilterOption is one selectable value of a column filter control
type FilterOption struct {
	Value string
	Label string
}

// FilterSpec describes a column-scoped filter control.
// OnSelect is owned by the host screen; the controller renders nothing
// and only exposes the spec to the view layer
type FilterSpec struct {
	Options  []FilterOption
	Multi    bool
	OnSelect func(values []string)
}

// Column describes one table column. Key must be unique within a table
type Column[T any] struct {
	Key      string
	Title    string
	Render   func(T) string
	Hidden   bool
	Sortable bool
	Filter   *FilterSpec
}

// RowAction is a per-row operation surfaced by the host as an icon or
// menu entry. The controller does not invoke or guard Do; errors and
// panics propagate to the host
type RowAction[T any] struct {
	Name string
	Do   func(ctx context.Context, row T) error
}

// BulkAction operates on the current selection. When controls visibility
// and is re-evaluated on every selection change; nil means always visible
type BulkAction[T any] struct {
	Name string
	When func(rows []T, selected []int) bool
	Do   func(ctx context.Context, rows []T, selected []int) error
}

// Config is the declarative contract a host hands to NewController
type Config[T any] struct {
	Columns  []Column[T]
	Source   Source[T]
	PageSize int

	// RowID extracts a stable identity for a row; optional but
	// recommended so hosts can map selections back to records
	RowID func(T) string

	// PrefsKey + Prefs persist the visible-column set across sessions.
	// Either empty disables persistence
	PrefsKey string
	Prefs    PrefStore

	RowActions  []RowAction[T]
	BulkActions []BulkAction[T]
}

// PrefStore is the slice of the preference port the controller needs
type PrefStore interface {
	Get(key string) ([]byte, bool)
	Set(key string, payload []byte) error
}

// State is the controller lifecycle per fetch trigger
type State uint8

// Controller states
const (
	StateIdle State = iota
	StateLoading
	StateReady
	StateError
)

// String names the state for logs
func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateError:
		return "error"
	default:
		return "idle"
	}
}

// DefaultPageSize applies when Config.PageSize is not positive
const DefaultPageSize = 10
