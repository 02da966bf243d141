package client

import (
	"context"
	"fmt"

	"salesops/internal/tablekit"
)

// Row is an opaque API record. Values keep their JSON types; Field
// renders them for display
type Row map[string]any

// ID returns the stable identity of the row, empty when absent
func (r Row) ID() string {
	if v, ok := r["id"].(string); ok {
		return v
	}
	return ""
}

// Field implements tablekit.Fielder
func (r Row) Field(key string) string {
	v, ok := r[key]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case float64:
		// JSON numbers decode as float64; print integers without a
		// fractional part
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t))
		}
		return fmt.Sprintf("%.2f", t)
	case bool:
		if t {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprintf("%v", t)
	}
}

// Table adapts one API resource to the tablekit fetch contract.
// It satisfies Source, Searcher, Filterer and Sorter
type Table struct {
	c        *Client
	resource string

	sortBy   string
	sortDesc bool

	// SearchColumn narrows free-text search server side; empty means
	// every searchable column
	SearchColumn string
}

// Table returns a tablekit-compatible view over one resource, e.g.
// "customers" or "vehicles"
func (c *Client) Table(resource string) *Table {
	return &Table{c: c, resource: resource}
}

// SetSort implements tablekit.Sorter
func (t *Table) SetSort(by string, desc bool) {
	t.sortBy = by
	t.sortDesc = desc
}

// List implements tablekit.Source
func (t *Table) List(ctx context.Context, page, pageSize int) (tablekit.Page[Row], error) {
	body := map[string]any{
		"page":      page,
		"page_size": pageSize,
	}
	if t.sortBy != "" {
		body["sort_by"] = t.sortBy
		body["sort_desc"] = t.sortDesc
	}
	return t.fetch(ctx, "/list", body)
}

// Search implements tablekit.Searcher
func (t *Table) Search(ctx context.Context, query string, page, pageSize int, column string) (tablekit.Page[Row], error) {
	if column == "" {
		column = t.SearchColumn
	}
	body := map[string]any{
		"query":     query,
		"page":      page,
		"page_size": pageSize,
	}
	if column != "" {
		body["column"] = column
	}
	return t.fetch(ctx, "/search", body)
}

// FilterBy implements tablekit.Filterer
func (t *Table) FilterBy(ctx context.Context, payload map[string]any, page, pageSize int) (tablekit.Page[Row], error) {
	return t.fetch(ctx, "/filter", map[string]any{
		"filters":   payload,
		"page":      page,
		"page_size": pageSize,
	})
}

func (t *Table) fetch(ctx context.Context, op string, body map[string]any) (tablekit.Page[Row], error) {
	var page tablekit.Page[Row]
	if err := t.c.Post(ctx, "/"+t.resource+op, body, &page); err != nil {
		return tablekit.Page[Row]{}, err
	}
	return page, nil
}
