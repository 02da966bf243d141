// Package refdata caches small reference lists (warehouses, routes,
// regions, salesmen, categories...) so each list is fetched from the
// backend at most once per session unless explicitly invalidated.
//
// The cache is an injected Catalog rather than package-level state; every
// entry carries an explicit status so callers can tell "not loaded yet"
// from "loaded empty" from "failed"
package refdata

import (
	"context"
	"sort"
	"sync"

	perr "salesops/internal/platform/errors"
)

// Option is one selectable entry of a reference list
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Status tags the lifecycle of a cached list
type Status uint8

// Entry statuses
const (
	StatusNotLoaded Status = iota
	StatusLoading
	StatusLoaded
	StatusFailed
)

// String names the status for logs
func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusLoaded:
		return "loaded"
	case StatusFailed:
		return "failed"
	default:
		return "not_loaded"
	}
}

// FetchFunc loads one reference list from its backend
type FetchFunc func(ctx context.Context) ([]Option, error)

type entry struct {
	fetch FetchFunc

	status Status
	opts   []Option
	err    error

	// gen increments on Invalidate so a load started before the
	// invalidation cannot commit a stale result
	gen uint64

	// done is non-nil while a load is in flight; closed when it settles
	done chan struct{}
}

// Catalog holds named reference lists. Safe for concurrent use
type Catalog struct {
	mu      sync.Mutex
	entries map[string]*entry
}

// NewCatalog returns an empty catalog
func NewCatalog() *Catalog {
	return &Catalog{entries: make(map[string]*entry)}
}

// Register binds a list name to its fetch function.
// Re-registering a name replaces the fetcher and resets the entry
func (c *Catalog) Register(name string, fetch FetchFunc) {
	if fetch == nil {
		panic("refdata: nil FetchFunc for " + name)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[name] = &entry{fetch: fetch}
}

// Names returns the registered list names, sorted
func (c *Catalog) Names() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, 0, len(c.entries))
	for n := range c.entries {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Ensure guarantees the named list is loaded and returns it.
// Repeated calls after a successful load are no-ops; concurrent calls
// while a load is in flight collapse onto that one request. A failed load
// leaves the entry failed so the next Ensure retries
func (c *Catalog) Ensure(ctx context.Context, name string) ([]Option, error) {
	for {
		c.mu.Lock()
		e, ok := c.entries[name]
		if !ok {
			c.mu.Unlock()
			return nil, perr.NotFoundf("refdata: unknown list %q", name)
		}

		switch e.status {
		case StatusLoaded:
			opts := e.opts
			c.mu.Unlock()
			return opts, nil

		case StatusLoading:
			done := e.done
			c.mu.Unlock()
			select {
			case <-done:
				// settled; loop to observe the outcome
			case <-ctx.Done():
				return nil, ctx.Err()
			}
			continue

		default: // NotLoaded or Failed: this caller performs the load
			e.status = StatusLoading
			e.err = nil
			e.done = make(chan struct{})
			gen := e.gen
			fetch := e.fetch
			done := e.done
			c.mu.Unlock()

			opts, err := fetch(ctx)

			c.mu.Lock()
			if e.gen == gen {
				if err != nil {
					e.status = StatusFailed
					e.err = err
					e.opts = nil
				} else {
					e.status = StatusLoaded
					e.opts = opts
				}
			}
			if e.done == done {
				e.done = nil
			}
			c.mu.Unlock()
			close(done)

			if err != nil {
				return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "refdata: load %q", name)
			}
			return opts, nil
		}
	}
}

// Options returns the cached list without triggering a load.
// Returns nil when the list is not loaded
func (c *Catalog) Options(name string) []Option {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[name]; ok && e.status == StatusLoaded {
		return e.opts
	}
	return nil
}

// Status reports the entry status; unknown names read as NotLoaded
func (c *Catalog) Status(name string) Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[name]; ok {
		return e.status
	}
	return StatusNotLoaded
}

// Err returns the last load error for the named list, if any
func (c *Catalog) Err(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[name]; ok {
		return e.err
	}
	return nil
}

// Invalidate drops the cached list so the next Ensure re-fetches.
// A load already in flight for the old generation is discarded on arrival
func (c *Catalog) Invalidate(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[name]
	if !ok {
		return
	}
	e.gen++
	e.opts = nil
	e.err = nil
	if e.status != StatusLoading {
		e.status = StatusNotLoaded
	} else {
		// the in-flight load will see the gen mismatch and not commit;
		// mark the entry reloadable once it settles
		e.status = StatusNotLoaded
	}
}
