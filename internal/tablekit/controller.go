package tablekit

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
)

// fetch modes; search and filter replace the table exactly as list does,
// and clearing either reverts to list mode
type mode uint8

const (
	modeList mode = iota
	modeSearch
	modeFilter
)

// Fetch describes one pending data retrieval. The zero value is inert:
// hosts check Pending before running. Do may be executed on any
// goroutine; the outcome is handed back through Controller.Apply, which
// discards it if a newer fetch was issued in the meantime
type Fetch[T any] struct {
	gen uint64
	run func(ctx context.Context) (Page[T], error)

	wantPage int
	wantSize int
	mode     mode
}

// Pending reports whether this Fetch carries work
func (f Fetch[T]) Pending() bool { return f.run != nil }

// Do executes the fetch and packages the outcome for Apply
func (f Fetch[T]) Do(ctx context.Context) Result[T] {
	page, err := f.run(ctx)
	return Result[T]{gen: f.gen, page: page, err: err, wantPage: f.wantPage, wantSize: f.wantSize, mode: f.mode}
}

// Result is the settled outcome of a Fetch
type Result[T any] struct {
	gen      uint64
	page     Page[T]
	err      error
	wantPage int
	wantSize int
	mode     mode
}

// Controller owns the runtime state of one table instance.
// It is safe for concurrent use, but the intended shape is an event-loop
// host issuing fetches and applying results in order
type Controller[T any] struct {
	mu  sync.Mutex
	cfg Config[T]

	searcher Searcher[T]
	filterer Filterer[T]

	state tableState[T]
	gen   uint64
}

// tableState groups the mutable runtime fields of one table instance
type tableState[T any] struct {
	phase      State
	rows       []T
	lastErr    error
	page       int
	pageSize   int
	totalPages int

	mode    mode
	query   string
	qColumn string
	filters map[string]any

	sortBy   string
	sortDesc bool

	selected map[int]struct{}
	visible  map[string]bool

	// memo of the last successful list-mode page so clearing a search
	// restores rows without a refetch
	memo    *memoPage[T]
	hadLoad bool
}

type memoPage[T any] struct {
	rows       []T
	page       int
	totalPages int
	pageSize   int
}

// NewController validates cfg and builds a controller in StateIdle.
// Column keys must be unique; duplicates are programmer error and panic
func NewController[T any](cfg Config[T]) *Controller[T] {
	if cfg.Source == nil {
		panic("tablekit: Config.Source is required")
	}
	seen := make(map[string]struct{}, len(cfg.Columns))
	for _, col := range cfg.Columns {
		if col.Key == "" {
			panic("tablekit: column with empty key")
		}
		if _, dup := seen[col.Key]; dup {
			panic("tablekit: duplicate column key " + col.Key)
		}
		seen[col.Key] = struct{}{}
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}

	c := &Controller[T]{cfg: cfg}
	c.searcher, _ = cfg.Source.(Searcher[T])
	c.filterer, _ = cfg.Source.(Filterer[T])

	c.state = tableState[T]{
		phase:    StateIdle,
		page:     1,
		pageSize: cfg.PageSize,
		selected: make(map[int]struct{}),
		visible:  c.initialVisibility(),
		filters:  nil,
	}
	return c
}

// initialVisibility seeds the visible set from the pref store when
// configured, falling back to column defaults on missing or corrupt data
func (c *Controller[T]) initialVisibility() map[string]bool {
	vis := make(map[string]bool, len(c.cfg.Columns))
	for _, col := range c.cfg.Columns {
		vis[col.Key] = !col.Hidden
	}
	if c.cfg.Prefs == nil || c.cfg.PrefsKey == "" {
		return vis
	}
	raw, ok := c.cfg.Prefs.Get(c.cfg.PrefsKey)
	if !ok {
		return vis
	}
	var keys []string
	if err := json.Unmarshal(raw, &keys); err != nil {
		return vis
	}
	stored := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		stored[k] = struct{}{}
	}
	for _, col := range c.cfg.Columns {
		_, on := stored[col.Key]
		vis[col.Key] = on
	}
	return vis
}

// CanSearch reports whether the Source supports free-text search
func (c *Controller[T]) CanSearch() bool { return c.searcher != nil }

// CanFilter reports whether the Source supports field filters
func (c *Controller[T]) CanFilter() bool { return c.filterer != nil }

// Load issues the initial fetch (or the current mode's fetch when
// called again). Hosts call it on mount
func (c *Controller[T]) Load() Fetch[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.beginLocked(c.state.mode, c.state.page, c.state.pageSize)
}

// Refresh re-issues the current fetch without resetting page, query,
// filters, sort, or column visibility. This is the cache-invalidation
// signal a host bumps after it mutates data out of band
func (c *Controller[T]) Refresh() Fetch[T] {
	return c.Load()
}

// SetPage moves to page n (1-based, clamped) and fetches it
func (c *Controller[T]) SetPage(n int) Fetch[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	if n < 1 {
		n = 1
	}
	if c.state.totalPages > 0 && n > c.state.totalPages {
		n = c.state.totalPages
	}
	return c.beginLocked(c.state.mode, n, c.state.pageSize)
}

// NextPage and PrevPage are paging sugar for keyboard-driven hosts

// NextPage advances one page when possible
func (c *Controller[T]) NextPage() Fetch[T] {
	c.mu.Lock()
	n := c.state.page + 1
	if c.state.totalPages > 0 && n > c.state.totalPages {
		c.mu.Unlock()
		return Fetch[T]{}
	}
	defer c.mu.Unlock()
	return c.beginLocked(c.state.mode, n, c.state.pageSize)
}

// PrevPage steps back one page when possible
func (c *Controller[T]) PrevPage() Fetch[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.page <= 1 {
		return Fetch[T]{}
	}
	return c.beginLocked(c.state.mode, c.state.page-1, c.state.pageSize)
}

// SetPageSize changes the page size and refetches from page 1
func (c *Controller[T]) SetPageSize(size int) Fetch[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	if size <= 0 {
		size = c.cfg.PageSize
	}
	return c.beginLocked(c.state.mode, 1, size)
}

// Search switches to search mode from page 1. An empty query is the
// explicit clear transition and behaves exactly like ClearSearch.
// Returns an inert Fetch when the Source cannot search
func (c *Controller[T]) Search(query string) Fetch[T] {
	return c.SearchColumn(query, "")
}

// SearchColumn searches one column; empty column means all
func (c *Controller[T]) SearchColumn(query, column string) Fetch[T] {
	if query == "" {
		return c.ClearSearch()
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.searcher == nil {
		return Fetch[T]{}
	}
	c.state.query = query
	c.state.qColumn = column
	return c.beginLocked(modeSearch, 1, c.state.pageSize)
}

// ClearSearch reverts to list mode. When the last list-mode page is
// memoized it is restored without a network call; otherwise a list
// fetch for page 1 is issued
func (c *Controller[T]) ClearSearch() Fetch[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.query = ""
	c.state.qColumn = ""
	if c.state.mode != modeSearch {
		return Fetch[T]{}
	}
	c.state.mode = modeList
	if m := c.state.memo; m != nil {
		// restoring rows is a row replacement, so selection resets
		c.gen++ // orphan any in-flight search response
		c.state.rows = m.rows
		c.state.page = m.page
		c.state.totalPages = m.totalPages
		c.state.pageSize = m.pageSize
		c.state.phase = StateReady
		c.state.lastErr = nil
		c.state.selected = make(map[int]struct{})
		return Fetch[T]{}
	}
	return c.beginLocked(modeList, 1, c.state.pageSize)
}

// SetFilter switches to filter mode with the given payload from page 1.
// A nil or empty payload clears the filter. Returns an inert Fetch when
// the Source cannot filter
func (c *Controller[T]) SetFilter(payload map[string]any) Fetch[T] {
	if len(payload) == 0 {
		return c.ClearFilter()
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.filterer == nil {
		return Fetch[T]{}
	}
	c.state.filters = payload
	return c.beginLocked(modeFilter, 1, c.state.pageSize)
}

// ClearFilter drops the filter payload and refetches the list
func (c *Controller[T]) ClearFilter() Fetch[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.mode != modeFilter {
		c.state.filters = nil
		return Fetch[T]{}
	}
	c.state.filters = nil
	return c.beginLocked(modeList, 1, c.state.pageSize)
}

// SetSort cycles the sort indicator for a sortable column
// (asc, then desc, then off) and re-issues the current fetch. Ordering
// itself is delegated to the Source; a Source that does not implement
// Sorter still gets the refetch so closure-captured state can apply
func (c *Controller[T]) SetSort(key string) Fetch[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	col, ok := c.columnLocked(key)
	if !ok || !col.Sortable {
		return Fetch[T]{}
	}
	switch {
	case c.state.sortBy != key:
		c.state.sortBy = key
		c.state.sortDesc = false
	case !c.state.sortDesc:
		c.state.sortDesc = true
	default:
		c.state.sortBy = ""
		c.state.sortDesc = false
	}
	if s, ok := c.cfg.Source.(Sorter); ok {
		s.SetSort(c.state.sortBy, c.state.sortDesc)
	}
	return c.beginLocked(c.state.mode, c.state.page, c.state.pageSize)
}

// Sort returns the active sort column and direction
func (c *Controller[T]) Sort() (by string, desc bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.sortBy, c.state.sortDesc
}

// beginLocked arms a new fetch generation for the given mode and target
// page. Callers hold c.mu
func (c *Controller[T]) beginLocked(m mode, page, size int) Fetch[T] {
	c.gen++
	gen := c.gen
	c.state.phase = StateLoading
	c.state.mode = m

	query, column := c.state.query, c.state.qColumn
	payload := c.state.filters
	src := c.cfg.Source
	searcher := c.searcher
	filterer := c.filterer

	run := func(ctx context.Context) (Page[T], error) {
		switch m {
		case modeSearch:
			return searcher.Search(ctx, query, page, size, column)
		case modeFilter:
			return filterer.FilterBy(ctx, payload, page, size)
		default:
			return src.List(ctx, page, size)
		}
	}
	return Fetch[T]{gen: gen, run: run, wantPage: page, wantSize: size, mode: m}
}

// Apply commits a fetch outcome. Stale results (superseded by a newer
// fetch or an inline restore) are discarded and Apply reports false.
// On failure the table keeps its previous rows unless this was the very
// first load, which yields an empty table instead of stale display
func (c *Controller[T]) Apply(res Result[T]) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if res.gen != c.gen {
		return false
	}

	if res.err != nil {
		c.state.phase = StateError
		c.state.lastErr = res.err
		if !c.state.hadLoad {
			c.state.rows = nil
		}
		return true
	}

	page := repair(res.page, res.wantPage, res.wantSize)
	rows := page.Rows

	c.state.phase = StateReady
	c.state.lastErr = nil
	c.state.rows = rows
	c.state.page = page.Page
	c.state.pageSize = page.PageSize
	c.state.totalPages = page.TotalPages
	c.state.hadLoad = true
	// selection is page-scoped: any row replacement clears it
	c.state.selected = make(map[int]struct{})

	if res.mode == modeList {
		c.state.memo = &memoPage[T]{
			rows:       rows,
			page:       page.Page,
			totalPages: page.TotalPages,
			pageSize:   page.PageSize,
		}
	}
	return true
}

// Run is blocking sugar for hosts without an event loop: it executes a
// pending fetch inline and applies the outcome. Reports whether the
// outcome was applied
func (c *Controller[T]) Run(ctx context.Context, f Fetch[T]) bool {
	if !f.Pending() {
		return false
	}
	return c.Apply(f.Do(ctx))
}

// repair coerces a malformed page into a usable one instead of failing:
// nil rows become empty, non-positive counters pick up sane defaults
func repair[T any](p Page[T], wantPage, wantSize int) Page[T] {
	if p.Rows == nil {
		p.Rows = []T{}
	}
	if p.TotalPages <= 0 {
		p.TotalPages = 1
	}
	if p.Page <= 0 {
		p.Page = wantPage
	}
	if p.PageSize <= 0 {
		p.PageSize = wantSize
	}
	return p
}

func (c *Controller[T]) columnLocked(key string) (Column[T], bool) {
	for _, col := range c.cfg.Columns {
		if col.Key == key {
			return col, true
		}
	}
	return Column[T]{}, false
}

//
// Read surface
//

// State returns the current lifecycle phase
func (c *Controller[T]) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.phase
}

// Err returns the last fetch error, nil when Ready
func (c *Controller[T]) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.lastErr
}

// Rows returns the displayed rows of the current page
func (c *Controller[T]) Rows() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.state.rows))
	copy(out, c.state.rows)
	return out
}

// Page returns the 1-based current page
func (c *Controller[T]) Page() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.page
}

// TotalPages returns the total page count from the last good fetch
func (c *Controller[T]) TotalPages() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.totalPages
}

// PageSize returns the active page size
func (c *Controller[T]) PageSize() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.pageSize
}

// Query returns the active search query, empty in list mode
func (c *Controller[T]) Query() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.query
}

// Searching reports whether the table is in search mode
func (c *Controller[T]) Searching() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.mode == modeSearch
}

// Filters returns the active filter payload, nil in list mode
func (c *Controller[T]) Filters() map[string]any {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.filters
}

//
// Selection
//

// ToggleSelect flips selection of the row at page-local index i
func (c *Controller[T]) ToggleSelect(i int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i < 0 || i >= len(c.state.rows) {
		return
	}
	if _, on := c.state.selected[i]; on {
		delete(c.state.selected, i)
	} else {
		c.state.selected[i] = struct{}{}
	}
}

// SelectAll selects every row on the current page
func (c *Controller[T]) SelectAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.state.rows {
		c.state.selected[i] = struct{}{}
	}
}

// ClearSelection empties the selection set
func (c *Controller[T]) ClearSelection() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.selected = make(map[int]struct{})
}

// Selected returns the selected page-local indices in ascending order
func (c *Controller[T]) Selected() []int {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]int, 0, len(c.state.selected))
	for i := range c.state.selected {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// SelectedRows maps the selection back to row records
func (c *Controller[T]) SelectedRows() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	idx := make([]int, 0, len(c.state.selected))
	for i := range c.state.selected {
		idx = append(idx, i)
	}
	sort.Ints(idx)
	out := make([]T, 0, len(idx))
	for _, i := range idx {
		out = append(out, c.state.rows[i])
	}
	return out
}

// IsSelected reports selection of page-local index i
func (c *Controller[T]) IsSelected(i int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, on := c.state.selected[i]
	return on
}

//
// Actions
//

// RowActions returns the configured per-row actions
func (c *Controller[T]) RowActions() []RowAction[T] { return c.cfg.RowActions }

// VisibleBulkActions evaluates each bulk action's When predicate against
// the current rows and selection
func (c *Controller[T]) VisibleBulkActions() []BulkAction[T] {
	rows := c.Rows()
	sel := c.Selected()
	out := make([]BulkAction[T], 0, len(c.cfg.BulkActions))
	for _, a := range c.cfg.BulkActions {
		if a.When == nil || a.When(rows, sel) {
			out = append(out, a)
		}
	}
	return out
}

//
// Columns
//

// Columns returns the full column set in declaration order
func (c *Controller[T]) Columns() []Column[T] { return c.cfg.Columns }

// VisibleColumns returns the currently visible columns in declaration
// order
func (c *Controller[T]) VisibleColumns() []Column[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Column[T], 0, len(c.cfg.Columns))
	for _, col := range c.cfg.Columns {
		if c.state.visible[col.Key] {
			out = append(out, col)
		}
	}
	return out
}

// SetColumnVisible toggles a column and persists the visible set when a
// pref store is configured. Unknown keys are ignored
func (c *Controller[T]) SetColumnVisible(key string, on bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.columnLocked(key); !ok {
		return
	}
	c.state.visible[key] = on
	c.persistVisibilityLocked()
}

func (c *Controller[T]) persistVisibilityLocked() {
	if c.cfg.Prefs == nil || c.cfg.PrefsKey == "" {
		return
	}
	keys := make([]string, 0, len(c.cfg.Columns))
	for _, col := range c.cfg.Columns {
		if c.state.visible[col.Key] {
			keys = append(keys, col.Key)
		}
	}
	raw, err := json.Marshal(keys)
	if err != nil {
		return
	}
	_ = c.cfg.Prefs.Set(c.cfg.PrefsKey, raw)
}

// CellValue renders one cell: the column Render func when present, else
// the row's Fielder value, else empty
func (c *Controller[T]) CellValue(row T, col Column[T]) string {
	if col.Render != nil {
		return col.Render(row)
	}
	if f, ok := any(row).(Fielder); ok {
		return f.Field(col.Key)
	}
	return ""
}

// RowID returns the configured identity of a row, empty when no RowID
// func is set
func (c *Controller[T]) RowID(row T) string {
	if c.cfg.RowID == nil {
		return ""
	}
	return c.cfg.RowID(row)
}
