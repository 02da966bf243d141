package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"salesops/internal/client"
	"salesops/internal/exportkit"
	"salesops/internal/refdata"
	"salesops/internal/tablekit"
)

// inputMode tracks which text prompt, if any, owns the keyboard
type inputMode uint8

const (
	inputNone inputMode = iota
	inputSearch
	inputReason
)

// keyMap is the browser keybinding set
type keyMap struct {
	Quit      key.Binding
	NextPage  key.Binding
	PrevPage  key.Binding
	Search    key.Binding
	Clear     key.Binding
	Refresh   key.Binding
	Select    key.Binding
	SelectAll key.Binding
	Columns   key.Binding
	Filter    key.Binding
	Export    key.Binding
	Approve   key.Binding
	Reject    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		NextPage:  key.NewBinding(key.WithKeys("right", "n"), key.WithHelp("→/n", "next page")),
		PrevPage:  key.NewBinding(key.WithKeys("left", "p"), key.WithHelp("←/p", "prev page")),
		Search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Clear:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear")),
		Refresh:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Select:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "select")),
		SelectAll: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "select page")),
		Columns:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "cycle columns")),
		Filter:    key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "cycle status filter")),
		Export:    key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export view")),
		Approve:   key.NewBinding(key.WithKeys("A"), key.WithHelp("A", "approve")),
		Reject:    key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "reject")),
	}
}

// fetchDoneMsg carries a settled fetch back into the event loop
type fetchDoneMsg struct {
	res tablekit.Result[client.Row]
}

// actionDoneMsg reports a bulk action outcome
type actionDoneMsg struct {
	name string
	err  error
}

// Browser is the bubbletea model hosting one table controller
type Browser struct {
	ctrl    *tablekit.Controller[client.Row]
	title   string
	lookups *refdata.Catalog

	table   table.Model
	spinner spinner.Model
	input   textinput.Model
	keys    keyMap
	styles  *Styles

	mode      inputMode
	loading   bool
	errLine   string
	status    string
	colIdx    int
	filterIdx int
	quitting  bool

	// sheet accumulates exported views across pages for this session
	sheet     *exportkit.Sheet
	exportDir string

	ctx context.Context
}

// NewBrowser wraps a controller for terminal display. The controller
// must already be configured with its columns and source. lookups may
// be nil when no reference lists back the filter controls
func NewBrowser(ctx context.Context, ctrl *tablekit.Controller[client.Row], title string, lookups *refdata.Catalog) *Browser {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	styles := NewStyles(DefaultTheme())
	sp.Style = styles.Spinner

	ti := textinput.New()
	ti.Placeholder = "search"
	ti.Width = 40

	b := &Browser{
		ctrl:      ctrl,
		title:     title,
		lookups:   lookups,
		spinner:   sp,
		input:     ti,
		keys:      defaultKeyMap(),
		styles:    styles,
		exportDir: ".",
		ctx:       ctx,
	}
	b.rebuildTable()
	return b
}

// Init implements tea.Model
func (b *Browser) Init() tea.Cmd {
	return tea.Batch(b.spinner.Tick, b.dispatch(b.ctrl.Load()))
}

// dispatch runs a pending fetch off the event loop
func (b *Browser) dispatch(f tablekit.Fetch[client.Row]) tea.Cmd {
	if !f.Pending() {
		return nil
	}
	b.loading = true
	ctx := b.ctx
	return func() tea.Msg {
		return fetchDoneMsg{res: f.Do(ctx)}
	}
}

// Update implements tea.Model
func (b *Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case fetchDoneMsg:
		b.loading = false
		if b.ctrl.Apply(msg.res) {
			b.errLine = ""
			if err := b.ctrl.Err(); err != nil {
				// table keeps its last good rows; surface the failure
				b.errLine = err.Error()
			}
			b.rebuildTable()
		}
		return b, nil

	case actionDoneMsg:
		if msg.err != nil {
			b.errLine = fmt.Sprintf("%s failed: %v", msg.name, msg.err)
			return b, nil
		}
		b.status = msg.name + " done"
		b.ctrl.ClearSelection()
		return b, b.dispatch(b.ctrl.Refresh())

	case spinner.TickMsg:
		if !b.loading {
			return b, nil
		}
		var cmd tea.Cmd
		b.spinner, cmd = b.spinner.Update(msg)
		return b, cmd

	case tea.WindowSizeMsg:
		b.table.SetHeight(msg.Height - 6)
		return b, nil

	case tea.KeyMsg:
		if b.mode != inputNone {
			return b.updateInput(msg)
		}
		return b.updateKeys(msg)
	}
	return b, nil
}

// updateInput handles keys while a text prompt is active
func (b *Browser) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		b.mode = inputNone
		b.input.Blur()
		return b, nil
	case "enter":
		value := strings.TrimSpace(b.input.Value())
		mode := b.mode
		b.mode = inputNone
		b.input.Blur()
		b.input.SetValue("")
		switch mode {
		case inputSearch:
			return b, b.dispatch(b.ctrl.Search(value))
		case inputReason:
			if value == "" {
				b.errLine = "reject needs a reason"
				return b, nil
			}
			return b, b.runBulk("reject", value)
		}
		return b, nil
	}
	var cmd tea.Cmd
	b.input, cmd = b.input.Update(msg)
	return b, cmd
}

// updateKeys handles normal-mode keys
func (b *Browser) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := b.keys
	switch {
	case key.Matches(msg, k.Quit):
		b.quitting = true
		return b, tea.Quit

	case key.Matches(msg, k.NextPage):
		return b, b.dispatch(b.ctrl.NextPage())

	case key.Matches(msg, k.PrevPage):
		return b, b.dispatch(b.ctrl.PrevPage())

	case key.Matches(msg, k.Refresh):
		return b, b.dispatch(b.ctrl.Refresh())

	case key.Matches(msg, k.Search):
		if !b.ctrl.CanSearch() {
			return b, nil
		}
		b.mode = inputSearch
		b.input.Placeholder = "search"
		b.input.Focus()
		return b, textinput.Blink

	case key.Matches(msg, k.Clear):
		b.ctrl.ClearSelection()
		b.status = ""
		b.errLine = ""
		return b, b.dispatch(b.ctrl.ClearSearch())

	case key.Matches(msg, k.Select):
		b.ctrl.ToggleSelect(b.table.Cursor())
		b.rebuildTable()
		return b, nil

	case key.Matches(msg, k.SelectAll):
		b.ctrl.SelectAll()
		b.rebuildTable()
		return b, nil

	case key.Matches(msg, k.Columns):
		b.cycleColumn()
		return b, nil

	case key.Matches(msg, k.Filter):
		return b, b.cycleStatusFilter()

	case key.Matches(msg, k.Export):
		b.exportView()
		return b, nil

	case key.Matches(msg, k.Approve):
		return b, b.runBulk("approve", "")

	case key.Matches(msg, k.Reject):
		if len(b.ctrl.Selected()) == 0 {
			return b, nil
		}
		b.mode = inputReason
		b.input.Placeholder = "reject reason"
		b.input.Focus()
		return b, textinput.Blink
	}

	var cmd tea.Cmd
	b.table, cmd = b.table.Update(msg)
	return b, cmd
}

// runBulk executes the named bulk action against the selection.
// Actions receive the full page rows with page-local selected indices,
// the same shapes their When predicate is evaluated against
func (b *Browser) runBulk(name, reason string) tea.Cmd {
	rows := b.ctrl.Rows()
	selected := b.ctrl.Selected()
	if len(selected) == 0 {
		return nil
	}
	var action tablekit.BulkAction[client.Row]
	found := false
	for _, a := range b.ctrl.VisibleBulkActions() {
		if a.Name == name {
			action = a
			found = true
			break
		}
	}
	if !found {
		return nil
	}
	ctx := b.ctx
	if reason != "" {
		ctx = WithReason(ctx, reason)
	}
	return func() tea.Msg {
		return actionDoneMsg{name: name, err: action.Do(ctx, rows, selected)}
	}
}

// cycleStatusFilter walks the status reference list, applying each value
// as a column filter in turn and clearing the filter at the end of the
// cycle. The list comes from the lookups catalog, so only the first
// press fetches it
func (b *Browser) cycleStatusFilter() tea.Cmd {
	if b.lookups == nil || !b.ctrl.CanFilter() {
		return nil
	}
	opts, err := b.lookups.Ensure(b.ctx, "statuses")
	if err != nil {
		b.errLine = err.Error()
		return nil
	}
	if len(opts) == 0 {
		return nil
	}
	b.filterIdx++
	if b.filterIdx > len(opts) {
		b.filterIdx = 0
		return b.dispatch(b.ctrl.ClearFilter())
	}
	v := opts[b.filterIdx-1].Value
	return b.dispatch(b.ctrl.SetFilter(map[string]any{"status": v}))
}

// exportView adds the currently visible rows to the session export
// sheet and rewrites the csv file, so paging and pressing e again
// accumulates a multi-page export
func (b *Browser) exportView() {
	if b.sheet == nil {
		sh := exportkit.FromController(b.ctrl, b.title)
		b.sheet = &sh
	} else {
		exportkit.AppendController(b.sheet, b.ctrl)
	}
	path := filepath.Join(b.exportDir, b.title+".csv")
	f, err := os.Create(path)
	if err != nil {
		b.errLine = err.Error()
		return
	}
	defer func() { _ = f.Close() }()
	if err := exportkit.WriteCSV(f, *b.sheet); err != nil {
		b.errLine = err.Error()
		return
	}
	b.status = fmt.Sprintf("exported %d rows to %s", len(b.sheet.Rows), path)
}

// cycleColumn hides the next visible column, wrapping back to showing
// everything. A cheap toggle that still exercises persistence
func (b *Browser) cycleColumn() {
	cols := b.ctrl.Columns()
	if len(cols) == 0 {
		return
	}
	if b.colIdx >= len(cols) {
		for _, c := range cols {
			b.ctrl.SetColumnVisible(c.Key, true)
		}
		b.colIdx = 0
	} else {
		b.ctrl.SetColumnVisible(cols[b.colIdx].Key, false)
		b.colIdx++
	}
	b.rebuildTable()
}

// rebuildTable re-derives the bubbles table from controller state
func (b *Browser) rebuildTable() {
	visible := b.ctrl.VisibleColumns()
	cols := make([]table.Column, 0, len(visible)+1)
	cols = append(cols, table.Column{Title: " ", Width: 2})
	for _, c := range visible {
		cols = append(cols, table.Column{Title: c.Title, Width: columnWidth(c.Key)})
	}

	rows := make([]table.Row, 0, len(b.ctrl.Rows()))
	for i, rec := range b.ctrl.Rows() {
		mark := " "
		if b.ctrl.IsSelected(i) {
			mark = "*"
		}
		cells := make(table.Row, 0, len(visible)+1)
		cells = append(cells, mark)
		for _, c := range visible {
			cells = append(cells, b.ctrl.CellValue(rec, c))
		}
		rows = append(rows, cells)
	}

	cursor := b.table.Cursor()
	t := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithFocused(true),
	)
	if cursor < len(rows) {
		t.SetCursor(cursor)
	}
	b.table = t
}

func columnWidth(key string) int {
	switch key {
	case "id":
		return 36
	case "status", "year", "kind":
		return 10
	default:
		return 20
	}
}

// View implements tea.Model
func (b *Browser) View() string {
	if b.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(b.styles.Title.Render(b.title))
	sb.WriteString("\n")
	sb.WriteString(b.table.View())
	sb.WriteString("\n")

	status := fmt.Sprintf("page %d/%d", b.ctrl.Page(), b.ctrl.TotalPages())
	if q := b.ctrl.Query(); q != "" {
		status += fmt.Sprintf("  search: %q", q)
	}
	if f := b.ctrl.Filters(); len(f) > 0 {
		status += fmt.Sprintf("  filter: %v", f["status"])
	}
	if n := len(b.ctrl.Selected()); n > 0 {
		status += fmt.Sprintf("  selected: %d", n)
	}
	if b.status != "" {
		status += "  " + b.status
	}
	if b.loading {
		status = b.spinner.View() + " loading  " + status
	}
	sb.WriteString(b.styles.Status.Render(status))
	sb.WriteString("\n")

	if b.errLine != "" {
		sb.WriteString(b.styles.Error.Render(b.errLine))
		sb.WriteString("\n")
	}
	if b.mode != inputNone {
		sb.WriteString(b.input.View())
		sb.WriteString("\n")
	} else {
		sb.WriteString(b.styles.Help.Render("→/← page  / search  f filter  esc clear  space select  A approve  R reject  c columns  e export  r refresh  q quit"))
		sb.WriteString("\n")
	}
	return sb.String()
}

var _ tea.Model = (*Browser)(nil)
