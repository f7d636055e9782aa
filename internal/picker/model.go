// Package picker renders a grid.Session as a modal Bubble Tea TUI: a query
// input, a column header and a virtualized row viewport fed through the
// session's render bridge. Rows outside the viewport are never materialized.
package picker

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bkanis/gridpick/internal/grid"
	"github.com/bkanis/gridpick/internal/layout"
)

// minColumnWidth is the narrowest a column is allowed to render.
const minColumnWidth = 8

// keyMap defines the picker key bindings. The query input consumes plain
// runes (including space, which separates filter tokens), so row toggling
// lives on tab.
type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	Toggle    key.Binding
	ToggleAll key.Binding
	Confirm   key.Binding
	Cancel    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "down")),
		PageUp:    key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown:  key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		Toggle:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "toggle")),
		ToggleAll: key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "toggle visible")),
		Confirm:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "accept")),
		Cancel:    key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "cancel")),
	}
}

// ModelConfig tunes the picker widget independently of session semantics.
type ModelConfig struct {
	// MaxVisibleRows caps how many rows are painted at once; 0 means
	// whatever the terminal height allows.
	MaxVisibleRows int

	// Target bounds the widget when the host supplied display geometry.
	// An empty rectangle means the full terminal.
	Target layout.Rect
}

// Model is the Bubble Tea model for one picking session. It must be exported
// so the modal runner and tests can drive it.
type Model struct {
	session *grid.Session
	bridge  *grid.Bridge
	cfg     ModelConfig
	keys    keyMap
	input   textinput.Model

	cursor int // position within the filtered view
	scroll int // first visible filtered-view position
	notice string

	width  int
	height int
}

// NewModel builds a picker model around an open session.
func NewModel(session *grid.Session, cfg ModelConfig) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "type to filter"
	ti.SetValue(session.Query())
	ti.Focus()

	return Model{
		session: session,
		bridge:  grid.NewBridge(session),
		cfg:     cfg,
		keys:    defaultKeyMap(),
		input:   ti,
	}
}

// Session exposes the underlying session, mainly for the runner.
func (m Model) Session() *grid.Session { return m.session }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampViewport()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.session.Cancel()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Confirm):
		if !m.session.Confirm() {
			m.notice = "select at least one row"
			return m, nil
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
		return m, nil

	case key.Matches(msg, m.keys.PageUp):
		m.moveCursor(-m.visibleRows())
		return m, nil

	case key.Matches(msg, m.keys.PageDown):
		m.moveCursor(m.visibleRows())
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		m.session.Toggle(m.cursor)
		m.moveCursor(1)
		m.notice = ""
		return m, nil

	case key.Matches(msg, m.keys.ToggleAll):
		m.toggleVisible()
		m.notice = ""
		return m, nil
	}

	// Everything else edits the query.
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if q := m.input.Value(); q != m.session.Query() {
		m.session.SetQuery(q)
		m.notice = ""
		m.clampViewport()
	}
	return m, cmd
}

// toggleVisible selects every visible row, or deselects them all when the
// whole window is already selected.
func (m *Model) toggleVisible() {
	first, count := m.scroll, m.visibleRows()
	allSelected := true
	for i := first; i < first+count && i < m.bridge.RowCount(); i++ {
		if !m.session.Selected(i) {
			allSelected = false
			break
		}
	}
	for i := first; i < first+count && i < m.bridge.RowCount(); i++ {
		if m.session.Selected(i) == allSelected {
			m.session.Toggle(i)
		}
	}
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	m.clampViewport()
}

// clampViewport keeps cursor and scroll inside the filtered view, which
// shrinks and grows on every query edit.
func (m *Model) clampViewport() {
	n := m.bridge.RowCount()
	if n == 0 {
		m.cursor, m.scroll = 0, 0
		return
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= n {
		m.cursor = n - 1
	}
	visible := m.visibleRows()
	if m.cursor < m.scroll {
		m.scroll = m.cursor
	}
	if m.cursor >= m.scroll+visible {
		m.scroll = m.cursor - visible + 1
	}
	if m.scroll > n-visible {
		m.scroll = n - visible
	}
	if m.scroll < 0 {
		m.scroll = 0
	}
}

// visibleRows is how many data rows fit the current frame: terminal height
// minus chrome (title, query, header, footer), bounded by the configured cap
// and the layout target.
func (m Model) visibleRows() int {
	const chrome = 4
	h := m.frameHeight() - chrome
	if h < 1 {
		h = 10 // before the first WindowSizeMsg
	}
	if m.cfg.MaxVisibleRows > 0 && h > m.cfg.MaxVisibleRows {
		h = m.cfg.MaxVisibleRows
	}
	return h
}

func (m Model) frameWidth() int {
	w := m.width
	if !m.cfg.Target.Empty() && m.cfg.Target.W < w {
		w = m.cfg.Target.W
	}
	if w <= 0 {
		w = 80
	}
	return w
}

func (m Model) frameHeight() int {
	h := m.height
	if !m.cfg.Target.Empty() && m.cfg.Target.H < h {
		h = m.cfg.Target.H
	}
	return h
}

// --- View rendering ---

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("62")).Padding(0, 1)
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("245")).Underline(true)
	cursorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	normalStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	noticeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.viewTitle())
	b.WriteRune('\n')
	b.WriteString(m.input.View())
	b.WriteRune('\n')

	widths := m.columnWidths()
	b.WriteString(m.viewHeader(widths))
	b.WriteRune('\n')
	b.WriteString(m.viewRows(widths))
	b.WriteRune('\n')
	b.WriteString(m.viewFooter())

	return b.String()
}

func (m Model) viewTitle() string {
	title := m.session.Title()
	if title == "" {
		title = "Select"
	}
	return titleStyle.Render(title)
}

func (m Model) viewHeader(widths []int) string {
	cols := m.session.Columns()
	cells := make([]string, len(cols))
	for i, c := range cols {
		cells[i] = cell(c, widths[i])
	}
	// Four columns of lead-in to stay aligned with the row marks.
	return headerStyle.Render("    " + strings.Join(cells, " "))
}

// viewRows paints only the visible window of the filtered view. All cell
// text flows through the render bridge; nothing is built for off-screen rows.
func (m Model) viewRows(widths []int) string {
	n := m.bridge.RowCount()
	if n == 0 {
		return dimStyle.Render("  no matching rows")
	}

	cols := m.session.Columns()
	var b strings.Builder
	last := m.scroll + m.visibleRows()
	if last > n {
		last = n
	}
	for i := m.scroll; i < last; i++ {
		mark := "[ ]"
		if m.session.Selected(i) {
			mark = "[x]"
		}
		cells := make([]string, len(cols))
		for j, c := range cols {
			cells[j] = cell(m.bridge.CellValue(i, c), widths[j])
		}
		line := mark + " " + strings.Join(cells, " ")

		switch {
		case i == m.cursor:
			b.WriteString(cursorStyle.Render("> " + line))
		case m.session.Selected(i):
			b.WriteString(selectedStyle.Render("  " + line))
		default:
			b.WriteString(normalStyle.Render("  " + line))
		}
		if i < last-1 {
			b.WriteRune('\n')
		}
	}
	return b.String()
}

func (m Model) viewFooter() string {
	status := fmt.Sprintf("%d/%d rows · %d selected",
		m.bridge.RowCount(), m.session.DatasetLen(), m.session.SelectedCount())
	hints := "tab toggle · ctrl+a toggle visible · enter accept · esc cancel"
	out := dimStyle.Render(status + "  " + hints)
	if m.notice != "" {
		out += "  " + noticeStyle.Render(m.notice)
	}
	return out
}

// columnWidths distributes the frame width across columns: equal shares with
// a floor, remainder to the last column.
func (m Model) columnWidths() []int {
	cols := m.session.Columns()
	n := len(cols)
	budget := m.frameWidth() - 6 - (n - 1) // mark + cursor lead-in, gaps
	if budget < n*minColumnWidth {
		budget = n * minColumnWidth
	}
	each := budget / n
	widths := make([]int, n)
	for i := range widths {
		widths[i] = each
	}
	widths[n-1] += budget - each*n
	return widths
}
