package picker

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/bkanis/gridpick/internal/grid"
	"github.com/bkanis/gridpick/internal/layout"
)

// Options configures one Open call: the session semantics plus the widget
// concerns the session does not know about.
type Options struct {
	grid.Options

	// Displays holds the host display geometry used with SpanAllScreens.
	// Empty means "use the terminal as-is".
	Displays []layout.Rect

	// MaxVisibleRows caps the rows painted at once (0 = terminal height).
	MaxVisibleRows int
}

// Open runs a modal picking session and blocks until the user confirms or
// cancels. Invalid configuration (an empty column list) fails fast before
// any UI is shown. Unexpected TUI failures close the session as cancelled
// rather than propagate: the picker is a convenience, not a system of record.
func Open(rows []grid.Row, columns []string, opts Options) (grid.Result, error) {
	session, err := grid.NewSession(rows, columns, opts.Options)
	if err != nil {
		return grid.Result{}, err
	}

	if err := checkTTY(); err != nil {
		return grid.Result{}, err
	}

	// The TUI talks to /dev/tty directly so stdout stays free for command
	// output and piping.
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return grid.Result{}, fmt.Errorf("open /dev/tty: %w", err)
	}
	defer tty.Close()

	// Detect the color profile from the real tty; with stdout piped,
	// lipgloss would otherwise fall back to no color.
	lipgloss.SetColorProfile(termenv.NewOutput(tty).ColorProfile())

	model := NewModel(session, ModelConfig{
		MaxVisibleRows: opts.MaxVisibleRows,
		Target:         layout.Target(opts.Displays, opts.SpanAllScreens),
	})

	slog.Debug("picker session opened",
		"session", session.ID(),
		"rows", session.DatasetLen(),
		"columns", len(columns))

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithInput(tty),
		tea.WithOutput(tty),
	)
	if _, err := p.Run(); err != nil {
		slog.Warn("picker session failed, treating as cancelled",
			"session", session.ID(), "error", err)
	}

	// A crashed or killed program leaves the session non-terminal.
	session.Cancel()

	res := session.Result()
	slog.Debug("picker session closed",
		"session", session.ID(),
		"confirmed", res.Confirmed,
		"selected", len(res.Rows))
	return res, nil
}
