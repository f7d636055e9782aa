package grid

import (
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/google/uuid"
)

// State is the session's position in the picking state machine.
type State int

const (
	StateIdle      State = iota // before load
	StateLoaded                 // dataset loaded, index built, no query edit yet
	StateFiltering              // at least one query edit applied
	StateConfirmed              // terminal: user accepted the selection
	StateCancelled              // terminal: user dismissed the picker
)

// Options configures one picking session.
type Options struct {
	// Title is display-only.
	Title string

	// InitialSelection holds positions into the initially-unfiltered view
	// to pre-check. Out-of-range positions are ignored.
	InitialSelection []int

	// AllowEmptySelection permits confirming with zero rows selected.
	// When false, Confirm is rejected until at least one row is picked.
	AllowEmptySelection bool

	// SpanAllScreens lays the picker across the combined bounds of all
	// displays instead of the primary display only.
	SpanAllScreens bool

	// InitialQuery pre-fills the filter so the picker opens narrowed.
	InitialQuery string
}

// Result is what a picking session returns to its caller. Confirmed false
// means the user cancelled; Confirmed true with zero rows is a valid outcome
// when AllowEmptySelection is set, and the two are distinct.
type Result struct {
	Confirmed bool
	Rows      []Row
}

// Session bundles the dataset, search index, current query, filtered view
// and selection set for one modal picking run. It is created when the picker
// opens and discarded when it closes; no state survives across sessions.
// Sessions are not safe for concurrent use: every mutation happens on the
// UI event loop.
type Session struct {
	id    string
	store *Store
	index []string
	sel   *tracker
	opts  Options

	state  State
	query  string
	tokens []string
	match  *roaring.Bitmap
	view   []int // filtered view: dataset positions, ascending
}

// NewSession validates the inputs, builds the search index, seeds the
// selection and materializes the unfiltered view. A nil row slice is an
// empty dataset, not an error; an empty column list fails fast before any
// UI is shown.
func NewSession(rows []Row, columns []string, opts Options) (*Session, error) {
	store, err := NewStore(rows, columns)
	if err != nil {
		return nil, err
	}
	s := &Session{
		id:    uuid.NewString(),
		store: store,
		index: buildIndex(rows, columns),
		sel:   newTracker(len(rows)),
		opts:  opts,
		state: StateLoaded,
	}
	// The initial view is unfiltered, so initial-selection positions are
	// dataset positions.
	s.sel.seed(opts.InitialSelection)
	s.match = matchAll(store.Len())
	s.view = positions(s.match)
	if opts.InitialQuery != "" {
		s.SetQuery(opts.InitialQuery)
	}
	return s, nil
}

// ID identifies the session in logs.
func (s *Session) ID() string { return s.id }

// State returns the current state-machine state.
func (s *Session) State() State { return s.state }

// Title returns the caller-supplied display title.
func (s *Session) Title() string { return s.opts.Title }

// Options returns the session configuration.
func (s *Session) Options() Options { return s.opts }

// Columns returns the column list in display order.
func (s *Session) Columns() []string { return s.store.Columns() }

// Query returns the current filter query.
func (s *Session) Query() string { return s.query }

// SetQuery applies a query edit and recomputes the filtered view. Matching
// preserves dataset order. When the new query only narrows the previous one,
// only the previous match set is rescanned. No-op once terminal.
func (s *Session) SetQuery(query string) {
	if s.terminal() {
		return
	}
	tokens := tokenize(query)
	var prev *roaring.Bitmap
	if s.match != nil && narrows(s.tokens, tokens) {
		prev = s.match
	}
	s.match = filterIndex(s.index, tokens, prev)
	s.view = positions(s.match)
	s.query = query
	s.tokens = tokens
	s.state = StateFiltering
}

// ViewLen returns the length of the current filtered view.
func (s *Session) ViewLen() int { return len(s.view) }

// DatasetLen returns the full dataset length, independent of filtering.
func (s *Session) DatasetLen() int { return s.store.Len() }

// viewPosition resolves a filtered-view position to a dataset position.
func (s *Session) viewPosition(i int) (int, bool) {
	if i < 0 || i >= len(s.view) {
		return 0, false
	}
	return s.view[i], true
}

// Toggle flips the selection of the row at the given filtered-view position.
// Out-of-range positions are ignored: they are expected transient artifacts
// of a repaint racing a click, not programming errors.
func (s *Session) Toggle(filteredPos int) {
	if s.terminal() {
		return
	}
	if pos, ok := s.viewPosition(filteredPos); ok {
		s.sel.toggle(pos)
	}
}

// Selected reports whether the row at the given filtered-view position is
// currently selected.
func (s *Session) Selected(filteredPos int) bool {
	pos, ok := s.viewPosition(filteredPos)
	return ok && s.sel.contains(pos)
}

// SelectedCount returns the size of the selection set, including rows the
// current query has filtered out of view.
func (s *Session) SelectedCount() int { return s.sel.count() }

// SelectedRows returns the full Row values for every selected dataset
// identity, in original dataset order regardless of click order.
func (s *Session) SelectedRows() []Row {
	sel := s.sel.selected()
	rows := make([]Row, len(sel))
	for i, pos := range sel {
		rows[i] = s.store.Row(pos)
	}
	return rows
}

// Confirm attempts the terminal Confirmed transition. It is rejected (state
// unchanged, returns false) when the selection is empty and the session
// requires at least one row. Confirming an already-terminal session is a
// no-op; it reports whether the session ended up confirmed.
func (s *Session) Confirm() bool {
	switch s.state {
	case StateConfirmed:
		return true
	case StateCancelled:
		return false
	}
	if s.sel.count() == 0 && !s.opts.AllowEmptySelection {
		return false
	}
	s.state = StateConfirmed
	return true
}

// Cancel applies the terminal Cancelled transition. Cancelling an
// already-terminal session is a no-op.
func (s *Session) Cancel() {
	if s.terminal() {
		return
	}
	s.state = StateCancelled
}

// Result returns the session outcome. It is meaningful only once the
// session is terminal; before that, and after Cancel, it reports a
// non-confirmed result with no rows.
func (s *Session) Result() Result {
	if s.state != StateConfirmed {
		return Result{}
	}
	return Result{Confirmed: true, Rows: s.SelectedRows()}
}

func (s *Session) terminal() bool {
	return s.state == StateConfirmed || s.state == StateCancelled
}
