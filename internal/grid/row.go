// Package grid implements the interactive selection grid shared by every
// gridpick command: an ordered row store, a precomputed search index, a
// token-AND filter engine, a selection tracker keyed by stable row identity,
// and a virtual render bridge that feeds the on-screen widget only the cells
// it currently needs. State lives in an explicit Session created per picking
// run; nothing is process-global, so independent sessions are safe.
package grid

import (
	"errors"
	"fmt"
)

// Row is one selectable record: display cells keyed by column name plus an
// opaque payload the caller uses to re-identify the row after picking. The
// payload is deliberately kept outside Cells so it is never displayed or
// searched. Rows are immutable for the lifetime of a session.
type Row struct {
	Cells   map[string]any
	Payload any
}

// Cell returns the display string for the named column, or "" when the
// column is not populated on this row.
func (r Row) Cell(column string) string {
	v, ok := r.Cells[column]
	if !ok {
		return ""
	}
	return formatCell(v)
}

// formatCell renders a cell value for display and search. Values are
// typically strings already; numbers and Stringers are stringified once.
func formatCell(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// ErrNoColumns is returned when a session is opened without any columns.
// The column list defines both display order and search scope, so an empty
// list would make every row invisible and unsearchable.
var ErrNoColumns = errors.New("grid: column list must not be empty")

// Store holds the full, unfiltered dataset for one picking session. The row
// slice is kept by reference and never copied or mutated after load. An
// empty dataset is valid and simply yields a picker with nothing to select.
type Store struct {
	rows    []Row
	columns []string
}

// NewStore validates the column list and wraps the dataset.
func NewStore(rows []Row, columns []string) (*Store, error) {
	if len(columns) == 0 {
		return nil, ErrNoColumns
	}
	return &Store{rows: rows, columns: columns}, nil
}

// Len returns the dataset length.
func (s *Store) Len() int { return len(s.rows) }

// Row returns the row at the given dataset position.
func (s *Store) Row(i int) Row { return s.rows[i] }

// Columns returns the session's column list in display order.
func (s *Store) Columns() []string { return s.columns }
