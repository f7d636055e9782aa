package grid

// Bridge is the virtual render surface: it hands the on-screen widget
// exactly the cell values it needs to paint, resolving filtered-view
// positions through the session without materializing anything for
// off-screen or filtered-out rows.
//
// It sits on the hot repaint path, so it never panics: out-of-range
// positions and unknown column names yield an empty value. The host must
// re-query RowCount after every filter change to keep its visible row count
// in sync.
type Bridge struct {
	s *Session
}

// NewBridge binds a render bridge to a session.
func NewBridge(s *Session) *Bridge { return &Bridge{s: s} }

// RowCount returns the length of the current filtered view.
func (b *Bridge) RowCount() int { return b.s.ViewLen() }

// CellValue resolves a filtered-view position and column name to the
// underlying row's display string. Missing columns and out-of-range
// positions yield "".
func (b *Bridge) CellValue(filteredRow int, column string) string {
	pos, ok := b.s.viewPosition(filteredRow)
	if !ok {
		return ""
	}
	return b.s.store.Row(pos).Cell(column)
}
