package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fiveRows() []Row {
	rows := make([]Row, 5)
	for i, name := range []string{"North Wall", "South Wall", "East Wall", "West Wall", "Core Wall"} {
		rows[i] = Row{Cells: map[string]any{"Name": name}, Payload: i}
	}
	return rows
}

func mustSession(t *testing.T, rows []Row, columns []string, opts Options) *Session {
	t.Helper()
	s, err := NewSession(rows, columns, opts)
	require.NoError(t, err)
	return s
}

func TestNewSessionRejectsEmptyColumnList(t *testing.T) {
	_, err := NewSession(planRows(), nil, Options{})
	assert.ErrorIs(t, err, ErrNoColumns)

	_, err = NewSession(planRows(), []string{}, Options{})
	assert.ErrorIs(t, err, ErrNoColumns)
}

func TestNewSessionAcceptsNilDatasetAsEmpty(t *testing.T) {
	s := mustSession(t, nil, []string{"Name"}, Options{})
	assert.Equal(t, 0, s.ViewLen())
	assert.Equal(t, StateLoaded, s.State())
}

func TestSessionFilterScenario(t *testing.T) {
	// Scenario A.
	s := mustSession(t, planRows(), []string{"Title"}, Options{})

	s.SetQuery("plan")
	require.Equal(t, 3, s.ViewLen())
	assert.Equal(t, StateFiltering, s.State())

	s.SetQuery("level 2")
	require.Equal(t, 1, s.ViewLen())
	b := NewBridge(s)
	assert.Equal(t, "Level 2 Plan", b.CellValue(0, "Title"))
}

func TestSessionInitialSelectionConfirm(t *testing.T) {
	// Scenario B: pre-seed position 2, confirm without interaction.
	s := mustSession(t, fiveRows(), []string{"Name"}, Options{InitialSelection: []int{2}})

	require.True(t, s.Confirm())
	res := s.Result()
	require.True(t, res.Confirmed)
	require.Len(t, res.Rows, 1)
	assert.Equal(t, 2, res.Rows[0].Payload)
}

func TestSessionInitialSelectionIgnoresOutOfRange(t *testing.T) {
	s := mustSession(t, fiveRows(), []string{"Name"}, Options{
		InitialSelection:    []int{-1, 1, 99},
		AllowEmptySelection: true,
	})
	assert.Equal(t, 1, s.SelectedCount())
	assert.True(t, s.Selected(1))
}

func TestSelectionSurvivesFiltering(t *testing.T) {
	s := mustSession(t, planRows(), []string{"Title"}, Options{})

	s.Toggle(1) // Level 2 Plan
	require.Equal(t, 1, s.SelectedCount())

	s.SetQuery("site")
	require.Equal(t, 1, s.ViewLen())
	// The selected row is filtered out of view but stays selected.
	assert.Equal(t, 1, s.SelectedCount())

	s.SetQuery("")
	assert.True(t, s.Selected(1))
}

func TestSessionToggleOffWhileFiltered(t *testing.T) {
	// Scenario C: select 0 and 3 unfiltered, filter to row 3 only, toggle it
	// off, clear the query, confirm -> only row 0 remains.
	s := mustSession(t, fiveRows(), []string{"Name"}, Options{})

	s.Toggle(0)
	s.Toggle(3)
	require.Equal(t, 2, s.SelectedCount())

	s.SetQuery("west")
	require.Equal(t, 1, s.ViewLen())
	s.Toggle(0) // filtered position 0 == dataset position 3

	s.SetQuery("")
	require.True(t, s.Confirm())
	res := s.Result()
	require.Len(t, res.Rows, 1)
	assert.Equal(t, 0, res.Rows[0].Payload)
}

func TestSessionConfirmEmptyDatasetAllowEmpty(t *testing.T) {
	// Scenario D: confirmed empty is distinct from cancelled.
	s := mustSession(t, nil, []string{"Name"}, Options{AllowEmptySelection: true})

	require.True(t, s.Confirm())
	res := s.Result()
	assert.True(t, res.Confirmed)
	assert.Empty(t, res.Rows)
}

func TestSessionConfirmRejectedWhenEmptyNotAllowed(t *testing.T) {
	s := mustSession(t, fiveRows(), []string{"Name"}, Options{})

	s.SetQuery("wall")
	assert.False(t, s.Confirm())
	assert.Equal(t, StateFiltering, s.State())

	s.Toggle(0)
	assert.True(t, s.Confirm())
	assert.Equal(t, StateConfirmed, s.State())
}

func TestSessionSelectedRowsInDatasetOrder(t *testing.T) {
	s := mustSession(t, fiveRows(), []string{"Name"}, Options{})

	// Click order 4, 0, 2; result order must be dataset order 0, 2, 4.
	s.Toggle(4)
	s.Toggle(0)
	s.Toggle(2)
	require.True(t, s.Confirm())

	got := make([]int, 0, 3)
	for _, r := range s.Result().Rows {
		got = append(got, r.Payload.(int))
	}
	assert.Equal(t, []int{0, 2, 4}, got)
}

func TestSessionTerminalStatesAbsorbFurtherEvents(t *testing.T) {
	s := mustSession(t, fiveRows(), []string{"Name"}, Options{})
	s.Toggle(1)
	require.True(t, s.Confirm())

	s.Cancel()
	s.SetQuery("wall")
	s.Toggle(2)
	assert.Equal(t, StateConfirmed, s.State())
	assert.Equal(t, 1, s.SelectedCount())
	assert.True(t, s.Result().Confirmed)
}

func TestSessionCancelledResultDistinctFromConfirmedEmpty(t *testing.T) {
	s := mustSession(t, fiveRows(), []string{"Name"}, Options{AllowEmptySelection: true})
	s.Cancel()

	res := s.Result()
	assert.False(t, res.Confirmed)
	assert.Empty(t, res.Rows)
	assert.False(t, s.Confirm(), "confirm after cancel is a no-op")
	assert.Equal(t, StateCancelled, s.State())
}

func TestSessionInitialQueryOpensNarrowed(t *testing.T) {
	s := mustSession(t, planRows(), []string{"Title"}, Options{InitialQuery: "level"})

	assert.Equal(t, "level", s.Query())
	assert.Equal(t, 2, s.ViewLen())
	assert.Equal(t, StateFiltering, s.State())
}

func TestSessionIDsAreUnique(t *testing.T) {
	a := mustSession(t, nil, []string{"Name"}, Options{})
	b := mustSession(t, nil, []string{"Name"}, Options{})
	assert.NotEqual(t, a.ID(), b.ID())
}
