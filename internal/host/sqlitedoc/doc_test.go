package sqlitedoc

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bkanis/gridpick/internal/host"
)

func openTestDoc(t *testing.T) *Doc {
	t.Helper()
	d, err := Open(filepath.Join(t.TempDir(), "model.db"))
	require.NoError(t, err)
	t.Cleanup(func() { d.Close() })
	return d
}

func TestSeedAndEnumerate(t *testing.T) {
	ctx := context.Background()
	d := openTestDoc(t)
	require.NoError(t, d.Seed(ctx))

	cats, err := d.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Level", "Sheet", "View", "Wall"}, cats)

	views, err := d.Elements(ctx, "View")
	require.NoError(t, err)
	require.Len(t, views, 5)
	assert.Equal(t, "Level 1 Plan", views[0].Name)
	assert.Equal(t, "Floor Plan", views[0].Param("View Type"))
	assert.Equal(t, "", views[0].Param("No Such Param"))
}

func TestSeedRefusesNonEmptyModel(t *testing.T) {
	ctx := context.Background()
	d := openTestDoc(t)
	require.NoError(t, d.Seed(ctx))
	assert.Error(t, d.Seed(ctx))
}

func TestTransactionSetParamAndEnqueue(t *testing.T) {
	ctx := context.Background()
	d := openTestDoc(t)
	require.NoError(t, d.Seed(ctx))

	sheets, err := d.Elements(ctx, "Sheet")
	require.NoError(t, err)
	require.NotEmpty(t, sheets)

	target := sheets[1]
	err = d.Transaction(ctx, "Queue sheets", func(tx host.Tx) error {
		if err := tx.SetParam(target.ID, "Print Status", "queued"); err != nil {
			return err
		}
		return tx.Enqueue("print", target.ID)
	})
	require.NoError(t, err)

	sheets, err = d.Elements(ctx, "Sheet")
	require.NoError(t, err)
	assert.Equal(t, "queued", sheets[1].Param("Print Status"))

	queued, err := d.Queued(ctx, "print")
	require.NoError(t, err)
	assert.Equal(t, []int64{target.ID}, queued)
}

func TestTransactionRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	d := openTestDoc(t)
	require.NoError(t, d.Seed(ctx))

	walls, err := d.Elements(ctx, "Wall")
	require.NoError(t, err)
	require.NotEmpty(t, walls)

	boom := assert.AnError
	err = d.Transaction(ctx, "Tag walls", func(tx host.Tx) error {
		if err := tx.SetParam(walls[0].ID, "Tag", "fire-rated"); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	walls, err = d.Elements(ctx, "Wall")
	require.NoError(t, err)
	assert.Equal(t, "", walls[0].Param("Tag"))
}
