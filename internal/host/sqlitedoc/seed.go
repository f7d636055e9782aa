package sqlitedoc

import (
	"context"
	"fmt"

	"github.com/bkanis/gridpick/internal/host"
)

// demoElement is one row of the seed model.
type demoElement struct {
	category string
	name     string
	params   map[string]string
}

var demoModel = []demoElement{
	{"Level", "Level 1", map[string]string{"Elevation": "0.0"}},
	{"Level", "Level 2", map[string]string{"Elevation": "3.2"}},
	{"Level", "Roof", map[string]string{"Elevation": "6.4"}},

	{"View", "Level 1 Plan", map[string]string{"View Type": "Floor Plan", "Scale": "1:100"}},
	{"View", "Level 2 Plan", map[string]string{"View Type": "Floor Plan", "Scale": "1:100"}},
	{"View", "Site Plan", map[string]string{"View Type": "Site", "Scale": "1:500"}},
	{"View", "North Elevation", map[string]string{"View Type": "Elevation", "Scale": "1:100"}},
	{"View", "Section A-A", map[string]string{"View Type": "Section", "Scale": "1:50"}},

	{"Sheet", "Cover", map[string]string{"Sheet Number": "A-000"}},
	{"Sheet", "Floor Plans", map[string]string{"Sheet Number": "A-101"}},
	{"Sheet", "Elevations", map[string]string{"Sheet Number": "A-201"}},
	{"Sheet", "Sections", map[string]string{"Sheet Number": "A-301"}},

	{"Wall", "Basic Wall: Exterior 200", map[string]string{"Level": "Level 1", "Length": "12.5"}},
	{"Wall", "Basic Wall: Exterior 200", map[string]string{"Level": "Level 2", "Length": "12.5"}},
	{"Wall", "Basic Wall: Partition 100", map[string]string{"Level": "Level 1", "Length": "4.2"}},
}

// Seed populates an empty model with the demo project. Seeding a non-empty
// model is refused rather than merged.
func (d *Doc) Seed(ctx context.Context) error {
	var n int
	if err := d.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM elements`).Scan(&n); err != nil {
		return fmt.Errorf("inspect model: %w", err)
	}
	if n > 0 {
		return fmt.Errorf("model already contains %d elements; refusing to seed", n)
	}

	return d.Transaction(ctx, "Seed demo model", func(htx host.Tx) error {
		t := htx.(*tx)
		for _, e := range demoModel {
			res, err := t.tx.ExecContext(ctx,
				`INSERT INTO elements (category, name) VALUES (?, ?)`, e.category, e.name)
			if err != nil {
				return err
			}
			id, err := res.LastInsertId()
			if err != nil {
				return err
			}
			for pname, pvalue := range e.params {
				if err := t.SetParam(id, pname, pvalue); err != nil {
					return err
				}
			}
		}
		return nil
	})
}
