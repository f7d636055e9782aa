// Package sqlitedoc implements host.Document on a local SQLite database.
// It is the model store the gridpick commands run against.
package sqlitedoc

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/bkanis/gridpick/internal/host"
)

// Doc is a SQLite-backed host document.
type Doc struct {
	db *sql.DB
}

// Open opens (creating if needed) the model database at path and applies the
// schema. The database runs in WAL mode with a single writer connection,
// which is how SQLite behaves best under our access pattern.
func Open(path string) (*Doc, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create model directory: %w", err)
	}

	// modernc.org/sqlite takes pragmas in the DSN as _pragma=name(value).
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open model database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect to model database: %w", err)
	}

	d := &Doc{db: db}
	if err := d.migrate(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate model database: %w", err)
	}
	return d, nil
}

func (d *Doc) migrate(ctx context.Context) error {
	const schema = `
CREATE TABLE IF NOT EXISTS elements (
	id       INTEGER PRIMARY KEY,
	category TEXT NOT NULL,
	name     TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_elements_category ON elements(category);

CREATE TABLE IF NOT EXISTS params (
	element_id INTEGER NOT NULL REFERENCES elements(id) ON DELETE CASCADE,
	name       TEXT NOT NULL,
	value      TEXT NOT NULL,
	PRIMARY KEY (element_id, name)
);

CREATE TABLE IF NOT EXISTS queues (
	queue      TEXT NOT NULL,
	element_id INTEGER NOT NULL REFERENCES elements(id) ON DELETE CASCADE,
	queued_at  TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ','now'))
);
CREATE INDEX IF NOT EXISTS idx_queues_queue ON queues(queue);
`
	_, err := d.db.ExecContext(ctx, schema)
	return err
}

// Close closes the underlying database.
func (d *Doc) Close() error { return d.db.Close() }

// Categories lists the distinct categories present in the model.
func (d *Doc) Categories(ctx context.Context) ([]string, error) {
	rows, err := d.db.QueryContext(ctx, `SELECT DISTINCT category FROM elements ORDER BY category`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Elements returns every element of the category with its parameters, in
// element-id order so callers see a stable model order across runs.
func (d *Doc) Elements(ctx context.Context, category string) ([]host.Element, error) {
	rows, err := d.db.QueryContext(ctx,
		`SELECT id, name FROM elements WHERE category = ? ORDER BY id`, category)
	if err != nil {
		return nil, fmt.Errorf("list %s elements: %w", category, err)
	}
	defer rows.Close()

	var elems []host.Element
	byID := map[int64]int{}
	for rows.Next() {
		var e host.Element
		if err := rows.Scan(&e.ID, &e.Name); err != nil {
			return nil, err
		}
		e.Category = category
		e.Params = map[string]string{}
		byID[e.ID] = len(elems)
		elems = append(elems, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	prows, err := d.db.QueryContext(ctx, `
SELECT p.element_id, p.name, p.value
FROM params p JOIN elements e ON e.id = p.element_id
WHERE e.category = ?`, category)
	if err != nil {
		return nil, fmt.Errorf("load %s parameters: %w", category, err)
	}
	defer prows.Close()

	for prows.Next() {
		var (
			id          int64
			name, value string
		)
		if err := prows.Scan(&id, &name, &value); err != nil {
			return nil, err
		}
		if i, ok := byID[id]; ok {
			elems[i].Params[name] = value
		}
	}
	return elems, prows.Err()
}

// Transaction runs fn atomically. The name is recorded on queue entries made
// inside the transaction and otherwise serves logging.
func (d *Doc) Transaction(ctx context.Context, name string, fn func(tx host.Tx) error) error {
	sqlTx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction %q: %w", name, err)
	}
	t := &tx{ctx: ctx, tx: sqlTx}
	if err := fn(t); err != nil {
		if rbErr := sqlTx.Rollback(); rbErr != nil {
			return fmt.Errorf("transaction %q: %w (rollback: %v)", name, err, rbErr)
		}
		return fmt.Errorf("transaction %q: %w", name, err)
	}
	if err := sqlTx.Commit(); err != nil {
		return fmt.Errorf("commit transaction %q: %w", name, err)
	}
	return nil
}

// tx implements host.Tx over a sql.Tx.
type tx struct {
	ctx context.Context
	tx  *sql.Tx
}

func (t *tx) SetParam(elementID int64, name, value string) error {
	_, err := t.tx.ExecContext(t.ctx, `
INSERT INTO params (element_id, name, value) VALUES (?, ?, ?)
ON CONFLICT (element_id, name) DO UPDATE SET value = excluded.value`,
		elementID, name, value)
	return err
}

func (t *tx) Enqueue(queue string, elementID int64) error {
	_, err := t.tx.ExecContext(t.ctx,
		`INSERT INTO queues (queue, element_id) VALUES (?, ?)`, queue, elementID)
	return err
}

// Queued returns the element ids currently sitting in a queue, oldest first.
func (d *Doc) Queued(ctx context.Context, queue string) ([]int64, error) {
	rows, err := d.db.QueryContext(ctx,
		`SELECT element_id FROM queues WHERE queue = ? ORDER BY rowid`, queue)
	if err != nil {
		return nil, fmt.Errorf("list queue %q: %w", queue, err)
	}
	defer rows.Close()

	var out []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}
