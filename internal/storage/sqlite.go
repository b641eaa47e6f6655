package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/meltforce/liftlog/internal/models"
)

// SQLiteGateway is the single-box store: same append-only row semantics as
// the sheet, kept in a local file. Used for dev and for deployments without
// a spreadsheet or Postgres.
type SQLiteGateway struct {
	db      *sql.DB
	headers map[string][]string
}

// OpenSQLiteGateway opens (or creates) the database file and its schema.
func OpenSQLiteGateway(path string, headers map[string][]string) (*SQLiteGateway, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating data dir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS sheet_rows (
		id    INTEGER PRIMARY KEY AUTOINCREMENT,
		tab   TEXT NOT NULL,
		cells TEXT NOT NULL
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating sheet_rows table: %w", err)
	}

	return &SQLiteGateway{db: db, headers: headers}, nil
}

// Close closes the underlying database.
func (g *SQLiteGateway) Close() error {
	return g.db.Close()
}

// ReadAll returns every row of a table in append order.
func (g *SQLiteGateway) ReadAll(ctx context.Context, table string) ([]Row, error) {
	header, ok := g.headers[table]
	if !ok {
		return nil, fmt.Errorf("unknown table %q", table)
	}

	dbRows, err := g.db.QueryContext(ctx,
		`SELECT cells FROM sheet_rows WHERE tab = ? ORDER BY id ASC`, table)
	if err != nil {
		return nil, &models.StoreUnavailableError{Op: "read", Table: table, Err: err}
	}
	defer dbRows.Close()

	var result []Row
	for dbRows.Next() {
		var raw string
		if err := dbRows.Scan(&raw); err != nil {
			return nil, &models.StoreUnavailableError{Op: "read", Table: table, Err: err}
		}
		var values []string
		if err := json.Unmarshal([]byte(raw), &values); err != nil {
			return nil, fmt.Errorf("decoding row cells: %w", err)
		}
		result = append(result, zipRow(header, values))
	}
	if err := dbRows.Err(); err != nil {
		return nil, &models.StoreUnavailableError{Op: "read", Table: table, Err: err}
	}
	return result, nil
}

// AppendRow inserts one row at the end of a table.
func (g *SQLiteGateway) AppendRow(ctx context.Context, table string, values []string) error {
	cells, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("encoding row cells: %w", err)
	}
	_, err = g.db.ExecContext(ctx,
		`INSERT INTO sheet_rows (tab, cells) VALUES (?, ?)`, table, string(cells))
	if err != nil {
		return &models.StoreUnavailableError{Op: "append", Table: table, Err: err}
	}
	return nil
}
