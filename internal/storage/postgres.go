package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/meltforce/liftlog/internal/models"
)

// PostgresGateway emulates the sheet's append-only row semantics on
// Postgres. Rows are stored as ordered cell arrays; the header comes from
// configuration since there is no header row to read.
type PostgresGateway struct {
	pool    *pgxpool.Pool
	headers map[string][]string
}

// NewPostgresGateway connects a pool and verifies it with a ping.
func NewPostgresGateway(ctx context.Context, dsn string, headers map[string][]string) (*PostgresGateway, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("creating pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	return &PostgresGateway{pool: pool, headers: headers}, nil
}

// Close closes the connection pool.
func (g *PostgresGateway) Close() {
	g.pool.Close()
}

// RunMigrations applies all pending migrations from the given directory.
func RunMigrations(dsn, migrationsPath string) error {
	m, err := migrate.New("file://"+migrationsPath, dsn)
	if err != nil {
		return fmt.Errorf("creating migrator: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("running migrations: %w", err)
	}
	return nil
}

// ReadAll returns every row of a table in append order.
func (g *PostgresGateway) ReadAll(ctx context.Context, table string) ([]Row, error) {
	header, ok := g.headers[table]
	if !ok {
		return nil, fmt.Errorf("unknown table %q", table)
	}

	dbRows, err := g.pool.Query(ctx,
		`SELECT cells FROM sheet_rows WHERE tab = $1 ORDER BY id ASC`, table)
	if err != nil {
		return nil, &models.StoreUnavailableError{Op: "read", Table: table, Err: err}
	}
	defer dbRows.Close()

	var result []Row
	for dbRows.Next() {
		var raw []byte
		if err := dbRows.Scan(&raw); err != nil {
			return nil, &models.StoreUnavailableError{Op: "read", Table: table, Err: err}
		}
		var values []string
		if err := json.Unmarshal(raw, &values); err != nil {
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
func (g *PostgresGateway) AppendRow(ctx context.Context, table string, values []string) error {
	cells, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("encoding row cells: %w", err)
	}
	_, err = g.pool.Exec(ctx,
		`INSERT INTO sheet_rows (tab, cells) VALUES ($1, $2)`, table, cells)
	if err != nil {
		return &models.StoreUnavailableError{Op: "append", Table: table, Err: err}
	}
	return nil
}
