package storage

import (
	"context"
	"fmt"
	"os"

	"github.com/meltforce/liftlog/internal/config"
)

// Open constructs the gateway named by the store config. The returned
// cleanup func releases whatever the backend holds open; it is safe to call
// once, always.
func Open(ctx context.Context, cfg config.StoreConfig, headers map[string][]string) (Gateway, func(), error) {
	switch cfg.Backend {
	case "sheets":
		creds, err := os.ReadFile(cfg.Sheets.CredentialsFile)
		if err != nil {
			return nil, nil, fmt.Errorf("reading sheets credentials: %w", err)
		}
		gw, err := NewSheetsGateway(ctx, creds, cfg.Sheets.SpreadsheetID)
		if err != nil {
			return nil, nil, err
		}
		return gw, func() {}, nil

	case "postgres":
		gw, err := NewPostgresGateway(ctx, cfg.Database.DSN(), headers)
		if err != nil {
			return nil, nil, err
		}
		return gw, gw.Close, nil

	case "sqlite":
		gw, err := OpenSQLiteGateway(cfg.SQLite.Path, headers)
		if err != nil {
			return nil, nil, err
		}
		return gw, func() { _ = gw.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}
