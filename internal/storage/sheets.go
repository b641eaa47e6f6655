package storage

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/meltforce/liftlog/internal/models"
)

// SheetsGateway reads and appends rows in a Google Sheet. Each table maps to
// a tab whose first row is the column header. This is the production store:
// the workout log lives in a shared spreadsheet both athletes can open.
type SheetsGateway struct {
	svc           *sheets.Service
	spreadsheetID string
}

// NewSheetsGateway builds a Sheets client from service-account JSON
// credentials.
func NewSheetsGateway(ctx context.Context, credentialsJSON []byte, spreadsheetID string) (*SheetsGateway, error) {
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsJSON(credentialsJSON),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("creating sheets service: %w", err)
	}
	return &SheetsGateway{svc: svc, spreadsheetID: spreadsheetID}, nil
}

// ReadAll fetches a whole tab. The first row is treated as the header; an
// empty tab (or header-only tab) yields no rows.
func (g *SheetsGateway) ReadAll(ctx context.Context, table string) ([]Row, error) {
	resp, err := g.svc.Spreadsheets.Values.Get(g.spreadsheetID, table).Context(ctx).Do()
	if err != nil {
		return nil, &models.StoreUnavailableError{Op: "read", Table: table, Err: err}
	}
	if len(resp.Values) < 2 {
		return nil, nil
	}

	header := make([]string, len(resp.Values[0]))
	for i, cell := range resp.Values[0] {
		header[i] = fmt.Sprint(cell)
	}

	rows := make([]Row, 0, len(resp.Values)-1)
	for _, raw := range resp.Values[1:] {
		values := make([]string, len(raw))
		for i, cell := range raw {
			values[i] = fmt.Sprint(cell)
		}
		rows = append(rows, zipRow(header, values))
	}
	return rows, nil
}

// AppendRow appends one row below the tab's existing data. USER_ENTERED
// keeps the sheet rendering dates and numbers the way a manual entry would.
func (g *SheetsGateway) AppendRow(ctx context.Context, table string, values []string) error {
	cells := make([]any, len(values))
	for i, v := range values {
		cells[i] = v
	}
	vr := &sheets.ValueRange{Values: [][]any{cells}}

	_, err := g.svc.Spreadsheets.Values.Append(g.spreadsheetID, table, vr).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return &models.StoreUnavailableError{Op: "append", Table: table, Err: err}
	}
	return nil
}
