package storage

import "context"

// Row is one record from the store, keyed by column header exactly as the
// store reports it. All values are raw strings; parsing is the normalizer's
// job.
type Row map[string]string

// Gateway is the record store boundary. Reads return the whole table; writes
// append a single ordered row. Calls are synchronous and are not retried: a
// failure surfaces once to the caller, wrapped in
// models.StoreUnavailableError. Durability is the store's responsibility.
type Gateway interface {
	ReadAll(ctx context.Context, table string) ([]Row, error)
	AppendRow(ctx context.Context, table string, values []string) error
}

// zipRow pairs an ordered header with an ordered value slice. Short rows
// leave trailing columns empty; extra cells beyond the header are dropped.
func zipRow(header, values []string) Row {
	row := make(Row, len(header))
	for i, col := range header {
		if i < len(values) {
			row[col] = values[i]
		} else {
			row[col] = ""
		}
	}
	return row
}
