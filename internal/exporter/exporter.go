// Package exporter runs SQL queries and exports result sets as hardened CSV.
package exporter

import (
	"database/sql"
	"fmt"

	"github.com/csvguard/csvguard-go/internal/writer"
)

// Result contains the outcome of a query export.
type Result struct {
	RowCount int
}

// Execute runs query against db and writes the result set through the
// secure writer, so exported cells get the same formula-injection
// treatment as any other output. Column order follows the query's select
// list. A query with no result rows fails with writer.ErrEmptyInput
// before the output file is touched.
//
// A nil w exports with the default output policy.
func Execute(db *sql.DB, query, outputPath string, w *writer.Writer) (*Result, error) {
	if w == nil {
		w = &writer.Writer{}
	}

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to get columns: %w", err)
	}

	values := make([]any, len(columns))
	valuePtrs := make([]any, len(columns))
	for i := range values {
		valuePtrs[i] = &values[i]
	}

	var records []*writer.Record
	for rows.Next() {
		if err := rows.Scan(valuePtrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		rec := writer.NewRecord()
		for i, col := range columns {
			rec.Set(col, values[i])
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	if err := w.Write(outputPath, records, columns); err != nil {
		return nil, err
	}

	return &Result{RowCount: len(records)}, nil
}
