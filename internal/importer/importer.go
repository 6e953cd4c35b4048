package importer

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/csvguard/csvguard-go/internal/writer"
)

// ReadRecords parses a CSV/TSV file into records keyed by its header row.
// The first row names the columns; rows shorter than the header leave the
// trailing columns absent, extra cells beyond the header are dropped.
// Returns the records and the header's column order.
func ReadRecords(filePath string, delimiter rune) ([]*writer.Record, []string, error) {
	file, err := OpenFile(filePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	columns, err := reader.Read()
	if err == io.EOF {
		return nil, nil, fmt.Errorf("input file %s is empty", filePath)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read header: %w", err)
	}

	var records []*writer.Record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read row: %w", err)
		}

		rec := writer.NewRecord()
		for i, col := range columns {
			if i < len(row) {
				rec.Set(col, row[i])
			}
		}
		records = append(records, rec)
	}

	return records, columns, nil
}
