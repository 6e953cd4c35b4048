// Package sanitize neutralizes spreadsheet formula injection in cell values.
package sanitize

import (
	"fmt"
	"strconv"
	"strings"
)

// dangerousPrefixes are the leading characters that Excel, LibreOffice and
// Google Sheets treat as a formula or command trigger.
const dangerousPrefixes = "=+-@\t\r\n"

// Cell coerces a value to text and defuses formula-trigger prefixes.
// Nil becomes the empty string. When the coerced text starts with a
// character from dangerousPrefixes, a single apostrophe is prepended;
// spreadsheets read a leading apostrophe as "force text".
//
// Internal quote characters are left alone here — quote escaping is the
// row formatter's job.
func Cell(value any) string {
	if value == nil {
		return ""
	}

	s := coerce(value)
	if s == "" {
		return s
	}

	if strings.IndexByte(dangerousPrefixes, s[0]) >= 0 {
		return "'" + s
	}
	return s
}

// Row sanitizes every value of a row.
func Row(values []any) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = Cell(v)
	}
	return out
}

// Header sanitizes column names. Header cells are exposed to spreadsheet
// applications exactly like data cells, so they get the same treatment.
func Header(names []string) []string {
	out := make([]string, len(names))
	for i, name := range names {
		out[i] = Cell(name)
	}
	return out
}

// coerce renders a value as text: strings pass through, byte slices are
// treated as text (SQLite drivers hand TEXT columns back as []byte),
// numbers use plain decimal form, booleans their literal words.
func coerce(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	default:
		return fmt.Sprintf("%v", v)
	}
}
