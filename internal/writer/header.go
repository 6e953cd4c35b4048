package writer

import "strings"

// TokenizeHeader splits a single CSV header line into trimmed column
// names. A doubled quote inside a quoted field collapses to one literal
// quote; a comma splits fields only outside quotes. An unterminated quote
// consumes the rest of the line into the final field. Embedded newlines
// are not handled — the header is one physical line.
func TokenizeHeader(line string) []string {
	var fields []string
	var current strings.Builder
	inQuotes := false

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '"':
			if inQuotes && i+1 < len(line) && line[i+1] == '"' {
				current.WriteByte('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case c == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteByte(c)
		}
	}
	fields = append(fields, strings.TrimSpace(current.String()))

	return fields
}
