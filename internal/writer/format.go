package writer

import "strings"

// FormatRow renders one CSV line without a trailing newline. Every field
// is wrapped in double quotes with internal quotes doubled, regardless of
// content; unconditional quoting keeps commas and newlines inside values
// inert without inspecting them.
func FormatRow(values []string) string {
	var b strings.Builder
	for i, v := range values {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(v, `"`, `""`))
		b.WriteByte('"')
	}
	return b.String()
}
