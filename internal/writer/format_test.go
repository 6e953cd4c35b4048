package writer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatRow(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   string
	}{
		{"empty row", []string{}, ""},
		{"single value", []string{"a"}, `"a"`},
		{"plain values", []string{"a", "b", "c"}, `"a","b","c"`},
		{"empty fields", []string{"", ""}, `"",""`},
		{"internal comma", []string{"a,b", "c"}, `"a,b","c"`},
		{"internal quote", []string{`x"y`, "z"}, `"x""y","z"`},
		{"internal newline", []string{"a\nb"}, "\"a\nb\""},
		{"sanitized formula", []string{"'=SUM(A1:A10)", "100"}, `"'=SUM(A1:A10)","100"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, FormatRow(tt.values))
		})
	}
}

// Every field must be quoted and the number of top-level commas must be
// exactly len(values)-1, whatever the content.
func TestFormatRowQuotingInvariant(t *testing.T) {
	values := []string{"plain", "with,comma", `with"quote`, "", "multi\nline"}
	line := FormatRow(values)

	topLevelCommas := 0
	inQuotes := false
	for i := 0; i < len(line); i++ {
		switch {
		case line[i] == '"':
			if inQuotes && i+1 < len(line) && line[i+1] == '"' {
				i++
			} else {
				inQuotes = !inQuotes
			}
		case line[i] == ',' && !inQuotes:
			topLevelCommas++
		}
	}
	require.Equal(t, len(values)-1, topLevelCommas)
	require.True(t, strings.HasPrefix(line, `"`))
	require.True(t, strings.HasSuffix(line, `"`))
}
