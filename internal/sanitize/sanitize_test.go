package sanitize

import (
	"reflect"
	"testing"
)

func TestCell(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		// Safe values pass through untouched
		{"nil", nil, ""},
		{"empty", "", ""},
		{"normal_text", "Alice", "Alice"},
		{"internal_equal", "a=b", "a=b"},
		{"internal_quote", `say "hi"`, `say "hi"`},
		{"safe_special", "#001", "#001"},
		{"leading_space", " =1+1", " =1+1"},

		// Formula triggers get the apostrophe prefix
		{"formula_equal", "=SUM(A1:A10)", "'=SUM(A1:A10)"},
		{"formula_plus", "+123", "'+123"},
		{"formula_minus", "-123", "'-123"},
		{"formula_at", "@SUM(A:A)", "'@SUM(A:A)"},
		{"tab_start", "\t=EXEC()", "'\t=EXEC()"},
		{"cr_start", "\r=DATA()", "'\r=DATA()"},
		{"lf_start", "\n=FORMULA()", "'\n=FORMULA()"},

		// Non-string coercion
		{"int", 95, "95"},
		{"float", 12.5, "12.5"},
		{"bool_true", true, "true"},
		{"bool_false", false, "false"},
		{"bytes", []byte("hello"), "hello"},
		{"negative_int", -42, "'-42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Cell(tt.input)
			if got != tt.want {
				t.Errorf("Cell(%v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRow(t *testing.T) {
	input := []any{"Alice", "=SUM(A1:A10)", 100, nil, "@cmd"}
	want := []string{"Alice", "'=SUM(A1:A10)", "100", "", "'@cmd"}

	got := Row(input)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Row() = %v, want %v", got, want)
	}
}

func TestHeader(t *testing.T) {
	input := []string{"name", "=evil", "score"}
	want := []string{"name", "'=evil", "score"}

	got := Header(input)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Header() = %v, want %v", got, want)
	}
}
