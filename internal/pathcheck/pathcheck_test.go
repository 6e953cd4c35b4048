package pathcheck

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative csv", "reports/out.csv", false},
		{"plain csv", "data.csv", false},
		{"uppercase extension", "DATA.CSV", false},
		{"absolute csv", "/tmp/out.csv", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"traversal", "../etc/passwd.csv", true},
		{"traversal in middle", "a/../b.csv", true},
		{"dotdot in filename", "report..final.csv", true},
		{"wrong extension", "data.txt", true},
		{"no extension", "data", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Validate(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidPath) {
					t.Errorf("Validate(%q) error = %v, want ErrInvalidPath", tt.input, err)
				}
				return
			}
			if !filepath.IsAbs(got) {
				t.Errorf("Validate(%q) = %q, want absolute path", tt.input, got)
			}
		})
	}
}

func TestValidateUnder(t *testing.T) {
	root := t.TempDir()

	inside := filepath.Join(root, "reports", "out.csv")
	got, err := ValidateUnder(inside, root)
	if err != nil {
		t.Fatalf("ValidateUnder(%q, %q) error = %v", inside, root, err)
	}
	if !strings.HasPrefix(got, root) {
		t.Errorf("ValidateUnder() = %q, want path under %q", got, root)
	}

	outside := filepath.Join(t.TempDir(), "out.csv")
	if _, err := ValidateUnder(outside, root); !errors.Is(err, ErrInvalidPath) {
		t.Errorf("ValidateUnder(%q, %q) error = %v, want ErrInvalidPath", outside, root, err)
	}
}
