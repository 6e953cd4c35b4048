// Package pathcheck validates output file paths before anything is written.
package pathcheck

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrInvalidPath is returned for empty, traversal-suspect or non-CSV paths.
var ErrInvalidPath = errors.New("invalid path")

// Validate rejects unsafe output paths and resolves safe ones to an
// absolute, cleaned form.
//
// The traversal check is textual: any path containing ".." is rejected,
// including legitimate names such as "report..final.csv". That
// over-rejection is accepted; the check stays safe without canonicalizing
// first. Validate does not confine the result to any root directory — use
// ValidateUnder when a confinement root is configured.
func Validate(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", fmt.Errorf("%w: path is empty", ErrInvalidPath)
	}
	if strings.Contains(raw, "..") {
		return "", fmt.Errorf("%w: path traversal detected in %q", ErrInvalidPath, raw)
	}
	if !strings.HasSuffix(strings.ToLower(raw), ".csv") {
		return "", fmt.Errorf("%w: %q must have a .csv extension", ErrInvalidPath, raw)
	}

	abs, err := filepath.Abs(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPath, err)
	}
	return abs, nil
}

// ValidateUnder runs Validate and additionally requires the resolved path
// to live under root. Symlinks below root are not chased; confinement is a
// lexical check on the resolved path.
func ValidateUnder(raw, root string) (string, error) {
	abs, err := Validate(raw)
	if err != nil {
		return "", err
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("%w: bad confinement root %q: %v", ErrInvalidPath, root, err)
	}

	rel, err := filepath.Rel(absRoot, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q resolves outside root %q", ErrInvalidPath, raw, root)
	}
	return abs, nil
}
