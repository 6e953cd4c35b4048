// Package writer writes and appends spreadsheet-safe CSV files.
//
// Every cell passes through the formula-injection sanitizer, every output
// field is quoted, the target path is validated before any file is
// touched, and newly created files get restrictive permissions where the
// platform supports them.
package writer

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/csvguard/csvguard-go/internal/pathcheck"
	"github.com/csvguard/csvguard-go/internal/sanitize"
)

// DefaultPerm is the mode applied to created files: owner read/write,
// group and others read-only.
const DefaultPerm fs.FileMode = 0o644

var (
	// ErrEmptyInput is returned when a write or append gets no records.
	ErrEmptyInput = errors.New("no records to write")

	// ErrNoHeader is returned when an append target's first line is blank.
	ErrNoHeader = errors.New("existing csv file has no header")
)

// Writer holds output policy. The zero value validates paths without root
// confinement and creates files with DefaultPerm.
type Writer struct {
	// Root, when non-empty, confines validated output paths to this
	// directory.
	Root string

	// Perm is the file mode applied after creation; zero means DefaultPerm.
	Perm fs.FileMode
}

// Write creates or truncates the CSV file at path. The header row comes
// from columns, or from the first record's insertion order when columns is
// nil. Column names are sanitized like data cells — a header opened in a
// spreadsheet is just as exposed. Missing record keys become empty cells.
// The parent directory is created if needed.
//
// Validation failures (ErrEmptyInput, pathcheck.ErrInvalidPath) are
// returned before any file is touched.
func (w *Writer) Write(path string, records []*Record, columns []string) error {
	if len(records) == 0 {
		return ErrEmptyInput
	}

	safePath, err := w.checkPath(path)
	if err != nil {
		return err
	}

	if len(columns) == 0 {
		columns = records[0].Columns()
	}
	header := sanitize.Header(columns)

	if err := os.MkdirAll(filepath.Dir(safePath), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	file, err := os.Create(safePath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	buf := bufio.NewWriter(file)
	if err := writeLine(buf, FormatRow(header)); err != nil {
		file.Close()
		return err
	}
	for _, rec := range records {
		if err := writeLine(buf, FormatRow(sanitizedRow(rec, columns))); err != nil {
			file.Close()
			return err
		}
	}
	if err := buf.Flush(); err != nil {
		file.Close()
		return fmt.Errorf("failed to write output file: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}

	w.restrictPerms(safePath)
	return nil
}

// Append adds records to an existing CSV file, reusing the column order
// recovered from its header line. Existing content is left untouched.
func (w *Writer) Append(path string, records []*Record) error {
	if len(records) == 0 {
		return ErrEmptyInput
	}

	safePath, err := w.checkPath(path)
	if err != nil {
		return err
	}

	columns, err := readHeaderColumns(safePath)
	if err != nil {
		return err
	}

	file, err := os.OpenFile(safePath, os.O_WRONLY|os.O_APPEND, 0)
	if err != nil {
		return fmt.Errorf("failed to open file for append: %w", err)
	}

	buf := bufio.NewWriter(file)
	for _, rec := range records {
		if err := writeLine(buf, FormatRow(sanitizedRow(rec, columns))); err != nil {
			file.Close()
			return err
		}
	}
	if err := buf.Flush(); err != nil {
		file.Close()
		return fmt.Errorf("failed to append to file: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}

	return nil
}

// Write writes records to path with the default policy.
func Write(path string, records []*Record, columns []string) error {
	var w Writer
	return w.Write(path, records, columns)
}

// Append appends records to the existing CSV at path with the default
// policy.
func Append(path string, records []*Record) error {
	var w Writer
	return w.Append(path, records)
}

func (w *Writer) checkPath(path string) (string, error) {
	if w.Root != "" {
		return pathcheck.ValidateUnder(path, w.Root)
	}
	return pathcheck.Validate(path)
}

// restrictPerms tightens the created file's mode. Failure is never fatal:
// the content write already succeeded and permission bits are best-effort
// hardening, absent entirely on platforms without a POSIX permission
// model.
func (w *Writer) restrictPerms(path string) {
	if runtime.GOOS == "windows" {
		return
	}
	perm := w.Perm
	if perm == 0 {
		perm = DefaultPerm
	}
	_ = os.Chmod(path, perm)
}

// sanitizedRow resolves a record against the fixed column order. Absent
// keys come back as nil and sanitize to empty cells.
func sanitizedRow(rec *Record, columns []string) []string {
	row := make([]string, len(columns))
	for i, col := range columns {
		value, _ := rec.Get(col)
		row[i] = sanitize.Cell(value)
	}
	return row
}

// readHeaderColumns reads the target's first line and recovers its column
// order. Header tokens can carry literal quote characters left over from
// an earlier sanitization pass; those are stripped so the tokens work as
// record lookup keys.
func readHeaderColumns(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open csv file %s: %w", path, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("failed to read header: %w", err)
		}
		return nil, ErrNoHeader
	}
	line := scanner.Text()
	if strings.TrimSpace(line) == "" {
		return nil, ErrNoHeader
	}

	columns := TokenizeHeader(line)
	for i, col := range columns {
		columns[i] = strings.ReplaceAll(col, `"`, "")
	}
	return columns, nil
}

func writeLine(w *bufio.Writer, line string) error {
	if _, err := w.WriteString(line); err != nil {
		return fmt.Errorf("failed to write line: %w", err)
	}
	if err := w.WriteByte('\n'); err != nil {
		return fmt.Errorf("failed to write line: %w", err)
	}
	return nil
}
