package exporter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/csvguard/csvguard-go/internal/database"
	"github.com/csvguard/csvguard-go/internal/writer"
)

func seedDatabase(t *testing.T) *database.DB {
	t.Helper()

	db, err := database.Open("")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec("CREATE TABLE players (name TEXT, score INTEGER)")
	require.NoError(t, err)

	_, err = db.Exec(
		"INSERT INTO players (name, score) VALUES (?, ?), (?, ?), (?, ?)",
		"Alice", 95, "=SUM(A1:A10)", 100, "Bob", 87,
	)
	require.NoError(t, err)

	return db
}

func TestExecuteExportsSanitized(t *testing.T) {
	db := seedDatabase(t)
	outputPath := filepath.Join(t.TempDir(), "output.csv")

	result, err := Execute(db.DB, "SELECT name, score FROM players ORDER BY score", outputPath, nil)
	require.NoError(t, err)
	require.Equal(t, 3, result.RowCount)

	content, err := os.ReadFile(outputPath)
	require.NoError(t, err)

	want := "\"name\",\"score\"\n" +
		"\"Bob\",\"87\"\n" +
		"\"Alice\",\"95\"\n" +
		"\"'=SUM(A1:A10)\",\"100\"\n"
	require.Equal(t, want, string(content))
}

func TestExecuteBadQuery(t *testing.T) {
	db := seedDatabase(t)
	outputPath := filepath.Join(t.TempDir(), "output.csv")

	_, err := Execute(db.DB, "SELECT * FROM nope", outputPath, nil)
	require.Error(t, err)
}

func TestExecuteEmptyResult(t *testing.T) {
	db := seedDatabase(t)
	outputPath := filepath.Join(t.TempDir(), "output.csv")

	_, err := Execute(db.DB, "SELECT name FROM players WHERE score > 1000", outputPath, nil)
	require.ErrorIs(t, err, writer.ErrEmptyInput)

	_, statErr := os.Stat(outputPath)
	require.True(t, os.IsNotExist(statErr))
}

func TestExecuteHonorsWriterPolicy(t *testing.T) {
	db := seedDatabase(t)
	root := t.TempDir()
	w := &writer.Writer{Root: root}

	outside := filepath.Join(t.TempDir(), "output.csv")
	_, err := Execute(db.DB, "SELECT name FROM players", outside, w)
	require.Error(t, err)

	inside := filepath.Join(root, "output.csv")
	result, err := Execute(db.DB, "SELECT name FROM players", inside, w)
	require.NoError(t, err)
	require.Equal(t, 3, result.RowCount)
}
