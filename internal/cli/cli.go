// Package cli provides the command-line interface for csvguard.
package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/csvguard/csvguard-go/internal/config"
	"github.com/csvguard/csvguard-go/internal/database"
	"github.com/csvguard/csvguard-go/internal/exporter"
	"github.com/csvguard/csvguard-go/internal/importer"
	"github.com/csvguard/csvguard-go/internal/writer"
)

var (
	// Colors for output
	successColor = color.New(color.FgGreen, color.Bold)
	infoColor    = color.New(color.FgCyan)
)

var rootCmd = &cobra.Command{
	Use:   "csvguard",
	Short: "Write spreadsheet-safe CSV files",
	Long: `csvguard - hardened CSV writing

Sanitizes tabular data against spreadsheet formula injection and writes
fully quoted CSV files with validated output paths and restrictive file
permissions.

Features:
  • Formula-injection sanitization of every cell, headers included
  • Every output field quoted, internal quotes doubled
  • Output path validation: traversal check, .csv extension, optional root
  • Append to an existing file reusing its header's column order
  • Export SQLite query results as hardened CSV`,
	Example: `  # Re-write an untrusted CSV as a hardened one
  csvguard write -i raw.csv -o safe.csv

  # Append rows from another file, column order taken from safe.csv's header
  csvguard append -i more.csv -o safe.csv

  # Export a query from a SQLite database
  csvguard export -d app.db -q "SELECT name, score FROM players" -o report.csv`,
}

var writeCmd = &cobra.Command{
	Use:   "write",
	Short: "Write a hardened CSV from an input CSV/TSV file",
	RunE:  runWrite,
}

var appendCmd = &cobra.Command{
	Use:   "append",
	Short: "Append rows from an input CSV/TSV to an existing hardened CSV",
	RunE:  runAppend,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export SQLite query results as a hardened CSV",
	RunE:  runExport,
}

var demoCmd = &cobra.Command{
	Use:   "demo [output.csv]",
	Short: "Write and append a small sample dataset",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDemo,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Optional YAML config file with defaults (root, permissions)")
	rootCmd.PersistentFlags().String("root", "", "Confine output paths to this directory")
	rootCmd.PersistentFlags().String("perm", "", "Octal file mode for created files (default: 0644)")

	for _, cmd := range []*cobra.Command{writeCmd, appendCmd} {
		cmd.Flags().StringP("input", "i", "", "Input CSV/TSV file (.gz and .bz2 supported)")
		cmd.Flags().StringP("output", "o", "", "Output CSV file path")
		cmd.Flags().String("delimiter", "auto", "Input delimiter: 'comma', 'tab', or 'auto'")
		_ = cmd.MarkFlagRequired("input")
		_ = cmd.MarkFlagRequired("output")
	}

	exportCmd.Flags().StringP("db", "d", "", "SQLite database path")
	exportCmd.Flags().StringP("query", "q", "", "SQL query to execute")
	exportCmd.Flags().StringP("output", "o", "", "Output CSV file path")
	_ = exportCmd.MarkFlagRequired("db")
	_ = exportCmd.MarkFlagRequired("query")
	_ = exportCmd.MarkFlagRequired("output")

	rootCmd.AddCommand(writeCmd, appendCmd, exportCmd, demoCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// outputWriter builds the output policy from flags layered over config
// file / environment defaults.
func outputWriter(cmd *cobra.Command) (*writer.Writer, error) {
	configPath, _ := cmd.Flags().GetString("config")
	defaults, err := config.LoadDefaults(configPath)
	if err != nil {
		return nil, err
	}

	root, _ := cmd.Flags().GetString("root")
	if root == "" {
		root = defaults.Root
	}

	permStr, _ := cmd.Flags().GetString("perm")
	if permStr == "" {
		permStr = defaults.Permissions
	}
	perm, err := config.ParsePermissions(permStr)
	if err != nil {
		return nil, err
	}

	return &writer.Writer{Root: root, Perm: perm}, nil
}

func readInput(cmd *cobra.Command) ([]*writer.Record, []string, error) {
	inputFile, _ := cmd.Flags().GetString("input")
	delimiterStr, _ := cmd.Flags().GetString("delimiter")

	delimiter, err := config.ParseDelimiter(delimiterStr)
	if err != nil {
		return nil, nil, err
	}
	if delimiter == 0 {
		delimiter = importer.DetectDelimiter(inputFile)
	}

	infoColor.Printf("Reading %s\n", inputFile)
	return importer.ReadRecords(inputFile, delimiter)
}

func runWrite(cmd *cobra.Command, args []string) error {
	w, err := outputWriter(cmd)
	if err != nil {
		return err
	}

	records, columns, err := readInput(cmd)
	if err != nil {
		return err
	}

	outputFile, _ := cmd.Flags().GetString("output")
	if err := w.Write(outputFile, records, columns); err != nil {
		return err
	}

	successColor.Printf("✓ Wrote %d rows to %s\n", len(records), outputFile)
	return nil
}

func runAppend(cmd *cobra.Command, args []string) error {
	w, err := outputWriter(cmd)
	if err != nil {
		return err
	}

	records, _, err := readInput(cmd)
	if err != nil {
		return err
	}

	outputFile, _ := cmd.Flags().GetString("output")
	if err := w.Append(outputFile, records); err != nil {
		return err
	}

	successColor.Printf("✓ Appended %d rows to %s\n", len(records), outputFile)
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	w, err := outputWriter(cmd)
	if err != nil {
		return err
	}

	dbPath, _ := cmd.Flags().GetString("db")
	query, _ := cmd.Flags().GetString("query")
	outputFile, _ := cmd.Flags().GetString("output")

	db, err := database.OpenExisting(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	infoColor.Printf("Executing query against %s\n", dbPath)
	result, err := exporter.Execute(db.DB, query, outputFile, w)
	if err != nil {
		return fmt.Errorf("failed to export query: %w", err)
	}

	successColor.Printf("✓ Exported %d rows to %s\n", result.RowCount, outputFile)
	return nil
}

func runDemo(cmd *cobra.Command, args []string) error {
	w, err := outputWriter(cmd)
	if err != nil {
		return err
	}

	outputFile := "output.csv"
	if len(args) > 0 {
		outputFile = args[0]
	}

	records := []*writer.Record{
		writer.NewRecord().Set("name", "Alice").Set("email", "alice@example.com").Set("score", 95),
		writer.NewRecord().Set("name", "Bob").Set("email", "bob@example.com").Set("score", 87),
		// Malicious input that will be sanitized
		writer.NewRecord().Set("name", "=SUM(A1:A10)").Set("email", "test@example.com").Set("score", 100),
	}
	if err := w.Write(outputFile, records, nil); err != nil {
		return err
	}
	successColor.Printf("✓ Successfully wrote data to %s\n", outputFile)

	additional := []*writer.Record{
		writer.NewRecord().Set("name", "Charlie").Set("email", "charlie@example.com").Set("score", 92),
	}
	if err := w.Append(outputFile, additional); err != nil {
		return err
	}
	successColor.Printf("✓ Successfully appended data to %s\n", outputFile)

	return nil
}
