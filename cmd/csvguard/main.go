// csvguard - hardened CSV writing
//
// A Go CLI tool that sanitizes tabular data against spreadsheet formula
// injection and writes fully quoted CSV files with validated output paths
// and restrictive file permissions.
package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"

	"github.com/csvguard/csvguard-go/internal/cli"
)

// Version information (set via ldflags at build time)
// These variables are intentionally unused in code but set via ldflags
var (
	version   = "dev"     //nolint:unused // Set via ldflags
	buildTime = "unknown" //nolint:unused // Set via ldflags
)

func main() {
	// CSVGUARD_* defaults may live in a local .env file
	_ = godotenv.Load()

	if err := cli.Execute(); err != nil {
		errorColor := color.New(color.FgRed, color.Bold)
		_, _ = errorColor.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
