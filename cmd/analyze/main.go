// Command analyze aggregates hand measurement annotation files into
// descriptive statistics with CSV and JSON exports.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ayusman/handmetrics/internal/app"
)

func main() {
	csvPath := flag.String("csv", "hand_measurements_analysis.csv", "CSV export path (empty to disable)")
	jsonPath := flag.String("json", "hand_measurements_summary.json", "JSON summary export path (empty to disable)")
	dbPath := flag.String("db", "", "optional SQLite database to persist the run")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() == 0 {
		usage()
		os.Exit(1)
	}

	result, err := app.Run(app.Config{
		Inputs:   flag.Args(),
		CSVPath:  *csvPath,
		JSONPath: *jsonPath,
		DBPath:   *dbPath,
	})
	if err != nil {
		log.Fatalf("Analysis failed: %v", err)
	}

	fmt.Println("\nGenerated files:")
	if *csvPath != "" {
		fmt.Printf("  %s\n", *csvPath)
	}
	if *jsonPath != "" {
		fmt.Printf("  %s\n", *jsonPath)
	}
	if result.RunID != "" {
		fmt.Printf("Run saved as %s\n", result.RunID)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [flags] <annotation.json> [annotation2.json ...]\n\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "Aggregates measurements from annotated hand images and exports statistics.")
	fmt.Fprintln(os.Stderr, "\nFlags:")
	flag.PrintDefaults()
}
