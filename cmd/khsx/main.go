package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/rrcamj/khsx-metrics/pkg/infrastructure/config"
	"github.com/rrcamj/khsx-metrics/pkg/interfaces/cli/commands"
)

func main() {
	_ = godotenv.Load()

	var (
		dataDir = flag.String("data", "", "Directory with the CSV exports (overrides DATA_DIR)")
		date    = flag.String("date", "", "Reference day as DD/MM/YYYY (default: today)")
		month   = flag.String("month", "", "Also print monthly capacity means for MM/YYYY")
		format  = flag.String("format", "text", "Output format: text, json")
		verbose = flag.Bool("verbose", false, "Enable verbose output")
		help    = flag.Bool("help", false, "Show help message")
	)

	flag.Parse()

	if *dataDir != "" {
		os.Setenv("DATA_DIR", *dataDir)
	}
	cfg := config.LoadEnv()

	cmd := commands.NewReportCommand(commands.Config{
		Date:    *date,
		Month:   *month,
		Format:  *format,
		Verbose: *verbose,
		Help:    *help,
	}, cfg.Data, cfg.QC)

	if err := cmd.Execute(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
