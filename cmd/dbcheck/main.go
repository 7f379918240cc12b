package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/noah-isme/uav-academic-soa/internal/diagnostics"
	"github.com/noah-isme/uav-academic-soa/internal/repository"
	"github.com/noah-isme/uav-academic-soa/pkg/config"
	"github.com/noah-isme/uav-academic-soa/pkg/database"
	"github.com/noah-isme/uav-academic-soa/pkg/export"
	"github.com/noah-isme/uav-academic-soa/pkg/logger"
	"github.com/noah-isme/uav-academic-soa/pkg/storage"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("dbcheck", flag.ContinueOnError)
	csvOut := fs.String("csv", "", "also write table counts as CSV to this file (- for stdout)")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: dbcheck [-csv counts.csv] [DATABASE_URL]\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load(fs.Arg(0))
	if err != nil {
		log.Printf("configuration error: %v", err)
		return 2
	}
	logr, err := logger.New(cfg, "dbcheck")
	if err != nil {
		log.Printf("failed to init logger: %v", err)
		return 1
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.Open(cfg.Database)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot open database: %v\n", err)
		return 3
	}
	defer db.Close()

	ctx := context.Background()
	checker := diagnostics.NewChecker(repository.NewSchemaRepository(db), logr)

	fmt.Printf("Connecting to %s\n", cfg.Database.Connection)
	if err := checker.Probe(ctx, cfg.Database.ConnectTimeout, diagnostics.RetryTimeout); err != nil {
		fmt.Fprintf(os.Stderr, "database unreachable: %v\n", err)
		return 3
	}

	report, err := checker.Inspect(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "inspection failed: %v\n", err)
		return 3
	}

	fmt.Printf("Server version: %s\n", report.Version)
	if len(report.Tables) == 0 {
		fmt.Println("No tables found.")
	}
	for _, t := range report.Tables {
		if t.Err != nil {
			fmt.Printf("  %s: error (%v)\n", t.Table, t.Err)
			continue
		}
		fmt.Printf("  %s: %d\n", t.Table, t.Rows)
	}

	if *csvOut != "" {
		if err := writeCSV(*csvOut, report.Dataset()); err != nil {
			fmt.Fprintf(os.Stderr, "write csv: %v\n", err)
			return 1
		}
	}
	return 0
}

func writeCSV(path string, data export.Dataset) error {
	if path == "-" {
		return export.NewCSVExporter().Write(os.Stdout, data)
	}
	var buf bytes.Buffer
	if err := export.NewCSVExporter().Write(&buf, data); err != nil {
		return err
	}
	store, err := storage.NewLocalStorage(filepath.Dir(path))
	if err != nil {
		return err
	}
	saved, err := store.SaveStream(filepath.Base(path), &buf)
	if err != nil {
		return err
	}
	fmt.Printf("Table counts written to %s\n", saved)
	return nil
}
