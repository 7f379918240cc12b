package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/noah-isme/uav-academic-soa/internal/report"
	"github.com/noah-isme/uav-academic-soa/pkg/export"
	"github.com/noah-isme/uav-academic-soa/pkg/storage"
)

func main() {
	dir := flag.String("dir", ".", "output directory")
	out := flag.String("out", report.DefaultFilename, "output PDF file name")
	flag.Parse()

	pdf, err := export.NewPDFExporter().Render(report.DesignReport(time.Now()))
	if err != nil {
		log.Fatalf("render report: %v", err)
	}

	store, err := storage.NewLocalStorage(*dir)
	if err != nil {
		log.Fatalf("prepare output: %v", err)
	}
	path, err := store.Save(*out, pdf)
	if err != nil {
		log.Fatalf("save report: %v", err)
	}
	fmt.Printf("PDF generated: %s\n", path)
}
