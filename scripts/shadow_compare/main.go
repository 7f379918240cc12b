package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

type target struct {
	// Gateway is "rest" or "soap" and selects the base URLs.
	Gateway     string `json:"gateway"`
	Method      string `json:"method"`
	Path        string `json:"path"`
	ContentType string `json:"content_type"`
	Body        string `json:"body"`
	Critical    bool   `json:"critical"`
	// IgnoreBody compares status codes only, for writes whose ids differ per store.
	IgnoreBody bool `json:"ignore_body"`
}

type targetsFile struct {
	Targets []target `json:"targets"`
}

type bases struct {
	goREST, goSOAP         string
	legacyREST, legacySOAP string
}

func (b bases) pair(gateway string) (goBase, legacyBase string, err error) {
	switch gateway {
	case "", "rest":
		return b.goREST, b.legacyREST, nil
	case "soap":
		return b.goSOAP, b.legacySOAP, nil
	default:
		return "", "", fmt.Errorf("unknown gateway %q", gateway)
	}
}

func main() {
	var (
		b           bases
		targetsPath string
		timeout     time.Duration
	)

	flag.StringVar(&b.goREST, "go-rest", "http://localhost:8001", "Go REST gateway base URL")
	flag.StringVar(&b.goSOAP, "go-soap", "http://localhost:8000", "Go SOAP gateway base URL")
	flag.StringVar(&b.legacyREST, "legacy-rest", "http://localhost:5001", "Legacy REST service base URL")
	flag.StringVar(&b.legacySOAP, "legacy-soap", "http://localhost:5000", "Legacy SOAP service base URL")
	flag.StringVar(&targetsPath, "targets", filepath.Join("scripts", "shadow_compare", "targets.json"), "Path to JSON targets file")
	flag.DurationVar(&timeout, "timeout", 5*time.Second, "HTTP client timeout")
	flag.Parse()

	targets, err := loadTargets(targetsPath)
	if err != nil {
		log.Fatalf("failed to load targets: %v", err)
	}

	client := &http.Client{Timeout: timeout}
	var (
		comparisons  []comparison
		breaking     int
		optionalDiff int
	)

	for _, t := range targets {
		comp := compareTarget(client, b, t)
		if comp.Error != nil || !comp.matches() {
			if t.Critical {
				breaking++
			} else {
				optionalDiff++
			}
		}
		comparisons = append(comparisons, comp)
	}

	printReport(comparisons)

	fmt.Printf("Breaking diffs: %d, Optional diffs: %d\n", breaking, optionalDiff)
	if breaking > 0 {
		os.Exit(1)
	}
}

func loadTargets(path string) ([]target, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg targetsFile
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if len(cfg.Targets) == 0 {
		return nil, fmt.Errorf("no targets defined in %s", path)
	}
	return cfg.Targets, nil
}

func printReport(results []comparison) {
	fmt.Println("Shadow Compare Report")
	fmt.Println("======================")
	for _, res := range results {
		status := "OK"
		if res.Error != nil {
			status = "ERROR"
		} else if !res.matches() {
			status = "DIFF"
		}
		fmt.Printf("[%s] %s %s %s\n", status, res.Target.Gateway, res.Target.Method, res.Target.Path)
		fmt.Printf("  Go Status: %d (%s)\n", res.GoStatus, res.DurationGo)
		fmt.Printf("  Legacy Status: %d (%s)\n", res.LegacyStatus, res.DurationLegacy)
		if res.Error != nil {
			fmt.Printf("  Error: %v\n", res.Error)
		} else {
			fmt.Printf("  Status match: %t | Body match: %t | Critical: %t\n", res.StatusMatch, res.BodyMatch, res.Target.Critical)
		}
	}
}
