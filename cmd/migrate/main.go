package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/noah-isme/uav-academic-soa/pkg/config"
	"github.com/noah-isme/uav-academic-soa/pkg/database"
	"github.com/noah-isme/uav-academic-soa/pkg/logger"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("migrate", flag.ContinueOnError)
	file := fs.String("file", "", "SQL script to apply instead of the embedded baseline schema")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: migrate [-file schema.sql] [DATABASE_URL]\n")
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
	logr, err := logger.New(cfg, "migrate")
	if err != nil {
		log.Printf("failed to init logger: %v", err)
		return 1
	}
	defer logr.Sync() //nolint:errcheck

	script, err := loadScript(*file, cfg.Database.Connection.Scheme)
	if err != nil {
		logr.Error("cannot load schema", zap.Error(err))
		return 2
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		logr.Error("cannot open database", zap.Error(err))
		return 3
	}
	defer db.Close()

	logr.Info("applying schema", zap.String("database", cfg.Database.Connection.String()))
	n, err := database.ApplySchema(context.Background(), db, script)
	if err != nil {
		logr.Error("migration failed", zap.Int("applied", n), zap.Error(err))
		return 3
	}
	logr.Info("migration completed", zap.Int("statements", n))
	return 0
}

func loadScript(path, scheme string) (string, error) {
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		return string(raw), nil
	}
	driver, err := database.DriverFor(scheme)
	if err != nil {
		return "", err
	}
	return database.BaselineSchema(driver)
}
