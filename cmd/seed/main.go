package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/noah-isme/uav-academic-soa/internal/repository"
	"github.com/noah-isme/uav-academic-soa/internal/seed"
	"github.com/noah-isme/uav-academic-soa/pkg/config"
	"github.com/noah-isme/uav-academic-soa/pkg/database"
	"github.com/noah-isme/uav-academic-soa/pkg/logger"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	duplicates := fs.String("duplicates", "skip", "what to do when a student number or course code already exists: skip or fail (enrollments and grades are always inserted)")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: seed [-duplicates skip|fail] [DATABASE_URL]\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	policy, err := seed.ParseDuplicatePolicy(*duplicates)
	if err != nil {
		log.Printf("%v", err)
		return 2
	}

	cfg, err := config.Load(fs.Arg(0))
	if err != nil {
		log.Printf("configuration error: %v", err)
		return 2
	}
	logr, err := logger.New(cfg, "seed")
	if err != nil {
		log.Printf("failed to init logger: %v", err)
		return 1
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.Open(cfg.Database)
	if err != nil {
		logr.Error("cannot open database", zap.Error(err))
		return 3
	}
	defer db.Close()

	seeder := seed.NewSeeder(
		repository.NewStudentRepository(db),
		repository.NewCourseRepository(db),
		repository.NewEnrollmentRepository(db),
		repository.NewGradeRepository(db),
	)
	result, err := seeder.Run(context.Background(), policy)
	if err != nil {
		logr.Error("seeding failed", zap.Int("inserted", result.Inserted), zap.Int("skipped", result.Skipped), zap.Error(err))
		return 3
	}
	logr.Info("demo data inserted",
		zap.String("duplicates", policy.String()),
		zap.Int("inserted", result.Inserted),
		zap.Int("skipped", result.Skipped),
	)
	return 0
}
