package seed

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/lib/pq"

	"github.com/noah-isme/uav-academic-soa/internal/models"
)

// DuplicatePolicy decides what the seeder does when an insert hits a unique key.
// Only students.student_number and courses.code are unique; enrollments and
// grades have no natural key, so a re-run inserts them again under either policy.
type DuplicatePolicy int

const (
	// DuplicatesFail aborts on the first error, duplicates included.
	DuplicatesFail DuplicatePolicy = iota
	// DuplicatesSkip counts unique-key violations as skipped and keeps going.
	// Any other error still aborts.
	DuplicatesSkip
)

// ParseDuplicatePolicy accepts "fail" or "skip".
func ParseDuplicatePolicy(raw string) (DuplicatePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "fail":
		return DuplicatesFail, nil
	case "skip":
		return DuplicatesSkip, nil
	default:
		return DuplicatesFail, fmt.Errorf("unknown duplicate policy %q (want fail or skip)", raw)
	}
}

func (p DuplicatePolicy) String() string {
	if p == DuplicatesSkip {
		return "skip"
	}
	return "fail"
}

const (
	mysqlDuplicateEntry    = 1062
	postgresUniqueViolated = "23505"
)

// IsDuplicate reports whether err is a unique-key violation from MySQL or PostgreSQL.
func IsDuplicate(err error) bool {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == mysqlDuplicateEntry
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == postgresUniqueViolated
	}
	return false
}

// Result counts what a run did.
type Result struct {
	Inserted int
	Skipped  int
}

type studentCreator interface {
	Create(ctx context.Context, student *models.Student) error
}

type courseCreator interface {
	Create(ctx context.Context, course *models.Course) error
}

type enrollmentCreator interface {
	Create(ctx context.Context, enrollment *models.Enrollment) error
}

type gradeCreator interface {
	Create(ctx context.Context, grade *models.Grade) error
}

// Seeder writes the demo data set through the repositories.
type Seeder struct {
	students    studentCreator
	courses     courseCreator
	enrollments enrollmentCreator
	grades      gradeCreator
}

// NewSeeder constructs a Seeder.
func NewSeeder(students studentCreator, courses courseCreator, enrollments enrollmentCreator, grades gradeCreator) *Seeder {
	return &Seeder{students: students, courses: courses, enrollments: enrollments, grades: grades}
}

// Run inserts Students, Courses, Enrollments and Grades in that order.
func (s *Seeder) Run(ctx context.Context, policy DuplicatePolicy) (Result, error) {
	var result Result
	apply := func(table string, i int, err error) error {
		switch {
		case err == nil:
			result.Inserted++
			return nil
		case policy == DuplicatesSkip && IsDuplicate(err):
			result.Skipped++
			return nil
		default:
			return fmt.Errorf("seed %s row %d: %w", table, i+1, err)
		}
	}

	for i, student := range Students() {
		if err := apply("students", i, s.students.Create(ctx, &student)); err != nil {
			return result, err
		}
	}
	for i, course := range Courses() {
		if err := apply("courses", i, s.courses.Create(ctx, &course)); err != nil {
			return result, err
		}
	}
	for i, enrollment := range Enrollments() {
		if err := apply("enrollments", i, s.enrollments.Create(ctx, &enrollment)); err != nil {
			return result, err
		}
	}
	for i, grade := range Grades() {
		if err := apply("grades", i, s.grades.Create(ctx, &grade)); err != nil {
			return result, err
		}
	}
	return result, nil
}
