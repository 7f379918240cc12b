package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/uav-academic-soa/internal/models"
)

// CourseRepository manages persistence for the course catalogue.
type CourseRepository struct {
	db *sqlx.DB
}

// NewCourseRepository constructs a CourseRepository.
func NewCourseRepository(db *sqlx.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

// List returns every course in store order.
func (r *CourseRepository) List(ctx context.Context) ([]models.Course, error) {
	const query = `SELECT id, code, name, credits FROM courses`
	courses := make([]models.Course, 0)
	if err := selectAll(ctx, r.db, &courses, query); err != nil {
		return nil, err
	}
	return courses, nil
}

// Create inserts a course and stores the assigned id on it.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	const query = `INSERT INTO courses (code, name, credits) VALUES (?, ?, ?)`
	id, err := insertReturningID(ctx, r.db, query, course.Code, course.Name, course.Credits)
	if err != nil {
		return err
	}
	course.ID = id
	return nil
}
