package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/uav-academic-soa/internal/models"
)

// EnrollmentRepository handles persistence of enrollments.
type EnrollmentRepository struct {
	db *sqlx.DB
}

// NewEnrollmentRepository constructs the repository.
func NewEnrollmentRepository(db *sqlx.DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

// ListByStudent returns the enrollments of one student in store order.
func (r *EnrollmentRepository) ListByStudent(ctx context.Context, studentID int64) ([]models.Enrollment, error) {
	const query = `SELECT id, student_id, course_id, status FROM enrollments WHERE student_id = ?`
	enrollments := make([]models.Enrollment, 0)
	if err := selectAll(ctx, r.db, &enrollments, query, studentID); err != nil {
		return nil, err
	}
	return enrollments, nil
}

// Create inserts an enrollment; enrolled_at is left to the store default.
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	const query = `INSERT INTO enrollments (student_id, course_id, status) VALUES (?, ?, ?)`
	id, err := insertReturningID(ctx, r.db, query, enrollment.StudentID, enrollment.CourseID, enrollment.Status)
	if err != nil {
		return err
	}
	enrollment.ID = id
	return nil
}
