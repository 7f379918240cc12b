package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/uav-academic-soa/internal/models"
)

// GradeRepository manages persistence for grade entries.
type GradeRepository struct {
	db *sqlx.DB
}

// NewGradeRepository constructs a GradeRepository.
func NewGradeRepository(db *sqlx.DB) *GradeRepository {
	return &GradeRepository{db: db}
}

// List returns every grade in store order.
func (r *GradeRepository) List(ctx context.Context) ([]models.Grade, error) {
	const query = `SELECT id, enrollment_id, grade, graded_at FROM grades`
	grades := make([]models.Grade, 0)
	if err := selectAll(ctx, r.db, &grades, query); err != nil {
		return nil, err
	}
	return grades, nil
}

// Create inserts a grade; graded_at is left to the store default.
func (r *GradeRepository) Create(ctx context.Context, grade *models.Grade) error {
	const query = `INSERT INTO grades (enrollment_id, grade) VALUES (?, ?)`
	id, err := insertReturningID(ctx, r.db, query, grade.EnrollmentID, grade.Grade)
	if err != nil {
		return err
	}
	grade.ID = id
	return nil
}
