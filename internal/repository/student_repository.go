package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/uav-academic-soa/internal/models"
)

// StudentRepository manages persistence for student records.
type StudentRepository struct {
	db *sqlx.DB
}

// NewStudentRepository constructs a StudentRepository.
func NewStudentRepository(db *sqlx.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// List returns every student in store order.
func (r *StudentRepository) List(ctx context.Context) ([]models.Student, error) {
	const query = `SELECT id, student_number, first_name, last_name, email FROM students`
	students := make([]models.Student, 0)
	if err := selectAll(ctx, r.db, &students, query); err != nil {
		return nil, err
	}
	return students, nil
}

// Create inserts a student and stores the assigned id on it.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	const query = `INSERT INTO students (student_number, first_name, last_name, email) VALUES (?, ?, ?, ?)`
	id, err := insertReturningID(ctx, r.db, query, student.StudentNumber, student.FirstName, student.LastName, student.Email)
	if err != nil {
		return err
	}
	student.ID = id
	return nil
}
