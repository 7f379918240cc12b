package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/uav-academic-soa/internal/models"
)

func TestStudentRepositoryList(t *testing.T) {
	db, mock, cleanup := newRepoMock(t, "mysql")
	defer cleanup()
	repo := NewStudentRepository(db)

	rows := sqlmock.NewRows([]string{"id", "student_number", "first_name", "last_name", "email"}).
		AddRow(1, "20230001", "Juan", "Pérez", "juan@uav.edu.mx").
		AddRow(2, "20230002", "María", "González", nil)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, student_number, first_name, last_name, email FROM students")).
		WillReturnRows(rows)

	students, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, students, 2)
	assert.Equal(t, int64(1), students[0].ID)
	require.NotNil(t, students[0].Email)
	assert.Equal(t, "juan@uav.edu.mx", *students[0].Email)
	assert.Nil(t, students[1].Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositoryListEmpty(t *testing.T) {
	db, mock, cleanup := newRepoMock(t, "mysql")
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectQuery("SELECT .* FROM students").
		WillReturnRows(sqlmock.NewRows([]string{"id", "student_number", "first_name", "last_name", "email"}))

	students, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, students)
	assert.Empty(t, students)
}

func TestStudentRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newRepoMock(t, "mysql")
	defer cleanup()
	repo := NewStudentRepository(db)

	email := "juan@uav.edu.mx"
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO students (student_number, first_name, last_name, email) VALUES (?, ?, ?, ?)")).
		WithArgs("20230001", "Juan", "Pérez", email).
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectCommit()

	student := &models.Student{StudentNumber: "20230001", FirstName: "Juan", LastName: "Pérez", Email: &email}
	require.NoError(t, repo.Create(context.Background(), student))
	assert.Equal(t, int64(7), student.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositoryCreateRollsBackOnFailure(t *testing.T) {
	db, mock, cleanup := newRepoMock(t, "mysql")
	defer cleanup()
	repo := NewStudentRepository(db)

	driverErr := errors.New("Error 1062 (23000): Duplicate entry '20230001' for key 'students.student_number'")
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO students").
		WithArgs("20230001", "Juan", "Pérez", nil).
		WillReturnError(driverErr)
	mock.ExpectRollback()

	err := repo.Create(context.Background(), &models.Student{StudentNumber: "20230001", FirstName: "Juan", LastName: "Pérez"})
	require.Error(t, err)
	assert.Equal(t, driverErr.Error(), err.Error())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositoryCreatePostgresUsesReturning(t *testing.T) {
	db, mock, cleanup := newRepoMock(t, "postgres")
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO students (student_number, first_name, last_name, email) VALUES ($1, $2, $3, $4) RETURNING id")).
		WithArgs("20230003", "Carlos", "López", nil).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
	mock.ExpectCommit()

	student := &models.Student{StudentNumber: "20230003", FirstName: "Carlos", LastName: "López"}
	require.NoError(t, repo.Create(context.Background(), student))
	assert.Equal(t, int64(11), student.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
