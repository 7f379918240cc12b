package seed

import "github.com/noah-isme/uav-academic-soa/internal/models"

// The demo set assumes an empty schema: enrollments and grades reference the
// ids the store assigns to the rows above them.

// Students returns the demo students.
func Students() []models.Student {
	return []models.Student{
		{StudentNumber: "20230001", FirstName: "Juan", LastName: "Pérez", Email: strPtr("juan@uav.edu.mx")},
		{StudentNumber: "20230002", FirstName: "María", LastName: "González", Email: strPtr("maria@uav.edu.mx")},
		{StudentNumber: "20230003", FirstName: "Carlos", LastName: "López", Email: strPtr("carlos@uav.edu.mx")},
	}
}

// Courses returns the demo courses.
func Courses() []models.Course {
	return []models.Course{
		{Code: "MAT101", Name: "Cálculo I", Credits: 4},
		{Code: "INF201", Name: "Programación Orientada a Objetos", Credits: 3},
		{Code: "FIS101", Name: "Física I", Credits: 4},
	}
}

// Enrollments returns the demo enrollments, keyed by the first student and course ids.
func Enrollments() []models.Enrollment {
	return []models.Enrollment{
		{StudentID: 1, CourseID: 1, Status: models.EnrollmentStatusEnrolled},
		{StudentID: 1, CourseID: 2, Status: models.EnrollmentStatusEnrolled},
		{StudentID: 2, CourseID: 1, Status: models.EnrollmentStatusEnrolled},
		{StudentID: 3, CourseID: 3, Status: models.EnrollmentStatusEnrolled},
	}
}

// Grades returns one demo grade per demo enrollment.
func Grades() []models.Grade {
	return []models.Grade{
		{EnrollmentID: 1, Grade: 85.5},
		{EnrollmentID: 2, Grade: 90.0},
		{EnrollmentID: 3, Grade: 78.5},
		{EnrollmentID: 4, Grade: 92.0},
	}
}

func strPtr(s string) *string { return &s }
