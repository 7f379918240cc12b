package models

import "time"

// EnrollmentStatusEnrolled is the status assigned when none is supplied.
const EnrollmentStatusEnrolled = "enrolled"

// Enrollment links a student to a course. Status is a free-text label.
type Enrollment struct {
	ID         int64      `db:"id" json:"id"`
	StudentID  int64      `db:"student_id" json:"student_id"`
	CourseID   int64      `db:"course_id" json:"course_id"`
	EnrolledAt *time.Time `db:"enrolled_at" json:"enrolled_at,omitempty"`
	Status     string     `db:"status" json:"status"`
}
