package models

import "time"

// Grade is the numeric result recorded against an enrollment.
type Grade struct {
	ID           int64      `db:"id" json:"id"`
	EnrollmentID int64      `db:"enrollment_id" json:"enrollment_id"`
	Grade        float64    `db:"grade" json:"grade"`
	GradedAt     *time.Time `db:"graded_at" json:"graded_at"`
}
