package models

// DefaultCourseCredits applies when a course is created without credits.
const DefaultCourseCredits = 3

// Course is a catalogue entry students can enroll in.
type Course struct {
	ID      int64  `db:"id" json:"id"`
	Code    string `db:"code" json:"code"`
	Name    string `db:"name" json:"name"`
	Credits int    `db:"credits" json:"credits"`
}
