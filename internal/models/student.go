package models

// Student represents a learner registered in the institution.
type Student struct {
	ID            int64   `db:"id" json:"id"`
	StudentNumber string  `db:"student_number" json:"student_number"`
	FirstName     string  `db:"first_name" json:"first_name"`
	LastName      string  `db:"last_name" json:"last_name"`
	Email         *string `db:"email" json:"email"`
}
