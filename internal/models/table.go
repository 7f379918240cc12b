package models

// TableCount is one line of the store diagnostic.
type TableCount struct {
	Table string
	Rows  int64
	Err   error
}
