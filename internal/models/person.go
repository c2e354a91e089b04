package models

import "time"

// Person represents an account owner as stored in the database.
type Person struct {
	PersonID   int64     `db:"person_id"`
	Name       string    `db:"name"`
	NationalID string    `db:"national_id"`
	BirthDate  time.Time `db:"birth_date"`
	AuditFields
}
