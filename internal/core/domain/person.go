package domain

import "time"

// Person represents an account owner within the core domain.
// Persons carry no financial semantics; they are referenced by accounts.
type Person struct {
	PersonID   int64     `json:"personID"`   // Primary Key (bigserial)
	Name       string    `json:"name"`
	NationalID string    `json:"nationalID"` // Unique national identifier (11 chars)
	BirthDate  time.Time `json:"birthDate"`
	AuditFields
}
