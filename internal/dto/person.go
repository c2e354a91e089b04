package dto

import (
	"time"

	"github.com/sillicon-village/ledger-api/internal/core/domain"
)

// CreatePersonRequest defines the data needed to register a new person.
type CreatePersonRequest struct {
	Name       string    `json:"name" binding:"required"`
	NationalID string    `json:"nationalID" binding:"required,nationalid"`
	BirthDate  time.Time `json:"birthDate" binding:"required"`
}

// UpdatePersonRequest defines the data allowed for updating a person.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdatePersonRequest struct {
	Name       *string    `json:"name"`
	NationalID *string    `json:"nationalID" binding:"omitempty,nationalid"`
	BirthDate  *time.Time `json:"birthDate"`
}

// ListPersonsParams defines query parameters for listing persons.
type ListPersonsParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// PersonResponse defines the data returned for a person.
type PersonResponse struct {
	PersonID   int64     `json:"personID"`
	Name       string    `json:"name"`
	NationalID string    `json:"nationalID"`
	BirthDate  time.Time `json:"birthDate"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ToPersonResponse converts a domain.Person to PersonResponse DTO
func ToPersonResponse(p *domain.Person) PersonResponse {
	return PersonResponse{
		PersonID:   p.PersonID,
		Name:       p.Name,
		NationalID: p.NationalID,
		BirthDate:  p.BirthDate,
		CreatedAt:  p.CreatedAt,
	}
}

// ToListPersonResponse converts a slice of domain.Person to PersonResponse DTOs
func ToListPersonResponse(persons []domain.Person) []PersonResponse {
	res := make([]PersonResponse, len(persons))
	for i, p := range persons {
		res[i] = ToPersonResponse(&p)
	}
	return res
}
