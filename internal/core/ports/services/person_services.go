package services

import (
	"context"

	"github.com/sillicon-village/ledger-api/internal/core/domain"
	"github.com/sillicon-village/ledger-api/internal/dto"
)

// PersonSvcFacade defines the service operations for persons.
type PersonSvcFacade interface {
	CreatePerson(ctx context.Context, req dto.CreatePersonRequest) (*domain.Person, error)
	GetPersonByID(ctx context.Context, personID int64) (*domain.Person, error)
	ListPersons(ctx context.Context, limit int, offset int) ([]domain.Person, error)
	UpdatePerson(ctx context.Context, personID int64, req dto.UpdatePersonRequest) (*domain.Person, error)
	DeletePerson(ctx context.Context, personID int64) error
}
