package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sillicon-village/ledger-api/internal/core/domain"
	portsrepo "github.com/sillicon-village/ledger-api/internal/core/ports/repositories"
	portssvc "github.com/sillicon-village/ledger-api/internal/core/ports/services"
	"github.com/sillicon-village/ledger-api/internal/dto"
)

// personService provides CRUD over account owners.
type personService struct {
	personRepo portsrepo.PersonRepositoryFacade
}

// NewPersonService creates a new person service.
func NewPersonService(personRepo portsrepo.PersonRepositoryFacade) portssvc.PersonSvcFacade {
	return &personService{personRepo: personRepo}
}

// Ensure personService implements the PersonSvcFacade interface
var _ portssvc.PersonSvcFacade = (*personService)(nil)

func (s *personService) CreatePerson(ctx context.Context, req dto.CreatePersonRequest) (*domain.Person, error) {
	now := time.Now().UTC()
	person := domain.Person{
		Name:       req.Name,
		NationalID: req.NationalID,
		BirthDate:  req.BirthDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	saved, err := s.personRepo.SavePerson(ctx, person)
	if err != nil {
		return nil, fmt.Errorf("failed to create person: %w", err)
	}
	return saved, nil
}

func (s *personService) GetPersonByID(ctx context.Context, personID int64) (*domain.Person, error) {
	return s.personRepo.FindPersonByID(ctx, personID)
}

func (s *personService) ListPersons(ctx context.Context, limit int, offset int) ([]domain.Person, error) {
	return s.personRepo.ListPersons(ctx, limit, offset)
}

func (s *personService) UpdatePerson(ctx context.Context, personID int64, req dto.UpdatePersonRequest) (*domain.Person, error) {
	person, err := s.personRepo.FindPersonByID(ctx, personID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		person.Name = *req.Name
	}
	if req.NationalID != nil {
		person.NationalID = *req.NationalID
	}
	if req.BirthDate != nil {
		person.BirthDate = *req.BirthDate
	}
	person.LastUpdatedAt = time.Now().UTC()

	if err := s.personRepo.UpdatePerson(ctx, *person); err != nil {
		return nil, fmt.Errorf("failed to update person %d: %w", personID, err)
	}
	return person, nil
}

func (s *personService) DeletePerson(ctx context.Context, personID int64) error {
	return s.personRepo.DeletePerson(ctx, personID)
}
