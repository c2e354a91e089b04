package repositories

import (
	"context"

	"github.com/sillicon-village/ledger-api/internal/core/domain"
)

// PersonReader defines read operations for person data
type PersonReader interface {
	// FindPersonByID retrieves a specific person by their ID.
	FindPersonByID(ctx context.Context, personID int64) (*domain.Person, error)

	// ListPersons retrieves a paginated list of persons.
	ListPersons(ctx context.Context, limit int, offset int) ([]domain.Person, error)
}

// PersonWriter defines write operations for person data
type PersonWriter interface {
	// SavePerson persists a new person and returns it with its assigned ID.
	SavePerson(ctx context.Context, person domain.Person) (*domain.Person, error)

	// UpdatePerson updates an existing person's details.
	UpdatePerson(ctx context.Context, person domain.Person) error

	// DeletePerson removes a person.
	DeletePerson(ctx context.Context, personID int64) error
}

// PersonRepositoryFacade combines all person-related repository interfaces
type PersonRepositoryFacade interface {
	PersonReader
	PersonWriter
}
