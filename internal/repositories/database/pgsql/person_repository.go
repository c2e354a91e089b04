package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sillicon-village/ledger-api/internal/apperrors"
	"github.com/sillicon-village/ledger-api/internal/core/domain"
	portsrepo "github.com/sillicon-village/ledger-api/internal/core/ports/repositories"
	"github.com/sillicon-village/ledger-api/internal/models"
	"github.com/sillicon-village/ledger-api/internal/utils/mapping"
)

type PgxPersonRepository struct {
	pool *pgxpool.Pool
}

// newPgxPersonRepository creates a new repository for person data.
func newPgxPersonRepository(pool *pgxpool.Pool) portsrepo.PersonRepositoryFacade {
	return &PgxPersonRepository{pool: pool}
}

// Ensure PgxPersonRepository implements portsrepo.PersonRepositoryFacade
var _ portsrepo.PersonRepositoryFacade = (*PgxPersonRepository)(nil)

// SavePerson inserts a new person and returns it with the assigned identity.
func (r *PgxPersonRepository) SavePerson(ctx context.Context, person domain.Person) (*domain.Person, error) {
	modelPerson := mapping.ToModelPerson(person)

	query := `
		INSERT INTO persons (name, national_id, birth_date, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING person_id;
	`
	err := r.pool.QueryRow(ctx, query,
		modelPerson.Name,
		modelPerson.NationalID,
		modelPerson.BirthDate,
		modelPerson.CreatedAt,
		modelPerson.LastUpdatedAt,
	).Scan(&modelPerson.PersonID)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return nil, fmt.Errorf("%w: person with national id %s already exists", apperrors.ErrDuplicate, modelPerson.NationalID)
		}
		return nil, fmt.Errorf("failed to save person: %w", err)
	}

	domainPerson := mapping.ToDomainPerson(modelPerson)
	return &domainPerson, nil
}

// FindPersonByID retrieves a person by their ID.
func (r *PgxPersonRepository) FindPersonByID(ctx context.Context, personID int64) (*domain.Person, error) {
	query := `
		SELECT person_id, name, national_id, birth_date, created_at, last_updated_at
		FROM persons
		WHERE person_id = $1;
	`
	var modelPerson models.Person
	err := r.pool.QueryRow(ctx, query, personID).Scan(
		&modelPerson.PersonID,
		&modelPerson.Name,
		&modelPerson.NationalID,
		&modelPerson.BirthDate,
		&modelPerson.CreatedAt,
		&modelPerson.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find person by ID %d: %w", personID, err)
	}

	domainPerson := mapping.ToDomainPerson(modelPerson)
	return &domainPerson, nil
}

// ListPersons retrieves a paginated list of persons.
func (r *PgxPersonRepository) ListPersons(ctx context.Context, limit int, offset int) ([]domain.Person, error) {
	query := `
		SELECT person_id, name, national_id, birth_date, created_at, last_updated_at
		FROM persons
		ORDER BY person_id
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query persons: %w", err)
	}
	defer rows.Close()

	persons := []domain.Person{}
	for rows.Next() {
		var modelPerson models.Person
		if err := rows.Scan(
			&modelPerson.PersonID,
			&modelPerson.Name,
			&modelPerson.NationalID,
			&modelPerson.BirthDate,
			&modelPerson.CreatedAt,
			&modelPerson.LastUpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan person row: %w", err)
		}
		persons = append(persons, mapping.ToDomainPerson(modelPerson))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating person rows: %w", err)
	}

	return persons, nil
}

// UpdatePerson updates an existing person's details.
func (r *PgxPersonRepository) UpdatePerson(ctx context.Context, person domain.Person) error {
	modelPerson := mapping.ToModelPerson(person)

	query := `
		UPDATE persons
		SET name = $2, national_id = $3, birth_date = $4, last_updated_at = $5
		WHERE person_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		modelPerson.PersonID,
		modelPerson.Name,
		modelPerson.NationalID,
		modelPerson.BirthDate,
		modelPerson.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: national id %s already in use", apperrors.ErrDuplicate, modelPerson.NationalID)
		}
		return fmt.Errorf("failed to update person %d: %w", modelPerson.PersonID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeletePerson removes a person.
func (r *PgxPersonRepository) DeletePerson(ctx context.Context, personID int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM persons WHERE person_id = $1;`, personID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // FK violation
			return fmt.Errorf("%w: person %d still owns accounts", apperrors.ErrValidation, personID)
		}
		return fmt.Errorf("failed to delete person %d: %w", personID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
