package mapping

import (
	"github.com/sillicon-village/ledger-api/internal/core/domain"
	"github.com/sillicon-village/ledger-api/internal/models"
)

// ToModelPerson converts a domain Person to a model Person
func ToModelPerson(d domain.Person) models.Person {
	return models.Person{
		PersonID:   d.PersonID,
		Name:       d.Name,
		NationalID: d.NationalID,
		BirthDate:  d.BirthDate,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

// ToDomainPerson converts a model Person to a domain Person
func ToDomainPerson(m models.Person) domain.Person {
	return domain.Person{
		PersonID:   m.PersonID,
		Name:       m.Name,
		NationalID: m.NationalID,
		BirthDate:  m.BirthDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}
