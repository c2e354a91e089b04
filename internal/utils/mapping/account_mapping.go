package mapping

import (
	"github.com/sillicon-village/ledger-api/internal/core/domain"
	"github.com/sillicon-village/ledger-api/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:            d.AccountID,
		PersonID:             d.PersonID,
		Balance:              d.Balance,
		DailyWithdrawalLimit: d.DailyWithdrawalLimit,
		IsActive:             d.IsActive,
		AccountType:          d.AccountType,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:            m.AccountID,
		PersonID:             m.PersonID,
		Balance:              m.Balance,
		DailyWithdrawalLimit: m.DailyWithdrawalLimit,
		IsActive:             m.IsActive,
		AccountType:          m.AccountType,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}
