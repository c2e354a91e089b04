package domain

import (
	"github.com/shopspring/decimal"
)

// Account represents a financial account within the core domain.
// This is the primary representation used by services.
//
// Balance is only ever mutated through the transaction executor; every other
// component treats it as read-only.
type Account struct {
	AccountID            int64           `json:"accountID"`            // Primary Key (bigserial)
	PersonID             int64           `json:"personID"`             // FK -> persons.person_id (NON-NULL, exactly one owner)
	Balance              decimal.Decimal `json:"balance"`              // Persisted balance, NUMERIC(15,2)
	DailyWithdrawalLimit decimal.Decimal `json:"dailyWithdrawalLimit"` // Max cumulative WITHDRAWAL amount per UTC day
	IsActive             bool            `json:"isActive"`             // When false the account rejects all financial operations
	AccountType          int             `json:"accountType"`          // Integer classification, not constrained by the core
	AuditFields
}
