package models

import (
	"github.com/shopspring/decimal"
)

// Account represents a financial account as stored in the database.
type Account struct {
	AccountID            int64           `db:"account_id"`
	PersonID             int64           `db:"person_id"`
	Balance              decimal.Decimal `db:"balance"`
	DailyWithdrawalLimit decimal.Decimal `db:"daily_withdrawal_limit"`
	IsActive             bool            `db:"is_active"`
	AccountType          int             `db:"account_type"`
	AuditFields
}
