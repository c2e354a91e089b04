package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind mirrors domain.TransactionKind for persistence.
type TransactionKind string

// Transaction represents a completed movement as stored in the database.
// Rows are append-only; the only permitted mutation is deletion-for-correction.
type Transaction struct {
	TransactionID int64           `db:"transaction_id"`
	AccountID     int64           `db:"account_id"`
	Amount        decimal.Decimal `db:"amount"`
	Kind          TransactionKind `db:"kind"`
	CreatedAt     time.Time       `db:"created_at"`
}
