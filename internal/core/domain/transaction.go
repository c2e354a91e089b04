package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind classifies the effect of a transaction on its account.
type TransactionKind string

const (
	Deposit          TransactionKind = "DEPOSIT"
	Withdrawal       TransactionKind = "WITHDRAWAL"
	TransferSent     TransactionKind = "TRANSFER_SENT"     // debit leg of a transfer
	TransferReceived TransactionKind = "TRANSFER_RECEIVED" // credit leg of a transfer
)

// IsDebit reports whether the kind removes money from its account.
func (k TransactionKind) IsDebit() bool {
	return k == Withdrawal || k == TransferSent
}

// IsValid reports whether the kind is one of the known transaction kinds.
func (k TransactionKind) IsValid() bool {
	switch k {
	case Deposit, Withdrawal, TransferSent, TransferReceived:
		return true
	}
	return false
}

// Transaction represents a single completed movement against one account.
// Transactions are immutable once created; the amount is always recorded
// positive and the sign of the effect is implied by Kind.
//
// Every TRANSFER_SENT leg has a corresponding TRANSFER_RECEIVED leg created in
// the same unit of work, on a different account, for the same amount and with
// the same timestamp.
type Transaction struct {
	TransactionID int64           `json:"transactionID"` // Primary Key (bigserial)
	AccountID     int64           `json:"accountID"`     // FK -> accounts.account_id (Not Null)
	Amount        decimal.Decimal `json:"amount"`        // Positive value, NUMERIC(15,2)
	Kind          TransactionKind `json:"kind"`
	CreatedAt     time.Time       `json:"createdAt"` // Immutable, used for daily-limit aggregation (UTC)
}
