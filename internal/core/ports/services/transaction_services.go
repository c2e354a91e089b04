package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/sillicon-village/ledger-api/internal/core/domain"
)

// TransactionSvcFacade defines the transaction executor operations plus
// read/correction access to the recorded transactions.
type TransactionSvcFacade interface {
	// Withdraw debits the account and appends a WITHDRAWAL record.
	Withdraw(ctx context.Context, accountID int64, amount decimal.Decimal) (*domain.Transaction, error)

	// Deposit credits the account and appends a DEPOSIT record.
	Deposit(ctx context.Context, accountID int64, amount decimal.Decimal) (*domain.Transaction, error)

	// Transfer moves amount between two distinct accounts as one unit of work.
	// It returns the TRANSFER_RECEIVED leg and the paired TRANSFER_SENT leg.
	Transfer(ctx context.Context, fromAccountID, toAccountID int64, amount decimal.Decimal) (received *domain.Transaction, sent *domain.Transaction, err error)

	GetTransactionByID(ctx context.Context, transactionID int64) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, limit int, offset int) ([]domain.Transaction, error)
	ListTransactionsByAccount(ctx context.Context, accountID int64, limit int, offset int) ([]domain.Transaction, error)

	// DeleteTransaction removes a recorded transaction (correction only; it
	// does not reverse the balance effect).
	DeleteTransaction(ctx context.Context, transactionID int64) error
}
