package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/sillicon-village/ledger-api/internal/core/domain"
)

// TransactionReader defines read operations for transaction data
type TransactionReader interface {
	// FindTransactionByID retrieves a specific transaction by its unique identifier.
	FindTransactionByID(ctx context.Context, transactionID int64) (*domain.Transaction, error)

	// ListTransactions retrieves a paginated list of transactions.
	ListTransactions(ctx context.Context, limit int, offset int) ([]domain.Transaction, error)

	// ListTransactionsByAccountID retrieves a paginated list of transactions for one account.
	ListTransactionsByAccountID(ctx context.Context, accountID int64, limit int, offset int) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for transaction data.
// The store is append-only; DeleteTransaction exists only for manual
// correction and carries no financial semantics.
type TransactionWriter interface {
	// SaveTransactionInTx appends a transaction record within a given database
	// transaction and returns it with its assigned ID.
	SaveTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) (*domain.Transaction, error)

	// DeleteTransaction removes a transaction record.
	DeleteTransaction(ctx context.Context, transactionID int64) error
}

// TransactionAggregator defines aggregate queries used by validation.
type TransactionAggregator interface {
	// SumAmountForDayInTx sums the amounts of all transactions of the given
	// kind recorded for the account within the UTC calendar day containing
	// day. It runs inside the executor's open transaction so the sum and the
	// subsequent append are consistent.
	SumAmountForDayInTx(ctx context.Context, tx pgx.Tx, accountID int64, kind domain.TransactionKind, day time.Time) (decimal.Decimal, error)
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
	TransactionAggregator
}

// TransactionRepositoryWithTx extends TransactionRepositoryFacade with transaction capabilities
type TransactionRepositoryWithTx interface {
	TransactionRepositoryFacade
	TransactionManager
}
