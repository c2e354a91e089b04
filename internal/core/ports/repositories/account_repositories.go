package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/sillicon-village/ledger-api/internal/core/domain"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error)

	// ListAccounts retrieves a paginated list of accounts.
	ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account and returns it with its assigned ID.
	SaveAccount(ctx context.Context, account domain.Account) (*domain.Account, error)

	// UpdateAccount updates an existing account's non-balance details.
	UpdateAccount(ctx context.Context, account domain.Account) error

	// SetAccountActive flips the active flag (block / unblock).
	SetAccountActive(ctx context.Context, accountID int64, active bool, now time.Time) error

	// DeleteAccount removes an account.
	DeleteAccount(ctx context.Context, accountID int64) error
}

// AccountTransactionSupport defines operations that support the transaction
// executor's unit of work. All of them run against an open pgx transaction.
type AccountTransactionSupport interface {
	// FindAccountByIDForUpdate selects an account and locks its row for update.
	FindAccountByIDForUpdate(ctx context.Context, tx pgx.Tx, accountID int64) (*domain.Account, error)

	// FindAccountsByIDsForUpdate selects accounts and locks them for update in
	// ascending account-ID order, so crossing transfers cannot deadlock.
	FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []int64) (map[int64]domain.Account, error)

	// UpdateAccountBalanceInTx sets the balance for an account within a given transaction.
	UpdateAccountBalanceInTx(ctx context.Context, tx pgx.Tx, accountID int64, balance decimal.Decimal, now time.Time) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
// This is a facade for clients that need access to all operations
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
	AccountTransactionSupport
}

// AccountRepositoryWithTx extends AccountRepositoryFacade with transaction capabilities
type AccountRepositoryWithTx interface {
	AccountRepositoryFacade
	TransactionManager
}
