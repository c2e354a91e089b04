package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/sillicon-village/ledger-api/internal/apperrors"
	"github.com/sillicon-village/ledger-api/internal/core/domain"
	portsrepo "github.com/sillicon-village/ledger-api/internal/core/ports/repositories"
	"github.com/sillicon-village/ledger-api/internal/models"
	"github.com/sillicon-village/ledger-api/internal/utils"
	"github.com/sillicon-village/ledger-api/internal/utils/mapping"
)

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for transaction data.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryWithTx {
	return &PgxTransactionRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepositoryWithTx
var _ portsrepo.TransactionRepositoryWithTx = (*PgxTransactionRepository)(nil)

const transactionColumns = `transaction_id, account_id, amount, kind, created_at`

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var modelTxn models.Transaction
	err := row.Scan(
		&modelTxn.TransactionID,
		&modelTxn.AccountID,
		&modelTxn.Amount,
		&modelTxn.Kind,
		&modelTxn.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	domainTxn := mapping.ToDomainTransaction(modelTxn)
	return &domainTxn, nil
}

// SaveTransactionInTx appends a transaction record within the given database
// transaction and returns it with the assigned identity.
func (r *PgxTransactionRepository) SaveTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) (*domain.Transaction, error) {
	modelTxn := mapping.ToModelTransaction(txn)

	query := `
		INSERT INTO transactions (account_id, amount, kind, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING transaction_id;
	`
	err := tx.QueryRow(ctx, query,
		modelTxn.AccountID,
		modelTxn.Amount,
		modelTxn.Kind,
		modelTxn.CreatedAt,
	).Scan(&modelTxn.TransactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to save transaction for account %d: %w", modelTxn.AccountID, err)
	}

	domainTxn := mapping.ToDomainTransaction(modelTxn)
	return &domainTxn, nil
}

// FindTransactionByID retrieves a transaction by its ID.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID int64) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`

	txn, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %d: %w", transactionID, err)
	}
	return txn, nil
}

// ListTransactions retrieves a paginated list of transactions.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, limit int, offset int) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions ORDER BY transaction_id LIMIT $1 OFFSET $2;`
	return r.queryTransactions(ctx, query, limit, offset)
}

// ListTransactionsByAccountID retrieves a paginated list of transactions for one account.
func (r *PgxTransactionRepository) ListTransactionsByAccountID(ctx context.Context, accountID int64, limit int, offset int) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE account_id = $1
		ORDER BY transaction_id
		LIMIT $2 OFFSET $3;
	`
	return r.queryTransactions(ctx, query, accountID, limit, offset)
}

func (r *PgxTransactionRepository) queryTransactions(ctx context.Context, query string, args ...any) ([]domain.Transaction, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	transactions := []domain.Transaction{}
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		transactions = append(transactions, *txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}

	return transactions, nil
}

// SumAmountForDayInTx sums the amounts of all transactions of the given kind
// recorded for the account within the UTC calendar day containing day.
func (r *PgxTransactionRepository) SumAmountForDayInTx(ctx context.Context, tx pgx.Tx, accountID int64, kind domain.TransactionKind, day time.Time) (decimal.Decimal, error) {
	dayStart, dayEnd := utils.DayIntervalUTC(day)

	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE account_id = $1 AND kind = $2 AND created_at >= $3 AND created_at < $4;
	`
	var sum decimal.Decimal
	err := tx.QueryRow(ctx, query, accountID, string(kind), dayStart, dayEnd).Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum %s amounts for account %d: %w", kind, accountID, err)
	}
	return sum, nil
}

// DeleteTransaction removes a transaction record (correction only).
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1;`, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %d: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
