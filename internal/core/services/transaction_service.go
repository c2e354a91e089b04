package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/sillicon-village/ledger-api/internal/apperrors"
	"github.com/sillicon-village/ledger-api/internal/core/domain"
	portsrepo "github.com/sillicon-village/ledger-api/internal/core/ports/repositories"
	portssvc "github.com/sillicon-village/ledger-api/internal/core/ports/services"
	"github.com/sillicon-village/ledger-api/internal/middleware"
)

// transactionService is the transaction executor. Each operation runs the
// validate-then-mutate sequence under a per-account lock and inside a single
// database transaction: row-lock the account(s), validate, update balance(s),
// append the transaction record(s), commit. A denial or fault before commit
// leaves the ledger untouched.
type transactionService struct {
	accountRepo portsrepo.AccountRepositoryWithTx
	txnRepo     portsrepo.TransactionRepositoryFacade
	validator   transactionValidator
	locks       *accountLocker
}

// NewTransactionService creates the transaction executor.
func NewTransactionService(accountRepo portsrepo.AccountRepositoryWithTx, txnRepo portsrepo.TransactionRepositoryFacade) portssvc.TransactionSvcFacade {
	return &transactionService{
		accountRepo: accountRepo,
		txnRepo:     txnRepo,
		locks:       newAccountLocker(),
	}
}

// Ensure transactionService implements the TransactionSvcFacade interface
var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// checkAmount rejects non-positive amounts before they reach the validator.
func checkAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: got %s", apperrors.ErrInvalidAmount, amount.String())
	}
	return nil
}

// storageFailure tags infrastructure faults so callers can tell "not allowed"
// from "could not be durably applied".
func storageFailure(err error) error {
	return fmt.Errorf("%w: %v", apperrors.ErrStorageFailure, err)
}

func (s *transactionService) Withdraw(ctx context.Context, accountID int64, amount decimal.Decimal) (*domain.Transaction, error) {
	if err := checkAmount(amount); err != nil {
		return nil, err
	}
	unlock := s.locks.Lock(accountID)
	defer unlock()
	return s.applySingle(ctx, accountID, amount, domain.Withdrawal)
}

func (s *transactionService) Deposit(ctx context.Context, accountID int64, amount decimal.Decimal) (*domain.Transaction, error) {
	if err := checkAmount(amount); err != nil {
		return nil, err
	}
	unlock := s.locks.Lock(accountID)
	defer unlock()
	return s.applySingle(ctx, accountID, amount, domain.Deposit)
}

// applySingle runs one withdrawal or deposit as a unit of work. The caller
// must hold the account lock.
func (s *transactionService) applySingle(ctx context.Context, accountID int64, amount decimal.Decimal, kind domain.TransactionKind) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	tx, err := s.accountRepo.Begin(ctx)
	if err != nil {
		return nil, storageFailure(err)
	}
	defer func() { _ = s.accountRepo.Rollback(ctx, tx) }()

	account, err := s.accountRepo.FindAccountByIDForUpdate(ctx, tx, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("account %d: %w", accountID, apperrors.ErrNotFound)
		}
		return nil, storageFailure(err)
	}

	now := time.Now().UTC()

	withdrawnToday := decimal.Zero
	if kind == domain.Withdrawal {
		withdrawnToday, err = s.txnRepo.SumAmountForDayInTx(ctx, tx, accountID, domain.Withdrawal, now)
		if err != nil {
			return nil, storageFailure(err)
		}
	}

	if err := s.validator.Validate(*account, kind, amount, withdrawnToday); err != nil {
		logger.Warn("Transaction denied",
			slog.Int64("account_id", accountID),
			slog.String("kind", string(kind)),
			slog.String("amount", amount.String()),
			slog.String("reason", err.Error()),
		)
		return nil, err
	}

	newBalance := account.Balance.Add(amount)
	if kind.IsDebit() {
		newBalance = account.Balance.Sub(amount)
	}

	txn, err := s.writeLeg(ctx, tx, accountID, newBalance, amount, kind, now)
	if err != nil {
		return nil, err
	}
	if err := s.accountRepo.Commit(ctx, tx); err != nil {
		return nil, storageFailure(err)
	}

	logger.Info("Transaction completed",
		slog.Int64("transaction_id", txn.TransactionID),
		slog.Int64("account_id", accountID),
		slog.String("kind", string(kind)),
		slog.String("amount", amount.String()),
	)
	return txn, nil
}

func (s *transactionService) Transfer(ctx context.Context, fromAccountID, toAccountID int64, amount decimal.Decimal) (*domain.Transaction, *domain.Transaction, error) {
	if fromAccountID == toAccountID {
		return nil, nil, apperrors.ErrSameAccount
	}
	if err := checkAmount(amount); err != nil {
		return nil, nil, err
	}
	logger := middleware.GetLoggerFromCtx(ctx)

	unlock := s.locks.LockPair(fromAccountID, toAccountID)
	defer unlock()

	tx, err := s.accountRepo.Begin(ctx)
	if err != nil {
		return nil, nil, storageFailure(err)
	}
	defer func() { _ = s.accountRepo.Rollback(ctx, tx) }()

	accounts, err := s.accountRepo.FindAccountsByIDsForUpdate(ctx, tx, []int64{fromAccountID, toAccountID})
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, err
		}
		return nil, nil, storageFailure(err)
	}
	sender, ok := accounts[fromAccountID]
	if !ok {
		return nil, nil, fmt.Errorf("account %d: %w", fromAccountID, apperrors.ErrNotFound)
	}
	receiver, ok := accounts[toAccountID]
	if !ok {
		return nil, nil, fmt.Errorf("account %d: %w", toAccountID, apperrors.ErrNotFound)
	}

	// Both legs must validate before any mutation; sender first.
	if err := s.validator.Validate(sender, domain.TransferSent, amount, decimal.Zero); err != nil {
		logger.Warn("Transfer denied on sender",
			slog.Int64("from_account_id", fromAccountID),
			slog.String("reason", err.Error()),
		)
		return nil, nil, err
	}
	if err := s.validator.Validate(receiver, domain.TransferReceived, amount, decimal.Zero); err != nil {
		logger.Warn("Transfer denied on receiver",
			slog.Int64("to_account_id", toAccountID),
			slog.String("reason", err.Error()),
		)
		return nil, nil, err
	}

	now := time.Now().UTC()

	sent, err := s.writeLeg(ctx, tx, fromAccountID, sender.Balance.Sub(amount), amount, domain.TransferSent, now)
	if err != nil {
		return nil, nil, err
	}
	received, err := s.writeLeg(ctx, tx, toAccountID, receiver.Balance.Add(amount), amount, domain.TransferReceived, now)
	if err != nil {
		return nil, nil, err
	}
	if err := s.accountRepo.Commit(ctx, tx); err != nil {
		return nil, nil, storageFailure(err)
	}

	logger.Info("Transfer completed",
		slog.Int64("from_account_id", fromAccountID),
		slog.Int64("to_account_id", toAccountID),
		slog.String("amount", amount.String()),
		slog.Int64("sent_transaction_id", sent.TransactionID),
		slog.Int64("received_transaction_id", received.TransactionID),
	)
	return received, sent, nil
}

// writeLeg updates one account's balance and appends the matching transaction
// record within the open database transaction.
func (s *transactionService) writeLeg(ctx context.Context, tx pgx.Tx, accountID int64, newBalance, amount decimal.Decimal, kind domain.TransactionKind, now time.Time) (*domain.Transaction, error) {
	if err := s.accountRepo.UpdateAccountBalanceInTx(ctx, tx, accountID, newBalance, now); err != nil {
		return nil, storageFailure(err)
	}
	txn, err := s.txnRepo.SaveTransactionInTx(ctx, tx, domain.Transaction{
		AccountID: accountID,
		Amount:    amount,
		Kind:      kind,
		CreatedAt: now,
	})
	if err != nil {
		return nil, storageFailure(err)
	}
	return txn, nil
}

func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID int64) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get transaction %d: %w", transactionID, err)
	}
	return txn, nil
}

func (s *transactionService) ListTransactions(ctx context.Context, limit int, offset int) ([]domain.Transaction, error) {
	return s.txnRepo.ListTransactions(ctx, limit, offset)
}

func (s *transactionService) ListTransactionsByAccount(ctx context.Context, accountID int64, limit int, offset int) ([]domain.Transaction, error) {
	return s.txnRepo.ListTransactionsByAccountID(ctx, accountID, limit, offset)
}

func (s *transactionService) DeleteTransaction(ctx context.Context, transactionID int64) error {
	return s.txnRepo.DeleteTransaction(ctx, transactionID)
}
