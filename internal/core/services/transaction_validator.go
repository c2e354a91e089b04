package services

import (
	"github.com/shopspring/decimal"

	"github.com/sillicon-village/ledger-api/internal/apperrors"
	"github.com/sillicon-village/ledger-api/internal/core/domain"
)

// transactionValidator decides whether a single operation is allowed against
// the current account state. It performs no mutation and no I/O; the executor
// supplies the day's withdrawal total, read inside the same unit of work.
type transactionValidator struct{}

// Validate applies the ledger rules in order:
//  1. a blocked account denies everything
//  2. debit legs (WITHDRAWAL, TRANSFER_SENT) must not exceed the balance
//  3. WITHDRAWAL must fit the remaining daily limit
//
// Credit legs (DEPOSIT, TRANSFER_RECEIVED) pass unconditionally once rule 1
// holds. The daily cap applies to WITHDRAWAL only; TRANSFER_SENT is limited by
// balance alone.
//
// Amount must already be validated as positive by the caller.
func (transactionValidator) Validate(account domain.Account, kind domain.TransactionKind, amount, withdrawnToday decimal.Decimal) error {
	if !account.IsActive {
		return apperrors.ErrAccountBlocked
	}
	if kind.IsDebit() && amount.GreaterThan(account.Balance) {
		return apperrors.ErrInsufficientBalance
	}
	if kind == domain.Withdrawal && withdrawnToday.Add(amount).GreaterThan(account.DailyWithdrawalLimit) {
		return apperrors.ErrDailyLimitExceeded
	}
	return nil
}
