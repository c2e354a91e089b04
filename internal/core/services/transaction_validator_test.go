package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/sillicon-village/ledger-api/internal/apperrors"
	"github.com/sillicon-village/ledger-api/internal/core/domain"
)

func TestTransactionValidator_Validate(t *testing.T) {
	account := func(active bool, balance, limit int64) domain.Account {
		return domain.Account{
			AccountID:            1,
			Balance:              decimal.NewFromInt(balance),
			DailyWithdrawalLimit: decimal.NewFromInt(limit),
			IsActive:             active,
		}
	}

	tests := []struct {
		name           string
		account        domain.Account
		kind           domain.TransactionKind
		amount         int64
		withdrawnToday int64
		wantErr        error
	}{
		{
			name:    "deposit on active account",
			account: account(true, 0, 800),
			kind:    domain.Deposit,
			amount:  100,
		},
		{
			name:    "withdrawal within balance and limit",
			account: account(true, 500, 800),
			kind:    domain.Withdrawal,
			amount:  200,
		},
		{
			name:    "blocked account denies deposit",
			account: account(false, 500, 800),
			kind:    domain.Deposit,
			amount:  1,
			wantErr: apperrors.ErrAccountBlocked,
		},
		{
			name:    "blocked account denies withdrawal",
			account: account(false, 500, 800),
			kind:    domain.Withdrawal,
			amount:  1,
			wantErr: apperrors.ErrAccountBlocked,
		},
		{
			name:    "blocked account denies incoming transfer leg",
			account: account(false, 500, 800),
			kind:    domain.TransferReceived,
			amount:  1,
			wantErr: apperrors.ErrAccountBlocked,
		},
		{
			name:    "withdrawal over balance",
			account: account(true, 100, 800),
			kind:    domain.Withdrawal,
			amount:  101,
			wantErr: apperrors.ErrInsufficientBalance,
		},
		{
			name:    "withdrawal of exact balance",
			account: account(true, 100, 800),
			kind:    domain.Withdrawal,
			amount:  100,
		},
		{
			// Blocked wins over insufficient balance when both apply.
			name:    "blocked checked before balance",
			account: account(false, 100, 800),
			kind:    domain.Withdrawal,
			amount:  200,
			wantErr: apperrors.ErrAccountBlocked,
		},
		{
			// Balance wins over the daily cap when both apply.
			name:           "balance checked before daily limit",
			account:        account(true, 100, 800),
			kind:           domain.Withdrawal,
			amount:         900,
			withdrawnToday: 700,
			wantErr:        apperrors.ErrInsufficientBalance,
		},
		{
			name:           "withdrawal exceeding daily limit",
			account:        account(true, 5000, 800),
			kind:           domain.Withdrawal,
			amount:         200,
			withdrawnToday: 700,
			wantErr:        apperrors.ErrDailyLimitExceeded,
		},
		{
			name:           "withdrawal reaching daily limit exactly",
			account:        account(true, 5000, 800),
			kind:           domain.Withdrawal,
			amount:         100,
			withdrawnToday: 700,
		},
		{
			// The daily cap applies to WITHDRAWAL only; a transfer debit of the
			// same size passes as long as the balance covers it.
			name:           "transfer debit ignores daily limit",
			account:        account(true, 5000, 800),
			kind:           domain.TransferSent,
			amount:         200,
			withdrawnToday: 700,
		},
		{
			name:    "transfer debit over balance",
			account: account(true, 100, 800),
			kind:    domain.TransferSent,
			amount:  101,
			wantErr: apperrors.ErrInsufficientBalance,
		},
		{
			name:    "incoming transfer leg ignores balance and limit",
			account: account(true, 0, 0),
			kind:    domain.TransferReceived,
			amount:  1_000_000,
		},
	}

	var v transactionValidator
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.account, tt.kind, decimal.NewFromInt(tt.amount), decimal.NewFromInt(tt.withdrawnToday))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
