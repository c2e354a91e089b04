package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/sillicon-village/ledger-api/internal/core/domain"
	"github.com/sillicon-village/ledger-api/internal/dto"
)

// AccountSvcFacade defines the service operations for accounts.
// None of these mutate balances; balance changes go through TransactionSvcFacade.
type AccountSvcFacade interface {
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)
	GetAccountByID(ctx context.Context, accountID int64) (*domain.Account, error)
	GetAccountBalance(ctx context.Context, accountID int64) (decimal.Decimal, error)
	ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error)
	UpdateAccount(ctx context.Context, accountID int64, req dto.UpdateAccountRequest) (*domain.Account, error)
	BlockAccount(ctx context.Context, accountID int64) error
	UnblockAccount(ctx context.Context, accountID int64) error
	DeleteAccount(ctx context.Context, accountID int64) error
}
