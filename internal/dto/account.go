package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sillicon-village/ledger-api/internal/core/domain"
)

// CreateAccountRequest defines the data needed to open a new account.
// DailyWithdrawalLimit falls back to the configured default when omitted.
type CreateAccountRequest struct {
	PersonID             int64            `json:"personID" binding:"required"`
	Balance              decimal.Decimal  `json:"balance"` // Optional opening balance, defaults to zero
	DailyWithdrawalLimit *decimal.Decimal `json:"dailyWithdrawalLimit"`
	AccountType          int              `json:"accountType"`
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Balance is deliberately absent: it is only mutated by the transaction executor.
type UpdateAccountRequest struct {
	DailyWithdrawalLimit *decimal.Decimal `json:"dailyWithdrawalLimit"`
	AccountType          *int             `json:"accountType"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID            int64           `json:"accountID"`
	PersonID             int64           `json:"personID"`
	Balance              decimal.Decimal `json:"balance"`
	DailyWithdrawalLimit decimal.Decimal `json:"dailyWithdrawalLimit"`
	IsActive             bool            `json:"isActive"`
	AccountType          int             `json:"accountType"`
	CreatedAt            time.Time       `json:"createdAt"`
}

// AccountBalanceResponse defines the data returned for a balance query.
type AccountBalanceResponse struct {
	AccountID int64           `json:"accountID"`
	Balance   decimal.Decimal `json:"balance"`
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:            acc.AccountID,
		PersonID:             acc.PersonID,
		Balance:              acc.Balance,
		DailyWithdrawalLimit: acc.DailyWithdrawalLimit,
		IsActive:             acc.IsActive,
		AccountType:          acc.AccountType,
		CreatedAt:            acc.CreatedAt,
	}
}

// ToListAccountResponse converts a slice of domain.Account to AccountResponse DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(&acc)
	}
	return res
}
