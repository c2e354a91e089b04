package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sillicon-village/ledger-api/internal/core/domain"
)

// WithdrawRequest defines the data needed for a withdrawal.
type WithdrawRequest struct {
	AccountID int64           `json:"accountID" binding:"required"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
}

// DepositRequest defines the data needed for a deposit.
type DepositRequest struct {
	AccountID int64           `json:"accountID" binding:"required"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
}

// TransferRequest defines the data needed for a transfer between two accounts.
type TransferRequest struct {
	FromAccountID int64           `json:"fromAccountID" binding:"required"`
	ToAccountID   int64           `json:"toAccountID" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
}

// TransactionResponse defines the data returned for a transaction record.
type TransactionResponse struct {
	TransactionID int64                  `json:"transactionID"`
	AccountID     int64                  `json:"accountID"`
	Amount        decimal.Decimal        `json:"amount"`
	Kind          domain.TransactionKind `json:"kind"`
	CreatedAt     time.Time              `json:"createdAt"`
}

// TransferResponse returns the credit leg of a completed transfer plus the id
// of its paired debit leg.
type TransferResponse struct {
	TransactionResponse
	SentTransactionID int64 `json:"sentTransactionID"`
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		AccountID:     txn.AccountID,
		Amount:        txn.Amount,
		Kind:          txn.Kind,
		CreatedAt:     txn.CreatedAt,
	}
}

// ToListTransactionResponse converts a slice of domain.Transaction to TransactionResponse DTOs
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		res[i] = ToTransactionResponse(&txn)
	}
	return res
}
