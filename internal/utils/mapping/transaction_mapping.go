package mapping

import (
	"github.com/sillicon-village/ledger-api/internal/core/domain"
	"github.com/sillicon-village/ledger-api/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID: d.TransactionID,
		AccountID:     d.AccountID,
		Amount:        d.Amount,
		Kind:          models.TransactionKind(d.Kind),
		CreatedAt:     d.CreatedAt,
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		AccountID:     m.AccountID,
		Amount:        m.Amount,
		Kind:          domain.TransactionKind(m.Kind),
		CreatedAt:     m.CreatedAt,
	}
}
