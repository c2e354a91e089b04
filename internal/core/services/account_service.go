package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sillicon-village/ledger-api/internal/apperrors"
	"github.com/sillicon-village/ledger-api/internal/core/domain"
	portsrepo "github.com/sillicon-village/ledger-api/internal/core/ports/repositories"
	portssvc "github.com/sillicon-village/ledger-api/internal/core/ports/services"
	"github.com/sillicon-village/ledger-api/internal/dto"
	"github.com/sillicon-village/ledger-api/internal/middleware"
)

// accountService provides account CRUD and status management. It never
// touches balances beyond the opening value; every later balance change goes
// through the transaction executor.
type accountService struct {
	accountRepo       portsrepo.AccountRepositoryFacade
	personRepo        portsrepo.PersonReader
	defaultDailyLimit decimal.Decimal
}

// NewAccountService creates a new account service. defaultDailyLimit is used
// when account creation omits a daily withdrawal limit.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade, personRepo portsrepo.PersonReader, defaultDailyLimit decimal.Decimal) portssvc.AccountSvcFacade {
	return &accountService{
		accountRepo:       accountRepo,
		personRepo:        personRepo,
		defaultDailyLimit: defaultDailyLimit,
	}
}

// Ensure accountService implements the AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Balance.IsNegative() {
		return nil, fmt.Errorf("%w: opening balance cannot be negative", apperrors.ErrValidation)
	}
	limit := s.defaultDailyLimit
	if req.DailyWithdrawalLimit != nil {
		if req.DailyWithdrawalLimit.IsNegative() {
			return nil, fmt.Errorf("%w: daily withdrawal limit cannot be negative", apperrors.ErrValidation)
		}
		limit = *req.DailyWithdrawalLimit
	}

	// The owner must exist; accounts always have exactly one owner.
	if _, err := s.personRepo.FindPersonByID(ctx, req.PersonID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("owner person %d: %w", req.PersonID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to verify owner %d: %w", req.PersonID, err)
	}

	now := time.Now().UTC()
	account := domain.Account{
		PersonID:             req.PersonID,
		Balance:              req.Balance,
		DailyWithdrawalLimit: limit,
		IsActive:             true,
		AccountType:          req.AccountType,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	saved, err := s.accountRepo.SaveAccount(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	logger.Info("Account created",
		slog.Int64("account_id", saved.AccountID),
		slog.Int64("person_id", saved.PersonID),
	)
	return saved, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	return s.accountRepo.FindAccountByID(ctx, accountID)
}

func (s *accountService) GetAccountBalance(ctx context.Context, accountID int64) (decimal.Decimal, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return decimal.Zero, err
	}
	return account.Balance, nil
}

func (s *accountService) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	return s.accountRepo.ListAccounts(ctx, limit, offset)
}

func (s *accountService) UpdateAccount(ctx context.Context, accountID int64, req dto.UpdateAccountRequest) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if req.DailyWithdrawalLimit != nil {
		if req.DailyWithdrawalLimit.IsNegative() {
			return nil, fmt.Errorf("%w: daily withdrawal limit cannot be negative", apperrors.ErrValidation)
		}
		account.DailyWithdrawalLimit = *req.DailyWithdrawalLimit
	}
	if req.AccountType != nil {
		account.AccountType = *req.AccountType
	}
	account.LastUpdatedAt = time.Now().UTC()

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		return nil, fmt.Errorf("failed to update account %d: %w", accountID, err)
	}
	return account, nil
}

func (s *accountService) BlockAccount(ctx context.Context, accountID int64) error {
	return s.setActive(ctx, accountID, false)
}

func (s *accountService) UnblockAccount(ctx context.Context, accountID int64) error {
	return s.setActive(ctx, accountID, true)
}

func (s *accountService) setActive(ctx context.Context, accountID int64, active bool) error {
	if err := s.accountRepo.SetAccountActive(ctx, accountID, active, time.Now().UTC()); err != nil {
		return err
	}
	middleware.GetLoggerFromCtx(ctx).Info("Account active flag changed",
		slog.Int64("account_id", accountID),
		slog.Bool("active", active),
	)
	return nil
}

func (s *accountService) DeleteAccount(ctx context.Context, accountID int64) error {
	return s.accountRepo.DeleteAccount(ctx, accountID)
}
