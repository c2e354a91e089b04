package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/sillicon-village/ledger-api/internal/apperrors"
	"github.com/sillicon-village/ledger-api/internal/core/domain"
	portssvc "github.com/sillicon-village/ledger-api/internal/core/ports/services"
	"github.com/sillicon-village/ledger-api/internal/dto"
	"github.com/sillicon-village/ledger-api/internal/handlers"
	"github.com/sillicon-village/ledger-api/internal/platform/config"
)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountBalance(ctx context.Context, accountID int64) (decimal.Decimal, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockAccountService) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountService) UpdateAccount(ctx context.Context, accountID int64, req dto.UpdateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, accountID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) BlockAccount(ctx context.Context, accountID int64) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

func (m *MockAccountService) UnblockAccount(ctx context.Context, accountID int64) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

func (m *MockAccountService) DeleteAccount(ctx context.Context, accountID int64) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

// --- Test Suite ---
type AccountHandlerTestSuite struct {
	suite.Suite
	router     *gin.Engine
	mockAccSvc *MockAccountService
	mockTxnSvc *MockTransactionService
}

func (suite *AccountHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockAccSvc = new(MockAccountService)
	suite.mockTxnSvc = new(MockTransactionService)

	services := &portssvc.ServiceContainer{
		Account:     suite.mockAccSvc,
		Transaction: suite.mockTxnSvc,
	}
	cfg := &config.Config{IsProduction: true}

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, cfg, services)
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_Success() {
	account := &domain.Account{
		AccountID:            9,
		PersonID:             1,
		Balance:              decimal.NewFromInt(100),
		DailyWithdrawalLimit: decimal.NewFromInt(1000),
		IsActive:             true,
	}
	suite.mockAccSvc.On("CreateAccount", mock.Anything, mock.MatchedBy(func(req dto.CreateAccountRequest) bool {
		return req.PersonID == 1 && req.Balance.Equal(decimal.NewFromInt(100))
	})).Return(account, nil).Once()

	body, _ := json.Marshal(gin.H{"personID": 1, "balance": "100"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/accounts", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(9), resp.AccountID)
	suite.True(resp.IsActive)
	suite.mockAccSvc.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_OwnerNotFound() {
	suite.mockAccSvc.On("CreateAccount", mock.Anything, mock.AnythingOfType("dto.CreateAccountRequest")).
		Return(nil, apperrors.ErrNotFound).Once()

	body, _ := json.Marshal(gin.H{"personID": 404})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/accounts", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *AccountHandlerTestSuite) TestGetAccountBalance_Success() {
	suite.mockAccSvc.On("GetAccountBalance", mock.Anything, int64(9)).
		Return(decimal.NewFromInt(321), nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/accounts/9/balance", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.AccountBalanceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(9), resp.AccountID)
	suite.True(resp.Balance.Equal(decimal.NewFromInt(321)))
}

func (suite *AccountHandlerTestSuite) TestGetAccountBalance_NotFound() {
	suite.mockAccSvc.On("GetAccountBalance", mock.Anything, int64(404)).
		Return(decimal.Zero, apperrors.ErrNotFound).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/accounts/404/balance", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *AccountHandlerTestSuite) TestBlockAccount_Success() {
	suite.mockAccSvc.On("BlockAccount", mock.Anything, int64(9)).Return(nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/accounts/9/block", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockAccSvc.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestUnblockAccount_NotFound() {
	suite.mockAccSvc.On("UnblockAccount", mock.Anything, int64(404)).
		Return(apperrors.ErrNotFound).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/accounts/404/unblock", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *AccountHandlerTestSuite) TestListAccountTransactions_Success() {
	account := &domain.Account{AccountID: 9, IsActive: true}
	txns := []domain.Transaction{
		{TransactionID: 1, AccountID: 9, Amount: decimal.NewFromInt(10), Kind: domain.Deposit},
	}

	suite.mockAccSvc.On("GetAccountByID", mock.Anything, int64(9)).Return(account, nil).Once()
	suite.mockTxnSvc.On("ListTransactionsByAccount", mock.Anything, int64(9), 20, 0).Return(txns, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/accounts/9/transactions", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 1)
	suite.Equal(int64(1), resp[0].TransactionID)
}

func (suite *AccountHandlerTestSuite) TestListAccountTransactions_UnknownAccount() {
	suite.mockAccSvc.On("GetAccountByID", mock.Anything, int64(404)).
		Return(nil, apperrors.ErrNotFound).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/accounts/404/transactions", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockTxnSvc.AssertNotCalled(suite.T(), "ListTransactionsByAccount", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AccountHandlerTestSuite) TestDeleteAccount_WithTransactions() {
	suite.mockAccSvc.On("DeleteAccount", mock.Anything, int64(9)).
		Return(apperrors.ErrValidation).Once()

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/accounts/9", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func TestAccountHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AccountHandlerTestSuite))
}
