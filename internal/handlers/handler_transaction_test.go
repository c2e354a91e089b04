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

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) Withdraw(ctx context.Context, accountID int64, amount decimal.Decimal) (*domain.Transaction, error) {
	args := m.Called(ctx, accountID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) Deposit(ctx context.Context, accountID int64, amount decimal.Decimal) (*domain.Transaction, error) {
	args := m.Called(ctx, accountID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) Transfer(ctx context.Context, fromAccountID, toAccountID int64, amount decimal.Decimal) (*domain.Transaction, *domain.Transaction, error) {
	args := m.Called(ctx, fromAccountID, toAccountID, amount)
	var received, sent *domain.Transaction
	if args.Get(0) != nil {
		received = args.Get(0).(*domain.Transaction)
	}
	if args.Get(1) != nil {
		sent = args.Get(1).(*domain.Transaction)
	}
	return received, sent, args.Error(2)
}

func (m *MockTransactionService) GetTransactionByID(ctx context.Context, transactionID int64) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) ListTransactions(ctx context.Context, limit int, offset int) ([]domain.Transaction, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) ListTransactionsByAccount(ctx context.Context, accountID int64, limit int, offset int) ([]domain.Transaction, error) {
	args := m.Called(ctx, accountID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) DeleteTransaction(ctx context.Context, transactionID int64) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

// --- Test Suite ---
type TransactionHandlerTestSuite struct {
	suite.Suite
	router  *gin.Engine
	mockSvc *MockTransactionService
}

func (suite *TransactionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockSvc = new(MockTransactionService)

	services := &portssvc.ServiceContainer{Transaction: suite.mockSvc}
	cfg := &config.Config{IsProduction: true} // keep swagger out of the test router

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, cfg, services)
}

func (suite *TransactionHandlerTestSuite) postJSON(path string, body any) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	suite.Require().NoError(err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *TransactionHandlerTestSuite) TestDeposit_Success() {
	amount := decimal.NewFromInt(100)
	suite.mockSvc.On("Deposit", mock.Anything, int64(7), amount).
		Return(&domain.Transaction{TransactionID: 1, AccountID: 7, Amount: amount, Kind: domain.Deposit}, nil).Once()

	w := suite.postJSON("/api/v1/transactions/deposit", dto.DepositRequest{AccountID: 7, Amount: amount})

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(1), resp.TransactionID)
	suite.Equal(domain.Deposit, resp.Kind)
	suite.mockSvc.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestDeposit_MissingFields() {
	w := suite.postJSON("/api/v1/transactions/deposit", gin.H{"amount": "50"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockSvc.AssertNotCalled(suite.T(), "Deposit", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestWithdraw_InsufficientBalance() {
	amount := decimal.NewFromInt(500)
	suite.mockSvc.On("Withdraw", mock.Anything, int64(7), amount).
		Return(nil, apperrors.ErrInsufficientBalance).Once()

	w := suite.postJSON("/api/v1/transactions/withdraw", dto.WithdrawRequest{AccountID: 7, Amount: amount})

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestWithdraw_DailyLimitExceeded() {
	amount := decimal.NewFromInt(500)
	suite.mockSvc.On("Withdraw", mock.Anything, int64(7), amount).
		Return(nil, apperrors.ErrDailyLimitExceeded).Once()

	w := suite.postJSON("/api/v1/transactions/withdraw", dto.WithdrawRequest{AccountID: 7, Amount: amount})

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestWithdraw_BlockedAccount() {
	amount := decimal.NewFromInt(10)
	suite.mockSvc.On("Withdraw", mock.Anything, int64(7), amount).
		Return(nil, apperrors.ErrAccountBlocked).Once()

	w := suite.postJSON("/api/v1/transactions/withdraw", dto.WithdrawRequest{AccountID: 7, Amount: amount})

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestWithdraw_AccountNotFound() {
	amount := decimal.NewFromInt(10)
	suite.mockSvc.On("Withdraw", mock.Anything, int64(99), amount).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.postJSON("/api/v1/transactions/withdraw", dto.WithdrawRequest{AccountID: 99, Amount: amount})

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestTransfer_Success() {
	amount := decimal.NewFromInt(120)
	received := &domain.Transaction{TransactionID: 11, AccountID: 2, Amount: amount, Kind: domain.TransferReceived}
	sent := &domain.Transaction{TransactionID: 10, AccountID: 1, Amount: amount, Kind: domain.TransferSent}

	suite.mockSvc.On("Transfer", mock.Anything, int64(1), int64(2), amount).
		Return(received, sent, nil).Once()

	w := suite.postJSON("/api/v1/transactions/transfer", dto.TransferRequest{FromAccountID: 1, ToAccountID: 2, Amount: amount})

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.TransferResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(11), resp.TransactionID)
	suite.Equal(domain.TransferReceived, resp.Kind)
	suite.Equal(int64(10), resp.SentTransactionID)
}

func (suite *TransactionHandlerTestSuite) TestTransfer_SameAccount() {
	amount := decimal.NewFromInt(10)
	suite.mockSvc.On("Transfer", mock.Anything, int64(4), int64(4), amount).
		Return(nil, nil, apperrors.ErrSameAccount).Once()

	w := suite.postJSON("/api/v1/transactions/transfer", dto.TransferRequest{FromAccountID: 4, ToAccountID: 4, Amount: amount})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestTransfer_StorageFailure() {
	amount := decimal.NewFromInt(10)
	suite.mockSvc.On("Transfer", mock.Anything, int64(1), int64(2), amount).
		Return(nil, nil, apperrors.ErrStorageFailure).Once()

	w := suite.postJSON("/api/v1/transactions/transfer", dto.TransferRequest{FromAccountID: 1, ToAccountID: 2, Amount: amount})

	suite.Equal(http.StatusInternalServerError, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestGetTransaction_Success() {
	txn := &domain.Transaction{TransactionID: 5, AccountID: 7, Amount: decimal.NewFromInt(30), Kind: domain.Deposit}
	suite.mockSvc.On("GetTransactionByID", mock.Anything, int64(5)).Return(txn, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions/5", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(5), resp.TransactionID)
}

func (suite *TransactionHandlerTestSuite) TestGetTransaction_InvalidID() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions/not-a-number", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockSvc.AssertNotCalled(suite.T(), "GetTransactionByID", mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_DefaultPagination() {
	suite.mockSvc.On("ListTransactions", mock.Anything, 20, 0).
		Return([]domain.Transaction{}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockSvc.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestDeleteTransaction_NotFound() {
	suite.mockSvc.On("DeleteTransaction", mock.Anything, int64(404)).
		Return(apperrors.ErrNotFound).Once()

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/transactions/404", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func TestTransactionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}
