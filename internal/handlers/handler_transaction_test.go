package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/misuhub/receivables_app/internal/apperrors"
	"github.com/misuhub/receivables_app/internal/core/domain"
	portssvc "github.com/misuhub/receivables_app/internal/core/ports/services"
	"github.com/misuhub/receivables_app/internal/dto"
	"github.com/misuhub/receivables_app/internal/handlers"
	"github.com/misuhub/receivables_app/internal/middleware"
	"github.com/misuhub/receivables_app/internal/recon"
)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) GetTransactionByID(ctx context.Context, transactionID string) (*recon.ReconciledTransaction, []domain.Payment, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*recon.ReconciledTransaction), args.Get(1).([]domain.Payment), args.Error(2)
}

func (m *MockTransactionService) ListTransactions(ctx context.Context, limit int, nextToken *string, includeDeleted bool) ([]recon.ReconciledTransaction, *string, error) {
	args := m.Called(ctx, limit, nextToken, includeDeleted)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return args.Get(0).([]recon.ReconciledTransaction), token, args.Error(2)
}

func (m *MockTransactionService) ListTransactionsByCustomer(ctx context.Context, customerID string) ([]recon.ReconciledTransaction, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]recon.ReconciledTransaction), args.Error(1)
}

func (m *MockTransactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) DeleteTransaction(ctx context.Context, transactionID string) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}

var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

// --- Mock PaymentService ---
type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) GetPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentService) ListPaymentsByTransaction(ctx context.Context, transactionID string) ([]domain.Payment, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentService) CreatePayment(ctx context.Context, req dto.CreatePaymentRequest) (*domain.Payment, *recon.ReconciledTransaction, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Payment), args.Get(1).(*recon.ReconciledTransaction), args.Error(2)
}

func (m *MockPaymentService) UpdatePayment(ctx context.Context, paymentID string, req dto.UpdatePaymentRequest) (*domain.Payment, error) {
	args := m.Called(ctx, paymentID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentService) DeletePayment(ctx context.Context, paymentID string) error {
	args := m.Called(ctx, paymentID)
	return args.Error(0)
}

var _ portssvc.PaymentSvcFacade = (*MockPaymentService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) CustomerSummary(ctx context.Context, customerID string) (*recon.CustomerSummary, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recon.CustomerSummary), args.Error(1)
}

func (m *MockReportingService) TransactionsSummary(ctx context.Context) (*recon.GlobalSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recon.GlobalSummary), args.Error(1)
}

func (m *MockReportingService) Dashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.DashboardResponse), args.Error(1)
}

func (m *MockReportingService) CustomerStatement(ctx context.Context, customerID string) (*dto.StatementResponse, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.StatementResponse), args.Error(1)
}

func (m *MockReportingService) InvalidateDashboardCache(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

var _ portssvc.ReportingSvcFacade = (*MockReportingService)(nil)

// --- Test Suite ---
type TransactionHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockTxnSvc    *MockTransactionService
	mockPaySvc    *MockPaymentService
	mockReportSvc *MockReportingService
	jwtSecret     string
}

func (suite *TransactionHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "receivables-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *TransactionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockTxnSvc = new(MockTransactionService)
	suite.mockPaySvc = new(MockPaymentService)
	suite.mockReportSvc = new(MockReportingService)

	v1 := suite.router.Group("/api/v1", middleware.AuthMiddleware(suite.jwtSecret))
	handlers.RegisterTransactionRoutes(v1, suite.mockTxnSvc, suite.mockPaySvc, suite.mockReportSvc)
}

func (suite *TransactionHandlerTestSuite) doRequest(method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(uuid.NewString()))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *TransactionHandlerTestSuite) TestGetTransaction_Success() {
	txnID := uuid.NewString()
	rt := &recon.ReconciledTransaction{
		Transaction: domain.Transaction{
			TransactionID: txnID,
			Amount:        1000,
			Status:        domain.TransactionUnpaid,
		},
		PaidAmount:   400,
		UnpaidAmount: 600,
		PaidRatio:    40,
	}
	payments := []domain.Payment{{PaymentID: uuid.NewString(), TransactionID: txnID, Amount: 400}}

	suite.mockTxnSvc.On("GetTransactionByID", mock.Anything, txnID).Return(rt, payments, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/transactions/"+txnID, "")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.TransactionDetailResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(txnID, resp.TransactionID)
	suite.Equal(int64(400), resp.PaidAmount)
	suite.Equal(int64(600), resp.UnpaidAmount)
	suite.Len(resp.Payments, 1)
}

func (suite *TransactionHandlerTestSuite) TestGetTransaction_NotFound() {
	txnID := uuid.NewString()
	suite.mockTxnSvc.On("GetTransactionByID", mock.Anything, txnID).
		Return(nil, nil, apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/transactions/"+txnID, "")

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestSummaryRouteDoesNotCollideWithID() {
	summary := &recon.GlobalSummary{TransactionCount: 3, TotalAmount: 3000, TotalUnpaid: 1200}
	suite.mockReportSvc.On("TransactionsSummary", mock.Anything).Return(summary, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/transactions/summary", "")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.TransactionsSummaryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(3), resp.Summary.TransactionCount)
	suite.Equal(int64(1200), resp.Summary.TotalUnpaid)
	// The static route must win: the ID handler should never run.
	suite.mockTxnSvc.AssertNotCalled(suite.T(), "GetTransactionByID", mock.Anything, "summary")
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_ValidationFailure() {
	// Missing required amount.
	w := suite.doRequest(http.MethodPost, "/api/v1/transactions", `{"customerID":"`+uuid.NewString()+`"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockTxnSvc.AssertNotCalled(suite.T(), "CreateTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_Success() {
	customerID := uuid.NewString()
	created := &domain.Transaction{
		TransactionID: uuid.NewString(),
		CustomerID:    customerID,
		Amount:        5000,
		Status:        domain.TransactionUnpaid,
	}
	suite.mockTxnSvc.On("CreateTransaction", mock.Anything, mock.AnythingOfType("dto.CreateTransactionRequest")).
		Return(created, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/transactions", `{"customerID":"`+customerID+`","amount":5000}`)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.TransactionID, resp.TransactionID)
	suite.Equal(int64(0), resp.PaidAmount)
	suite.Equal(int64(5000), resp.UnpaidAmount)
}

func (suite *TransactionHandlerTestSuite) TestUnauthorizedWithoutToken() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestDeleteTransaction_NoContent() {
	txnID := uuid.NewString()
	suite.mockTxnSvc.On("DeleteTransaction", mock.Anything, txnID).Return(nil).Once()

	w := suite.doRequest(http.MethodDelete, "/api/v1/transactions/"+txnID, "")

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockTxnSvc.AssertExpectations(suite.T())
}

func TestTransactionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}
