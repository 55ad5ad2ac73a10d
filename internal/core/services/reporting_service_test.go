package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/misuhub/receivables_app/internal/apperrors"
	"github.com/misuhub/receivables_app/internal/core/domain"
	portssvc "github.com/misuhub/receivables_app/internal/core/ports/services"
	"github.com/misuhub/receivables_app/internal/core/services"
	"github.com/misuhub/receivables_app/internal/dto"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockTxnRepo      *MockTransactionRepository
	mockPaymentRepo  *MockPaymentRepository
	mockCustomerRepo *MockCustomerRepository
	service          portssvc.ReportingSvcFacade
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockPaymentRepo = new(MockPaymentRepository)
	suite.mockCustomerRepo = new(MockCustomerRepository)
	// No cache: every read recomputes, which is what these tests want.
	suite.service = services.NewReportingService(suite.mockTxnRepo, suite.mockPaymentRepo, suite.mockCustomerRepo, nil, time.Minute)
}

func (suite *ReportingServiceTestSuite) TestTransactionsSummary() {
	ctx := context.Background()
	customerA := uuid.NewString()
	customerB := uuid.NewString()
	txnA := domain.Transaction{TransactionID: uuid.NewString(), CustomerID: customerA, Amount: 1000, Status: domain.TransactionUnpaid}
	txnB := domain.Transaction{TransactionID: uuid.NewString(), CustomerID: customerB, Amount: 500, Status: domain.TransactionUnpaid}

	suite.mockTxnRepo.On("ListAllActive", ctx).Return([]domain.Transaction{txnA, txnB}, nil).Once()
	suite.mockPaymentRepo.On("FindPaymentsByTransactionIDs", ctx, []string{txnA.TransactionID, txnB.TransactionID}).
		Return(map[string][]domain.Payment{
			txnA.TransactionID: {{PaymentID: uuid.NewString(), TransactionID: txnA.TransactionID, Amount: 400}},
		}, nil).Once()

	summary, err := suite.service.TransactionsSummary(ctx)

	suite.Require().NoError(err)
	suite.Equal(int64(2), summary.TransactionCount)
	suite.Equal(int64(2), summary.CustomerCount)
	suite.Equal(int64(1500), summary.TotalAmount)
	suite.Equal(int64(400), summary.TotalPaid)
	suite.Equal(int64(1100), summary.TotalUnpaid)
}

func (suite *ReportingServiceTestSuite) TestCustomerSummary() {
	ctx := context.Background()
	customerID := uuid.NewString()
	txn := domain.Transaction{TransactionID: uuid.NewString(), CustomerID: customerID, Amount: 2000, Status: domain.TransactionUnpaid}

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, customerID).
		Return(&domain.Customer{CustomerID: customerID, Name: "Acme"}, nil).Once()
	suite.mockTxnRepo.On("ListTransactionsByCustomer", ctx, customerID).
		Return([]domain.Transaction{txn}, nil).Once()
	suite.mockPaymentRepo.On("FindPaymentsByTransactionIDs", ctx, []string{txn.TransactionID}).
		Return(map[string][]domain.Payment{
			txn.TransactionID: {{PaymentID: uuid.NewString(), TransactionID: txn.TransactionID, Amount: 500}},
		}, nil).Once()

	summary, err := suite.service.CustomerSummary(ctx, customerID)

	suite.Require().NoError(err)
	suite.Equal(customerID, summary.CustomerID)
	suite.Equal(int64(1), summary.TransactionCount)
	suite.Equal(int64(2000), summary.TotalAmount)
	suite.Equal(int64(500), summary.TotalPaid)
	suite.Equal(int64(1500), summary.TotalUnpaid)
	suite.Equal(int64(25), summary.TotalRatio)
}

func (suite *ReportingServiceTestSuite) TestCustomerSummary_UnknownCustomer() {
	ctx := context.Background()
	customerID := uuid.NewString()

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, customerID).Return(nil, apperrors.ErrNotFound).Once()

	summary, err := suite.service.CustomerSummary(ctx, customerID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(summary)
}

func (suite *ReportingServiceTestSuite) TestDashboard_AgingAndTopDebtors() {
	ctx := context.Background()
	customerID := uuid.NewString()
	now := time.Now().UTC()

	overdue45 := now.Add(-45 * 24 * time.Hour)
	futureDue := now.Add(10 * 24 * time.Hour)
	txnOverdue := domain.Transaction{
		TransactionID: uuid.NewString(),
		CustomerID:    customerID,
		Amount:        1000,
		Status:        domain.TransactionUnpaid,
		DueDate:       &overdue45,
	}
	txnCurrent := domain.Transaction{
		TransactionID: uuid.NewString(),
		CustomerID:    customerID,
		Amount:        500,
		Status:        domain.TransactionUnpaid,
		DueDate:       &futureDue,
	}
	txnSettled := domain.Transaction{
		TransactionID: uuid.NewString(),
		CustomerID:    customerID,
		Amount:        300,
		Status:        domain.TransactionPaid,
	}

	suite.mockTxnRepo.On("ListAllActive", ctx).
		Return([]domain.Transaction{txnOverdue, txnCurrent, txnSettled}, nil).Once()
	suite.mockPaymentRepo.On("FindPaymentsByTransactionIDs", ctx,
		[]string{txnOverdue.TransactionID, txnCurrent.TransactionID, txnSettled.TransactionID}).
		Return(map[string][]domain.Payment{
			txnSettled.TransactionID: {{PaymentID: uuid.NewString(), TransactionID: txnSettled.TransactionID, Amount: 300}},
		}, nil).Once()
	suite.mockCustomerRepo.On("FindCustomerByID", ctx, customerID).
		Return(&domain.Customer{CustomerID: customerID, Name: "Acme"}, nil).Once()

	dashboard, err := suite.service.Dashboard(ctx)

	suite.Require().NoError(err)
	suite.Equal(int64(3), dashboard.Summary.TransactionCount)
	suite.Equal(int64(1500), dashboard.Summary.TotalUnpaid)

	buckets := make(map[string]dto.AgingBucketResponse, len(dashboard.Aging))
	for _, b := range dashboard.Aging {
		buckets[b.Label] = b
	}
	suite.Equal(int64(1), buckets["current"].TransactionCount)
	suite.Equal(int64(500), buckets["current"].UnpaidTotal)
	suite.Equal(int64(1), buckets["31-60"].TransactionCount)
	suite.Equal(int64(1000), buckets["31-60"].UnpaidTotal)
	suite.Equal(int64(0), buckets["90+"].TransactionCount)

	suite.Require().Len(dashboard.TopDebtors, 1)
	suite.Equal(customerID, dashboard.TopDebtors[0].CustomerID)
	suite.Equal("Acme", dashboard.TopDebtors[0].CustomerName)
	suite.Equal(int64(1500), dashboard.TopDebtors[0].TotalUnpaid)
}

func (suite *ReportingServiceTestSuite) TestInvalidateDashboardCache_NoCacheIsNoop() {
	err := suite.service.InvalidateDashboardCache(context.Background())
	suite.NoError(err)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
