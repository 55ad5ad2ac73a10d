package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/misuhub/receivables_app/internal/apperrors"
	"github.com/misuhub/receivables_app/internal/core/domain"
	portssvc "github.com/misuhub/receivables_app/internal/core/ports/services"
	"github.com/misuhub/receivables_app/internal/core/services"
	"github.com/misuhub/receivables_app/internal/dto"
)

type PaymentServiceTestSuite struct {
	suite.Suite
	mockPaymentRepo *MockPaymentRepository
	mockTxnRepo     *MockTransactionRepository
	service         portssvc.PaymentSvcFacade
}

func (suite *PaymentServiceTestSuite) SetupTest() {
	suite.mockPaymentRepo = new(MockPaymentRepository)
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.service = services.NewPaymentService(suite.mockPaymentRepo, suite.mockTxnRepo)
}

func (suite *PaymentServiceTestSuite) expectTx() {
	suite.mockPaymentRepo.On("Begin", mock.Anything).Return(nil, nil).Once()
	suite.mockPaymentRepo.On("Commit", mock.Anything, mock.Anything).Return(nil).Once()
	suite.mockPaymentRepo.On("Rollback", mock.Anything, mock.Anything).Return(nil).Maybe()
}

func (suite *PaymentServiceTestSuite) TestCreatePayment_SettlesTransaction() {
	ctx := context.Background()
	txnID := uuid.NewString()
	txn := &domain.Transaction{
		TransactionID: txnID,
		Amount:        1000,
		Status:        domain.TransactionUnpaid,
	}
	req := dto.CreatePaymentRequest{
		TransactionID: txnID,
		Amount:        400,
		Method:        string(domain.PaymentBankTransfer),
	}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txnID).Return(txn, nil).Once()
	suite.expectTx()
	suite.mockPaymentRepo.On("SavePaymentInTx", ctx, mock.Anything, mock.AnythingOfType("domain.Payment")).Return(nil).Once()
	// The pool read does not see the uncommitted row, so only prior payments come back.
	suite.mockPaymentRepo.On("FindPaymentsByTransactionID", ctx, txnID).
		Return([]domain.Payment{{PaymentID: uuid.NewString(), TransactionID: txnID, Amount: 600}}, nil).Once()
	suite.mockTxnRepo.On("UpdateTransactionStatusInTx", ctx, mock.Anything, txnID, domain.TransactionPaid, mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	payment, rt, err := suite.service.CreatePayment(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(payment)
	suite.NotEmpty(payment.PaymentID)
	suite.Equal(int64(400), payment.Amount)
	suite.Equal(domain.PaymentBankTransfer, payment.Method)
	suite.Require().NotNil(rt)
	suite.Equal(int64(1000), rt.PaidAmount)
	suite.Equal(int64(0), rt.UnpaidAmount)
	suite.Equal(domain.TransactionPaid, rt.Status)

	suite.mockPaymentRepo.AssertExpectations(suite.T())
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestCreatePayment_PartialKeepsUnpaid() {
	ctx := context.Background()
	txnID := uuid.NewString()
	txn := &domain.Transaction{
		TransactionID: txnID,
		Amount:        1000,
		Status:        domain.TransactionUnpaid,
	}
	req := dto.CreatePaymentRequest{TransactionID: txnID, Amount: 250, Method: "cash"}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txnID).Return(txn, nil).Once()
	suite.expectTx()
	suite.mockPaymentRepo.On("SavePaymentInTx", ctx, mock.Anything, mock.AnythingOfType("domain.Payment")).Return(nil).Once()
	suite.mockPaymentRepo.On("FindPaymentsByTransactionID", ctx, txnID).Return([]domain.Payment{}, nil).Once()

	payment, rt, err := suite.service.CreatePayment(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(payment)
	suite.Equal(int64(250), rt.PaidAmount)
	suite.Equal(int64(750), rt.UnpaidAmount)
	suite.Equal(domain.TransactionUnpaid, rt.Status)
	// Status did not change, so no status write should happen.
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "UpdateTransactionStatusInTx",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestCreatePayment_DeletedTransactionRejected() {
	ctx := context.Background()
	txnID := uuid.NewString()
	deleted := &domain.Transaction{TransactionID: txnID, Amount: 1000, Status: domain.TransactionDeleted}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txnID).Return(deleted, nil).Once()

	payment, rt, err := suite.service.CreatePayment(ctx, dto.CreatePaymentRequest{TransactionID: txnID, Amount: 100, Method: "cash"})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(payment)
	suite.Nil(rt)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "Begin", mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestCreatePayment_UnknownTransactionIsValidationError() {
	ctx := context.Background()
	txnID := uuid.NewString()

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txnID).Return(nil, apperrors.ErrNotFound).Once()

	_, _, err := suite.service.CreatePayment(ctx, dto.CreatePaymentRequest{TransactionID: txnID, Amount: 100, Method: "cash"})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PaymentServiceTestSuite) TestCreatePayment_HonorsExplicitPaidAt() {
	ctx := context.Background()
	txnID := uuid.NewString()
	txn := &domain.Transaction{TransactionID: txnID, Amount: 1000, Status: domain.TransactionUnpaid}
	paidAt := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txnID).Return(txn, nil).Once()
	suite.expectTx()
	suite.mockPaymentRepo.On("SavePaymentInTx", ctx, mock.Anything, mock.MatchedBy(func(p domain.Payment) bool {
		return p.PaidAt.Equal(paidAt)
	})).Return(nil).Once()
	suite.mockPaymentRepo.On("FindPaymentsByTransactionID", ctx, txnID).Return([]domain.Payment{}, nil).Once()

	payment, _, err := suite.service.CreatePayment(ctx, dto.CreatePaymentRequest{
		TransactionID: txnID,
		Amount:        100,
		Method:        "cash",
		PaidAt:        &paidAt,
	})

	suite.Require().NoError(err)
	suite.True(payment.PaidAt.Equal(paidAt))
}

func (suite *PaymentServiceTestSuite) TestDeletePayment_ReopensTransaction() {
	ctx := context.Background()
	txnID := uuid.NewString()
	paymentID := uuid.NewString()
	payment := &domain.Payment{PaymentID: paymentID, TransactionID: txnID, Amount: 1000}
	txn := &domain.Transaction{TransactionID: txnID, Amount: 1000, Status: domain.TransactionPaid}

	suite.mockPaymentRepo.On("FindPaymentByID", ctx, paymentID).Return(payment, nil).Once()
	suite.expectTx()
	suite.mockPaymentRepo.On("DeletePaymentInTx", ctx, mock.Anything, paymentID).Return(nil).Once()
	suite.mockTxnRepo.On("FindTransactionByID", ctx, txnID).Return(txn, nil).Once()
	// Deletion is uncommitted, so the pool read still returns the row.
	suite.mockPaymentRepo.On("FindPaymentsByTransactionID", ctx, txnID).
		Return([]domain.Payment{*payment}, nil).Once()
	suite.mockTxnRepo.On("UpdateTransactionStatusInTx", ctx, mock.Anything, txnID, domain.TransactionUnpaid, mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	err := suite.service.DeletePayment(ctx, paymentID)

	suite.Require().NoError(err)
	suite.mockPaymentRepo.AssertExpectations(suite.T())
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestUpdatePayment_ResyncsStatus() {
	ctx := context.Background()
	txnID := uuid.NewString()
	paymentID := uuid.NewString()
	existing := &domain.Payment{PaymentID: paymentID, TransactionID: txnID, Amount: 400, Method: domain.PaymentCash}
	txn := &domain.Transaction{TransactionID: txnID, Amount: 1000, Status: domain.TransactionUnpaid}

	suite.mockPaymentRepo.On("FindPaymentByID", ctx, paymentID).Return(existing, nil).Once()
	suite.mockPaymentRepo.On("UpdatePayment", ctx, mock.MatchedBy(func(p domain.Payment) bool {
		return p.Amount == 1000
	})).Return(nil).Once()
	suite.mockTxnRepo.On("FindTransactionByID", ctx, txnID).Return(txn, nil).Once()
	suite.mockPaymentRepo.On("FindPaymentsByTransactionID", ctx, txnID).
		Return([]domain.Payment{{PaymentID: paymentID, TransactionID: txnID, Amount: 1000}}, nil).Once()
	suite.mockTxnRepo.On("UpdateTransaction", ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.Status == domain.TransactionPaid
	})).Return(nil).Once()

	newAmount := int64(1000)
	payment, err := suite.service.UpdatePayment(ctx, paymentID, dto.UpdatePaymentRequest{Amount: &newAmount})

	suite.Require().NoError(err)
	suite.Equal(int64(1000), payment.Amount)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func TestPaymentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}
