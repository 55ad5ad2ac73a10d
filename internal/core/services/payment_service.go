package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/misuhub/receivables_app/internal/apperrors"
	"github.com/misuhub/receivables_app/internal/core/domain"
	portsrepo "github.com/misuhub/receivables_app/internal/core/ports/repositories"
	portssvc "github.com/misuhub/receivables_app/internal/core/ports/services"
	"github.com/misuhub/receivables_app/internal/dto"
	"github.com/misuhub/receivables_app/internal/recon"
)

// paymentService implements the PaymentSvcFacade interface.
// Writes run in a database transaction so the payment row and the owning
// transaction's status always move together.
type paymentService struct {
	BaseService
	paymentRepo     portsrepo.PaymentRepositoryWithTx
	transactionRepo portsrepo.TransactionRepositoryFacade
}

// NewPaymentService creates a new payment service.
func NewPaymentService(paymentRepo portsrepo.PaymentRepositoryWithTx, txnRepo portsrepo.TransactionRepositoryFacade) portssvc.PaymentSvcFacade {
	return &paymentService{
		paymentRepo:     paymentRepo,
		transactionRepo: txnRepo,
	}
}

// Ensure paymentService implements the PaymentSvcFacade interface
var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

func (s *paymentService) CreatePayment(ctx context.Context, req dto.CreatePaymentRequest) (*domain.Payment, *recon.ReconciledTransaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, req.TransactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, fmt.Errorf("%w: transaction %s does not exist", apperrors.ErrValidation, req.TransactionID)
		}
		return nil, nil, err
	}
	if txn.Status == domain.TransactionDeleted {
		return nil, nil, fmt.Errorf("%w: transaction %s is deleted", apperrors.ErrValidation, req.TransactionID)
	}

	now := time.Now().UTC()
	paidAt := now
	if req.PaidAt != nil {
		paidAt = *req.PaidAt
	}
	payment := domain.Payment{
		PaymentID:     uuid.NewString(),
		TransactionID: req.TransactionID,
		Amount:        req.Amount,
		Method:        domain.PaymentMethod(req.Method),
		PayerName:     req.PayerName,
		PaidAt:        paidAt,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	tx, err := s.paymentRepo.Begin(ctx)
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = s.paymentRepo.Rollback(ctx, tx) }()

	if err := s.paymentRepo.SavePaymentInTx(ctx, tx, payment); err != nil {
		s.LogError(ctx, err, "Failed to save payment", slog.String("payment_id", payment.PaymentID))
		return nil, nil, err
	}

	// Re-reconcile against all payments including the new one, then persist
	// the settled/unpaid status in the same transaction.
	payments, err := s.paymentRepo.FindPaymentsByTransactionID(ctx, req.TransactionID)
	if err != nil {
		return nil, nil, err
	}
	payments = append(payments, payment)

	rt := recon.Reconcile(*txn, payments)
	newStatus := domain.TransactionUnpaid
	if rt.Settled() {
		newStatus = domain.TransactionPaid
	}
	if newStatus != txn.Status {
		if err := s.transactionRepo.UpdateTransactionStatusInTx(ctx, tx, txn.TransactionID, newStatus, now); err != nil {
			s.LogError(ctx, err, "Failed to update transaction status", slog.String("transaction_id", txn.TransactionID))
			return nil, nil, err
		}
		rt.Status = newStatus
	}

	if err := s.paymentRepo.Commit(ctx, tx); err != nil {
		return nil, nil, err
	}

	s.LogInfo(ctx, "Payment recorded",
		slog.String("payment_id", payment.PaymentID),
		slog.String("transaction_id", txn.TransactionID),
		slog.Int64("amount", payment.Amount),
		slog.Int64("paid_ratio", rt.PaidRatio))
	return &payment, &rt, nil
}

func (s *paymentService) GetPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	return s.paymentRepo.FindPaymentByID(ctx, paymentID)
}

func (s *paymentService) ListPaymentsByTransaction(ctx context.Context, transactionID string) ([]domain.Payment, error) {
	payments, err := s.paymentRepo.FindPaymentsByTransactionID(ctx, transactionID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payments", slog.String("transaction_id", transactionID))
		return nil, err
	}
	return payments, nil
}

func (s *paymentService) UpdatePayment(ctx context.Context, paymentID string, req dto.UpdatePaymentRequest) (*domain.Payment, error) {
	payment, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	if req.Amount != nil {
		payment.Amount = *req.Amount
	}
	if req.Method != nil {
		payment.Method = domain.PaymentMethod(*req.Method)
	}
	if req.PayerName != nil {
		payment.PayerName = *req.PayerName
	}
	if req.PaidAt != nil {
		payment.PaidAt = *req.PaidAt
	}
	payment.UpdatedAt = time.Now().UTC()

	if err := s.paymentRepo.UpdatePayment(ctx, *payment); err != nil {
		s.LogError(ctx, err, "Failed to update payment", slog.String("payment_id", paymentID))
		return nil, err
	}

	if err := s.resyncTransactionStatus(ctx, payment.TransactionID); err != nil {
		return nil, err
	}
	return payment, nil
}

func (s *paymentService) DeletePayment(ctx context.Context, paymentID string) error {
	payment, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		return err
	}

	tx, err := s.paymentRepo.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = s.paymentRepo.Rollback(ctx, tx) }()

	if err := s.paymentRepo.DeletePaymentInTx(ctx, tx, paymentID); err != nil {
		s.LogError(ctx, err, "Failed to delete payment", slog.String("payment_id", paymentID))
		return err
	}

	txn, err := s.transactionRepo.FindTransactionByID(ctx, payment.TransactionID)
	if err != nil {
		return err
	}

	payments, err := s.paymentRepo.FindPaymentsByTransactionID(ctx, payment.TransactionID)
	if err != nil {
		return err
	}
	remaining := payments[:0]
	for _, p := range payments {
		if p.PaymentID != paymentID {
			remaining = append(remaining, p)
		}
	}

	rt := recon.Reconcile(*txn, remaining)
	newStatus := domain.TransactionUnpaid
	if rt.Settled() {
		newStatus = domain.TransactionPaid
	}
	if txn.Status != domain.TransactionDeleted && newStatus != txn.Status {
		if err := s.transactionRepo.UpdateTransactionStatusInTx(ctx, tx, txn.TransactionID, newStatus, time.Now().UTC()); err != nil {
			return err
		}
	}

	if err := s.paymentRepo.Commit(ctx, tx); err != nil {
		return err
	}

	s.LogInfo(ctx, "Payment deleted", slog.String("payment_id", paymentID), slog.String("transaction_id", payment.TransactionID))
	return nil
}

// resyncTransactionStatus recomputes and persists the owning transaction's
// status outside a payment write transaction.
func (s *paymentService) resyncTransactionStatus(ctx context.Context, transactionID string) error {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return err
	}
	if txn.Status == domain.TransactionDeleted {
		return nil
	}

	payments, err := s.paymentRepo.FindPaymentsByTransactionID(ctx, transactionID)
	if err != nil {
		return err
	}

	rt := recon.Reconcile(*txn, payments)
	newStatus := domain.TransactionUnpaid
	if rt.Settled() {
		newStatus = domain.TransactionPaid
	}
	if newStatus == txn.Status {
		return nil
	}

	txn.Status = newStatus
	txn.UpdatedAt = time.Now().UTC()
	return s.transactionRepo.UpdateTransaction(ctx, *txn)
}
