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

// transactionService implements the TransactionSvcFacade interface
type transactionService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepositoryWithTx
	paymentRepo     portsrepo.PaymentReader
	customerRepo    portsrepo.CustomerReader
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(txnRepo portsrepo.TransactionRepositoryWithTx, paymentRepo portsrepo.PaymentReader, customerRepo portsrepo.CustomerReader) portssvc.TransactionSvcFacade {
	return &transactionService{
		transactionRepo: txnRepo,
		paymentRepo:     paymentRepo,
		customerRepo:    customerRepo,
	}
}

// Ensure transactionService implements the TransactionSvcFacade interface
var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	if _, err := s.customerRepo.FindCustomerByID(ctx, req.CustomerID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: customer %s does not exist", apperrors.ErrValidation, req.CustomerID)
		}
		return nil, err
	}

	now := time.Now().UTC()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		CustomerID:    req.CustomerID,
		Type:          req.Type,
		Amount:        req.Amount,
		Status:        domain.TransactionUnpaid,
		Description:   req.Description,
		DueDate:       req.DueDate,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.transactionRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to create transaction", slog.String("transaction_id", txn.TransactionID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction created",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("customer_id", txn.CustomerID),
		slog.Int64("amount", txn.Amount))
	return &txn, nil
}

func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID string) (*recon.ReconciledTransaction, []domain.Payment, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, nil, err
	}

	payments, err := s.paymentRepo.FindPaymentsByTransactionID(ctx, transactionID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load payments for transaction", slog.String("transaction_id", transactionID))
		return nil, nil, err
	}

	rt := recon.Reconcile(*txn, payments)
	return &rt, payments, nil
}

func (s *transactionService) ListTransactions(ctx context.Context, limit int, nextToken *string, includeDeleted bool) ([]recon.ReconciledTransaction, *string, error) {
	txns, token, err := s.transactionRepo.ListTransactions(ctx, limit, nextToken, includeDeleted)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, nil, err
	}

	reconciled, err := s.reconcileAll(ctx, txns)
	if err != nil {
		return nil, nil, err
	}
	return reconciled, token, nil
}

func (s *transactionService) ListTransactionsByCustomer(ctx context.Context, customerID string) ([]recon.ReconciledTransaction, error) {
	txns, err := s.transactionRepo.ListTransactionsByCustomer(ctx, customerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions for customer", slog.String("customer_id", customerID))
		return nil, err
	}
	return s.reconcileAll(ctx, txns)
}

// reconcileAll joins a batch of transactions with their payments in one query.
func (s *transactionService) reconcileAll(ctx context.Context, txns []domain.Transaction) ([]recon.ReconciledTransaction, error) {
	ids := make([]string, len(txns))
	for i, t := range txns {
		ids[i] = t.TransactionID
	}

	paymentsByTxn, err := s.paymentRepo.FindPaymentsByTransactionIDs(ctx, ids)
	if err != nil {
		s.LogError(ctx, err, "Failed to batch-load payments")
		return nil, err
	}

	reconciled := make([]recon.ReconciledTransaction, len(txns))
	for i, t := range txns {
		reconciled[i] = recon.Reconcile(t, paymentsByTxn[t.TransactionID])
	}
	return reconciled, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if txn.Status == domain.TransactionDeleted {
		return nil, apperrors.ErrNotFound
	}

	if req.Type != nil {
		txn.Type = *req.Type
	}
	if req.Amount != nil {
		txn.Amount = *req.Amount
	}
	if req.Status != nil {
		txn.Status = domain.TransactionStatus(*req.Status)
	}
	if req.Description != nil {
		txn.Description = *req.Description
	}
	if req.DueDate != nil {
		txn.DueDate = req.DueDate
	}
	txn.UpdatedAt = time.Now().UTC()

	if err := s.transactionRepo.UpdateTransaction(ctx, *txn); err != nil {
		s.LogError(ctx, err, "Failed to update transaction", slog.String("transaction_id", transactionID))
		return nil, err
	}

	return txn, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, transactionID string) error {
	if err := s.transactionRepo.MarkTransactionDeleted(ctx, transactionID, time.Now().UTC()); err != nil {
		s.LogError(ctx, err, "Failed to delete transaction", slog.String("transaction_id", transactionID))
		return err
	}
	s.LogInfo(ctx, "Transaction soft-deleted", slog.String("transaction_id", transactionID))
	return nil
}
