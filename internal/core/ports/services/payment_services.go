package services

import (
	"context"

	"github.com/misuhub/receivables_app/internal/core/domain"
	"github.com/misuhub/receivables_app/internal/dto"
	"github.com/misuhub/receivables_app/internal/recon"
)

// PaymentReaderSvc defines read operations for payment data
type PaymentReaderSvc interface {
	// GetPaymentByID retrieves a specific payment by its unique identifier.
	GetPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error)

	// ListPaymentsByTransaction retrieves all payments recorded against one transaction.
	ListPaymentsByTransaction(ctx context.Context, transactionID string) ([]domain.Payment, error)
}

// PaymentWriterSvc defines write operations for payment data.
// Every write re-reconciles the owning transaction and persists its status
// in the same database transaction.
type PaymentWriterSvc interface {
	// CreatePayment records a payment and returns it with the freshly reconciled owning transaction.
	CreatePayment(ctx context.Context, req dto.CreatePaymentRequest) (*domain.Payment, *recon.ReconciledTransaction, error)

	// UpdatePayment updates an existing payment's details.
	UpdatePayment(ctx context.Context, paymentID string, req dto.UpdatePaymentRequest) (*domain.Payment, error)

	// DeletePayment removes a payment and re-reconciles the owning transaction.
	DeletePayment(ctx context.Context, paymentID string) error
}

// PaymentSvcFacade combines all payment-related service interfaces
type PaymentSvcFacade interface {
	PaymentReaderSvc
	PaymentWriterSvc
}
