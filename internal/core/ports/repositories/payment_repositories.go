package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/misuhub/receivables_app/internal/core/domain"
)

// PaymentReader defines read operations for payment data
type PaymentReader interface {
	// FindPaymentByID retrieves a specific payment by its unique identifier.
	FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error)

	// FindPaymentsByTransactionID retrieves all payments recorded against one transaction.
	FindPaymentsByTransactionID(ctx context.Context, transactionID string) ([]domain.Payment, error)

	// FindPaymentsByTransactionIDs retrieves payments for multiple transactions, grouped by transaction ID.
	FindPaymentsByTransactionIDs(ctx context.Context, transactionIDs []string) (map[string][]domain.Payment, error)
}

// PaymentWriter defines write operations for payment data
type PaymentWriter interface {
	// SavePaymentInTx persists a new payment within a database transaction, so the
	// owning transaction's status can be updated atomically alongside it.
	SavePaymentInTx(ctx context.Context, tx pgx.Tx, payment domain.Payment) error

	// UpdatePayment updates an existing payment's details.
	UpdatePayment(ctx context.Context, payment domain.Payment) error

	// DeletePaymentInTx removes a payment within a database transaction.
	DeletePaymentInTx(ctx context.Context, tx pgx.Tx, paymentID string) error
}

// PaymentRepositoryFacade combines all payment-related repository interfaces
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}

// PaymentRepositoryWithTx extends PaymentRepositoryFacade with transaction capabilities
type PaymentRepositoryWithTx interface {
	PaymentRepositoryFacade
	TransactionManager
}
