package services

import (
	"context"

	"github.com/misuhub/receivables_app/internal/core/domain"
	"github.com/misuhub/receivables_app/internal/dto"
	"github.com/misuhub/receivables_app/internal/recon"
)

// TransactionReaderSvc defines read operations for transaction data.
// Read paths return reconciled transactions: the persisted row joined with
// its payments and the derived paid/unpaid/ratio fields.
type TransactionReaderSvc interface {
	// GetTransactionByID retrieves one transaction together with its payments.
	GetTransactionByID(ctx context.Context, transactionID string) (*recon.ReconciledTransaction, []domain.Payment, error)

	// ListTransactions retrieves a paginated list of reconciled transactions,
	// newest first, using token-based pagination.
	ListTransactions(ctx context.Context, limit int, nextToken *string, includeDeleted bool) ([]recon.ReconciledTransaction, *string, error)

	// ListTransactionsByCustomer retrieves every non-deleted transaction of one customer, reconciled, newest first.
	ListTransactionsByCustomer(ctx context.Context, customerID string) ([]recon.ReconciledTransaction, error)
}

// TransactionWriterSvc defines write operations for transaction data
type TransactionWriterSvc interface {
	// CreateTransaction persists a new transaction.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// UpdateTransaction updates an existing transaction's details.
	UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)

	// DeleteTransaction soft-deletes a transaction. The row stays but drops out of every aggregate.
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
