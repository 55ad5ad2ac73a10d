package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/misuhub/receivables_app/internal/core/domain"
)

// TransactionReader defines read operations for transaction data
type TransactionReader interface {
	// FindTransactionByID retrieves a specific transaction by its unique identifier.
	// Soft-deleted transactions are still returned; callers filter by status.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves a paginated list of transactions using token-based
	// pagination, newest first. It returns the transactions, a token for the next
	// page, and an error.
	ListTransactions(ctx context.Context, limit int, nextToken *string, includeDeleted bool) ([]domain.Transaction, *string, error)

	// ListTransactionsByCustomer retrieves every non-deleted transaction of one customer, newest first.
	ListTransactionsByCustomer(ctx context.Context, customerID string) ([]domain.Transaction, error)

	// ListAllActive retrieves every non-deleted transaction. Used by the rollup paths.
	ListAllActive(ctx context.Context) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for transaction data
type TransactionWriter interface {
	// SaveTransaction persists a new transaction.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// UpdateTransaction updates an existing transaction's details.
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error

	// MarkTransactionDeleted flips the status to deleted without removing the row.
	MarkTransactionDeleted(ctx context.Context, transactionID string, now time.Time) error

	// UpdateTransactionStatusInTx updates the persisted status within a database transaction.
	UpdateTransactionStatusInTx(ctx context.Context, tx pgx.Tx, transactionID string, status domain.TransactionStatus, now time.Time) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}

// TransactionRepositoryWithTx extends TransactionRepositoryFacade with transaction capabilities
type TransactionRepositoryWithTx interface {
	TransactionRepositoryFacade
	TransactionManager
}
