package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/misuhub/receivables_app/internal/apperrors"
	"github.com/misuhub/receivables_app/internal/core/domain"
	portsrepo "github.com/misuhub/receivables_app/internal/core/ports/repositories"
	"github.com/misuhub/receivables_app/internal/models"
	"github.com/misuhub/receivables_app/internal/utils/mapping"
	"github.com/misuhub/receivables_app/internal/utils/pagination"
)

const transactionColumns = `transaction_id, COALESCE(customer_id::text, ''), type, amount, status, COALESCE(description, ''), due_date, created_at, updated_at`

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for transaction data.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryWithTx {
	return &PgxTransactionRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepositoryWithTx
var _ portsrepo.TransactionRepositoryWithTx = (*PgxTransactionRepository)(nil)

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.CustomerID,
		&m.Type,
		&m.Amount,
		&m.Status,
		&m.Description,
		&m.DueDate,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

// SaveTransaction inserts a new transaction.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)

	query := `
		INSERT INTO transactions (transaction_id, customer_id, type, amount, status, description, due_date, created_at, updated_at)
		VALUES ($1, NULLIF($2, '')::uuid, $3, $4, $5, NULLIF($6, ''), $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.TransactionID,
		m.CustomerID,
		m.Type,
		m.Amount,
		m.Status,
		m.Description,
		m.DueDate,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505": // Unique violation
				return fmt.Errorf("%w: transaction with ID %s already exists", apperrors.ErrDuplicate, m.TransactionID)
			case "23503": // FK violation: unknown customer
				return fmt.Errorf("%w: customer %s does not exist", apperrors.ErrValidation, m.CustomerID)
			}
		}
		return fmt.Errorf("failed to save transaction %s: %w", m.TransactionID, err)
	}
	return nil
}

// FindTransactionByID retrieves a transaction by its ID, deleted or not.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`

	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}

	d := mapping.ToDomainTransaction(m)
	return &d, nil
}

// ListTransactions retrieves a page of transactions ordered by creation time
// descending, transaction ID descending as tiebreak.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, limit int, nextToken *string, includeDeleted bool) ([]domain.Transaction, *string, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT ` + transactionColumns + ` FROM transactions`
	conds := []string{}
	args := []any{}
	if !includeDeleted {
		conds = append(conds, `status <> 'deleted'`)
	}
	if nextToken != nil && *nextToken != "" {
		createdAt, id, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		args = append(args, createdAt, id)
		conds = append(conds, fmt.Sprintf(`(created_at, transaction_id) < ($%d, $%d)`, len(args)-1, len(args)))
	}
	for i, c := range conds {
		if i == 0 {
			query += ` WHERE ` + c
		} else {
			query += ` AND ` + c
		}
	}
	args = append(args, limit+1) // One extra row to detect the next page
	query += fmt.Sprintf(` ORDER BY created_at DESC, transaction_id DESC LIMIT $%d;`, len(args))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	modelRows := []models.Transaction{}
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		modelRows = append(modelRows, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}

	var token *string
	if len(modelRows) > limit {
		modelRows = modelRows[:limit]
		last := modelRows[len(modelRows)-1]
		t := pagination.EncodeToken(last.CreatedAt, last.TransactionID)
		token = &t
	}

	return mapping.ToDomainTransactionSlice(modelRows), token, nil
}

// ListTransactionsByCustomer retrieves every non-deleted transaction of one customer, newest first.
func (r *PgxTransactionRepository) ListTransactionsByCustomer(ctx context.Context, customerID string) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE customer_id = $1 AND status <> 'deleted'
		ORDER BY created_at DESC, transaction_id DESC;
	`
	return r.queryTransactions(ctx, query, customerID)
}

// ListAllActive retrieves every non-deleted transaction.
func (r *PgxTransactionRepository) ListAllActive(ctx context.Context) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE status <> 'deleted'
		ORDER BY created_at DESC, transaction_id DESC;
	`
	return r.queryTransactions(ctx, query)
}

func (r *PgxTransactionRepository) queryTransactions(ctx context.Context, query string, args ...any) ([]domain.Transaction, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	modelRows := []models.Transaction{}
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		modelRows = append(modelRows, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}

	return mapping.ToDomainTransactionSlice(modelRows), nil
}

// UpdateTransaction updates an existing transaction's details.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)

	query := `
		UPDATE transactions
		SET type = $2, amount = $3, status = $4, description = NULLIF($5, ''), due_date = $6, updated_at = $7
		WHERE transaction_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.TransactionID,
		m.Type,
		m.Amount,
		m.Status,
		m.Description,
		m.DueDate,
		m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction %s: %w", m.TransactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// MarkTransactionDeleted flips the status to deleted without removing the row.
func (r *PgxTransactionRepository) MarkTransactionDeleted(ctx context.Context, transactionID string, now time.Time) error {
	query := `UPDATE transactions SET status = 'deleted', updated_at = $2 WHERE transaction_id = $1 AND status <> 'deleted';`

	tag, err := r.Pool.Exec(ctx, query, transactionID, now)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateTransactionStatusInTx updates the persisted status within a database transaction.
func (r *PgxTransactionRepository) UpdateTransactionStatusInTx(ctx context.Context, tx pgx.Tx, transactionID string, status domain.TransactionStatus, now time.Time) error {
	query := `UPDATE transactions SET status = $2, updated_at = $3 WHERE transaction_id = $1;`

	tag, err := tx.Exec(ctx, query, transactionID, string(status), now)
	if err != nil {
		return fmt.Errorf("failed to update status of transaction %s: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
