package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/misuhub/receivables_app/internal/apperrors"
	"github.com/misuhub/receivables_app/internal/core/domain"
	portsrepo "github.com/misuhub/receivables_app/internal/core/ports/repositories"
	"github.com/misuhub/receivables_app/internal/models"
	"github.com/misuhub/receivables_app/internal/utils/mapping"
)

// COALESCE keeps legacy NULL amounts from poisoning the reconciliation sums.
const paymentColumns = `payment_id, transaction_id, COALESCE(amount, 0), method, COALESCE(payer_name, ''), paid_at, created_at, updated_at`

type PgxPaymentRepository struct {
	BaseRepository
}

// newPgxPaymentRepository creates a new repository for payment data.
func newPgxPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentRepositoryWithTx {
	return &PgxPaymentRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxPaymentRepository implements portsrepo.PaymentRepositoryWithTx
var _ portsrepo.PaymentRepositoryWithTx = (*PgxPaymentRepository)(nil)

func scanPayment(row pgx.Row) (models.Payment, error) {
	var m models.Payment
	err := row.Scan(
		&m.PaymentID,
		&m.TransactionID,
		&m.Amount,
		&m.Method,
		&m.PayerName,
		&m.PaidAt,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

// SavePaymentInTx inserts a new payment within the given database transaction.
func (r *PgxPaymentRepository) SavePaymentInTx(ctx context.Context, tx pgx.Tx, payment domain.Payment) error {
	m := mapping.ToModelPayment(payment)

	query := `
		INSERT INTO payments (payment_id, transaction_id, amount, method, payer_name, paid_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, $8);
	`
	_, err := tx.Exec(ctx, query,
		m.PaymentID,
		m.TransactionID,
		m.Amount,
		m.Method,
		m.PayerName,
		m.PaidAt,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505": // Unique violation
				return fmt.Errorf("%w: payment with ID %s already exists", apperrors.ErrDuplicate, m.PaymentID)
			case "23503": // FK violation: unknown transaction
				return fmt.Errorf("%w: transaction %s does not exist", apperrors.ErrValidation, m.TransactionID)
			}
		}
		return fmt.Errorf("failed to save payment %s: %w", m.PaymentID, err)
	}
	return nil
}

// FindPaymentByID retrieves a payment by its ID.
func (r *PgxPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE payment_id = $1;`

	m, err := scanPayment(r.Pool.QueryRow(ctx, query, paymentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find payment by ID %s: %w", paymentID, err)
	}

	d := mapping.ToDomainPayment(m)
	return &d, nil
}

// FindPaymentsByTransactionID retrieves all payments recorded against one transaction.
func (r *PgxPaymentRepository) FindPaymentsByTransactionID(ctx context.Context, transactionID string) ([]domain.Payment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE transaction_id = $1
		ORDER BY paid_at, payment_id;
	`

	rows, err := r.Pool.Query(ctx, query, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments for transaction %s: %w", transactionID, err)
	}
	defer rows.Close()

	modelRows := []models.Payment{}
	for rows.Next() {
		m, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment row: %w", err)
		}
		modelRows = append(modelRows, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payment rows: %w", err)
	}

	return mapping.ToDomainPaymentSlice(modelRows), nil
}

// FindPaymentsByTransactionIDs retrieves payments for multiple transactions, grouped by transaction ID.
func (r *PgxPaymentRepository) FindPaymentsByTransactionIDs(ctx context.Context, transactionIDs []string) (map[string][]domain.Payment, error) {
	if len(transactionIDs) == 0 {
		return map[string][]domain.Payment{}, nil
	}

	query := `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE transaction_id = ANY($1)
		ORDER BY paid_at, payment_id;
	`

	rows, err := r.Pool.Query(ctx, query, transactionIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments by transaction IDs: %w", err)
	}
	defer rows.Close()

	grouped := make(map[string][]domain.Payment)
	for rows.Next() {
		m, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment row during batch fetch: %w", err)
		}
		grouped[m.TransactionID] = append(grouped[m.TransactionID], mapping.ToDomainPayment(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payment rows during batch fetch: %w", err)
	}

	return grouped, nil
}

// UpdatePayment updates an existing payment's details.
func (r *PgxPaymentRepository) UpdatePayment(ctx context.Context, payment domain.Payment) error {
	m := mapping.ToModelPayment(payment)

	query := `
		UPDATE payments
		SET amount = $2, method = $3, payer_name = NULLIF($4, ''), paid_at = $5, updated_at = $6
		WHERE payment_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.PaymentID,
		m.Amount,
		m.Method,
		m.PayerName,
		m.PaidAt,
		m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update payment %s: %w", m.PaymentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeletePaymentInTx removes a payment within the given database transaction.
func (r *PgxPaymentRepository) DeletePaymentInTx(ctx context.Context, tx pgx.Tx, paymentID string) error {
	tag, err := tx.Exec(ctx, `DELETE FROM payments WHERE payment_id = $1;`, paymentID)
	if err != nil {
		return fmt.Errorf("failed to delete payment %s: %w", paymentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
