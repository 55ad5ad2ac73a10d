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
)

const smsColumns = `sms_message_id, customer_id, content, status, created_at, updated_at`

type PgxSmsRepository struct {
	pool *pgxpool.Pool
}

// newPgxSmsRepository creates a new repository for the SMS log.
func newPgxSmsRepository(pool *pgxpool.Pool) portsrepo.SmsRepositoryFacade {
	return &PgxSmsRepository{pool: pool}
}

// Ensure PgxSmsRepository implements portsrepo.SmsRepositoryFacade
var _ portsrepo.SmsRepositoryFacade = (*PgxSmsRepository)(nil)

func scanSms(row pgx.Row) (models.SmsMessage, error) {
	var m models.SmsMessage
	err := row.Scan(
		&m.SmsMessageID,
		&m.CustomerID,
		&m.Content,
		&m.Status,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

// SaveSms inserts a new SMS log entry.
func (r *PgxSmsRepository) SaveSms(ctx context.Context, sms domain.SmsMessage) error {
	m := mapping.ToModelSmsMessage(sms)

	query := `
		INSERT INTO sms_messages (sms_message_id, customer_id, content, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.pool.Exec(ctx, query,
		m.SmsMessageID,
		m.CustomerID,
		m.Content,
		m.Status,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return fmt.Errorf("%w: sms with ID %s already exists", apperrors.ErrDuplicate, m.SmsMessageID)
			case "23503":
				return fmt.Errorf("%w: customer %s does not exist", apperrors.ErrValidation, m.CustomerID)
			}
		}
		return fmt.Errorf("failed to save sms %s: %w", m.SmsMessageID, err)
	}
	return nil
}

// FindSmsByID retrieves an SMS log entry by its ID.
func (r *PgxSmsRepository) FindSmsByID(ctx context.Context, smsID string) (*domain.SmsMessage, error) {
	query := `SELECT ` + smsColumns + ` FROM sms_messages WHERE sms_message_id = $1;`

	m, err := scanSms(r.pool.QueryRow(ctx, query, smsID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find sms by ID %s: %w", smsID, err)
	}

	d := mapping.ToDomainSmsMessage(m)
	return &d, nil
}

// ListSmsByCustomer retrieves every SMS sent to one customer, newest first.
func (r *PgxSmsRepository) ListSmsByCustomer(ctx context.Context, customerID string) ([]domain.SmsMessage, error) {
	query := `
		SELECT ` + smsColumns + `
		FROM sms_messages
		WHERE customer_id = $1
		ORDER BY created_at DESC, sms_message_id DESC;
	`

	rows, err := r.pool.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query sms for customer %s: %w", customerID, err)
	}
	defer rows.Close()

	modelRows := []models.SmsMessage{}
	for rows.Next() {
		m, err := scanSms(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sms row: %w", err)
		}
		modelRows = append(modelRows, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sms rows: %w", err)
	}

	return mapping.ToDomainSmsMessageSlice(modelRows), nil
}

// UpdateSmsStatus updates the delivery status of an SMS log entry.
func (r *PgxSmsRepository) UpdateSmsStatus(ctx context.Context, smsID string, status domain.SmsStatus) error {
	query := `UPDATE sms_messages SET status = $2, updated_at = $3 WHERE sms_message_id = $1;`

	tag, err := r.pool.Exec(ctx, query, smsID, string(status), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to update status of sms %s: %w", smsID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
