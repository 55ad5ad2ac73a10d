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

const legalActionColumns = `legal_action_id, customer_id, type, COALESCE(description, ''), status, created_at, updated_at`

type PgxLegalActionRepository struct {
	pool *pgxpool.Pool
}

// newPgxLegalActionRepository creates a new repository for legal action data.
func newPgxLegalActionRepository(pool *pgxpool.Pool) portsrepo.LegalActionRepositoryFacade {
	return &PgxLegalActionRepository{pool: pool}
}

// Ensure PgxLegalActionRepository implements portsrepo.LegalActionRepositoryFacade
var _ portsrepo.LegalActionRepositoryFacade = (*PgxLegalActionRepository)(nil)

func scanLegalAction(row pgx.Row) (models.LegalAction, error) {
	var m models.LegalAction
	err := row.Scan(
		&m.LegalActionID,
		&m.CustomerID,
		&m.Type,
		&m.Description,
		&m.Status,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

// SaveLegalAction inserts a new legal action.
func (r *PgxLegalActionRepository) SaveLegalAction(ctx context.Context, action domain.LegalAction) error {
	m := mapping.ToModelLegalAction(action)

	query := `
		INSERT INTO legal_actions (legal_action_id, customer_id, type, description, status, created_at, updated_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7);
	`
	_, err := r.pool.Exec(ctx, query,
		m.LegalActionID,
		m.CustomerID,
		m.Type,
		m.Description,
		m.Status,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return fmt.Errorf("%w: legal action with ID %s already exists", apperrors.ErrDuplicate, m.LegalActionID)
			case "23503":
				return fmt.Errorf("%w: customer %s does not exist", apperrors.ErrValidation, m.CustomerID)
			}
		}
		return fmt.Errorf("failed to save legal action %s: %w", m.LegalActionID, err)
	}
	return nil
}

// FindLegalActionByID retrieves a legal action by its ID.
func (r *PgxLegalActionRepository) FindLegalActionByID(ctx context.Context, legalActionID string) (*domain.LegalAction, error) {
	query := `SELECT ` + legalActionColumns + ` FROM legal_actions WHERE legal_action_id = $1;`

	m, err := scanLegalAction(r.pool.QueryRow(ctx, query, legalActionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find legal action by ID %s: %w", legalActionID, err)
	}

	d := mapping.ToDomainLegalAction(m)
	return &d, nil
}

// ListLegalActionsByCustomer retrieves every legal action recorded against one customer, newest first.
func (r *PgxLegalActionRepository) ListLegalActionsByCustomer(ctx context.Context, customerID string) ([]domain.LegalAction, error) {
	query := `
		SELECT ` + legalActionColumns + `
		FROM legal_actions
		WHERE customer_id = $1
		ORDER BY created_at DESC, legal_action_id DESC;
	`

	rows, err := r.pool.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query legal actions for customer %s: %w", customerID, err)
	}
	defer rows.Close()

	modelRows := []models.LegalAction{}
	for rows.Next() {
		m, err := scanLegalAction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan legal action row: %w", err)
		}
		modelRows = append(modelRows, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating legal action rows: %w", err)
	}

	return mapping.ToDomainLegalActionSlice(modelRows), nil
}

// UpdateLegalAction updates an existing legal action's details.
func (r *PgxLegalActionRepository) UpdateLegalAction(ctx context.Context, action domain.LegalAction) error {
	m := mapping.ToModelLegalAction(action)

	query := `
		UPDATE legal_actions
		SET type = $2, description = NULLIF($3, ''), status = $4, updated_at = $5
		WHERE legal_action_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		m.LegalActionID,
		m.Type,
		m.Description,
		m.Status,
		m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update legal action %s: %w", m.LegalActionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteLegalAction removes a legal action.
func (r *PgxLegalActionRepository) DeleteLegalAction(ctx context.Context, legalActionID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM legal_actions WHERE legal_action_id = $1;`, legalActionID)
	if err != nil {
		return fmt.Errorf("failed to delete legal action %s: %w", legalActionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
