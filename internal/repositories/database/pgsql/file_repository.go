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

const fileColumns = `file_id, customer_id, name, COALESCE(type, ''), url, created_at, updated_at`

type PgxFileRepository struct {
	pool *pgxpool.Pool
}

// newPgxFileRepository creates a new repository for file metadata.
func newPgxFileRepository(pool *pgxpool.Pool) portsrepo.FileRepositoryFacade {
	return &PgxFileRepository{pool: pool}
}

// Ensure PgxFileRepository implements portsrepo.FileRepositoryFacade
var _ portsrepo.FileRepositoryFacade = (*PgxFileRepository)(nil)

func scanFile(row pgx.Row) (models.File, error) {
	var m models.File
	err := row.Scan(
		&m.FileID,
		&m.CustomerID,
		&m.Name,
		&m.Type,
		&m.URL,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

// SaveFile inserts a new file record.
func (r *PgxFileRepository) SaveFile(ctx context.Context, file domain.File) error {
	m := mapping.ToModelFile(file)

	query := `
		INSERT INTO files (file_id, customer_id, name, type, url, created_at, updated_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7);
	`
	_, err := r.pool.Exec(ctx, query,
		m.FileID,
		m.CustomerID,
		m.Name,
		m.Type,
		m.URL,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return fmt.Errorf("%w: file with ID %s already exists", apperrors.ErrDuplicate, m.FileID)
			case "23503":
				return fmt.Errorf("%w: customer %s does not exist", apperrors.ErrValidation, m.CustomerID)
			}
		}
		return fmt.Errorf("failed to save file %s: %w", m.FileID, err)
	}
	return nil
}

// FindFileByID retrieves a file record by its ID.
func (r *PgxFileRepository) FindFileByID(ctx context.Context, fileID string) (*domain.File, error) {
	query := `SELECT ` + fileColumns + ` FROM files WHERE file_id = $1;`

	m, err := scanFile(r.pool.QueryRow(ctx, query, fileID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find file by ID %s: %w", fileID, err)
	}

	d := mapping.ToDomainFile(m)
	return &d, nil
}

// ListFilesByCustomer retrieves every file attached to one customer, newest first.
func (r *PgxFileRepository) ListFilesByCustomer(ctx context.Context, customerID string) ([]domain.File, error) {
	query := `
		SELECT ` + fileColumns + `
		FROM files
		WHERE customer_id = $1
		ORDER BY created_at DESC, file_id DESC;
	`

	rows, err := r.pool.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query files for customer %s: %w", customerID, err)
	}
	defer rows.Close()

	modelRows := []models.File{}
	for rows.Next() {
		m, err := scanFile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan file row: %w", err)
		}
		modelRows = append(modelRows, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating file rows: %w", err)
	}

	return mapping.ToDomainFileSlice(modelRows), nil
}

// DeleteFile removes a file record.
func (r *PgxFileRepository) DeleteFile(ctx context.Context, fileID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM files WHERE file_id = $1;`, fileID)
	if err != nil {
		return fmt.Errorf("failed to delete file %s: %w", fileID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
