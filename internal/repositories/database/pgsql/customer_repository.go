package pgsql

import (
	"context"
	"database/sql"
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
	"github.com/misuhub/receivables_app/internal/utils/pagination"
)

const customerColumns = `customer_id, name, business_number, representative_name, business_type, phone, COALESCE(email, ''), COALESCE(address, ''), grade, credit_limit, created_at, updated_at`

type PgxCustomerRepository struct {
	pool *pgxpool.Pool
}

// newPgxCustomerRepository creates a new repository for customer data.
func newPgxCustomerRepository(pool *pgxpool.Pool) portsrepo.CustomerRepositoryFacade {
	return &PgxCustomerRepository{pool: pool}
}

// Ensure PgxCustomerRepository implements portsrepo.CustomerRepositoryFacade
var _ portsrepo.CustomerRepositoryFacade = (*PgxCustomerRepository)(nil)

func scanCustomer(row pgx.Row) (models.Customer, error) {
	var m models.Customer
	err := row.Scan(
		&m.CustomerID,
		&m.Name,
		&m.BusinessNumber,
		&m.RepresentativeName,
		&m.BusinessType,
		&m.Phone,
		&m.Email,
		&m.Address,
		&m.Grade,
		&m.CreditLimit,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

// SaveCustomer inserts a new customer.
func (r *PgxCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	m := mapping.ToModelCustomer(customer)

	query := `
		INSERT INTO customers (customer_id, name, business_number, representative_name, business_type, phone, email, address, grade, credit_limit, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	var email, address sql.NullString
	if m.Email != "" {
		email = sql.NullString{String: m.Email, Valid: true}
	}
	if m.Address != "" {
		address = sql.NullString{String: m.Address, Valid: true}
	}

	_, err := r.pool.Exec(ctx, query,
		m.CustomerID,
		m.Name,
		m.BusinessNumber,
		m.RepresentativeName,
		m.BusinessType,
		m.Phone,
		email,
		address,
		m.Grade,
		m.CreditLimit,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: customer with ID %s already exists", apperrors.ErrDuplicate, m.CustomerID)
		}
		return fmt.Errorf("failed to save customer %s: %w", m.CustomerID, err)
	}
	return nil
}

// FindCustomerByID retrieves a customer by its ID.
func (r *PgxCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE customer_id = $1;`

	m, err := scanCustomer(r.pool.QueryRow(ctx, query, customerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find customer by ID %s: %w", customerID, err)
	}

	d := mapping.ToDomainCustomer(m)
	return &d, nil
}

// ListCustomers retrieves a page of customers ordered by creation time descending,
// customer ID descending as tiebreak. The returned token resumes after the last row.
func (r *PgxCustomerRepository) ListCustomers(ctx context.Context, limit int, nextToken *string) ([]domain.Customer, *string, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT ` + customerColumns + ` FROM customers`
	args := []any{}
	if nextToken != nil && *nextToken != "" {
		createdAt, id, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		query += ` WHERE (created_at, customer_id) < ($1, $2)`
		args = append(args, createdAt, id)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC, customer_id DESC LIMIT $%d;`, len(args)+1)
	args = append(args, limit+1) // Fetch one extra row to detect the next page

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query customers: %w", err)
	}
	defer rows.Close()

	modelRows := []models.Customer{}
	for rows.Next() {
		m, err := scanCustomer(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan customer row: %w", err)
		}
		modelRows = append(modelRows, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating customer rows: %w", err)
	}

	var token *string
	if len(modelRows) > limit {
		modelRows = modelRows[:limit]
		last := modelRows[len(modelRows)-1]
		t := pagination.EncodeToken(last.CreatedAt, last.CustomerID)
		token = &t
	}

	return mapping.ToDomainCustomerSlice(modelRows), token, nil
}

// SearchCustomers matches the query against name and business number.
func (r *PgxCustomerRepository) SearchCustomers(ctx context.Context, query string, limit int) ([]domain.Customer, error) {
	if limit <= 0 {
		limit = 20
	}

	sqlQuery := `
		SELECT ` + customerColumns + `
		FROM customers
		WHERE name ILIKE '%' || $1 || '%' OR business_number ILIKE '%' || $1 || '%'
		ORDER BY name
		LIMIT $2;
	`

	rows, err := r.pool.Query(ctx, sqlQuery, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search customers: %w", err)
	}
	defer rows.Close()

	modelRows := []models.Customer{}
	for rows.Next() {
		m, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan customer row during search: %w", err)
		}
		modelRows = append(modelRows, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating customer search rows: %w", err)
	}

	return mapping.ToDomainCustomerSlice(modelRows), nil
}

// UpdateCustomer updates an existing customer's details.
func (r *PgxCustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	m := mapping.ToModelCustomer(customer)

	query := `
		UPDATE customers
		SET name = $2, business_number = $3, representative_name = $4, business_type = $5,
		    phone = $6, email = NULLIF($7, ''), address = NULLIF($8, ''), grade = $9,
		    credit_limit = $10, updated_at = $11
		WHERE customer_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		m.CustomerID,
		m.Name,
		m.BusinessNumber,
		m.RepresentativeName,
		m.BusinessType,
		m.Phone,
		m.Email,
		m.Address,
		m.Grade,
		m.CreditLimit,
		m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update customer %s: %w", m.CustomerID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteCustomer removes a customer. Dependent rows go with it via ON DELETE CASCADE.
func (r *PgxCustomerRepository) DeleteCustomer(ctx context.Context, customerID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM customers WHERE customer_id = $1;`, customerID)
	if err != nil {
		return fmt.Errorf("failed to delete customer %s: %w", customerID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
