package repositories

import (
	"context"

	"github.com/misuhub/receivables_app/internal/core/domain"
)

// CustomerReader defines read operations for customer data
type CustomerReader interface {
	// FindCustomerByID retrieves a specific customer by its unique identifier.
	FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)

	// ListCustomers retrieves a paginated list of customers using token-based pagination.
	// It returns the customers, a token for the next page, and an error.
	ListCustomers(ctx context.Context, limit int, nextToken *string) ([]domain.Customer, *string, error)

	// SearchCustomers retrieves customers whose name or business number matches the query.
	SearchCustomers(ctx context.Context, query string, limit int) ([]domain.Customer, error)
}

// CustomerWriter defines write operations for customer data
type CustomerWriter interface {
	// SaveCustomer persists a new customer.
	SaveCustomer(ctx context.Context, customer domain.Customer) error

	// UpdateCustomer updates an existing customer's details.
	UpdateCustomer(ctx context.Context, customer domain.Customer) error

	// DeleteCustomer removes a customer and cascades to its dependent rows.
	DeleteCustomer(ctx context.Context, customerID string) error
}

// CustomerRepositoryFacade combines all customer-related repository interfaces
type CustomerRepositoryFacade interface {
	CustomerReader
	CustomerWriter
}
