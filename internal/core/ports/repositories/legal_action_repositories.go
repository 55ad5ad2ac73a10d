package repositories

import (
	"context"

	"github.com/misuhub/receivables_app/internal/core/domain"
)

// LegalActionReader defines read operations for legal action data
type LegalActionReader interface {
	// FindLegalActionByID retrieves a specific legal action by its unique identifier.
	FindLegalActionByID(ctx context.Context, legalActionID string) (*domain.LegalAction, error)

	// ListLegalActionsByCustomer retrieves every legal action recorded against one customer, newest first.
	ListLegalActionsByCustomer(ctx context.Context, customerID string) ([]domain.LegalAction, error)
}

// LegalActionWriter defines write operations for legal action data
type LegalActionWriter interface {
	// SaveLegalAction persists a new legal action.
	SaveLegalAction(ctx context.Context, action domain.LegalAction) error

	// UpdateLegalAction updates an existing legal action's details.
	UpdateLegalAction(ctx context.Context, action domain.LegalAction) error

	// DeleteLegalAction removes a legal action.
	DeleteLegalAction(ctx context.Context, legalActionID string) error
}

// LegalActionRepositoryFacade combines all legal-action-related repository interfaces
type LegalActionRepositoryFacade interface {
	LegalActionReader
	LegalActionWriter
}
