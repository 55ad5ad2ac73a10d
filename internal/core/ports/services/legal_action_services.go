package services

import (
	"context"

	"github.com/misuhub/receivables_app/internal/core/domain"
	"github.com/misuhub/receivables_app/internal/dto"
)

// LegalActionSvcFacade defines operations for legal collection measures.
type LegalActionSvcFacade interface {
	// GetLegalActionByID retrieves a specific legal action by its unique identifier.
	GetLegalActionByID(ctx context.Context, legalActionID string) (*domain.LegalAction, error)

	// ListLegalActionsByCustomer retrieves every legal action recorded against one customer.
	ListLegalActionsByCustomer(ctx context.Context, customerID string) ([]domain.LegalAction, error)

	// CreateLegalAction persists a new legal action.
	CreateLegalAction(ctx context.Context, req dto.CreateLegalActionRequest) (*domain.LegalAction, error)

	// UpdateLegalAction updates an existing legal action's details.
	UpdateLegalAction(ctx context.Context, legalActionID string, req dto.UpdateLegalActionRequest) (*domain.LegalAction, error)

	// DeleteLegalAction removes a legal action.
	DeleteLegalAction(ctx context.Context, legalActionID string) error
}
