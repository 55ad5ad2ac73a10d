package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/misuhub/receivables_app/internal/apperrors"
	"github.com/misuhub/receivables_app/internal/core/domain"
	portsrepo "github.com/misuhub/receivables_app/internal/core/ports/repositories"
	portssvc "github.com/misuhub/receivables_app/internal/core/ports/services"
	"github.com/misuhub/receivables_app/internal/dto"
)

// legalActionService implements the LegalActionSvcFacade interface
type legalActionService struct {
	BaseService
	legalActionRepo portsrepo.LegalActionRepositoryFacade
	customerRepo    portsrepo.CustomerReader
}

// NewLegalActionService creates a new legal action service.
func NewLegalActionService(repo portsrepo.LegalActionRepositoryFacade, customerRepo portsrepo.CustomerReader) portssvc.LegalActionSvcFacade {
	return &legalActionService{legalActionRepo: repo, customerRepo: customerRepo}
}

// Ensure legalActionService implements the LegalActionSvcFacade interface
var _ portssvc.LegalActionSvcFacade = (*legalActionService)(nil)

func (s *legalActionService) CreateLegalAction(ctx context.Context, req dto.CreateLegalActionRequest) (*domain.LegalAction, error) {
	if _, err := s.customerRepo.FindCustomerByID(ctx, req.CustomerID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: customer %s does not exist", apperrors.ErrValidation, req.CustomerID)
		}
		return nil, err
	}

	now := time.Now().UTC()
	action := domain.LegalAction{
		LegalActionID: uuid.NewString(),
		CustomerID:    req.CustomerID,
		Type:          req.Type,
		Description:   req.Description,
		Status:        domain.LegalActionInProgress,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.legalActionRepo.SaveLegalAction(ctx, action); err != nil {
		s.LogError(ctx, err, "Failed to create legal action", slog.String("legal_action_id", action.LegalActionID))
		return nil, err
	}

	s.LogInfo(ctx, "Legal action recorded",
		slog.String("legal_action_id", action.LegalActionID),
		slog.String("customer_id", action.CustomerID),
		slog.String("type", action.Type))
	return &action, nil
}

func (s *legalActionService) GetLegalActionByID(ctx context.Context, legalActionID string) (*domain.LegalAction, error) {
	return s.legalActionRepo.FindLegalActionByID(ctx, legalActionID)
}

func (s *legalActionService) ListLegalActionsByCustomer(ctx context.Context, customerID string) ([]domain.LegalAction, error) {
	actions, err := s.legalActionRepo.ListLegalActionsByCustomer(ctx, customerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list legal actions", slog.String("customer_id", customerID))
		return nil, err
	}
	return actions, nil
}

func (s *legalActionService) UpdateLegalAction(ctx context.Context, legalActionID string, req dto.UpdateLegalActionRequest) (*domain.LegalAction, error) {
	action, err := s.legalActionRepo.FindLegalActionByID(ctx, legalActionID)
	if err != nil {
		return nil, err
	}

	if req.Type != nil {
		action.Type = *req.Type
	}
	if req.Description != nil {
		action.Description = *req.Description
	}
	if req.Status != nil {
		action.Status = domain.LegalActionStatus(*req.Status)
	}
	action.UpdatedAt = time.Now().UTC()

	if err := s.legalActionRepo.UpdateLegalAction(ctx, *action); err != nil {
		s.LogError(ctx, err, "Failed to update legal action", slog.String("legal_action_id", legalActionID))
		return nil, err
	}

	return action, nil
}

func (s *legalActionService) DeleteLegalAction(ctx context.Context, legalActionID string) error {
	if err := s.legalActionRepo.DeleteLegalAction(ctx, legalActionID); err != nil {
		s.LogError(ctx, err, "Failed to delete legal action", slog.String("legal_action_id", legalActionID))
		return err
	}
	return nil
}
