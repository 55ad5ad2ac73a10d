package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/misuhub/receivables_app/internal/core/domain"
	portsrepo "github.com/misuhub/receivables_app/internal/core/ports/repositories"
	portssvc "github.com/misuhub/receivables_app/internal/core/ports/services"
	"github.com/misuhub/receivables_app/internal/dto"
)

// customerService implements the CustomerSvcFacade interface
type customerService struct {
	BaseService
	customerRepo portsrepo.CustomerRepositoryFacade
}

// NewCustomerService creates a new customer service.
func NewCustomerService(repo portsrepo.CustomerRepositoryFacade) portssvc.CustomerSvcFacade {
	return &customerService{customerRepo: repo}
}

// Ensure customerService implements the CustomerSvcFacade interface
var _ portssvc.CustomerSvcFacade = (*customerService)(nil)

func (s *customerService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest) (*domain.Customer, error) {
	now := time.Now().UTC()
	customer := domain.Customer{
		CustomerID:         uuid.NewString(),
		Name:               req.Name,
		BusinessNumber:     req.BusinessNumber,
		RepresentativeName: req.RepresentativeName,
		BusinessType:       req.BusinessType,
		Phone:              req.Phone,
		Email:              req.Email,
		Address:            req.Address,
		Grade:              req.Grade,
		CreditLimit:        req.CreditLimit,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.customerRepo.SaveCustomer(ctx, customer); err != nil {
		s.LogError(ctx, err, "Failed to create customer", slog.String("customer_id", customer.CustomerID))
		return nil, err
	}

	s.LogInfo(ctx, "Customer created", slog.String("customer_id", customer.CustomerID))
	return &customer, nil
}

func (s *customerService) GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		s.LogDebug(ctx, "Customer lookup failed", slog.String("customer_id", customerID), slog.String("error", err.Error()))
		return nil, err
	}
	return customer, nil
}

func (s *customerService) ListCustomers(ctx context.Context, limit int, nextToken *string) ([]domain.Customer, *string, error) {
	customers, token, err := s.customerRepo.ListCustomers(ctx, limit, nextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list customers")
		return nil, nil, err
	}
	return customers, token, nil
}

func (s *customerService) SearchCustomers(ctx context.Context, query string, limit int) ([]domain.Customer, error) {
	customers, err := s.customerRepo.SearchCustomers(ctx, query, limit)
	if err != nil {
		s.LogError(ctx, err, "Failed to search customers", slog.String("query", query))
		return nil, err
	}
	return customers, nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, customerID string, req dto.UpdateCustomerRequest) (*domain.Customer, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		customer.Name = *req.Name
	}
	if req.BusinessNumber != nil {
		customer.BusinessNumber = *req.BusinessNumber
	}
	if req.RepresentativeName != nil {
		customer.RepresentativeName = *req.RepresentativeName
	}
	if req.BusinessType != nil {
		customer.BusinessType = *req.BusinessType
	}
	if req.Phone != nil {
		customer.Phone = *req.Phone
	}
	if req.Email != nil {
		customer.Email = *req.Email
	}
	if req.Address != nil {
		customer.Address = *req.Address
	}
	if req.Grade != nil {
		customer.Grade = *req.Grade
	}
	if req.CreditLimit != nil {
		customer.CreditLimit = req.CreditLimit
	}
	customer.UpdatedAt = time.Now().UTC()

	if err := s.customerRepo.UpdateCustomer(ctx, *customer); err != nil {
		s.LogError(ctx, err, "Failed to update customer", slog.String("customer_id", customerID))
		return nil, err
	}

	return customer, nil
}

func (s *customerService) DeleteCustomer(ctx context.Context, customerID string) error {
	if err := s.customerRepo.DeleteCustomer(ctx, customerID); err != nil {
		s.LogError(ctx, err, "Failed to delete customer", slog.String("customer_id", customerID))
		return err
	}
	s.LogInfo(ctx, "Customer deleted", slog.String("customer_id", customerID))
	return nil
}
