package dto

import (
	"time"

	"github.com/misuhub/receivables_app/internal/core/domain"
)

// CreateCustomerRequest defines the data needed to create a new customer.
type CreateCustomerRequest struct {
	Name               string `json:"name" binding:"required"`
	BusinessNumber     string `json:"businessNumber"`
	RepresentativeName string `json:"representativeName"`
	BusinessType       string `json:"businessType"`
	Phone              string `json:"phone"`
	Email              string `json:"email" binding:"omitempty,email"`
	Address            string `json:"address"`
	Grade              string `json:"grade"`
	CreditLimit        *int64 `json:"creditLimit" binding:"omitempty,gte=0"`
}

// UpdateCustomerRequest defines the data allowed for updating a customer.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateCustomerRequest struct {
	Name               *string `json:"name"`
	BusinessNumber     *string `json:"businessNumber"`
	RepresentativeName *string `json:"representativeName"`
	BusinessType       *string `json:"businessType"`
	Phone              *string `json:"phone"`
	Email              *string `json:"email" binding:"omitempty,email"`
	Address            *string `json:"address"`
	Grade              *string `json:"grade"`
	CreditLimit        *int64  `json:"creditLimit" binding:"omitempty,gte=0"`
}

// CustomerResponse defines the data returned for a customer.
// Mirrors domain.Customer.
type CustomerResponse struct {
	CustomerID         string    `json:"customerID"`
	Name               string    `json:"name"`
	BusinessNumber     string    `json:"businessNumber"`
	RepresentativeName string    `json:"representativeName"`
	BusinessType       string    `json:"businessType"`
	Phone              string    `json:"phone"`
	Email              string    `json:"email"`
	Address            string    `json:"address"`
	Grade              string    `json:"grade"`
	CreditLimit        *int64    `json:"creditLimit"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// ToCustomerResponse converts a domain.Customer to CustomerResponse DTO
func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		CustomerID:         c.CustomerID,
		Name:               c.Name,
		BusinessNumber:     c.BusinessNumber,
		RepresentativeName: c.RepresentativeName,
		BusinessType:       c.BusinessType,
		Phone:              c.Phone,
		Email:              c.Email,
		Address:            c.Address,
		Grade:              c.Grade,
		CreditLimit:        c.CreditLimit,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}
}

// ToListCustomerResponse converts a slice of domain.Customer to response DTOs
func ToListCustomerResponse(customers []domain.Customer) []CustomerResponse {
	res := make([]CustomerResponse, len(customers))
	for i, c := range customers {
		res[i] = ToCustomerResponse(&c)
	}
	return res
}

// ListCustomersParams defines query parameters for listing customers.
type ListCustomersParams struct {
	Limit     int     `form:"limit,default=20" binding:"omitempty,gte=1,lte=100"`
	NextToken *string `form:"nextToken"`
}

// ListCustomersResponse wraps the list of customers with the pagination token.
type ListCustomersResponse struct {
	Customers []CustomerResponse `json:"customers"`
	NextToken *string            `json:"nextToken,omitempty"`
}
