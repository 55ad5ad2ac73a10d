package mapping

import (
	"github.com/misuhub/receivables_app/internal/core/domain"
	"github.com/misuhub/receivables_app/internal/models"
)

// ToModelCustomer converts a domain Customer to a model Customer
func ToModelCustomer(d domain.Customer) models.Customer {
	return models.Customer{
		CustomerID:         d.CustomerID,
		Name:               d.Name,
		BusinessNumber:     d.BusinessNumber,
		RepresentativeName: d.RepresentativeName,
		BusinessType:       d.BusinessType,
		Phone:              d.Phone,
		Email:              d.Email,
		Address:            d.Address,
		Grade:              d.Grade,
		CreditLimit:        d.CreditLimit,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCustomer converts a model Customer to a domain Customer
func ToDomainCustomer(m models.Customer) domain.Customer {
	return domain.Customer{
		CustomerID:         m.CustomerID,
		Name:               m.Name,
		BusinessNumber:     m.BusinessNumber,
		RepresentativeName: m.RepresentativeName,
		BusinessType:       m.BusinessType,
		Phone:              m.Phone,
		Email:              m.Email,
		Address:            m.Address,
		Grade:              m.Grade,
		CreditLimit:        m.CreditLimit,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCustomerSlice converts a slice of model Customers to domain Customers
func ToDomainCustomerSlice(ms []models.Customer) []domain.Customer {
	ds := make([]domain.Customer, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCustomer(m)
	}
	return ds
}
