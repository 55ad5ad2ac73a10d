package models

// Customer is the customers table row.
type Customer struct {
	CustomerID         string
	Name               string
	BusinessNumber     string
	RepresentativeName string
	BusinessType       string
	Phone              string
	Email              string
	Address            string
	Grade              string
	CreditLimit        *int64
	AuditFields
}
