package domain

// Customer represents a business customer (debtor) within the core domain.
// This is the primary representation used by services.
type Customer struct {
	CustomerID         string `json:"customerID"` // Primary Key (UUID)
	Name               string `json:"name"`
	BusinessNumber     string `json:"businessNumber"`
	RepresentativeName string `json:"representativeName"`
	BusinessType       string `json:"businessType"`
	Phone              string `json:"phone"`
	Email              string `json:"email"`   // Nullable in DB, empty string when absent
	Address            string `json:"address"` // Nullable in DB, empty string when absent
	Grade              string `json:"grade"`   // Free-form customer grade (A/B/C...)
	CreditLimit        *int64 `json:"creditLimit"`
	AuditFields
}
