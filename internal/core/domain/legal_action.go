package domain

// LegalActionStatus is the progress state of a collection measure.
type LegalActionStatus string

const (
	LegalActionInProgress LegalActionStatus = "in_progress"
	LegalActionCompleted  LegalActionStatus = "completed"
)

// LegalAction records a legal collection measure taken against a customer.
type LegalAction struct {
	LegalActionID string            `json:"legalActionID"` // Primary Key (UUID)
	CustomerID    string            `json:"customerID"`
	Type          string            `json:"type"` // e.g. payment order, seizure
	Description   string            `json:"description"`
	Status        LegalActionStatus `json:"status"`
	AuditFields
}
