package models

// LegalAction is the legal_actions table row.
type LegalAction struct {
	LegalActionID string
	CustomerID    string
	Type          string
	Description   string
	Status        string
	AuditFields
}
