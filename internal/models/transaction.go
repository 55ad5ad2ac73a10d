package models

import "time"

// Transaction is the transactions table row. Amount is in the smallest
// currency unit.
type Transaction struct {
	TransactionID string
	CustomerID    string
	Type          string
	Amount        int64
	Status        string
	Description   string
	DueDate       *time.Time
	AuditFields
}
