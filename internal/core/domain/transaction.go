package domain

import "time"

// TransactionStatus is the persisted lifecycle status of a transaction.
// It is set by the write path only; the reconciliation layer never derives it.
type TransactionStatus string

const (
	// TransactionUnpaid marks a transaction with outstanding receivables.
	TransactionUnpaid TransactionStatus = "unpaid"
	// TransactionPaid marks a transaction the write path considers settled.
	TransactionPaid TransactionStatus = "paid"
	// TransactionDeleted is the soft-delete marker. Deleted transactions are
	// excluded from every aggregate.
	TransactionDeleted TransactionStatus = "deleted"
)

// Transaction represents a single sale/invoice owed by a customer.
// Amount is expressed in the smallest currency unit and is never negative.
type Transaction struct {
	TransactionID string            `json:"transactionID"` // Primary Key (UUID)
	CustomerID    string            `json:"customerID"`    // FK -> customers.customer_id
	Type          string            `json:"type"`          // Sale type / product model, free-form
	Amount        int64             `json:"amount"`
	Status        TransactionStatus `json:"status"`
	Description   string            `json:"description"` // Nullable, empty string when absent
	DueDate       *time.Time        `json:"dueDate"`
	AuditFields
}
