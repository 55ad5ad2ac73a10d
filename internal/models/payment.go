package models

import "time"

// Payment is the payments table row. Amount is scanned with COALESCE so a
// NULL amount reaches the domain as 0.
type Payment struct {
	PaymentID     string
	TransactionID string
	Amount        int64
	Method        string
	PayerName     string
	PaidAt        time.Time
	AuditFields
}
