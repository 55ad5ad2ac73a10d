package domain

import "time"

// PaymentMethod enumerates how a payment was made.
type PaymentMethod string

const (
	PaymentCash         PaymentMethod = "cash"
	PaymentBankTransfer PaymentMethod = "bank_transfer"
	PaymentCard         PaymentMethod = "card"
	PaymentTradeIn      PaymentMethod = "trade_in" // used-equipment trade-in
	PaymentFinancing    PaymentMethod = "financing"
	PaymentCheck        PaymentMethod = "check"
	PaymentOther        PaymentMethod = "other"
)

// PaymentMethods lists every accepted method, in display order.
var PaymentMethods = []PaymentMethod{
	PaymentCash,
	PaymentBankTransfer,
	PaymentCard,
	PaymentTradeIn,
	PaymentFinancing,
	PaymentCheck,
	PaymentOther,
}

// Payment represents a (possibly partial) repayment against one transaction.
// Payments are owned by exactly one transaction and never shared.
type Payment struct {
	PaymentID     string        `json:"paymentID"` // Primary Key (UUID)
	TransactionID string        `json:"transactionID"`
	Amount        int64         `json:"amount"` // Smallest currency unit; NULL in DB is normalized to 0
	Method        PaymentMethod `json:"method"`
	PayerName     string        `json:"payerName"`
	PaidAt        time.Time     `json:"paidAt"`
	AuditFields
}
