package domain

// SmsStatus is the delivery state of an SMS message log entry.
type SmsStatus string

const (
	SmsPending SmsStatus = "pending"
	SmsSent    SmsStatus = "sent"
	SmsFailed  SmsStatus = "failed"
)

// SmsMessage is the log of one (mock-)sent dunning SMS.
type SmsMessage struct {
	SmsMessageID string    `json:"smsMessageID"` // Primary Key (UUID)
	CustomerID   string    `json:"customerID"`
	Content      string    `json:"content"`
	Status       SmsStatus `json:"status"`
	AuditFields
}
