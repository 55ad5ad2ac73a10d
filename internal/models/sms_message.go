package models

// SmsMessage is the sms_messages table row.
type SmsMessage struct {
	SmsMessageID string
	CustomerID   string
	Content      string
	Status       string
	AuditFields
}
