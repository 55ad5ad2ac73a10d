package mapping

import (
	"github.com/misuhub/receivables_app/internal/core/domain"
	"github.com/misuhub/receivables_app/internal/models"
)

// ToModelSmsMessage converts a domain SmsMessage to a model SmsMessage
func ToModelSmsMessage(d domain.SmsMessage) models.SmsMessage {
	return models.SmsMessage{
		SmsMessageID: d.SmsMessageID,
		CustomerID:   d.CustomerID,
		Content:      d.Content,
		Status:       string(d.Status),
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSmsMessage converts a model SmsMessage to a domain SmsMessage
func ToDomainSmsMessage(m models.SmsMessage) domain.SmsMessage {
	return domain.SmsMessage{
		SmsMessageID: m.SmsMessageID,
		CustomerID:   m.CustomerID,
		Content:      m.Content,
		Status:       domain.SmsStatus(m.Status),
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainSmsMessageSlice converts a slice of model SmsMessages to domain SmsMessages
func ToDomainSmsMessageSlice(ms []models.SmsMessage) []domain.SmsMessage {
	ds := make([]domain.SmsMessage, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSmsMessage(m)
	}
	return ds
}
