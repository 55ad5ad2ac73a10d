package repositories

import (
	"context"

	"github.com/misuhub/receivables_app/internal/core/domain"
)

// SmsReader defines read operations for the SMS log
type SmsReader interface {
	// FindSmsByID retrieves a specific SMS log entry by its unique identifier.
	FindSmsByID(ctx context.Context, smsID string) (*domain.SmsMessage, error)

	// ListSmsByCustomer retrieves every SMS sent to one customer, newest first.
	ListSmsByCustomer(ctx context.Context, customerID string) ([]domain.SmsMessage, error)
}

// SmsWriter defines write operations for the SMS log
type SmsWriter interface {
	// SaveSms persists a new SMS log entry.
	SaveSms(ctx context.Context, sms domain.SmsMessage) error

	// UpdateSmsStatus updates the delivery status of an SMS log entry.
	UpdateSmsStatus(ctx context.Context, smsID string, status domain.SmsStatus) error
}

// SmsRepositoryFacade combines all SMS-related repository interfaces
type SmsRepositoryFacade interface {
	SmsReader
	SmsWriter
}
