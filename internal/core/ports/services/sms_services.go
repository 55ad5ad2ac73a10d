package services

import (
	"context"

	"github.com/misuhub/receivables_app/internal/core/domain"
	"github.com/misuhub/receivables_app/internal/dto"
)

// SmsSvcFacade defines operations for dunning SMS messages.
type SmsSvcFacade interface {
	// SendSms renders the message template against the customer's receivable
	// figures, logs it, and dispatches it through the configured sender.
	SendSms(ctx context.Context, req dto.SendSmsRequest) (*domain.SmsMessage, error)

	// ListSmsByCustomer retrieves every SMS sent to one customer.
	ListSmsByCustomer(ctx context.Context, customerID string) ([]domain.SmsMessage, error)
}
