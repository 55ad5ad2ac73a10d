package services

import (
	"context"
	"log/slog"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/misuhub/receivables_app/internal/core/domain"
	portsrepo "github.com/misuhub/receivables_app/internal/core/ports/repositories"
	portssvc "github.com/misuhub/receivables_app/internal/core/ports/services"
	"github.com/misuhub/receivables_app/internal/dto"
	"github.com/misuhub/receivables_app/internal/recon"
	"github.com/misuhub/receivables_app/internal/utils"
)

// SmsSender dispatches a rendered message to a phone number.
type SmsSender interface {
	Send(ctx context.Context, phone string, content string) error
}

// LogSmsSender is the default sender: it only logs the message. A real
// gateway integration can be dropped in through the container.
type LogSmsSender struct {
	Logger *slog.Logger
}

func (s *LogSmsSender) Send(ctx context.Context, phone string, content string) error {
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("SMS dispatched", slog.String("phone", phone), slog.Int("content_length", len(content)))
	return nil
}

var placeholderPattern = regexp.MustCompile(`\{[a-zA-Z]+\}`)

// RenderSmsTemplate substitutes {placeholder} tokens with the given values.
// Unknown placeholders render as empty strings rather than leaking braces
// into a customer-facing message.
func RenderSmsTemplate(template string, vars map[string]string) string {
	return placeholderPattern.ReplaceAllStringFunc(template, func(token string) string {
		return vars[token[1:len(token)-1]]
	})
}

// smsService implements the SmsSvcFacade interface
type smsService struct {
	BaseService
	smsRepo        portsrepo.SmsRepositoryFacade
	customerRepo   portsrepo.CustomerReader
	transactionSvc portssvc.TransactionReaderSvc
	sender         SmsSender
}

// NewSmsService creates a new SMS service.
func NewSmsService(smsRepo portsrepo.SmsRepositoryFacade, customerRepo portsrepo.CustomerReader, transactionSvc portssvc.TransactionReaderSvc, sender SmsSender) portssvc.SmsSvcFacade {
	return &smsService{
		smsRepo:        smsRepo,
		customerRepo:   customerRepo,
		transactionSvc: transactionSvc,
		sender:         sender,
	}
}

// Ensure smsService implements the SmsSvcFacade interface
var _ portssvc.SmsSvcFacade = (*smsService)(nil)

func (s *smsService) SendSms(ctx context.Context, req dto.SendSmsRequest) (*domain.SmsMessage, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}

	txns, err := s.transactionSvc.ListTransactionsByCustomer(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}
	summary := recon.RollupCustomer(req.CustomerID, txns)

	content := RenderSmsTemplate(req.Template, map[string]string{
		"customerName": customer.Name,
		"totalAmount":  utils.FormatAmount(summary.TotalAmount),
		"paidAmount":   utils.FormatAmount(summary.TotalPaid),
		"unpaidAmount": utils.FormatAmount(summary.TotalUnpaid),
	})

	now := time.Now().UTC()
	sms := domain.SmsMessage{
		SmsMessageID: uuid.NewString(),
		CustomerID:   req.CustomerID,
		Content:      content,
		Status:       domain.SmsPending,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	if err := s.smsRepo.SaveSms(ctx, sms); err != nil {
		s.LogError(ctx, err, "Failed to log SMS", slog.String("customer_id", req.CustomerID))
		return nil, err
	}

	if err := s.sender.Send(ctx, customer.Phone, content); err != nil {
		s.LogError(ctx, err, "SMS dispatch failed", slog.String("sms_id", sms.SmsMessageID))
		sms.Status = domain.SmsFailed
	} else {
		sms.Status = domain.SmsSent
	}
	if err := s.smsRepo.UpdateSmsStatus(ctx, sms.SmsMessageID, sms.Status); err != nil {
		s.LogError(ctx, err, "Failed to update SMS status", slog.String("sms_id", sms.SmsMessageID))
		return nil, err
	}

	s.LogInfo(ctx, "SMS processed",
		slog.String("sms_id", sms.SmsMessageID),
		slog.String("customer_id", req.CustomerID),
		slog.String("status", string(sms.Status)))
	return &sms, nil
}

func (s *smsService) ListSmsByCustomer(ctx context.Context, customerID string) ([]domain.SmsMessage, error) {
	messages, err := s.smsRepo.ListSmsByCustomer(ctx, customerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list SMS", slog.String("customer_id", customerID))
		return nil, err
	}
	return messages, nil
}
