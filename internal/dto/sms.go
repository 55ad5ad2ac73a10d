package dto

import (
	"time"

	"github.com/misuhub/receivables_app/internal/core/domain"
)

// SendSmsRequest defines the data needed to send a dunning SMS.
// Template placeholders like {customerName} or {unpaidAmount} are substituted
// from the customer's reconciled figures before dispatch.
type SendSmsRequest struct {
	CustomerID string `json:"customerID" binding:"required,uuid"`
	Template   string `json:"template" binding:"required"`
}

// SmsResponse defines the data returned for an SMS log entry.
type SmsResponse struct {
	SmsMessageID string           `json:"smsMessageID"`
	CustomerID   string           `json:"customerID"`
	Content      string           `json:"content"`
	Status       domain.SmsStatus `json:"status"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
}

// ToSmsResponse converts a domain.SmsMessage to SmsResponse DTO
func ToSmsResponse(s *domain.SmsMessage) SmsResponse {
	return SmsResponse{
		SmsMessageID: s.SmsMessageID,
		CustomerID:   s.CustomerID,
		Content:      s.Content,
		Status:       s.Status,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

// ToListSmsResponse converts a slice of domain.SmsMessage to response DTOs
func ToListSmsResponse(messages []domain.SmsMessage) []SmsResponse {
	res := make([]SmsResponse, len(messages))
	for i, s := range messages {
		res[i] = ToSmsResponse(&s)
	}
	return res
}
