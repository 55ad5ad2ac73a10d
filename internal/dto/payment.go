package dto

import (
	"time"

	"github.com/misuhub/receivables_app/internal/core/domain"
)

// CreatePaymentRequest defines the data needed to record a payment against a
// transaction. Method is checked by the custom paymethod validator.
type CreatePaymentRequest struct {
	TransactionID string     `json:"transactionID" binding:"required,uuid"`
	Amount        int64      `json:"amount" binding:"required,gt=0"`
	Method        string     `json:"method" binding:"required,paymethod"`
	PayerName     string     `json:"payerName"`
	PaidAt        *time.Time `json:"paidAt"` // Defaults to now when absent
}

// UpdatePaymentRequest defines the data allowed for updating a payment.
type UpdatePaymentRequest struct {
	Amount    *int64     `json:"amount" binding:"omitempty,gt=0"`
	Method    *string    `json:"method" binding:"omitempty,paymethod"`
	PayerName *string    `json:"payerName"`
	PaidAt    *time.Time `json:"paidAt"`
}

// PaymentResponse defines the data returned for a payment.
type PaymentResponse struct {
	PaymentID     string               `json:"paymentID"`
	TransactionID string               `json:"transactionID"`
	Amount        int64                `json:"amount"`
	Method        domain.PaymentMethod `json:"method"`
	PayerName     string               `json:"payerName"`
	PaidAt        time.Time            `json:"paidAt"`
	CreatedAt     time.Time            `json:"createdAt"`
	UpdatedAt     time.Time            `json:"updatedAt"`
}

// ToPaymentResponse converts a domain.Payment to PaymentResponse DTO
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:     p.PaymentID,
		TransactionID: p.TransactionID,
		Amount:        p.Amount,
		Method:        p.Method,
		PayerName:     p.PayerName,
		PaidAt:        p.PaidAt,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// ToListPaymentResponse converts a slice of domain.Payment to response DTOs
func ToListPaymentResponse(payments []domain.Payment) []PaymentResponse {
	res := make([]PaymentResponse, len(payments))
	for i, p := range payments {
		res[i] = ToPaymentResponse(&p)
	}
	return res
}

// CreatePaymentResponse returns the recorded payment alongside the freshly
// reconciled owning transaction, so clients can update both views in one go.
type CreatePaymentResponse struct {
	Payment     PaymentResponse     `json:"payment"`
	Transaction TransactionResponse `json:"transaction"`
}
