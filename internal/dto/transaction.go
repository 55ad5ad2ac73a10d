package dto

import (
	"time"

	"github.com/misuhub/receivables_app/internal/core/domain"
	"github.com/misuhub/receivables_app/internal/recon"
)

// CreateTransactionRequest defines the data needed to record a new sale.
type CreateTransactionRequest struct {
	CustomerID  string     `json:"customerID" binding:"required,uuid"`
	Type        string     `json:"type"`
	Amount      int64      `json:"amount" binding:"required,gt=0"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
}

// UpdateTransactionRequest defines the data allowed for updating a transaction.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateTransactionRequest struct {
	Type        *string    `json:"type"`
	Amount      *int64     `json:"amount" binding:"omitempty,gt=0"`
	Status      *string    `json:"status" binding:"omitempty,oneof=unpaid paid"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
}

// TransactionResponse defines the data returned for a transaction, including
// the derived payment figures. UnpaidAmount keeps its sign when overpaid.
type TransactionResponse struct {
	TransactionID string                   `json:"transactionID"`
	CustomerID    string                   `json:"customerID"`
	Type          string                   `json:"type"`
	Amount        int64                    `json:"amount"`
	Status        domain.TransactionStatus `json:"status"`
	Description   string                   `json:"description"`
	DueDate       *time.Time               `json:"dueDate"`
	PaidAmount    int64                    `json:"paidAmount"`
	UnpaidAmount  int64                    `json:"unpaidAmount"`
	PaidRatio     int64                    `json:"paidRatio"`
	CreatedAt     time.Time                `json:"createdAt"`
	UpdatedAt     time.Time                `json:"updatedAt"`
}

// TransactionDetailResponse is a transaction with its full payment history.
type TransactionDetailResponse struct {
	TransactionResponse
	Payments []PaymentResponse `json:"payments"`
}

// ToTransactionResponse converts a reconciled transaction to its response DTO
func ToTransactionResponse(rt *recon.ReconciledTransaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: rt.TransactionID,
		CustomerID:    rt.CustomerID,
		Type:          rt.Type,
		Amount:        rt.Amount,
		Status:        rt.Status,
		Description:   rt.Description,
		DueDate:       rt.DueDate,
		PaidAmount:    rt.PaidAmount,
		UnpaidAmount:  rt.UnpaidAmount,
		PaidRatio:     rt.PaidRatio,
		CreatedAt:     rt.CreatedAt,
		UpdatedAt:     rt.UpdatedAt,
	}
}

// ToListTransactionResponse converts reconciled transactions to response DTOs
func ToListTransactionResponse(txns []recon.ReconciledTransaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return res
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	Limit          int     `form:"limit,default=20" binding:"omitempty,gte=1,lte=100"`
	NextToken      *string `form:"nextToken"`
	IncludeDeleted bool    `form:"includeDeleted,default=false"`
}

// ListTransactionsResponse wraps the list of transactions with the pagination token.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}
