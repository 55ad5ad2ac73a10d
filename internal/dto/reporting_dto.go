package dto

import (
	"time"

	"github.com/misuhub/receivables_app/internal/recon"
)

// CustomerSummaryResponse wraps a customer's aggregated receivable position.
type CustomerSummaryResponse struct {
	Summary recon.CustomerSummary `json:"summary"`
}

// TransactionsSummaryResponse wraps the global aggregated receivable position.
type TransactionsSummaryResponse struct {
	Summary recon.GlobalSummary `json:"summary"`
}

// AgingBucketResponse is one overdue band of the dashboard aging report.
type AgingBucketResponse struct {
	Label            string `json:"label"` // "current", "1-30", "31-60", "61-90", "90+"
	TransactionCount int64  `json:"transactionCount"`
	UnpaidTotal      int64  `json:"unpaidTotal"`
}

// TopDebtorResponse is one entry of the dashboard top-debtor ranking.
type TopDebtorResponse struct {
	recon.CustomerSummary
	CustomerName string `json:"customerName"`
}

// DashboardResponse is the cached dashboard payload.
type DashboardResponse struct {
	Summary     recon.GlobalSummary   `json:"summary"`
	Aging       []AgingBucketResponse `json:"aging"`
	TopDebtors  []TopDebtorResponse   `json:"topDebtors"`
	GeneratedAt time.Time             `json:"generatedAt"`
}

// StatementResponse is the printable statement data for one customer.
type StatementResponse struct {
	Customer     CustomerResponse      `json:"customer"`
	Summary      recon.CustomerSummary `json:"summary"`
	Transactions []TransactionResponse `json:"transactions"`
	GeneratedAt  time.Time             `json:"generatedAt"`
}
