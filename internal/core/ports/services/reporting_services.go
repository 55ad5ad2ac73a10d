package services

import (
	"context"

	"github.com/misuhub/receivables_app/internal/dto"
	"github.com/misuhub/receivables_app/internal/recon"
)

// ReportingSvcFacade defines operations for receivable summaries and the dashboard.
type ReportingSvcFacade interface {
	// CustomerSummary aggregates the receivable position of one customer.
	CustomerSummary(ctx context.Context, customerID string) (*recon.CustomerSummary, error)

	// TransactionsSummary aggregates the receivable position across every customer.
	TransactionsSummary(ctx context.Context) (*recon.GlobalSummary, error)

	// Dashboard builds the cached dashboard payload: global totals, aging
	// buckets and the top debtors.
	Dashboard(ctx context.Context) (*dto.DashboardResponse, error)

	// CustomerStatement builds the printable statement data for one customer.
	CustomerStatement(ctx context.Context, customerID string) (*dto.StatementResponse, error)

	// InvalidateDashboardCache drops the cached dashboard payload so the next
	// read recomputes it. Called by the change notification pipeline.
	InvalidateDashboardCache(ctx context.Context) error
}
