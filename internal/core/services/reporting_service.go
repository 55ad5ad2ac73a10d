package services

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/misuhub/receivables_app/internal/core/domain"
	portsrepo "github.com/misuhub/receivables_app/internal/core/ports/repositories"
	portssvc "github.com/misuhub/receivables_app/internal/core/ports/services"
	"github.com/misuhub/receivables_app/internal/dto"
	"github.com/misuhub/receivables_app/internal/recon"
)

const dashboardCacheKey = "dashboard:v1"

// topDebtorCount is how many customers the dashboard ranking shows.
const topDebtorCount = 5

// reportingService implements the ReportingSvcFacade interface.
// The dashboard payload is cached in Redis; the change notification pipeline
// invalidates it whenever receivable data moves.
type reportingService struct {
	BaseService
	transactionRepo portsrepo.TransactionReader
	paymentRepo     portsrepo.PaymentReader
	customerRepo    portsrepo.CustomerReader
	cache           *redis.Client
	cacheTTL        time.Duration
}

// NewReportingService creates a new reporting service. cache may be nil, in
// which case every dashboard read recomputes.
func NewReportingService(txnRepo portsrepo.TransactionReader, paymentRepo portsrepo.PaymentReader, customerRepo portsrepo.CustomerReader, cache *redis.Client, cacheTTL time.Duration) portssvc.ReportingSvcFacade {
	return &reportingService{
		transactionRepo: txnRepo,
		paymentRepo:     paymentRepo,
		customerRepo:    customerRepo,
		cache:           cache,
		cacheTTL:        cacheTTL,
	}
}

// Ensure reportingService implements the ReportingSvcFacade interface
var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// loadReconciled loads every non-deleted transaction joined with its payments.
func (s *reportingService) loadReconciled(ctx context.Context) ([]recon.ReconciledTransaction, error) {
	txns, err := s.transactionRepo.ListAllActive(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for reporting")
		return nil, err
	}

	ids := make([]string, len(txns))
	for i, t := range txns {
		ids[i] = t.TransactionID
	}
	paymentsByTxn, err := s.paymentRepo.FindPaymentsByTransactionIDs(ctx, ids)
	if err != nil {
		s.LogError(ctx, err, "Failed to load payments for reporting")
		return nil, err
	}

	reconciled := make([]recon.ReconciledTransaction, len(txns))
	for i, t := range txns {
		reconciled[i] = recon.Reconcile(t, paymentsByTxn[t.TransactionID])
	}
	return reconciled, nil
}

func (s *reportingService) CustomerSummary(ctx context.Context, customerID string) (*recon.CustomerSummary, error) {
	if _, err := s.customerRepo.FindCustomerByID(ctx, customerID); err != nil {
		return nil, err
	}

	txns, err := s.transactionRepo.ListTransactionsByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(txns))
	for i, t := range txns {
		ids[i] = t.TransactionID
	}
	paymentsByTxn, err := s.paymentRepo.FindPaymentsByTransactionIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	reconciled := make([]recon.ReconciledTransaction, len(txns))
	for i, t := range txns {
		reconciled[i] = recon.Reconcile(t, paymentsByTxn[t.TransactionID])
	}

	summary := recon.RollupCustomer(customerID, reconciled)
	return &summary, nil
}

func (s *reportingService) TransactionsSummary(ctx context.Context) (*recon.GlobalSummary, error) {
	reconciled, err := s.loadReconciled(ctx)
	if err != nil {
		return nil, err
	}
	_, global := recon.Rollup(reconciled)
	return &global, nil
}

func (s *reportingService) Dashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	if cached := s.readDashboardCache(ctx); cached != nil {
		return cached, nil
	}

	reconciled, err := s.loadReconciled(ctx)
	if err != nil {
		return nil, err
	}
	byCustomer, global := recon.Rollup(reconciled)

	resp := &dto.DashboardResponse{
		Summary:     global,
		Aging:       buildAgingBuckets(reconciled, time.Now().UTC()),
		TopDebtors:  s.resolveTopDebtors(ctx, byCustomer),
		GeneratedAt: time.Now().UTC(),
	}

	s.writeDashboardCache(ctx, resp)
	return resp, nil
}

func (s *reportingService) readDashboardCache(ctx context.Context) *dto.DashboardResponse {
	if s.cache == nil {
		return nil
	}
	raw, err := s.cache.Get(ctx, dashboardCacheKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.LogDebug(ctx, "Dashboard cache read failed", slog.String("error", err.Error()))
		}
		return nil
	}
	var resp dto.DashboardResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		s.LogDebug(ctx, "Dashboard cache entry corrupt, discarding", slog.String("error", err.Error()))
		s.cache.Del(ctx, dashboardCacheKey)
		return nil
	}
	return &resp
}

func (s *reportingService) writeDashboardCache(ctx context.Context, resp *dto.DashboardResponse) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(resp)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, dashboardCacheKey, raw, s.cacheTTL).Err(); err != nil {
		s.LogDebug(ctx, "Dashboard cache write failed", slog.String("error", err.Error()))
	}
}

// InvalidateDashboardCache drops the cached dashboard payload.
func (s *reportingService) InvalidateDashboardCache(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	if err := s.cache.Del(ctx, dashboardCacheKey).Err(); err != nil {
		s.LogError(ctx, err, "Failed to invalidate dashboard cache")
		return err
	}
	s.LogDebug(ctx, "Dashboard cache invalidated")
	return nil
}

// resolveTopDebtors ranks customers by outstanding total and attaches names.
func (s *reportingService) resolveTopDebtors(ctx context.Context, byCustomer map[string]recon.CustomerSummary) []dto.TopDebtorResponse {
	top := recon.TopDebtors(byCustomer, topDebtorCount)
	out := make([]dto.TopDebtorResponse, 0, len(top))
	for _, cs := range top {
		entry := dto.TopDebtorResponse{CustomerSummary: cs}
		if customer, err := s.customerRepo.FindCustomerByID(ctx, cs.CustomerID); err == nil {
			entry.CustomerName = customer.Name
		}
		out = append(out, entry)
	}
	return out
}

// buildAgingBuckets bands outstanding transactions by days overdue. A
// transaction with no due date, or one not yet due, lands in "current".
// Fully settled transactions contribute nothing.
func buildAgingBuckets(txns []recon.ReconciledTransaction, now time.Time) []dto.AgingBucketResponse {
	buckets := []dto.AgingBucketResponse{
		{Label: "current"},
		{Label: "1-30"},
		{Label: "31-60"},
		{Label: "61-90"},
		{Label: "90+"},
	}

	for _, t := range txns {
		if t.Status == domain.TransactionDeleted {
			continue
		}
		unpaid := t.UnpaidAmount
		if unpaid <= 0 {
			continue
		}

		idx := 0
		if t.DueDate != nil && now.After(*t.DueDate) {
			days := int(now.Sub(*t.DueDate).Hours() / 24)
			switch {
			case days <= 0:
				idx = 0
			case days <= 30:
				idx = 1
			case days <= 60:
				idx = 2
			case days <= 90:
				idx = 3
			default:
				idx = 4
			}
		}
		buckets[idx].TransactionCount++
		buckets[idx].UnpaidTotal += unpaid
	}

	return buckets
}

func (s *reportingService) CustomerStatement(ctx context.Context, customerID string) (*dto.StatementResponse, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	txns, err := s.transactionRepo.ListTransactionsByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(txns))
	for i, t := range txns {
		ids[i] = t.TransactionID
	}
	paymentsByTxn, err := s.paymentRepo.FindPaymentsByTransactionIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	reconciled := make([]recon.ReconciledTransaction, len(txns))
	for i, t := range txns {
		reconciled[i] = recon.Reconcile(t, paymentsByTxn[t.TransactionID])
	}
	recon.SortForDisplay(reconciled)
	summary := recon.RollupCustomer(customerID, reconciled)

	return &dto.StatementResponse{
		Customer:     dto.ToCustomerResponse(customer),
		Summary:      summary,
		Transactions: dto.ToListTransactionResponse(reconciled),
		GeneratedAt:  time.Now().UTC(),
	}, nil
}
