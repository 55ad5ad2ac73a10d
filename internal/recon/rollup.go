package recon

import (
	"sort"

	"github.com/misuhub/receivables_app/internal/core/domain"
)

// CustomerSummary aggregates the reconciled transactions of one customer.
type CustomerSummary struct {
	CustomerID       string `json:"customerID"`
	TransactionCount int64  `json:"transactionCount"`
	TotalAmount      int64  `json:"totalAmount"`
	TotalPaid        int64  `json:"totalPaid"`
	// TotalUnpaid sums per-transaction unpaid amounts clamped at zero:
	// an overpaid transaction contributes nothing instead of offsetting
	// other receivables.
	TotalUnpaid int64 `json:"totalUnpaid"`
	TotalRatio  int64 `json:"totalRatio"` // Integer percent of TotalPaid over TotalAmount
}

// GlobalSummary aggregates all non-deleted transactions.
type GlobalSummary struct {
	TransactionCount int64 `json:"transactionCount"`
	CustomerCount    int64 `json:"customerCount"` // Distinct customers with at least one transaction
	TotalAmount      int64 `json:"totalAmount"`
	TotalPaid        int64 `json:"totalPaid"`
	TotalUnpaid      int64 `json:"totalUnpaid"`
	TotalRatio       int64 `json:"totalRatio"`
}

// clampUnpaid is the single place the overpayment rule lives.
func clampUnpaid(unpaid int64) int64 {
	if unpaid < 0 {
		return 0
	}
	return unpaid
}

// Rollup folds reconciled transactions into per-customer summaries and one
// global summary, in a single pass. Soft-deleted transactions are skipped
// entirely. Transactions without a customer reference count toward the global
// summary but not toward any customer summary or the distinct customer count.
// Empty input yields zero-valued summaries.
func Rollup(txns []ReconciledTransaction) (map[string]CustomerSummary, GlobalSummary) {
	byCustomer := make(map[string]CustomerSummary)
	var global GlobalSummary

	for _, t := range txns {
		if t.Status == domain.TransactionDeleted {
			continue
		}

		unpaid := clampUnpaid(t.UnpaidAmount)

		global.TransactionCount++
		global.TotalAmount += t.Amount
		global.TotalPaid += t.PaidAmount
		global.TotalUnpaid += unpaid

		if t.CustomerID == "" {
			continue
		}

		cs := byCustomer[t.CustomerID]
		cs.CustomerID = t.CustomerID
		cs.TransactionCount++
		cs.TotalAmount += t.Amount
		cs.TotalPaid += t.PaidAmount
		cs.TotalUnpaid += unpaid
		byCustomer[t.CustomerID] = cs
	}

	for id, cs := range byCustomer {
		cs.TotalRatio = Ratio(cs.TotalPaid, cs.TotalAmount)
		byCustomer[id] = cs
	}
	global.CustomerCount = int64(len(byCustomer))
	global.TotalRatio = Ratio(global.TotalPaid, global.TotalAmount)

	return byCustomer, global
}

// RollupCustomer folds the reconciled transactions of a single customer.
// Convenience wrapper over Rollup for the customer summary endpoint.
func RollupCustomer(customerID string, txns []ReconciledTransaction) CustomerSummary {
	byCustomer, _ := Rollup(txns)
	cs, ok := byCustomer[customerID]
	if !ok {
		return CustomerSummary{CustomerID: customerID}
	}
	return cs
}

// SortForDisplay orders transactions for list display: creation time
// descending, transaction ID descending as tiebreak. Summation never depends
// on order; this exists purely to keep pagination stable.
func SortForDisplay(txns []ReconciledTransaction) {
	sort.SliceStable(txns, func(i, j int) bool {
		ti, tj := txns[i], txns[j]
		if !ti.CreatedAt.Equal(tj.CreatedAt) {
			return ti.CreatedAt.After(tj.CreatedAt)
		}
		return ti.TransactionID > tj.TransactionID
	})
}

// TopDebtors returns the n customer summaries with the highest unpaid totals,
// largest first, customer ID ascending as tiebreak.
func TopDebtors(byCustomer map[string]CustomerSummary, n int) []CustomerSummary {
	debtors := make([]CustomerSummary, 0, len(byCustomer))
	for _, cs := range byCustomer {
		debtors = append(debtors, cs)
	}
	sort.Slice(debtors, func(i, j int) bool {
		if debtors[i].TotalUnpaid != debtors[j].TotalUnpaid {
			return debtors[i].TotalUnpaid > debtors[j].TotalUnpaid
		}
		return debtors[i].CustomerID < debtors[j].CustomerID
	})
	if n > 0 && len(debtors) > n {
		debtors = debtors[:n]
	}
	return debtors
}
