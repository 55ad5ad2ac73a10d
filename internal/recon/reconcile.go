// Package recon is the receivables reconciliation engine: it derives the
// paid/unpaid split of a transaction from its payment records and folds
// reconciled transactions into per-customer and global summaries.
//
// Every call site (customer views, transaction lists, dashboard, statements)
// computes these figures through this package so the formulas cannot diverge.
// All functions are pure; malformed inputs are normalized to zero rather than
// rejected, so aggregates stay resilient.
package recon

import "github.com/misuhub/receivables_app/internal/core/domain"

// ReconciledTransaction is a transaction with its derived payment figures.
// It is recomputed on every read and never persisted.
type ReconciledTransaction struct {
	domain.Transaction

	PaidAmount int64 `json:"paidAmount"`
	// UnpaidAmount is Amount - PaidAmount. Negative when overpaid; the sign
	// is preserved here and only clamped during rollup.
	UnpaidAmount int64 `json:"unpaidAmount"`
	PaidRatio    int64 `json:"paidRatio"` // Integer percent, may exceed 100
}

// Settled reports whether cumulative payments meet or exceed the amount.
// Informational only: the persisted Status field is owned by the write path.
func (r ReconciledTransaction) Settled() bool {
	return r.PaidAmount >= r.Amount
}

// SumPayments totals the amounts of one transaction's payment records.
// A plain sum: order-independent and idempotent.
func SumPayments(payments []domain.Payment) int64 {
	var total int64
	for _, p := range payments {
		total += p.Amount
	}
	return total
}

// Reconcile derives the paid/unpaid figures for one transaction from its
// payments. The transaction's persisted Status is carried through untouched.
func Reconcile(txn domain.Transaction, payments []domain.Payment) ReconciledTransaction {
	paid := SumPayments(payments)
	return ReconciledTransaction{
		Transaction:  txn,
		PaidAmount:   paid,
		UnpaidAmount: txn.Amount - paid,
		PaidRatio:    Ratio(paid, txn.Amount),
	}
}
