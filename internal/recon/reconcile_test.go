package recon_test

import (
	"testing"

	"github.com/misuhub/receivables_app/internal/core/domain"
	"github.com/misuhub/receivables_app/internal/recon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func payments(amounts ...int64) []domain.Payment {
	ps := make([]domain.Payment, len(amounts))
	for i, a := range amounts {
		ps[i] = domain.Payment{Amount: a}
	}
	return ps
}

func TestRatio(t *testing.T) {
	assert.Equal(t, int64(0), recon.Ratio(0, 0))
	assert.Equal(t, int64(0), recon.Ratio(500, 0))
	assert.Equal(t, int64(0), recon.Ratio(500, -100))
	assert.Equal(t, int64(50), recon.Ratio(50, 100))
	assert.Equal(t, int64(67), recon.Ratio(100000, 150000))
	assert.Equal(t, int64(33), recon.Ratio(100000, 300000))
	// Overpayment stays representable, not clamped to 100.
	assert.Equal(t, int64(150), recon.Ratio(150, 100))
}

func TestRatio_MonotonicInPaid(t *testing.T) {
	const amount = 3137
	prev := int64(-1)
	for paid := int64(0); paid <= 2*amount; paid += 97 {
		r := recon.Ratio(paid, amount)
		assert.GreaterOrEqual(t, r, prev, "ratio must not decrease as paid grows")
		prev = r
	}
}

func TestSumPayments(t *testing.T) {
	assert.Equal(t, int64(0), recon.SumPayments(nil))
	assert.Equal(t, int64(0), recon.SumPayments([]domain.Payment{}))
	assert.Equal(t, int64(100000), recon.SumPayments(payments(80000, 20000)))

	// Order independence.
	assert.Equal(t,
		recon.SumPayments(payments(1, 2, 3)),
		recon.SumPayments(payments(3, 1, 2)))

	// A record whose NULL amount was normalized to zero contributes nothing.
	assert.Equal(t, int64(500), recon.SumPayments(payments(500, 0)))
}

func TestReconcile(t *testing.T) {
	txn := domain.Transaction{
		TransactionID: "t1",
		CustomerID:    "c1",
		Amount:        150000,
		Status:        domain.TransactionUnpaid,
	}

	rt := recon.Reconcile(txn, payments(80000, 20000))

	assert.Equal(t, int64(100000), rt.PaidAmount)
	assert.Equal(t, int64(50000), rt.UnpaidAmount)
	assert.Equal(t, int64(67), rt.PaidRatio)
	assert.False(t, rt.Settled())
	// Persisted status carried through untouched.
	assert.Equal(t, domain.TransactionUnpaid, rt.Status)
}

func TestReconcile_ExactIntegerArithmetic(t *testing.T) {
	// unpaid = amount - sum(payments), exactly, for awkward values.
	txn := domain.Transaction{TransactionID: "t1", Amount: 999999999999}
	rt := recon.Reconcile(txn, payments(333333333333, 333333333333))
	require.Equal(t, int64(666666666666), rt.PaidAmount)
	assert.Equal(t, int64(333333333333), rt.UnpaidAmount)
}

func TestReconcile_OverpaymentPreservesNegativeUnpaid(t *testing.T) {
	txn := domain.Transaction{TransactionID: "t1", Amount: 100}
	rt := recon.Reconcile(txn, payments(150))

	assert.Equal(t, int64(-50), rt.UnpaidAmount)
	assert.Equal(t, int64(150), rt.PaidRatio)
	assert.True(t, rt.Settled())
}

func TestReconcile_NoPayments(t *testing.T) {
	txn := domain.Transaction{TransactionID: "t1", Amount: 100}
	rt := recon.Reconcile(txn, nil)

	assert.Equal(t, int64(0), rt.PaidAmount)
	assert.Equal(t, int64(100), rt.UnpaidAmount)
	assert.Equal(t, int64(0), rt.PaidRatio)
	assert.False(t, rt.Settled())
}

func TestReconcile_ZeroAmount(t *testing.T) {
	rt := recon.Reconcile(domain.Transaction{TransactionID: "t1"}, nil)
	assert.Equal(t, int64(0), rt.PaidRatio)
	assert.True(t, rt.Settled())
}
