package memory

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/business_ledger/internal/apperrors"
	"github.com/SscSPs/business_ledger/internal/core/domain"
)

func testEntry(id, txID string, st domain.SourceType, postedAt time.Time) domain.LedgerEntry {
	amount := decimal.NewFromInt(10)
	return domain.LedgerEntry{
		EntryID:       id,
		SourceType:    st,
		SourceID:      txID,
		TransactionID: txID,
		Lines: []domain.JournalLine{
			{AccountCode: domain.AccountsReceivable, Debit: amount, Credit: decimal.Zero, Metadata: map[string]string{"sale_id": txID}},
			{AccountCode: domain.SalesRevenue, Debit: decimal.Zero, Credit: amount, Metadata: map[string]string{"sale_id": txID}},
		},
		TotalDebit:  amount,
		TotalCredit: amount,
		Status:      domain.Posted,
		PostedAt:    postedAt,
	}
}

func TestStore_SaveLedgerEntryEnforcesSourceKey(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	now := time.Now().UTC()

	require.NoError(t, store.SaveLedgerEntry(ctx, testEntry("e1", "s1", domain.SourceSale, now)))

	err := store.SaveLedgerEntry(ctx, testEntry("e2", "s1", domain.SourceSale, now))
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)

	// Same transaction ID under another source type is a different key.
	require.NoError(t, store.SaveLedgerEntry(ctx, testEntry("e3", "s1", domain.SourcePayment, now)))
	assert.Equal(t, 2, store.EntryCount())

	exists, err := store.ExistsBySource(ctx, "s1", domain.SourceSale)
	require.NoError(t, err)
	assert.True(t, exists)
	exists, err = store.ExistsBySource(ctx, "s1", domain.SourceExpense)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestStore_ReturnsDetachedCopies(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	entry := testEntry("e1", "s1", domain.SourceSale, time.Now())
	require.NoError(t, store.SaveLedgerEntry(ctx, entry))

	entry.Lines[0].Metadata["sale_id"] = "changed"

	got, err := store.FindLedgerEntryByID(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, "s1", got.Lines[0].Metadata["sale_id"])

	got.Lines[0].Debit = decimal.NewFromInt(999)
	again, err := store.FindLedgerEntryByID(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, "10", again.Lines[0].Debit.String())

	_, err = store.FindLedgerEntryByID(ctx, "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestStore_SourceFilters(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	paid := base

	store.AddSale(domain.Sale{SaleID: "old", Status: domain.SaleStatusCompleted, Date: base})
	store.AddSale(domain.Sale{SaleID: "new", Status: domain.SaleStatusCompleted, Date: base.Add(time.Hour)})
	store.AddSale(domain.Sale{SaleID: "pending", Status: "pending", Date: base})
	store.AddPayment(domain.Payment{PaymentID: "p1", Status: domain.PaymentStatusPaid, PaidDate: &paid})
	store.AddPayment(domain.Payment{PaymentID: "p2", Status: domain.PaymentStatusPaid})
	store.AddPayment(domain.Payment{PaymentID: "p3", Status: "scheduled", PaidDate: &paid})
	store.AddExpense(domain.ExpenseRecord{ExpenseID: "x1", Date: base})

	sales, err := store.ListCompletedSales(ctx, 10)
	require.NoError(t, err)
	require.Len(t, sales, 2)
	assert.Equal(t, "new", sales[0].SaleID)

	sales, err = store.ListCompletedSales(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, sales, 1)

	payments, err := store.ListPaidPayments(ctx, 10)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, "p1", payments[0].PaymentID)

	expenses, err := store.ListExpenses(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, expenses, 1)
}

func TestStore_ListLedgerEntriesPaginates(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, store.SaveLedgerEntry(ctx, testEntry("a", "s1", domain.SourceSale, base)))
	require.NoError(t, store.SaveLedgerEntry(ctx, testEntry("b", "s2", domain.SourceSale, base)))
	require.NoError(t, store.SaveLedgerEntry(ctx, testEntry("c", "s3", domain.SourceSale, base.Add(time.Minute))))

	page, next, err := store.ListLedgerEntries(ctx, 2, nil)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "c", page[0].EntryID)
	assert.Equal(t, "b", page[1].EntryID)
	require.NotNil(t, next)

	page, next, err = store.ListLedgerEntries(ctx, 2, next)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "a", page[0].EntryID)
	assert.Nil(t, next)

	bad := "not-a-token!"
	_, _, err = store.ListLedgerEntries(ctx, 2, &bad)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestStore_BackfillLogsByBatch(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	require.NoError(t, store.SaveBackfillLog(ctx, domain.BackfillLogRecord{LogID: "1", BatchID: "b1", SourceID: "s1"}))
	require.NoError(t, store.SaveBackfillLog(ctx, domain.BackfillLogRecord{LogID: "2", BatchID: "b2", SourceID: "s2"}))
	require.NoError(t, store.SaveBackfillLog(ctx, domain.BackfillLogRecord{LogID: "3", BatchID: "b1", SourceID: "s3"}))

	logs, err := store.ListBackfillLogsByBatch(ctx, "b1")
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "1", logs[0].LogID)
	assert.Equal(t, "3", logs[1].LogID)

	logs, err = store.ListBackfillLogsByBatch(ctx, "none")
	require.NoError(t, err)
	assert.Empty(t, logs)
}
