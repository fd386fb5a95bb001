package services

import (
	"math/rand"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/business_ledger/internal/apperrors"
	"github.com/SscSPs/business_ledger/internal/core/domain"
	"github.com/SscSPs/business_ledger/internal/utils/accounting"
)

type unknownEvent struct{}

func (unknownEvent) SourceType() domain.SourceType     { return "refund" }
func (unknownEvent) SourceID() string                  { return "r1" }
func (unknownEvent) EventAmount() decimal.Decimal      { return decimal.NewFromInt(1) }
func (unknownEvent) OwnerID() string                   { return "u1" }

func fixedPostingService() (*postingService, time.Time) {
	at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	n := 0
	svc := NewPostingService("USD",
		WithClock(func() time.Time { return at }),
		WithIDGenerator(func() string {
			n++
			return "id-" + string(rune('a'+n-1))
		}),
	).(*postingService)
	return svc, at
}

func TestPost_Sale(t *testing.T) {
	svc, at := fixedPostingService()
	sale := domain.Sale{SaleID: "s-1", CustomerName: "Acme", Total: decimal.RequireFromString("100.50"), UserID: "u-1"}

	entry, err := svc.Post(sale)
	require.NoError(t, err)

	require.Len(t, entry.Lines, 2)
	assert.Equal(t, domain.AccountsReceivable, entry.Lines[0].AccountCode)
	assert.Equal(t, "100.5", entry.Lines[0].Debit.String())
	assert.True(t, entry.Lines[0].Credit.IsZero())
	assert.Equal(t, domain.SalesRevenue, entry.Lines[1].AccountCode)
	assert.Equal(t, "100.5", entry.Lines[1].Credit.String())
	assert.True(t, entry.Lines[1].Debit.IsZero())

	assert.Equal(t, "Sale to Acme", entry.Lines[0].Memo)
	assert.Equal(t, "s-1", entry.Lines[0].Metadata["sale_id"])
	assert.Equal(t, "USD", entry.Lines[1].Currency)

	assert.Equal(t, domain.SourceSale, entry.SourceType)
	assert.Equal(t, "s-1", entry.SourceID)
	assert.Equal(t, "s-1", entry.TransactionID)
	assert.Equal(t, domain.Posted, entry.Status)
	assert.Equal(t, "u-1", entry.UserID)
	assert.Equal(t, at, entry.PostedAt)
	assert.Equal(t, "id-c", entry.EntryID)
	assert.True(t, entry.TotalDebit.Equal(entry.TotalCredit))
}

func TestPost_Payment(t *testing.T) {
	svc, _ := fixedPostingService()
	paid := time.Now()
	payment := domain.Payment{
		PaymentID:     "p-1",
		Customer:      "Bob",
		Product:       "Widget",
		Amount:        decimal.NewFromInt(75),
		PaidDate:      &paid,
		PaymentMethod: "card",
	}

	entry, err := svc.Post(payment)
	require.NoError(t, err)
	assert.Equal(t, domain.CashBank, entry.Lines[0].AccountCode)
	assert.Equal(t, domain.AccountsReceivable, entry.Lines[1].AccountCode)
	assert.Equal(t, "Payment from Bob via card", entry.Lines[0].Memo)
	assert.Equal(t, "p-1", entry.Lines[0].Metadata["payment_id"])
	assert.Equal(t, "Widget", entry.Lines[0].Metadata["product"])
}

func TestPost_ExpenseCategories(t *testing.T) {
	svc, _ := fixedPostingService()
	cases := map[domain.ExpenseCategory]domain.AccountCode{
		domain.WorkingCapital: domain.OperatingExpenses,
		domain.FixedCapital:   domain.CapitalExpenses,
		"":                    domain.GeneralExpenses,
		"marketing":           domain.GeneralExpenses,
	}
	for category, want := range cases {
		entry, err := svc.Post(domain.ExpenseRecord{
			ExpenseID:   "x-1",
			Description: "Rent",
			Amount:      decimal.NewFromInt(40),
			Category:    category,
			Type:        "monthly",
		})
		require.NoError(t, err)
		assert.Equal(t, want, entry.Lines[0].AccountCode, "category %q", category)
		assert.Equal(t, domain.CashBank, entry.Lines[1].AccountCode)
		assert.Equal(t, "Rent", entry.Lines[0].Memo)
		assert.Equal(t, "monthly", entry.Lines[0].Metadata["expense_type"])
	}
}

func TestPost_UnsupportedSourceType(t *testing.T) {
	svc, _ := fixedPostingService()

	_, err := svc.Post(unknownEvent{})
	assert.ErrorIs(t, err, apperrors.ErrUnsupportedSourceType)

	_, err = svc.Post(nil)
	assert.ErrorIs(t, err, apperrors.ErrUnsupportedSourceType)
}

func TestPost_AlwaysBalancedForPositiveAmounts(t *testing.T) {
	svc := NewPostingService("USD")
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		amount := decimal.New(rng.Int63n(10_000_000)+1, -2)
		var event domain.BusinessEvent
		switch i % 3 {
		case 0:
			event = domain.Sale{SaleID: "s", Total: amount}
		case 1:
			event = domain.Payment{PaymentID: "p", Amount: amount}
		default:
			event = domain.ExpenseRecord{ExpenseID: "x", Amount: amount, Category: domain.FixedCapital}
		}

		entry, err := svc.Post(event)
		require.NoError(t, err)
		require.NoError(t, accounting.ValidateEntryBalance(entry))

		debits, credits := accounting.SumLines(entry.Lines)
		assert.True(t, debits.Equal(amount))
		assert.True(t, credits.Equal(amount))
		for _, line := range entry.Lines {
			assert.True(t, line.Debit.IsZero() != line.Credit.IsZero(), "exactly one side must be set")
		}
	}
}

func TestPost_IsDeterministicApartFromIDsAndTime(t *testing.T) {
	svc := NewPostingService("EUR")
	sale := domain.Sale{SaleID: "s-9", CustomerName: "Zed", Total: decimal.NewFromInt(9)}

	a, err := svc.Post(sale)
	require.NoError(t, err)
	b, err := svc.Post(sale)
	require.NoError(t, err)

	assert.NotEqual(t, a.EntryID, b.EntryID)
	for i := range a.Lines {
		assert.Equal(t, a.Lines[i].AccountCode, b.Lines[i].AccountCode)
		assert.True(t, a.Lines[i].Debit.Equal(b.Lines[i].Debit))
		assert.True(t, a.Lines[i].Credit.Equal(b.Lines[i].Credit))
		assert.Equal(t, a.Lines[i].Memo, b.Lines[i].Memo)
		assert.Equal(t, a.Lines[i].Metadata, b.Lines[i].Metadata)
	}
}
