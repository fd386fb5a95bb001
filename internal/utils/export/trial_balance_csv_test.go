package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/business_ledger/internal/core/domain"
)

func TestWriteTrialBalanceCSV(t *testing.T) {
	report := &domain.TrialBalanceReport{
		Rows: []domain.TrialBalanceRow{
			{
				AccountCode: domain.AccountsReceivable,
				AccountName: "Accounts Receivable, Trade",
				Debit:       decimal.NewFromInt(150),
				Credit:      decimal.NewFromInt(75),
				Balance:     decimal.NewFromInt(75),
			},
			{
				AccountCode: domain.SalesRevenue,
				AccountName: "Sales Revenue",
				Debit:       decimal.Zero,
				Credit:      decimal.RequireFromString("75.5"),
				Balance:     decimal.RequireFromString("-75.5"),
			},
		},
		TotalDebit:  decimal.NewFromInt(150),
		TotalCredit: decimal.RequireFromString("150.5"),
		Difference:  decimal.RequireFromString("0.5"),
	}

	var buf bytes.Buffer
	require.NoError(t, WriteTrialBalanceCSV(&buf, report))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 5)

	assert.Equal(t, []string{"Account Code", "Account Name", "Total Debit", "Total Credit", "Balance"}, records[0])
	assert.Equal(t, []string{"1100_accounts_receivable", "Accounts Receivable, Trade", "150.00", "75.00", "75.00"}, records[1])
	assert.Equal(t, []string{"4000_sales_revenue", "Sales Revenue", "0.00", "75.50", "-75.50"}, records[2])
	assert.Equal(t, []string{"TOTAL", "", "150.00", "150.50", "-0.50"}, records[3])
	assert.Equal(t, []string{"DIFFERENCE", "", "", "", "0.50"}, records[4])
}

func TestWriteTrialBalanceCSV_EmptyReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTrialBalanceCSV(&buf, &domain.TrialBalanceReport{}))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "0.00", records[1][2])
	assert.Equal(t, "0.00", records[2][4])
}
