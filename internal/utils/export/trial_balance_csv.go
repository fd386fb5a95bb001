package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/SscSPs/business_ledger/internal/core/domain"
	"github.com/SscSPs/business_ledger/internal/utils/accounting"
)

var trialBalanceHeader = []string{"Account Code", "Account Name", "Total Debit", "Total Credit", "Balance"}

// WriteTrialBalanceCSV renders report as CSV: one row per account followed by
// TOTAL and DIFFERENCE rows. Amounts are fixed to currency precision.
func WriteTrialBalanceCSV(w io.Writer, report *domain.TrialBalanceReport) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(trialBalanceHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, row := range report.Rows {
		record := []string{
			string(row.AccountCode),
			row.AccountName,
			row.Debit.StringFixed(accounting.CurrencyPlaces),
			row.Credit.StringFixed(accounting.CurrencyPlaces),
			row.Balance.StringFixed(accounting.CurrencyPlaces),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row for %s: %w", row.AccountCode, err)
		}
	}

	totals := [][]string{
		{
			"TOTAL",
			"",
			report.TotalDebit.StringFixed(accounting.CurrencyPlaces),
			report.TotalCredit.StringFixed(accounting.CurrencyPlaces),
			report.TotalDebit.Sub(report.TotalCredit).StringFixed(accounting.CurrencyPlaces),
		},
		{"DIFFERENCE", "", "", "", report.Difference.StringFixed(accounting.CurrencyPlaces)},
	}
	if err := cw.WriteAll(totals); err != nil {
		return fmt.Errorf("failed to write csv totals: %w", err)
	}
	return nil
}
