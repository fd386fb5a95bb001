package accounting

import (
	"fmt"
	"sort"

	"github.com/SscSPs/business_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CurrencyPlaces is the fixed-point precision used for every ledger comparison.
const CurrencyPlaces int32 = 2

// RoundCurrency rounds an amount to CurrencyPlaces decimal places.
func RoundCurrency(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(CurrencyPlaces)
}

// AmountsEqual compares two amounts after rounding to currency precision.
func AmountsEqual(a, b decimal.Decimal) bool {
	return RoundCurrency(a).Equal(RoundCurrency(b))
}

// SumLines returns the debit and credit column totals of lines.
func SumLines(lines []domain.JournalLine) (decimal.Decimal, decimal.Decimal) {
	debits := decimal.Zero
	credits := decimal.Zero
	for _, line := range lines {
		debits = debits.Add(line.Debit)
		credits = credits.Add(line.Credit)
	}
	return debits, credits
}

// ValidateEntryBalance checks that an entry's lines are one-sided and that
// both the lines and the stored totals balance.
func ValidateEntryBalance(entry domain.LedgerEntry) error {
	if len(entry.Lines) < 2 {
		return fmt.Errorf("ledger entry must have at least two lines, got %d", len(entry.Lines))
	}

	for i, line := range entry.Lines {
		if line.Debit.IsNegative() || line.Credit.IsNegative() {
			return fmt.Errorf("line %d on account %s has a negative amount", i, line.AccountCode)
		}
		if !line.Debit.IsZero() && !line.Credit.IsZero() {
			return fmt.Errorf("line %d on account %s has both debit and credit set", i, line.AccountCode)
		}
	}

	debits, credits := SumLines(entry.Lines)
	if !AmountsEqual(debits, credits) {
		return fmt.Errorf("ledger entry lines do not balance: debits %s, credits %s", debits.String(), credits.String())
	}
	if !AmountsEqual(entry.TotalDebit, entry.TotalCredit) {
		return fmt.Errorf("ledger entry totals do not balance: debit %s, credit %s", entry.TotalDebit.String(), entry.TotalCredit.String())
	}
	return nil
}

// ComputeTrialBalance groups every line of every entry by account code and
// sums both columns. Rows are ordered by account code.
func ComputeTrialBalance(entries []domain.LedgerEntry) []domain.TrialBalanceRow {
	byCode := make(map[domain.AccountCode]*domain.TrialBalanceRow)
	for _, entry := range entries {
		for _, line := range entry.Lines {
			row, ok := byCode[line.AccountCode]
			if !ok {
				row = &domain.TrialBalanceRow{
					AccountCode: line.AccountCode,
					Debit:       decimal.Zero,
					Credit:      decimal.Zero,
				}
				if acc, known := domain.LookupAccount(line.AccountCode); known {
					row.AccountName = acc.Name
					row.AccountType = acc.AccountType
				}
				byCode[line.AccountCode] = row
			}
			row.Debit = row.Debit.Add(line.Debit)
			row.Credit = row.Credit.Add(line.Credit)
		}
	}

	rows := make([]domain.TrialBalanceRow, 0, len(byCode))
	for _, row := range byCode {
		row.Debit = RoundCurrency(row.Debit)
		row.Credit = RoundCurrency(row.Credit)
		row.Balance = row.Debit.Sub(row.Credit)
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].AccountCode < rows[j].AccountCode
	})
	return rows
}

// GrandTotals sums the debit and credit columns across all rows.
func GrandTotals(rows []domain.TrialBalanceRow) (decimal.Decimal, decimal.Decimal) {
	debits := decimal.Zero
	credits := decimal.Zero
	for _, row := range rows {
		debits = debits.Add(row.Debit)
		credits = credits.Add(row.Credit)
	}
	return RoundCurrency(debits), RoundCurrency(credits)
}

// IsBalanced reports whether grand total debits equal grand total credits.
func IsBalanced(rows []domain.TrialBalanceRow) bool {
	debits, credits := GrandTotals(rows)
	return debits.Equal(credits)
}

// UnbalancedEntries returns the entries whose stored totals disagree.
// It reads the stored totals rather than trusting how the entry was built.
func UnbalancedEntries(entries []domain.LedgerEntry) []domain.LedgerEntry {
	unbalanced := []domain.LedgerEntry{}
	for _, entry := range entries {
		if !AmountsEqual(entry.TotalDebit, entry.TotalCredit) {
			unbalanced = append(unbalanced, entry)
		}
	}
	return unbalanced
}

// StoredTotals sums the stored debit and credit totals of entries.
func StoredTotals(entries []domain.LedgerEntry) (decimal.Decimal, decimal.Decimal) {
	debits := decimal.Zero
	credits := decimal.Zero
	for _, entry := range entries {
		debits = debits.Add(entry.TotalDebit)
		credits = credits.Add(entry.TotalCredit)
	}
	return RoundCurrency(debits), RoundCurrency(credits)
}

// BuildTrialBalanceReport runs every trial balance computation over entries.
// The ledger is balanced only when the line sums, the stored totals and every
// single entry agree. Difference is the larger of the line and stored mismatches.
func BuildTrialBalanceReport(entries []domain.LedgerEntry) domain.TrialBalanceReport {
	rows := ComputeTrialBalance(entries)
	debits, credits := GrandTotals(rows)
	storedDebits, storedCredits := StoredTotals(entries)
	unbalanced := UnbalancedEntries(entries)

	difference := debits.Sub(credits).Abs()
	if storedDiff := storedDebits.Sub(storedCredits).Abs(); storedDiff.GreaterThan(difference) {
		difference = storedDiff
	}

	return domain.TrialBalanceReport{
		Rows:              rows,
		TotalDebit:        debits,
		TotalCredit:       credits,
		Difference:        difference,
		IsBalanced:        difference.IsZero() && len(unbalanced) == 0,
		UnbalancedEntries: unbalanced,
		EntryCount:        len(entries),
	}
}
