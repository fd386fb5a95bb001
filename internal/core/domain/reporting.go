package domain

import (
	"github.com/shopspring/decimal"
)

// TrialBalanceRow sums every journal line posted to one account code.
// Balance is Debit minus Credit.
type TrialBalanceRow struct {
	AccountCode AccountCode     `json:"accountCode"`
	AccountName string          `json:"accountName"`
	AccountType AccountType     `json:"accountType"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Balance     decimal.Decimal `json:"balance"`
}

// TrialBalanceReport is the full trial balance over all posted entries.
type TrialBalanceReport struct {
	Rows              []TrialBalanceRow `json:"rows"`
	TotalDebit        decimal.Decimal   `json:"totalDebit"`
	TotalCredit       decimal.Decimal   `json:"totalCredit"`
	Difference        decimal.Decimal   `json:"difference"`
	IsBalanced        bool              `json:"isBalanced"`
	UnbalancedEntries []LedgerEntry     `json:"unbalancedEntries"`
	EntryCount        int               `json:"entryCount"`
}
