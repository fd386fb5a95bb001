package dto

import (
	"github.com/SscSPs/business_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TrialBalanceRowResponse represents a row in the trial balance report response
type TrialBalanceRowResponse struct {
	AccountCode   string          `json:"accountCode"`
	AccountName   string          `json:"accountName"`
	AccountType   string          `json:"accountType"`
	NormalBalance string          `json:"normalBalance,omitempty"`
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
	Balance       decimal.Decimal `json:"balance"`
}

// TrialBalanceTotals holds the grand totals of a trial balance.
type TrialBalanceTotals struct {
	Debit      decimal.Decimal `json:"debit"`
	Credit     decimal.Decimal `json:"credit"`
	Difference decimal.Decimal `json:"difference"`
}

// TrialBalanceResponse represents the trial balance report response
type TrialBalanceResponse struct {
	TrialBalance      []TrialBalanceRowResponse `json:"trialBalance"`
	Totals            TrialBalanceTotals        `json:"totals"`
	IsBalanced        bool                      `json:"isBalanced"`
	UnbalancedEntries []LedgerEntryResponse     `json:"unbalancedEntries"`
	EntryCount        int                       `json:"entryCount"`
}

// ToTrialBalanceResponse converts a domain trial balance report to a DTO response
func ToTrialBalanceResponse(report *domain.TrialBalanceReport) TrialBalanceResponse {
	response := TrialBalanceResponse{
		TrialBalance:      make([]TrialBalanceRowResponse, len(report.Rows)),
		IsBalanced:        report.IsBalanced,
		UnbalancedEntries: ToLedgerEntryResponses(report.UnbalancedEntries),
		EntryCount:        report.EntryCount,
	}

	for i, row := range report.Rows {
		r := TrialBalanceRowResponse{
			AccountCode: string(row.AccountCode),
			AccountName: row.AccountName,
			AccountType: string(row.AccountType),
			Debit:       row.Debit,
			Credit:      row.Credit,
			Balance:     row.Balance,
		}
		if acc, ok := domain.LookupAccount(row.AccountCode); ok {
			if acc.IsDebitNormal() {
				r.NormalBalance = "debit"
			} else {
				r.NormalBalance = "credit"
			}
		}
		response.TrialBalance[i] = r
	}

	response.Totals = TrialBalanceTotals{
		Debit:      report.TotalDebit,
		Credit:     report.TotalCredit,
		Difference: report.Difference,
	}

	return response
}
