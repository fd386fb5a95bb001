package dto

import (
	"time"

	"github.com/SscSPs/business_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// JournalLineResponse defines the data returned for a journal line.
type JournalLineResponse struct {
	AccountCode string            `json:"accountCode"`
	Debit       decimal.Decimal   `json:"debit"`
	Credit      decimal.Decimal   `json:"credit"`
	Currency    string            `json:"currency"`
	Memo        string            `json:"memo"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// LedgerEntryResponse defines the data returned for a ledger entry.
type LedgerEntryResponse struct {
	EntryID       string                `json:"entryID"`
	SourceType    string                `json:"sourceType"`
	SourceID      string                `json:"sourceID"`
	TransactionID string                `json:"transactionID"`
	TotalDebit    decimal.Decimal       `json:"totalDebit"`
	TotalCredit   decimal.Decimal       `json:"totalCredit"`
	Status        string                `json:"status"`
	UserID        string                `json:"userID"`
	PostedAt      time.Time             `json:"postedAt"`
	BalanceHash   string                `json:"balanceHash,omitempty"`
	Lines         []JournalLineResponse `json:"lines"`
}

// ListLedgerEntriesParams defines parameters for listing ledger entries.
type ListLedgerEntriesParams struct {
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=200"`
	NextToken string `form:"nextToken"`
}

// ListLedgerEntriesResponse wraps a page of ledger entries.
type ListLedgerEntriesResponse struct {
	Entries   []LedgerEntryResponse `json:"entries"`
	NextToken *string               `json:"nextToken,omitempty"`
}

// ToLedgerEntryResponse converts a domain.LedgerEntry to its DTO.
func ToLedgerEntryResponse(e *domain.LedgerEntry) LedgerEntryResponse {
	lines := make([]JournalLineResponse, len(e.Lines))
	for i, l := range e.Lines {
		lines[i] = JournalLineResponse{
			AccountCode: string(l.AccountCode),
			Debit:       l.Debit,
			Credit:      l.Credit,
			Currency:    l.Currency,
			Memo:        l.Memo,
			Metadata:    l.Metadata,
		}
	}
	return LedgerEntryResponse{
		EntryID:       e.EntryID,
		SourceType:    string(e.SourceType),
		SourceID:      e.SourceID,
		TransactionID: e.TransactionID,
		TotalDebit:    e.TotalDebit,
		TotalCredit:   e.TotalCredit,
		Status:        string(e.Status),
		UserID:        e.UserID,
		PostedAt:      e.PostedAt,
		BalanceHash:   e.BalanceHash,
		Lines:         lines,
	}
}

// ToLedgerEntryResponses converts a slice of domain.LedgerEntry to DTOs.
func ToLedgerEntryResponses(entries []domain.LedgerEntry) []LedgerEntryResponse {
	responses := make([]LedgerEntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToLedgerEntryResponse(&entries[i])
	}
	return responses
}
