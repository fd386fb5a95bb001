package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryStatus indicates the state of a ledger entry.
type EntryStatus string

const (
	Posted EntryStatus = "posted"
)

// JournalLine is a single debit-or-credit posting to one account within an entry.
// Exactly one of Debit and Credit is non-zero.
type JournalLine struct {
	LineID      string            `json:"lineID"`
	AccountCode AccountCode       `json:"accountCode"`
	Debit       decimal.Decimal   `json:"debit"`
	Credit      decimal.Decimal   `json:"credit"`
	Currency    string            `json:"currency"`
	Memo        string            `json:"memo"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// IsDebit reports whether the line posts to the debit side.
func (l JournalLine) IsDebit() bool {
	return !l.Debit.IsZero()
}

// LedgerEntry is one balanced accounting transaction derived from a business event.
// (TransactionID, SourceType) is the idempotency key.
type LedgerEntry struct {
	EntryID       string          `json:"entryID"`
	SourceType    SourceType      `json:"sourceType"`
	SourceID      string          `json:"sourceID"`
	TransactionID string          `json:"transactionID"`
	Lines         []JournalLine   `json:"lines"`
	TotalDebit    decimal.Decimal `json:"totalDebit"`
	TotalCredit   decimal.Decimal `json:"totalCredit"`
	Status        EntryStatus     `json:"status"`
	UserID        string          `json:"userID"`
	PostedAt      time.Time       `json:"postedAt"`
	BalanceHash   string          `json:"balanceHash,omitempty"` // filled by the store
}
