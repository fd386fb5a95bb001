package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry is the row shape of ledger_entries.
type LedgerEntry struct {
	EntryID       string          `db:"id"`
	SourceType    string          `db:"source_type"`
	SourceID      string          `db:"source_id"`
	TransactionID string          `db:"transaction_id"`
	TotalDebit    decimal.Decimal `db:"total_debit"`
	TotalCredit   decimal.Decimal `db:"total_credit"`
	Status        string          `db:"status"`
	UserID        string          `db:"user_id"`
	PostedAt      time.Time       `db:"posted_at"`
	BalanceHash   sql.NullString  `db:"balance_hash"`
}

// JournalLine is the row shape of ledger_lines.
type JournalLine struct {
	LineID      string            `db:"id"`
	EntryID     string            `db:"entry_id"`
	LineNo      int               `db:"line_no"`
	AccountCode string            `db:"account_code"`
	Debit       decimal.Decimal   `db:"debit"`
	Credit      decimal.Decimal   `db:"credit"`
	Currency    string            `db:"currency"`
	Memo        string            `db:"memo"`
	Metadata    map[string]string `db:"metadata"` // jsonb
}

// BackfillLog is the row shape of backfill_logs.
type BackfillLog struct {
	LogID        string         `db:"id"`
	BatchID      string         `db:"batch_id"`
	SourceType   string         `db:"source_type"`
	SourceID     string         `db:"source_id"`
	Status       string         `db:"status"`
	ErrorMessage sql.NullString `db:"error_message"`
	CreatedAt    time.Time      `db:"created_at"`
}
