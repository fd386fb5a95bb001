package mapping

import (
	"database/sql"

	"github.com/SscSPs/business_ledger/internal/core/domain"
	"github.com/SscSPs/business_ledger/internal/models"
)

// ToModelLedgerEntry converts a domain LedgerEntry to a model LedgerEntry
func ToModelLedgerEntry(d domain.LedgerEntry) models.LedgerEntry {
	return models.LedgerEntry{
		EntryID:       d.EntryID,
		SourceType:    string(d.SourceType),
		SourceID:      d.SourceID,
		TransactionID: d.TransactionID,
		TotalDebit:    d.TotalDebit,
		TotalCredit:   d.TotalCredit,
		Status:        string(d.Status),
		UserID:        d.UserID,
		PostedAt:      d.PostedAt,
		BalanceHash:   sql.NullString{String: d.BalanceHash, Valid: d.BalanceHash != ""},
	}
}

// ToDomainLedgerEntry converts a model LedgerEntry and its lines to a domain LedgerEntry
func ToDomainLedgerEntry(m models.LedgerEntry, lines []models.JournalLine) domain.LedgerEntry {
	entry := domain.LedgerEntry{
		EntryID:       m.EntryID,
		SourceType:    domain.SourceType(m.SourceType),
		SourceID:      m.SourceID,
		TransactionID: m.TransactionID,
		TotalDebit:    m.TotalDebit,
		TotalCredit:   m.TotalCredit,
		Status:        domain.EntryStatus(m.Status),
		UserID:        m.UserID,
		PostedAt:      m.PostedAt,
		BalanceHash:   m.BalanceHash.String,
		Lines:         make([]domain.JournalLine, len(lines)),
	}
	for i, l := range lines {
		entry.Lines[i] = ToDomainJournalLine(l)
	}
	return entry
}

// ToModelJournalLines converts the lines of an entry to model rows, numbering them in order.
func ToModelJournalLines(d domain.LedgerEntry) []models.JournalLine {
	lines := make([]models.JournalLine, len(d.Lines))
	for i, l := range d.Lines {
		lines[i] = models.JournalLine{
			LineID:      l.LineID,
			EntryID:     d.EntryID,
			LineNo:      i + 1,
			AccountCode: string(l.AccountCode),
			Debit:       l.Debit,
			Credit:      l.Credit,
			Currency:    l.Currency,
			Memo:        l.Memo,
			Metadata:    l.Metadata,
		}
	}
	return lines
}

// ToDomainJournalLine converts a model JournalLine to a domain JournalLine
func ToDomainJournalLine(m models.JournalLine) domain.JournalLine {
	return domain.JournalLine{
		LineID:      m.LineID,
		AccountCode: domain.AccountCode(m.AccountCode),
		Debit:       m.Debit,
		Credit:      m.Credit,
		Currency:    m.Currency,
		Memo:        m.Memo,
		Metadata:    m.Metadata,
	}
}

// ToModelBackfillLog converts a domain BackfillLogRecord to a model BackfillLog
func ToModelBackfillLog(d domain.BackfillLogRecord) models.BackfillLog {
	return models.BackfillLog{
		LogID:        d.LogID,
		BatchID:      d.BatchID,
		SourceType:   string(d.SourceType),
		SourceID:     d.SourceID,
		Status:       string(d.Status),
		ErrorMessage: sql.NullString{String: d.ErrorMessage, Valid: d.ErrorMessage != ""},
		CreatedAt:    d.CreatedAt,
	}
}

// ToDomainBackfillLog converts a model BackfillLog to a domain BackfillLogRecord
func ToDomainBackfillLog(m models.BackfillLog) domain.BackfillLogRecord {
	return domain.BackfillLogRecord{
		LogID:        m.LogID,
		BatchID:      m.BatchID,
		SourceType:   domain.SourceType(m.SourceType),
		SourceID:     m.SourceID,
		Status:       domain.BackfillStatus(m.Status),
		ErrorMessage: m.ErrorMessage.String,
		CreatedAt:    m.CreatedAt,
	}
}
