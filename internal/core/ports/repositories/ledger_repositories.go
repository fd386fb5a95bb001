package repositories

import (
	"context"

	"github.com/SscSPs/business_ledger/internal/core/domain"
)

// LedgerReader defines read operations for ledger entries
type LedgerReader interface {
	// ExistsBySource reports whether an entry with the idempotency key (transactionID, sourceType) exists.
	ExistsBySource(ctx context.Context, transactionID string, sourceType domain.SourceType) (bool, error)

	// FindLedgerEntryByID retrieves one entry with its lines. Returns apperrors.ErrNotFound when missing.
	FindLedgerEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error)

	// ListAllLedgerEntries scans every posted entry with its lines.
	ListAllLedgerEntries(ctx context.Context) ([]domain.LedgerEntry, error)

	// ListLedgerEntries returns a page of entries ordered by posted_at DESC and a token for the next page.
	ListLedgerEntries(ctx context.Context, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error)
}

// LedgerWriter defines write operations for ledger entries
type LedgerWriter interface {
	// SaveLedgerEntry persists an entry and its lines atomically.
	// Returns apperrors.ErrDuplicate when the idempotency key is already taken.
	SaveLedgerEntry(ctx context.Context, entry domain.LedgerEntry) error
}

// LedgerRepositoryFacade combines all ledger-related repository interfaces
type LedgerRepositoryFacade interface {
	LedgerReader
	LedgerWriter
}

// BackfillLogRepository is the append-only audit store of backfill runs.
type BackfillLogRepository interface {
	// SaveBackfillLog appends one record.
	SaveBackfillLog(ctx context.Context, record domain.BackfillLogRecord) error

	// ListBackfillLogsByBatch returns the records of one batch in insertion order.
	ListBackfillLogsByBatch(ctx context.Context, batchID string) ([]domain.BackfillLogRecord, error)
}
