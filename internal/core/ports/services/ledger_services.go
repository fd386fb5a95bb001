package services

import (
	"context"

	"github.com/SscSPs/business_ledger/internal/core/domain"
	"github.com/SscSPs/business_ledger/internal/dto"
)

// LedgerReaderSvc defines read operations over posted ledger entries
type LedgerReaderSvc interface {
	// GetEntry retrieves one ledger entry by its ID.
	GetEntry(ctx context.Context, entryID string) (*domain.LedgerEntry, error)

	// ListEntries retrieves a page of ledger entries.
	ListEntries(ctx context.Context, params dto.ListLedgerEntriesParams) (*dto.ListLedgerEntriesResponse, error)
}
