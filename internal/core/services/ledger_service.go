package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/business_ledger/internal/apperrors"
	"github.com/SscSPs/business_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/business_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/business_ledger/internal/core/ports/services"
	"github.com/SscSPs/business_ledger/internal/dto"
)

const defaultLedgerPageSize = 20

// ledgerService provides read access to posted ledger entries.
type ledgerService struct {
	BaseService
	ledgerRepo portsrepo.LedgerReader
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(ledgerRepo portsrepo.LedgerReader) portssvc.LedgerReaderSvc {
	return &ledgerService{ledgerRepo: ledgerRepo}
}

var _ portssvc.LedgerReaderSvc = (*ledgerService)(nil)

// GetEntry retrieves one ledger entry by its ID.
func (s *ledgerService) GetEntry(ctx context.Context, entryID string) (*domain.LedgerEntry, error) {
	if entryID == "" {
		return nil, fmt.Errorf("%w: entry ID is required", apperrors.ErrValidation)
	}
	entry, err := s.ledgerRepo.FindLedgerEntryByID(ctx, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find ledger entry", slog.String("entry_id", entryID))
		}
		return nil, err
	}
	return entry, nil
}

// ListEntries retrieves a page of ledger entries, newest first.
func (s *ledgerService) ListEntries(ctx context.Context, params dto.ListLedgerEntriesParams) (*dto.ListLedgerEntriesResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultLedgerPageSize
	}
	var token *string
	if params.NextToken != "" {
		token = &params.NextToken
	}

	entries, nextToken, err := s.ledgerRepo.ListLedgerEntries(ctx, limit, token)
	if err != nil {
		if !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to list ledger entries", slog.Int("limit", limit))
		}
		return nil, err
	}

	return &dto.ListLedgerEntriesResponse{
		Entries:   dto.ToLedgerEntryResponses(entries),
		NextToken: nextToken,
	}, nil
}
