package services

import (
	"github.com/SscSPs/business_ledger/internal/core/domain"
)

// PostingService turns business events into balanced ledger entries.
type PostingService interface {
	// Post builds the two-line entry for event without persisting it.
	// Returns apperrors.ErrUnsupportedSourceType for a kind with no posting rule.
	Post(event domain.BusinessEvent) (domain.LedgerEntry, error)
}
