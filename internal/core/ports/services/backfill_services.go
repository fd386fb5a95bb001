package services

import (
	"context"

	"github.com/SscSPs/business_ledger/internal/core/domain"
	"github.com/SscSPs/business_ledger/internal/dto"
)

// BackfillRunnerSvc drives catch-up posting of historical business records.
type BackfillRunnerSvc interface {
	// RunBackfill posts every unposted record of the requested source types.
	// Per-record failures are reported in the result; an error is returned only
	// when fetching candidate records fails.
	RunBackfill(ctx context.Context, req dto.BackfillRequest) (*domain.BackfillResult, error)
}

// BackfillLogReaderSvc exposes the audit trail of backfill runs.
type BackfillLogReaderSvc interface {
	// ListBackfillLogs returns the log records written by one batch.
	ListBackfillLogs(ctx context.Context, batchID string) ([]domain.BackfillLogRecord, error)
}

// BackfillSvcFacade combines all backfill-related service interfaces
type BackfillSvcFacade interface {
	BackfillRunnerSvc
	BackfillLogReaderSvc
}
