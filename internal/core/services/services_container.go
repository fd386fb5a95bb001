package services

import (
	portsrepo "github.com/SscSPs/business_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/business_ledger/internal/core/ports/services"
	"github.com/SscSPs/business_ledger/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The posting engine is pure; everything else reads or writes through repos.
	container.Posting = NewPostingService(cfg.DefaultCurrency)
	container.Backfill = NewBackfillService(
		repos,
		container.Posting,
		WithBatchLimits(cfg.BackfillDefaultBatchSize, cfg.BackfillMaxBatchSize),
	)
	container.Reporting = NewReportingService(repos.LedgerRepo)
	container.Ledger = NewLedgerService(repos.LedgerRepo)

	return container
}
