package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/business_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/business_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/business_ledger/internal/core/ports/services"
	"github.com/SscSPs/business_ledger/internal/utils/accounting"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	ledgerRepo portsrepo.LedgerReader
}

// NewReportingService creates a new reporting service
func NewReportingService(ledgerRepo portsrepo.LedgerReader) portssvc.ReportingService {
	return &reportingService{ledgerRepo: ledgerRepo}
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// TrialBalance reads every posted entry and aggregates it. It holds no state
// between calls, so unchanged data always yields the same report.
func (s *reportingService) TrialBalance(ctx context.Context) (*domain.TrialBalanceReport, error) {
	entries, err := s.ledgerRepo.ListAllLedgerEntries(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve ledger entries for trial balance")
		return nil, fmt.Errorf("failed to retrieve ledger entries: %w", err)
	}

	report := accounting.BuildTrialBalanceReport(entries)

	if !report.IsBalanced {
		s.LogWarn(ctx, "Trial balance does not balance",
			slog.String("total_debit", report.TotalDebit.StringFixed(accounting.CurrencyPlaces)),
			slog.String("total_credit", report.TotalCredit.StringFixed(accounting.CurrencyPlaces)),
			slog.String("difference", report.Difference.StringFixed(accounting.CurrencyPlaces)),
			slog.Int("unbalanced_entries", len(report.UnbalancedEntries)))
	}

	s.LogInfo(ctx, "Trial balance report generated successfully",
		slog.Int("entry_count", report.EntryCount),
		slog.Int("row_count", len(report.Rows)))
	return &report, nil
}
