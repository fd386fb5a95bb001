package services

import (
	"context"

	"github.com/SscSPs/business_ledger/internal/core/domain"
)

// ReportingService defines operations for generating financial reports
type ReportingService interface {
	// TrialBalance sums every posted line per account and checks the ledger balances.
	TrialBalance(ctx context.Context) (*domain.TrialBalanceReport, error)
}
