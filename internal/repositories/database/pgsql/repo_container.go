package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/SscSPs/business_ledger/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	sourceRepo := newPgxSourceRepository(dbPool)
	ledgerRepo := newPgxLedgerRepository(dbPool)
	backfillLogRepo := newPgxBackfillLogRepository(dbPool)

	return portsrepo.RepositoryProvider{
		SalesRepo:       sourceRepo,
		PaymentRepo:     sourceRepo,
		ExpenseRepo:     sourceRepo,
		LedgerRepo:      ledgerRepo,
		BackfillLogRepo: backfillLogRepo,
	}
}
