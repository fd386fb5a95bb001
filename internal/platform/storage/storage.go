// Package storage selects and opens the repository backend named by the config.
package storage

import (
	"context"
	"fmt"
	"log/slog"

	portsrepo "github.com/SscSPs/business_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/business_ledger/internal/platform/config"
	"github.com/SscSPs/business_ledger/internal/repositories/database/pgsql"
	"github.com/SscSPs/business_ledger/internal/repositories/memory"
	"github.com/SscSPs/business_ledger/pkg/database"
)

// Open returns the repositories for cfg.StoreDriver and a func that releases them.
// The postgres driver applies pending migrations before returning.
func Open(ctx context.Context, logger *slog.Logger, cfg *config.Config) (portsrepo.RepositoryProvider, func(), error) {
	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		logger.Warn("Using in-memory store; data is lost on exit")
		return memory.NewRepositoryProvider(memory.NewStore()), func() {}, nil

	case config.StoreDriverPostgres:
		dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, fmt.Errorf("failed to initialize database pool: %w", err)
		}
		if err := database.RunMigrations(logger, cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
			database.ClosePgxPool(dbPool)
			return portsrepo.RepositoryProvider{}, nil, err
		}
		return pgsql.NewRepositoryProvider(dbPool), func() { database.ClosePgxPool(dbPool) }, nil

	default:
		return portsrepo.RepositoryProvider{}, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
