// Command ledger_backfill runs one backfill batch against the configured store
// and prints the result as JSON. With -trial-balance it also writes the trial
// balance CSV to stdout afterwards.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/SscSPs/business_ledger/internal/core/domain"
	"github.com/SscSPs/business_ledger/internal/core/services"
	"github.com/SscSPs/business_ledger/internal/dto"
	"github.com/SscSPs/business_ledger/internal/middleware"
	"github.com/SscSPs/business_ledger/internal/platform/config"
	"github.com/SscSPs/business_ledger/internal/platform/storage"
	"github.com/SscSPs/business_ledger/internal/utils/export"
)

func main() {
	batchSize := flag.Int("batch-size", 0, "records fetched per source type (0 uses the configured default)")
	testMode := flag.Bool("test-mode", false, "post entries without persisting them")
	sourceTypes := flag.String("source-types", "", "comma separated subset of sale,payment,expense")
	trialBalance := flag.Bool("trial-balance", false, "write the trial balance CSV after the run")
	flag.Parse()

	// Logs go to stderr so stdout stays machine readable.
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if err := run(logger, *batchSize, *testMode, *sourceTypes, *trialBalance); err != nil {
		logger.Error("Backfill command failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(logger *slog.Logger, batchSize int, testMode bool, rawTypes string, withTrialBalance bool) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = middleware.WithLogger(ctx, logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	repos, closeStore, err := storage.Open(ctx, logger, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	container := services.NewServiceContainer(cfg, repos)

	req := dto.BackfillRequest{
		BatchSize:   batchSize,
		TestMode:    testMode,
		SourceTypes: parseSourceTypes(rawTypes),
	}
	result, err := container.Backfill.RunBackfill(ctx, req)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(dto.ToBackfillResponse(result)); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}

	if !withTrialBalance {
		return nil
	}
	report, err := container.Reporting.TrialBalance(ctx)
	if err != nil {
		return err
	}
	return export.WriteTrialBalanceCSV(os.Stdout, report)
}

func parseSourceTypes(raw string) []domain.SourceType {
	var out []domain.SourceType
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, domain.SourceType(strings.ToLower(p)))
		}
	}
	return out
}
