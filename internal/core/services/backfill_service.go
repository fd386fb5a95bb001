package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/SscSPs/business_ledger/internal/apperrors"
	"github.com/SscSPs/business_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/business_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/business_ledger/internal/core/ports/services"
	"github.com/SscSPs/business_ledger/internal/dto"
	"github.com/SscSPs/business_ledger/internal/utils/accounting"
)

const (
	DefaultBackfillBatchSize = 50
	MaxBackfillBatchSize     = 500
)

// backfillService drives catch-up posting of business records into the ledger.
// Records are processed one at a time; a failing record never aborts the batch.
type backfillService struct {
	BaseService
	salesRepo    portsrepo.SalesRepository
	paymentRepo  portsrepo.PaymentRepository
	expenseRepo  portsrepo.ExpenseRepository
	ledgerRepo   portsrepo.LedgerRepositoryFacade
	logRepo      portsrepo.BackfillLogRepository
	postingSvc   portssvc.PostingService
	defaultBatch int
	maxBatch     int
	now          func() time.Time
}

// BackfillServiceOption is a functional option for configuring the backfill service
type BackfillServiceOption func(*backfillService)

// WithBatchLimits sets the default and maximum batch sizes.
func WithBatchLimits(defaultSize, maxSize int) BackfillServiceOption {
	return func(s *backfillService) {
		if defaultSize > 0 {
			s.defaultBatch = defaultSize
		}
		if maxSize > 0 {
			s.maxBatch = maxSize
		}
	}
}

// WithBackfillClock overrides the time source used for log timestamps.
func WithBackfillClock(now func() time.Time) BackfillServiceOption {
	return func(s *backfillService) {
		s.now = now
	}
}

// NewBackfillService creates a new backfill orchestrator.
func NewBackfillService(repos portsrepo.RepositoryProvider, postingSvc portssvc.PostingService, options ...BackfillServiceOption) portssvc.BackfillSvcFacade {
	svc := &backfillService{
		salesRepo:    repos.SalesRepo,
		paymentRepo:  repos.PaymentRepo,
		expenseRepo:  repos.ExpenseRepo,
		ledgerRepo:   repos.LedgerRepo,
		logRepo:      repos.BackfillLogRepo,
		postingSvc:   postingSvc,
		defaultBatch: DefaultBackfillBatchSize,
		maxBatch:     MaxBackfillBatchSize,
		now:          func() time.Time { return time.Now().UTC() },
	}
	for _, option := range options {
		option(svc)
	}
	if svc.defaultBatch > svc.maxBatch {
		svc.defaultBatch = svc.maxBatch
	}
	return svc
}

var _ portssvc.BackfillSvcFacade = (*backfillService)(nil)

// normalizeRequest applies defaults, caps the batch size and de-duplicates source types.
func (s *backfillService) normalizeRequest(req dto.BackfillRequest) (int, []domain.SourceType, error) {
	batchSize := req.BatchSize
	if batchSize < 0 {
		return 0, nil, fmt.Errorf("%w: batch_size must be positive", apperrors.ErrValidation)
	}
	if batchSize == 0 {
		batchSize = s.defaultBatch
	}
	if batchSize > s.maxBatch {
		batchSize = s.maxBatch
	}

	if len(req.SourceTypes) == 0 {
		return batchSize, domain.AllSourceTypes, nil
	}

	seen := make(map[domain.SourceType]bool, len(req.SourceTypes))
	sourceTypes := make([]domain.SourceType, 0, len(req.SourceTypes))
	for _, st := range req.SourceTypes {
		if !st.IsValid() {
			return 0, nil, fmt.Errorf("%w: unknown source type %q", apperrors.ErrValidation, st)
		}
		if seen[st] {
			continue
		}
		seen[st] = true
		sourceTypes = append(sourceTypes, st)
	}
	return batchSize, sourceTypes, nil
}

// RunBackfill posts every fetched record of the requested source types that
// has no ledger entry yet.
func (s *backfillService) RunBackfill(ctx context.Context, req dto.BackfillRequest) (*domain.BackfillResult, error) {
	batchSize, sourceTypes, err := s.normalizeRequest(req)
	if err != nil {
		return nil, err
	}

	result := &domain.BackfillResult{
		BatchID:   uuid.NewString(),
		TestMode:  req.TestMode,
		Details:   []domain.BackfillDetail{},
		StartedAt: s.now(),
	}
	logger := s.GetLogger(ctx).With(
		slog.String("batch_id", result.BatchID),
		slog.Bool("test_mode", req.TestMode),
	)
	logger.Info("Starting ledger backfill",
		slog.Int("batch_size", batchSize),
		slog.Any("source_types", sourceTypes))

	for _, sourceType := range sourceTypes {
		events, err := s.fetchEvents(ctx, sourceType, batchSize)
		if err != nil {
			logger.Error("Failed to fetch backfill candidates",
				slog.String("source_type", string(sourceType)),
				slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to fetch %s records: %w", sourceType, err)
		}

		logger.Debug("Fetched backfill candidates",
			slog.String("source_type", string(sourceType)),
			slog.Int("count", len(events)))

		for _, event := range events {
			detail := s.processEvent(ctx, event, req.TestMode)
			if err := s.writeLog(ctx, logger, result.BatchID, detail); err != nil {
				detail.Status = domain.BackfillError
				detail.Error = "failed to write backfill log: " + err.Error()
			}
			result.Record(detail)
		}
	}

	result.FinishedAt = s.now()
	logger.Info("Ledger backfill finished",
		slog.Int("processed", result.Processed),
		slog.Int("success", result.Success),
		slog.Int("error", result.Error),
		slog.Int("skipped", result.Skipped))
	return result, nil
}

func (s *backfillService) fetchEvents(ctx context.Context, sourceType domain.SourceType, limit int) ([]domain.BusinessEvent, error) {
	switch sourceType {
	case domain.SourceSale:
		sales, err := s.salesRepo.ListCompletedSales(ctx, limit)
		if err != nil {
			return nil, err
		}
		events := make([]domain.BusinessEvent, len(sales))
		for i, sale := range sales {
			events[i] = sale
		}
		return events, nil
	case domain.SourcePayment:
		payments, err := s.paymentRepo.ListPaidPayments(ctx, limit)
		if err != nil {
			return nil, err
		}
		events := make([]domain.BusinessEvent, len(payments))
		for i, payment := range payments {
			events[i] = payment
		}
		return events, nil
	case domain.SourceExpense:
		expenses, err := s.expenseRepo.ListExpenses(ctx, limit)
		if err != nil {
			return nil, err
		}
		events := make([]domain.BusinessEvent, len(expenses))
		for i, expense := range expenses {
			events[i] = expense
		}
		return events, nil
	default:
		return nil, fmt.Errorf("%w: %q", apperrors.ErrUnsupportedSourceType, sourceType)
	}
}

// processEvent runs check, post and persist for a single record and reports its outcome.
func (s *backfillService) processEvent(ctx context.Context, event domain.BusinessEvent, testMode bool) domain.BackfillDetail {
	detail := domain.BackfillDetail{Type: event.SourceType(), ID: event.SourceID()}
	fail := func(msg string) domain.BackfillDetail {
		detail.Status = domain.BackfillError
		detail.Error = msg
		return detail
	}

	exists, err := s.ledgerRepo.ExistsBySource(ctx, event.SourceID(), event.SourceType())
	if err != nil {
		return fail("failed to check existing entry: " + err.Error())
	}
	if exists {
		detail.Status = domain.BackfillSkipped
		detail.Error = domain.MsgEntryAlreadyExists
		return detail
	}

	if event.EventAmount().IsNegative() {
		return fail(fmt.Sprintf("%s: amount must not be negative, got %s", apperrors.ErrValidation, event.EventAmount().String()))
	}

	entry, err := s.postingSvc.Post(event)
	if err != nil {
		return fail(err.Error())
	}
	if err := accounting.ValidateEntryBalance(entry); err != nil {
		return fail(err.Error())
	}

	if testMode {
		detail.Status = domain.BackfillSuccess
		return detail
	}

	if err := s.ledgerRepo.SaveLedgerEntry(ctx, entry); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			// A concurrent run won the unique constraint.
			detail.Status = domain.BackfillSkipped
			detail.Error = domain.MsgEntryAlreadyExists
			return detail
		}
		return fail(err.Error())
	}

	detail.Status = domain.BackfillSuccess
	return detail
}

// writeLog appends the audit record of one outcome.
func (s *backfillService) writeLog(ctx context.Context, logger *slog.Logger, batchID string, detail domain.BackfillDetail) error {
	recordLogger := logger.With(
		slog.String("source_type", string(detail.Type)),
		slog.String("source_id", detail.ID))
	if detail.Status == domain.BackfillError {
		recordLogger.Error("Backfill record failed", slog.String("error", detail.Error))
	} else {
		recordLogger.Debug("Backfill record processed", slog.String("status", string(detail.Status)))
	}

	record := domain.BackfillLogRecord{
		LogID:        uuid.NewString(),
		BatchID:      batchID,
		SourceType:   detail.Type,
		SourceID:     detail.ID,
		Status:       detail.Status,
		ErrorMessage: detail.Error,
		CreatedAt:    s.now(),
	}
	if err := s.logRepo.SaveBackfillLog(ctx, record); err != nil {
		recordLogger.Error("Failed to write backfill log", slog.String("error", err.Error()))
		return err
	}
	return nil
}

// ListBackfillLogs returns the log records written by one batch.
func (s *backfillService) ListBackfillLogs(ctx context.Context, batchID string) ([]domain.BackfillLogRecord, error) {
	if batchID == "" {
		return nil, fmt.Errorf("%w: batch ID is required", apperrors.ErrValidation)
	}
	records, err := s.logRepo.ListBackfillLogsByBatch(ctx, batchID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list backfill logs", slog.String("batch_id", batchID))
		return nil, fmt.Errorf("failed to list backfill logs: %w", err)
	}
	if len(records) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return records, nil
}
