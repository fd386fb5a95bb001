package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/business_ledger/internal/apperrors"
	"github.com/SscSPs/business_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/business_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/business_ledger/internal/core/ports/services"
	"github.com/SscSPs/business_ledger/internal/core/services"
	"github.com/SscSPs/business_ledger/internal/dto"
	"github.com/SscSPs/business_ledger/internal/repositories/memory"
)

// --- Mock SalesRepository ---
type MockSalesRepository struct {
	mock.Mock
}

func (m *MockSalesRepository) ListCompletedSales(ctx context.Context, limit int) ([]domain.Sale, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Sale), args.Error(1)
}

var _ portsrepo.SalesRepository = (*MockSalesRepository)(nil)

// failingLedger fails inserts for selected transaction IDs.
type failingLedger struct {
	*memory.Store
	failFor map[string]error
}

func (f *failingLedger) SaveLedgerEntry(ctx context.Context, entry domain.LedgerEntry) error {
	if err, ok := f.failFor[entry.TransactionID]; ok {
		return err
	}
	return f.Store.SaveLedgerEntry(ctx, entry)
}

// failingLogs rejects every audit write.
type failingLogs struct{}

func (failingLogs) SaveBackfillLog(context.Context, domain.BackfillLogRecord) error {
	return errors.New("log table unavailable")
}

func (failingLogs) ListBackfillLogsByBatch(context.Context, string) ([]domain.BackfillLogRecord, error) {
	return nil, nil
}

// --- Test Suite ---
type BackfillServiceTestSuite struct {
	suite.Suite
	store   *memory.Store
	service portssvc.BackfillSvcFacade
	base    time.Time
}

func (suite *BackfillServiceTestSuite) SetupTest() {
	suite.store = memory.NewStore()
	suite.base = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	suite.service = suite.newService(memory.NewRepositoryProvider(suite.store))
}

func (suite *BackfillServiceTestSuite) newService(repos portsrepo.RepositoryProvider, opts ...services.BackfillServiceOption) portssvc.BackfillSvcFacade {
	return services.NewBackfillService(repos, services.NewPostingService("USD"), opts...)
}

func (suite *BackfillServiceTestSuite) seed() {
	paid := suite.base.Add(2 * time.Hour)
	suite.store.AddSale(domain.Sale{SaleID: "s1", CustomerName: "Ann", Total: decimal.NewFromInt(100), Status: domain.SaleStatusCompleted, UserID: "u1", Date: suite.base})
	suite.store.AddSale(domain.Sale{SaleID: "s2", CustomerName: "Ben", Total: decimal.NewFromInt(50), Status: domain.SaleStatusCompleted, UserID: "u1", Date: suite.base.Add(time.Hour)})
	suite.store.AddSale(domain.Sale{SaleID: "s3", CustomerName: "Cat", Total: decimal.NewFromInt(10), Status: "draft", UserID: "u1", Date: suite.base})
	suite.store.AddPayment(domain.Payment{PaymentID: "p1", Customer: "Ann", Amount: decimal.NewFromInt(75), Status: domain.PaymentStatusPaid, PaidDate: &paid, PaymentMethod: "cash", UserID: "u1"})
	suite.store.AddExpense(domain.ExpenseRecord{ExpenseID: "x1", Description: "Laptop", Amount: decimal.NewFromInt(40), Category: domain.FixedCapital, UserID: "u1", Date: suite.base})
}

func (suite *BackfillServiceTestSuite) assertCounters(r *domain.BackfillResult) {
	suite.Equal(r.Processed, r.Success+r.Error+r.Skipped)
	suite.Len(r.Details, r.Processed)
}

// --- Test Cases ---

func (suite *BackfillServiceTestSuite) TestRunBackfill_PostsEveryEligibleRecord() {
	ctx := context.Background()
	suite.seed()

	result, err := suite.service.RunBackfill(ctx, dto.BackfillRequest{})

	suite.Require().NoError(err)
	suite.assertCounters(result)
	suite.Equal(4, result.Processed)
	suite.Equal(4, result.Success)
	suite.Equal(4, suite.store.EntryCount())
	suite.NotEmpty(result.BatchID)
	suite.False(result.TestMode)

	// Default order is sale, payment, expense.
	suite.Equal(domain.SourceSale, result.Details[0].Type)
	suite.Equal(domain.SourcePayment, result.Details[2].Type)
	suite.Equal(domain.SourceExpense, result.Details[3].Type)

	logs, err := suite.service.ListBackfillLogs(ctx, result.BatchID)
	suite.Require().NoError(err)
	suite.Len(logs, 4)
	for _, l := range logs {
		suite.Equal(domain.BackfillSuccess, l.Status)
		suite.Equal(result.BatchID, l.BatchID)
	}
}

func (suite *BackfillServiceTestSuite) TestRunBackfill_IsIdempotent() {
	ctx := context.Background()
	suite.seed()

	first, err := suite.service.RunBackfill(ctx, dto.BackfillRequest{})
	suite.Require().NoError(err)
	suite.Equal(4, first.Success)

	second, err := suite.service.RunBackfill(ctx, dto.BackfillRequest{})
	suite.Require().NoError(err)
	suite.assertCounters(second)
	suite.Equal(0, second.Success)
	suite.Equal(4, second.Skipped)
	suite.Equal(4, suite.store.EntryCount())
	for _, d := range second.Details {
		suite.Equal(domain.MsgEntryAlreadyExists, d.Error)
	}
	suite.NotEqual(first.BatchID, second.BatchID)
}

func (suite *BackfillServiceTestSuite) TestRunBackfill_TestModeWritesNothing() {
	ctx := context.Background()
	suite.seed()

	result, err := suite.service.RunBackfill(ctx, dto.BackfillRequest{TestMode: true})
	suite.Require().NoError(err)
	suite.True(result.TestMode)
	suite.Equal(4, result.Success)
	suite.Equal(0, suite.store.EntryCount())

	// A real run afterwards still posts everything.
	result, err = suite.service.RunBackfill(ctx, dto.BackfillRequest{})
	suite.Require().NoError(err)
	suite.Equal(4, result.Success)
	suite.Equal(4, suite.store.EntryCount())
}

func (suite *BackfillServiceTestSuite) TestRunBackfill_PartialFailureContinues() {
	ctx := context.Background()
	suite.seed()
	repos := memory.NewRepositoryProvider(suite.store)
	repos.LedgerRepo = &failingLedger{Store: suite.store, failFor: map[string]error{"s2": errors.New("disk full")}}
	svc := suite.newService(repos)

	result, err := svc.RunBackfill(ctx, dto.BackfillRequest{})
	suite.Require().NoError(err)
	suite.assertCounters(result)
	suite.Equal(3, result.Success)
	suite.Equal(1, result.Error)
	suite.Equal(3, suite.store.EntryCount())

	var failed domain.BackfillDetail
	for _, d := range result.Details {
		if d.Status == domain.BackfillError {
			failed = d
		}
	}
	suite.Equal("s2", failed.ID)
	suite.Contains(failed.Error, "disk full")
}

func (suite *BackfillServiceTestSuite) TestRunBackfill_InsertConflictCountsAsSkipped() {
	ctx := context.Background()
	suite.seed()
	repos := memory.NewRepositoryProvider(suite.store)
	repos.LedgerRepo = &failingLedger{
		Store:   suite.store,
		failFor: map[string]error{"p1": fmt.Errorf("%w: concurrent insert", apperrors.ErrDuplicate)},
	}

	result, err := suite.newService(repos).RunBackfill(ctx, dto.BackfillRequest{SourceTypes: []domain.SourceType{domain.SourcePayment}})
	suite.Require().NoError(err)
	suite.Equal(1, result.Skipped)
	suite.Equal(domain.MsgEntryAlreadyExists, result.Details[0].Error)
}

func (suite *BackfillServiceTestSuite) TestRunBackfill_NegativeAmountIsAnError() {
	ctx := context.Background()
	suite.store.AddExpense(domain.ExpenseRecord{ExpenseID: "x-neg", Amount: decimal.NewFromInt(-5), Date: suite.base})
	suite.store.AddExpense(domain.ExpenseRecord{ExpenseID: "x-zero", Amount: decimal.Zero, Date: suite.base})

	result, err := suite.service.RunBackfill(ctx, dto.BackfillRequest{SourceTypes: []domain.SourceType{domain.SourceExpense}})
	suite.Require().NoError(err)
	suite.assertCounters(result)
	suite.Equal(1, result.Error)
	suite.Equal(1, result.Success)
	suite.Equal(1, suite.store.EntryCount())
	for _, d := range result.Details {
		if d.ID == "x-neg" {
			suite.Contains(d.Error, "negative")
		}
	}
}

func (suite *BackfillServiceTestSuite) TestRunBackfill_FetchFailureAbortsBatch() {
	ctx := context.Background()
	mockSales := new(MockSalesRepository)
	mockSales.On("ListCompletedSales", mock.Anything, services.DefaultBackfillBatchSize).Return(nil, assert.AnError).Once()

	repos := memory.NewRepositoryProvider(suite.store)
	repos.SalesRepo = mockSales

	result, err := suite.newService(repos).RunBackfill(ctx, dto.BackfillRequest{})
	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, assert.AnError)
	mockSales.AssertExpectations(suite.T())
}

func (suite *BackfillServiceTestSuite) TestRunBackfill_BatchSizeIsCapped() {
	ctx := context.Background()
	mockSales := new(MockSalesRepository)
	mockSales.On("ListCompletedSales", mock.Anything, 10).Return([]domain.Sale{}, nil).Once()

	repos := memory.NewRepositoryProvider(suite.store)
	repos.SalesRepo = mockSales
	svc := suite.newService(repos, services.WithBatchLimits(5, 10))

	result, err := svc.RunBackfill(ctx, dto.BackfillRequest{BatchSize: 1000, SourceTypes: []domain.SourceType{domain.SourceSale, domain.SourceSale}})
	suite.Require().NoError(err)
	suite.Equal(0, result.Processed)
	mockSales.AssertExpectations(suite.T())
}

func (suite *BackfillServiceTestSuite) TestRunBackfill_BatchSizeLimitsEachSourceType() {
	ctx := context.Background()
	suite.seed()

	result, err := suite.service.RunBackfill(ctx, dto.BackfillRequest{BatchSize: 1})
	suite.Require().NoError(err)
	suite.Equal(3, result.Processed)
	// Newest completed sale first.
	suite.Equal("s2", result.Details[0].ID)
}

func (suite *BackfillServiceTestSuite) TestRunBackfill_ValidationErrors() {
	ctx := context.Background()

	_, err := suite.service.RunBackfill(ctx, dto.BackfillRequest{BatchSize: -1})
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.RunBackfill(ctx, dto.BackfillRequest{SourceTypes: []domain.SourceType{"refund"}})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *BackfillServiceTestSuite) TestRunBackfill_LogWriteFailureIsAnError() {
	ctx := context.Background()
	suite.seed()
	repos := memory.NewRepositoryProvider(suite.store)
	repos.BackfillLogRepo = failingLogs{}

	result, err := suite.newService(repos).RunBackfill(ctx, dto.BackfillRequest{})
	suite.Require().NoError(err)
	suite.Equal(4, result.Processed)
	suite.Equal(0, result.Success)
	suite.Equal(4, result.Error)
	for _, d := range result.Details {
		suite.Equal(domain.BackfillError, d.Status)
		suite.Contains(d.Error, "log table unavailable")
	}
}

func (suite *BackfillServiceTestSuite) TestListBackfillLogs_Errors() {
	ctx := context.Background()

	_, err := suite.service.ListBackfillLogs(ctx, "")
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.ListBackfillLogs(ctx, "unknown-batch")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestBackfillServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BackfillServiceTestSuite))
}
