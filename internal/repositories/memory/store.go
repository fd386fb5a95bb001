// Package memory is a mutex-guarded in-process implementation of every
// repository port. It backs the "memory" store driver and the service tests.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/SscSPs/business_ledger/internal/apperrors"
	"github.com/SscSPs/business_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/business_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/business_ledger/internal/utils/pagination"
)

type sourceKey struct {
	transactionID string
	sourceType    domain.SourceType
}

// Store holds source records, ledger entries and backfill logs.
type Store struct {
	mu sync.RWMutex

	sales    []domain.Sale
	payments []domain.Payment
	expenses []domain.ExpenseRecord

	entries  []domain.LedgerEntry
	byID     map[string]int
	bySource map[sourceKey]int

	logs []domain.BackfillLogRecord
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		byID:     make(map[string]int),
		bySource: make(map[sourceKey]int),
	}
}

var (
	_ portsrepo.SalesRepository        = (*Store)(nil)
	_ portsrepo.PaymentRepository      = (*Store)(nil)
	_ portsrepo.ExpenseRepository      = (*Store)(nil)
	_ portsrepo.LedgerRepositoryFacade = (*Store)(nil)
	_ portsrepo.BackfillLogRepository  = (*Store)(nil)
)

// NewRepositoryProvider wires one store into every repository slot.
func NewRepositoryProvider(store *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		SalesRepo:       store,
		PaymentRepo:     store,
		ExpenseRepo:     store,
		LedgerRepo:      store,
		BackfillLogRepo: store,
	}
}

// AddSale seeds a sale.
func (s *Store) AddSale(sale domain.Sale) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sales = append(s.sales, sale)
}

// AddPayment seeds a payment installment.
func (s *Store) AddPayment(payment domain.Payment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payments = append(s.payments, payment)
}

// AddExpense seeds an expenditure.
func (s *Store) AddExpense(expense domain.ExpenseRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expenses = append(s.expenses, expense)
}

// EntryCount returns the number of stored ledger entries.
func (s *Store) EntryCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// ListCompletedSales returns completed sales, newest sale date first.
func (s *Store) ListCompletedSales(_ context.Context, limit int) ([]domain.Sale, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []domain.Sale{}
	for _, sale := range s.sales {
		if sale.Status == domain.SaleStatusCompleted {
			out = append(out, sale)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return truncate(out, limit), nil
}

// ListPaidPayments returns paid installments with a paid date, newest first.
func (s *Store) ListPaidPayments(_ context.Context, limit int) ([]domain.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []domain.Payment{}
	for _, p := range s.payments {
		if p.Status == domain.PaymentStatusPaid && p.PaidDate != nil {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].PaidDate.After(*out[j].PaidDate) })
	return truncate(out, limit), nil
}

// ListExpenses returns every expenditure, newest first.
func (s *Store) ListExpenses(_ context.Context, limit int) ([]domain.ExpenseRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := append([]domain.ExpenseRecord{}, s.expenses...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return truncate(out, limit), nil
}

// SaveLedgerEntry stores a copy of entry. The (transaction ID, source type)
// pair is unique.
func (s *Store) SaveLedgerEntry(_ context.Context, entry domain.LedgerEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := sourceKey{transactionID: entry.TransactionID, sourceType: entry.SourceType}
	if _, ok := s.bySource[key]; ok {
		return fmt.Errorf("%w: ledger entry for %s %s", apperrors.ErrDuplicate, entry.SourceType, entry.TransactionID)
	}
	if _, ok := s.byID[entry.EntryID]; ok {
		return fmt.Errorf("%w: ledger entry %s", apperrors.ErrDuplicate, entry.EntryID)
	}

	s.entries = append(s.entries, copyEntry(entry))
	idx := len(s.entries) - 1
	s.byID[entry.EntryID] = idx
	s.bySource[key] = idx
	return nil
}

// ExistsBySource checks the idempotency key of an entry.
func (s *Store) ExistsBySource(_ context.Context, transactionID string, sourceType domain.SourceType) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.bySource[sourceKey{transactionID: transactionID, sourceType: sourceType}]
	return ok, nil
}

// FindLedgerEntryByID returns a copy of one entry.
func (s *Store) FindLedgerEntryByID(_ context.Context, entryID string) (*domain.LedgerEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx, ok := s.byID[entryID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	entry := copyEntry(s.entries[idx])
	return &entry, nil
}

// ListAllLedgerEntries returns copies of every entry in insertion order.
func (s *Store) ListAllLedgerEntries(_ context.Context) ([]domain.LedgerEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.LedgerEntry, len(s.entries))
	for i, e := range s.entries {
		out[i] = copyEntry(e)
	}
	return out, nil
}

// ListLedgerEntries returns a page ordered by PostedAt DESC, EntryID DESC.
func (s *Store) ListLedgerEntries(_ context.Context, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error) {
	if limit <= 0 {
		limit = 20
	}

	s.mu.RLock()
	sorted := make([]domain.LedgerEntry, len(s.entries))
	copy(sorted, s.entries)
	s.mu.RUnlock()

	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].PostedAt.Equal(sorted[j].PostedAt) {
			return sorted[i].EntryID > sorted[j].EntryID
		}
		return sorted[i].PostedAt.After(sorted[j].PostedAt)
	})

	if nextToken != nil && *nextToken != "" {
		cursorAt, cursorID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", fmt.Errorf("%w: %v", apperrors.ErrValidation, err))
		}
		start := len(sorted)
		for i, e := range sorted {
			if pagination.IsAfter(e.PostedAt, e.EntryID, cursorAt, cursorID) {
				start = i
				break
			}
		}
		sorted = sorted[start:]
	}

	var next *string
	if len(sorted) > limit {
		sorted = sorted[:limit]
		last := sorted[limit-1]
		token := pagination.EncodeToken(last.PostedAt, last.EntryID)
		next = &token
	}

	page := make([]domain.LedgerEntry, len(sorted))
	for i, e := range sorted {
		page[i] = copyEntry(e)
	}
	return page, next, nil
}

// SaveBackfillLog appends one audit record.
func (s *Store) SaveBackfillLog(_ context.Context, record domain.BackfillLogRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logs = append(s.logs, record)
	return nil
}

// ListBackfillLogsByBatch returns the records of one batch in insertion order.
func (s *Store) ListBackfillLogsByBatch(_ context.Context, batchID string) ([]domain.BackfillLogRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.BackfillLogRecord{}
	for _, r := range s.logs {
		if r.BatchID == batchID {
			out = append(out, r)
		}
	}
	return out, nil
}

func truncate[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}

// copyEntry detaches the lines and metadata maps from the caller's copy.
func copyEntry(e domain.LedgerEntry) domain.LedgerEntry {
	lines := make([]domain.JournalLine, len(e.Lines))
	for i, l := range e.Lines {
		if l.Metadata != nil {
			md := make(map[string]string, len(l.Metadata))
			for k, v := range l.Metadata {
				md[k] = v
			}
			l.Metadata = md
		}
		lines[i] = l
	}
	e.Lines = lines
	return e
}
