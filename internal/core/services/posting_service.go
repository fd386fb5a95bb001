package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/business_ledger/internal/apperrors"
	"github.com/SscSPs/business_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/business_ledger/internal/core/ports/services"
)

// postingPlan is what a rule decides for one event: the two accounts, the
// memo shared by both lines and the source reference carried as metadata.
type postingPlan struct {
	debit    domain.AccountCode
	credit   domain.AccountCode
	memo     string
	metadata map[string]string
}

type postingRule func(event domain.BusinessEvent) (postingPlan, error)

// postingRules is the chart-of-accounts mapping per source type.
var postingRules = map[domain.SourceType]postingRule{
	domain.SourceSale: func(event domain.BusinessEvent) (postingPlan, error) {
		sale, ok := event.(domain.Sale)
		if !ok {
			return postingPlan{}, fmt.Errorf("sale rule received %T", event)
		}
		return postingPlan{
			debit:    domain.AccountsReceivable,
			credit:   domain.SalesRevenue,
			memo:     "Sale to " + sale.CustomerName,
			metadata: map[string]string{"sale_id": sale.SaleID},
		}, nil
	},
	domain.SourcePayment: func(event domain.BusinessEvent) (postingPlan, error) {
		payment, ok := event.(domain.Payment)
		if !ok {
			return postingPlan{}, fmt.Errorf("payment rule received %T", event)
		}
		return postingPlan{
			debit:  domain.CashBank,
			credit: domain.AccountsReceivable,
			memo:   fmt.Sprintf("Payment from %s via %s", payment.Customer, payment.PaymentMethod),
			metadata: map[string]string{
				"payment_id": payment.PaymentID,
				"product":    payment.Product,
			},
		}, nil
	},
	domain.SourceExpense: func(event domain.BusinessEvent) (postingPlan, error) {
		expense, ok := event.(domain.ExpenseRecord)
		if !ok {
			return postingPlan{}, fmt.Errorf("expense rule received %T", event)
		}
		return postingPlan{
			debit:  ExpenseAccountFor(expense.Category),
			credit: domain.CashBank,
			memo:   expense.Description,
			metadata: map[string]string{
				"expense_id":   expense.ExpenseID,
				"expense_type": expense.Type,
			},
		}, nil
	},
}

// ExpenseAccountFor selects the expense account debited for a category.
func ExpenseAccountFor(category domain.ExpenseCategory) domain.AccountCode {
	switch category {
	case domain.WorkingCapital:
		return domain.OperatingExpenses
	case domain.FixedCapital:
		return domain.CapitalExpenses
	default:
		return domain.GeneralExpenses
	}
}

// postingService is the pure posting engine. It never touches storage.
type postingService struct {
	currency string
	now      func() time.Time
	newID    func() string
}

// PostingServiceOption is a functional option for configuring the posting service
type PostingServiceOption func(*postingService)

// WithClock overrides the time source used for PostedAt.
func WithClock(now func() time.Time) PostingServiceOption {
	return func(s *postingService) {
		s.now = now
	}
}

// WithIDGenerator overrides how entry and line IDs are generated.
func WithIDGenerator(newID func() string) PostingServiceOption {
	return func(s *postingService) {
		s.newID = newID
	}
}

// NewPostingService creates a posting engine that books lines in currency.
func NewPostingService(currency string, options ...PostingServiceOption) portssvc.PostingService {
	svc := &postingService{
		currency: currency,
		now:      func() time.Time { return time.Now().UTC() },
		newID:    uuid.NewString,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.PostingService = (*postingService)(nil)

// Post builds the balanced two-line entry for event.
func (s *postingService) Post(event domain.BusinessEvent) (domain.LedgerEntry, error) {
	if event == nil {
		return domain.LedgerEntry{}, fmt.Errorf("%w: nil event", apperrors.ErrUnsupportedSourceType)
	}
	rule, ok := postingRules[event.SourceType()]
	if !ok {
		return domain.LedgerEntry{}, fmt.Errorf("%w: %q", apperrors.ErrUnsupportedSourceType, event.SourceType())
	}
	plan, err := rule(event)
	if err != nil {
		return domain.LedgerEntry{}, fmt.Errorf("%w: %v", apperrors.ErrUnsupportedSourceType, err)
	}

	amount := event.EventAmount()
	lines := []domain.JournalLine{
		{
			LineID:      s.newID(),
			AccountCode: plan.debit,
			Debit:       amount,
			Credit:      decimal.Zero,
			Currency:    s.currency,
			Memo:        plan.memo,
			Metadata:    plan.metadata,
		},
		{
			LineID:      s.newID(),
			AccountCode: plan.credit,
			Debit:       decimal.Zero,
			Credit:      amount,
			Currency:    s.currency,
			Memo:        plan.memo,
			Metadata:    plan.metadata,
		},
	}

	return domain.LedgerEntry{
		EntryID:       s.newID(),
		SourceType:    event.SourceType(),
		SourceID:      event.SourceID(),
		TransactionID: event.SourceID(),
		Lines:         lines,
		TotalDebit:    amount,
		TotalCredit:   amount,
		Status:        domain.Posted,
		UserID:        event.OwnerID(),
		PostedAt:      s.now(),
	}, nil
}
