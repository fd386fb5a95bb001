package repositories

import (
	"context"

	"github.com/SscSPs/business_ledger/internal/core/domain"
)

// SalesRepository reads sales owned by the sales store.
type SalesRepository interface {
	// ListCompletedSales returns up to limit completed sales, newest sale date first.
	ListCompletedSales(ctx context.Context, limit int) ([]domain.Sale, error)
}

// PaymentRepository reads installments of the payment-schedule store.
type PaymentRepository interface {
	// ListPaidPayments returns up to limit paid installments that have a paid date, newest first.
	ListPaidPayments(ctx context.Context, limit int) ([]domain.Payment, error)
}

// ExpenseRepository reads the expenditure store.
type ExpenseRepository interface {
	// ListExpenses returns up to limit expenses regardless of status, newest expense date first.
	ListExpenses(ctx context.Context, limit int) ([]domain.ExpenseRecord, error)
}
