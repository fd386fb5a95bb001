package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/business_ledger/internal/apperrors"
	"github.com/SscSPs/business_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/business_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/business_ledger/internal/models"
	"github.com/SscSPs/business_ledger/internal/utils/mapping"
)

// PgxSourceRepository reads the sales, payment-schedule and expenditure tables.
// Those tables belong to other parts of the business; this repository never writes them.
type PgxSourceRepository struct {
	BaseRepository
}

func newPgxSourceRepository(pool *pgxpool.Pool) *PgxSourceRepository {
	return &PgxSourceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var (
	_ portsrepo.SalesRepository   = (*PgxSourceRepository)(nil)
	_ portsrepo.PaymentRepository = (*PgxSourceRepository)(nil)
	_ portsrepo.ExpenseRepository = (*PgxSourceRepository)(nil)
)

// ListCompletedSales retrieves completed sales, newest sale date first.
func (r *PgxSourceRepository) ListCompletedSales(ctx context.Context, limit int) ([]domain.Sale, error) {
	query := `
		SELECT id, customer_name, total, status, user_id, sale_date
		FROM sales
		WHERE status = $1
		ORDER BY sale_date DESC, id DESC
		LIMIT $2;
	`
	rows, err := r.Pool.Query(ctx, query, domain.SaleStatusCompleted, limit)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query completed sales", err)
	}
	defer rows.Close()

	sales := []domain.Sale{}
	for rows.Next() {
		var m models.Sale
		if err := rows.Scan(&m.SaleID, &m.CustomerName, &m.Total, &m.Status, &m.UserID, &m.SaleDate); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan sale row", err)
		}
		sales = append(sales, mapping.ToDomainSale(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating sale rows", err)
	}
	return sales, nil
}

// ListPaidPayments retrieves paid installments that carry a paid date, newest first.
func (r *PgxSourceRepository) ListPaidPayments(ctx context.Context, limit int) ([]domain.Payment, error) {
	query := `
		SELECT id, customer, product, amount, status, paid_date, payment_method, user_id
		FROM payment_schedules
		WHERE status = $1 AND paid_date IS NOT NULL
		ORDER BY paid_date DESC, id DESC
		LIMIT $2;
	`
	rows, err := r.Pool.Query(ctx, query, domain.PaymentStatusPaid, limit)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query paid payments", err)
	}
	defer rows.Close()

	payments := []domain.Payment{}
	for rows.Next() {
		var m models.Payment
		err := rows.Scan(
			&m.PaymentID,
			&m.Customer,
			&m.Product,
			&m.Amount,
			&m.Status,
			&m.PaidDate,
			&m.PaymentMethod,
			&m.UserID,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan payment row", err)
		}
		payments = append(payments, mapping.ToDomainPayment(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating payment rows", err)
	}
	return payments, nil
}

// ListExpenses retrieves expenditures regardless of status, newest first.
func (r *PgxSourceRepository) ListExpenses(ctx context.Context, limit int) ([]domain.ExpenseRecord, error) {
	query := `
		SELECT id, description, amount, category, type, user_id, expense_date
		FROM expenditures
		ORDER BY expense_date DESC, id DESC
		LIMIT $1;
	`
	rows, err := r.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query expenditures", err)
	}
	defer rows.Close()

	expenses := []domain.ExpenseRecord{}
	for rows.Next() {
		var m models.Expenditure
		err := rows.Scan(
			&m.ExpenseID,
			&m.Description,
			&m.Amount,
			&m.Category,
			&m.Type,
			&m.UserID,
			&m.ExpenseDate,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan expenditure row", err)
		}
		expenses = append(expenses, mapping.ToDomainExpense(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating expenditure rows", err)
	}
	return expenses, nil
}
