package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Sale is the row shape of sales.
type Sale struct {
	SaleID       string          `db:"id"`
	CustomerName sql.NullString  `db:"customer_name"`
	Total        decimal.Decimal `db:"total"`
	Status       string          `db:"status"`
	UserID       string          `db:"user_id"`
	SaleDate     time.Time       `db:"sale_date"`
}

// Payment is the row shape of payment_schedules.
type Payment struct {
	PaymentID     string          `db:"id"`
	Customer      sql.NullString  `db:"customer"`
	Product       sql.NullString  `db:"product"`
	Amount        decimal.Decimal `db:"amount"`
	Status        string          `db:"status"`
	PaidDate      sql.NullTime    `db:"paid_date"`
	PaymentMethod sql.NullString  `db:"payment_method"`
	UserID        string          `db:"user_id"`
}

// Expenditure is the row shape of expenditures.
type Expenditure struct {
	ExpenseID   string          `db:"id"`
	Description sql.NullString  `db:"description"`
	Amount      decimal.Decimal `db:"amount"`
	Category    sql.NullString  `db:"category"`
	Type        sql.NullString  `db:"type"`
	UserID      string          `db:"user_id"`
	ExpenseDate time.Time       `db:"expense_date"`
}
