package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SourceType names the kind of business event a ledger entry was posted from.
type SourceType string

const (
	SourceSale    SourceType = "sale"
	SourcePayment SourceType = "payment"
	SourceExpense SourceType = "expense"
)

// AllSourceTypes lists every source type in default processing order.
var AllSourceTypes = []SourceType{SourceSale, SourcePayment, SourceExpense}

// IsValid reports whether s is one of the known source types.
func (s SourceType) IsValid() bool {
	switch s {
	case SourceSale, SourcePayment, SourceExpense:
		return true
	}
	return false
}

// BusinessEvent is a record produced by the sales, payment-schedule or
// expenditure stores that can be posted to the ledger.
type BusinessEvent interface {
	SourceType() SourceType
	SourceID() string
	EventAmount() decimal.Decimal
	OwnerID() string
}

// SaleStatusCompleted is the only sale status eligible for posting.
const SaleStatusCompleted = "completed"

// Sale is a completed sale owned by the sales store.
type Sale struct {
	SaleID       string          `json:"id"`
	CustomerName string          `json:"customerName"`
	Total        decimal.Decimal `json:"total"`
	Status       string          `json:"status"`
	UserID       string          `json:"userID"`
	Date         time.Time       `json:"date"`
}

func (s Sale) SourceType() SourceType       { return SourceSale }
func (s Sale) SourceID() string             { return s.SaleID }
func (s Sale) EventAmount() decimal.Decimal { return s.Total }
func (s Sale) OwnerID() string              { return s.UserID }

// PaymentStatusPaid marks a settled installment of a payment schedule.
const PaymentStatusPaid = "paid"

// Payment is a paid installment of a payment schedule.
type Payment struct {
	PaymentID     string          `json:"id"`
	Customer      string          `json:"customer"`
	Product       string          `json:"product"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"`
	PaidDate      *time.Time      `json:"paidDate,omitempty"`
	PaymentMethod string          `json:"paymentMethod"`
	UserID        string          `json:"userID"`
}

func (p Payment) SourceType() SourceType       { return SourcePayment }
func (p Payment) SourceID() string             { return p.PaymentID }
func (p Payment) EventAmount() decimal.Decimal { return p.Amount }
func (p Payment) OwnerID() string              { return p.UserID }

// ExpenseCategory selects which expense account an expenditure is posted to.
type ExpenseCategory string

const (
	WorkingCapital ExpenseCategory = "working-capital"
	FixedCapital   ExpenseCategory = "fixed-capital"
)

// ExpenseRecord is an entry of the expenditure store. Named to avoid
// clashing with the Expense account type.
type ExpenseRecord struct {
	ExpenseID   string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    ExpenseCategory `json:"category"`
	Type        string          `json:"type"`
	UserID      string          `json:"userID"`
	Date        time.Time       `json:"date"`
}

func (e ExpenseRecord) SourceType() SourceType       { return SourceExpense }
func (e ExpenseRecord) SourceID() string             { return e.ExpenseID }
func (e ExpenseRecord) EventAmount() decimal.Decimal { return e.Amount }
func (e ExpenseRecord) OwnerID() string              { return e.UserID }

// Compile-time variant checks.
var (
	_ BusinessEvent = Sale{}
	_ BusinessEvent = Payment{}
	_ BusinessEvent = ExpenseRecord{}
)
