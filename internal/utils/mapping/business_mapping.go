package mapping

import (
	"time"

	"github.com/SscSPs/business_ledger/internal/core/domain"
	"github.com/SscSPs/business_ledger/internal/models"
)

// ToDomainSale converts a model Sale to a domain Sale
func ToDomainSale(m models.Sale) domain.Sale {
	return domain.Sale{
		SaleID:       m.SaleID,
		CustomerName: m.CustomerName.String,
		Total:        m.Total,
		Status:       m.Status,
		UserID:       m.UserID,
		Date:         m.SaleDate,
	}
}

// ToDomainPayment converts a model Payment to a domain Payment
func ToDomainPayment(m models.Payment) domain.Payment {
	var paidDate *time.Time
	if m.PaidDate.Valid {
		t := m.PaidDate.Time
		paidDate = &t
	}
	return domain.Payment{
		PaymentID:     m.PaymentID,
		Customer:      m.Customer.String,
		Product:       m.Product.String,
		Amount:        m.Amount,
		Status:        m.Status,
		PaidDate:      paidDate,
		PaymentMethod: m.PaymentMethod.String,
		UserID:        m.UserID,
	}
}

// ToDomainExpense converts a model Expenditure to a domain ExpenseRecord
func ToDomainExpense(m models.Expenditure) domain.ExpenseRecord {
	return domain.ExpenseRecord{
		ExpenseID:   m.ExpenseID,
		Description: m.Description.String,
		Amount:      m.Amount,
		Category:    domain.ExpenseCategory(m.Category.String),
		Type:        m.Type.String,
		UserID:      m.UserID,
		Date:        m.ExpenseDate,
	}
}
