package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Installment represents an installment plan row.
type Installment struct {
	InstallmentID     string          `db:"installment_id"`
	Description       string          `db:"description"`
	CategoryID        string          `db:"category_id"`
	TotalAmount       decimal.Decimal `db:"total_amount"`
	NumberOfPayments  int             `db:"number_of_payments"`
	PaymentsCompleted int             `db:"payments_completed"`
	MonthlyAmount     decimal.Decimal `db:"monthly_amount"`
	FirstPaymentDate  time.Time       `db:"first_payment_date"`
	DayOfMonth        int             `db:"day_of_month"`
	Status            string          `db:"status"`
	AuditFields
}

// InstallmentPayment represents one recorded payment row.
type InstallmentPayment struct {
	PaymentID     string          `db:"payment_id"`
	InstallmentID string          `db:"installment_id"`
	Amount        decimal.Decimal `db:"amount"`
	PaymentNumber int             `db:"payment_number"`
	PaidAt        time.Time       `db:"paid_at"`
	CreatedBy     string          `db:"created_by"`
}
