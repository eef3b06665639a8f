package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InstallmentStatus is the lifecycle state of an installment plan.
type InstallmentStatus string

const (
	InstallmentPending   InstallmentStatus = "PENDING"
	InstallmentActive    InstallmentStatus = "ACTIVE"
	InstallmentCompleted InstallmentStatus = "COMPLETED"
	InstallmentOverdue   InstallmentStatus = "OVERDUE"
)

// statusColors is the fixed status-to-color lookup used for display.
var statusColors = map[InstallmentStatus]string{
	InstallmentCompleted: "success",
	InstallmentOverdue:   "danger",
	InstallmentPending:   "neutral",
	InstallmentActive:    "brand",
}

// Color returns the display color token for the status. Unknown statuses
// fall back to neutral.
func (s InstallmentStatus) Color() string {
	if color, ok := statusColors[s]; ok {
		return color
	}
	return "neutral"
}

// Installment is a fixed-count series of equal payments toward a total
// amount.
type Installment struct {
	InstallmentID     string            `json:"installmentID"` // Primary Key (e.g., UUID)
	Description       string            `json:"description"`
	CategoryID        string            `json:"categoryID"`
	TotalAmount       decimal.Decimal   `json:"totalAmount"`
	NumberOfPayments  int               `json:"numberOfPayments"`
	PaymentsCompleted int               `json:"paymentsCompleted"` // Invariant: <= NumberOfPayments
	MonthlyAmount     decimal.Decimal   `json:"monthlyAmount"`     // ~ TotalAmount / NumberOfPayments
	FirstPaymentDate  time.Time         `json:"firstPaymentDate"`
	DayOfMonth        int               `json:"dayOfMonth"`
	Status            InstallmentStatus `json:"status"`
	AuditFields
}

// InstallmentPayment records one completed payment of a plan.
type InstallmentPayment struct {
	PaymentID     string          `json:"paymentID"` // Primary Key (e.g., UUID)
	InstallmentID string          `json:"installmentID"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentNumber int             `json:"paymentNumber"` // 1-based position in the series
	PaidAt        time.Time       `json:"paidAt"`
	CreatedBy     string          `json:"createdBy"`
}

// InstallmentProgress is the server-computed view-model for a plan.
type InstallmentProgress struct {
	Percentage        float64         `json:"percentage"` // Always within [0,100]
	RemainingAmount   decimal.Decimal `json:"remainingAmount"`
	RemainingPayments int             `json:"remainingPayments"`
	OnTrack           bool            `json:"onTrack"`
	StatusColor       string          `json:"statusColor"`
}

// Progress derives the completion view-model from the plan's counters.
// Percentage is min(100, completed/total*100), 0 when total is 0.
func (i Installment) Progress(now time.Time) InstallmentProgress {
	var percentage float64
	if i.NumberOfPayments > 0 {
		percentage = float64(i.PaymentsCompleted) / float64(i.NumberOfPayments) * 100
		if percentage > 100 {
			percentage = 100
		}
	}

	remainingPayments := i.NumberOfPayments - i.PaymentsCompleted
	if remainingPayments < 0 {
		remainingPayments = 0
	}

	remaining := i.TotalAmount.Sub(i.MonthlyAmount.Mul(decimal.NewFromInt(int64(i.PaymentsCompleted))))
	if remaining.Sign() < 0 {
		remaining = decimal.Zero
	}

	return InstallmentProgress{
		Percentage:        percentage,
		RemainingAmount:   remaining,
		RemainingPayments: remainingPayments,
		OnTrack:           i.onTrack(now),
		StatusColor:       i.Status.Color(),
	}
}

// onTrack reports whether completed payments keep pace with the months
// elapsed since the first payment date, capped at the plan length.
func (i Installment) onTrack(now time.Time) bool {
	due := monthsElapsed(i.FirstPaymentDate, now) + 1 // first payment is due in its own month
	if due < 0 {
		due = 0
	}
	if due > i.NumberOfPayments {
		due = i.NumberOfPayments
	}
	return i.PaymentsCompleted >= due
}

// monthsElapsed counts whole calendar months between two dates; negative
// when 'to' precedes 'from'.
func monthsElapsed(from, to time.Time) int {
	return (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
}
