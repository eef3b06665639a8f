package dto

import (
	"time"

	"github.com/finhaus/home_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateInstallmentRequest defines the data needed to create a plan.
// TotalAmount travels as a decimal string; MonthlyAmount is derived server-side
// when omitted.
type CreateInstallmentRequest struct {
	Description      string `json:"description" binding:"required"`
	CategoryID       string `json:"categoryID" binding:"required"`
	TotalAmount      string `json:"totalAmount" binding:"required"`
	NumberOfPayments int    `json:"numberOfPayments" binding:"required,min=1"`
	MonthlyAmount    string `json:"monthlyAmount"`
	FirstPaymentDate string `json:"firstPaymentDate" binding:"required,datetime=2006-01-02"`
	DayOfMonth       int    `json:"dayOfMonth" binding:"required,min=1,max=31"`
}

// UpdateInstallmentRequest defines the data allowed for updating a plan.
type UpdateInstallmentRequest struct {
	Description *string `json:"description"`
	CategoryID  *string `json:"categoryID"`
	DayOfMonth  *int    `json:"dayOfMonth" binding:"omitempty,min=1,max=31"`
	Status      *string `json:"status" binding:"omitempty,oneof=PENDING ACTIVE COMPLETED OVERDUE"`
}

// ListInstallmentsParams defines query parameters for listing plans.
type ListInstallmentsParams struct {
	Limit  int    `form:"limit,default=50"`
	Offset int    `form:"offset,default=0"`
	Status string `form:"status" binding:"omitempty,oneof=PENDING ACTIVE COMPLETED OVERDUE"`
}

// InstallmentProgressResponse is the server-computed progress view-model.
type InstallmentProgressResponse struct {
	Percentage        float64         `json:"percentage"`
	RemainingAmount   decimal.Decimal `json:"remainingAmount"`
	RemainingPayments int             `json:"remainingPayments"`
	OnTrack           bool            `json:"onTrack"`
	StatusColor       string          `json:"statusColor"`
}

// InstallmentResponse defines the data returned for a plan, progress included.
type InstallmentResponse struct {
	InstallmentID     string                      `json:"installmentID"`
	Description       string                      `json:"description"`
	CategoryID        string                      `json:"categoryID"`
	TotalAmount       decimal.Decimal             `json:"totalAmount"`
	NumberOfPayments  int                         `json:"numberOfPayments"`
	PaymentsCompleted int                         `json:"paymentsCompleted"`
	MonthlyAmount     decimal.Decimal             `json:"monthlyAmount"`
	FirstPaymentDate  time.Time                   `json:"firstPaymentDate"`
	DayOfMonth        int                         `json:"dayOfMonth"`
	Status            string                      `json:"status"`
	Progress          InstallmentProgressResponse `json:"progress"`
	CreatedAt         time.Time                   `json:"createdAt"`
	LastUpdatedAt     time.Time                   `json:"lastUpdatedAt"`
}

// ListInstallmentsResponse wraps the list of plans.
type ListInstallmentsResponse struct {
	Installments []InstallmentResponse `json:"installments"`
}

// InstallmentPaymentResponse defines the data returned for one payment.
type InstallmentPaymentResponse struct {
	PaymentID     string          `json:"paymentID"`
	InstallmentID string          `json:"installmentID"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentNumber int             `json:"paymentNumber"`
	PaidAt        time.Time       `json:"paidAt"`
}

// ListInstallmentPaymentsResponse wraps the payment history of a plan.
type ListInstallmentPaymentsResponse struct {
	Payments []InstallmentPaymentResponse `json:"payments"`
}

// ToInstallmentResponse converts a domain.Installment to its DTO, computing
// the progress view-model as of now.
func ToInstallmentResponse(ins *domain.Installment, now time.Time) InstallmentResponse {
	progress := ins.Progress(now)
	return InstallmentResponse{
		InstallmentID:     ins.InstallmentID,
		Description:       ins.Description,
		CategoryID:        ins.CategoryID,
		TotalAmount:       ins.TotalAmount,
		NumberOfPayments:  ins.NumberOfPayments,
		PaymentsCompleted: ins.PaymentsCompleted,
		MonthlyAmount:     ins.MonthlyAmount,
		FirstPaymentDate:  ins.FirstPaymentDate,
		DayOfMonth:        ins.DayOfMonth,
		Status:            string(ins.Status),
		Progress: InstallmentProgressResponse{
			Percentage:        progress.Percentage,
			RemainingAmount:   progress.RemainingAmount,
			RemainingPayments: progress.RemainingPayments,
			OnTrack:           progress.OnTrack,
			StatusColor:       progress.StatusColor,
		},
		CreatedAt:     ins.CreatedAt,
		LastUpdatedAt: ins.LastUpdatedAt,
	}
}

// ToListInstallmentsResponse converts a slice of domain.Installment to the list DTO
func ToListInstallmentsResponse(installments []domain.Installment, now time.Time) ListInstallmentsResponse {
	res := make([]InstallmentResponse, len(installments))
	for i, ins := range installments {
		res[i] = ToInstallmentResponse(&ins, now)
	}
	return ListInstallmentsResponse{Installments: res}
}

// ToInstallmentPaymentResponse converts a domain.InstallmentPayment to its DTO
func ToInstallmentPaymentResponse(p *domain.InstallmentPayment) InstallmentPaymentResponse {
	return InstallmentPaymentResponse{
		PaymentID:     p.PaymentID,
		InstallmentID: p.InstallmentID,
		Amount:        p.Amount,
		PaymentNumber: p.PaymentNumber,
		PaidAt:        p.PaidAt,
	}
}

// ToListInstallmentPaymentsResponse converts payments to the list DTO
func ToListInstallmentPaymentsResponse(payments []domain.InstallmentPayment) ListInstallmentPaymentsResponse {
	res := make([]InstallmentPaymentResponse, len(payments))
	for i, p := range payments {
		res[i] = ToInstallmentPaymentResponse(&p)
	}
	return ListInstallmentPaymentsResponse{Payments: res}
}
