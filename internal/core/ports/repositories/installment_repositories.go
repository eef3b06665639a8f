package repositories

import (
	"context"

	"github.com/finhaus/home_finance_app/internal/core/domain"
)

// InstallmentRepository defines persistence operations for installment plans
// and their payment history.
type InstallmentRepository interface {
	SaveInstallment(ctx context.Context, installment domain.Installment) error
	FindInstallmentByID(ctx context.Context, installmentID string) (*domain.Installment, error)
	ListInstallments(ctx context.Context, status string, limit int, offset int) ([]domain.Installment, error)
	UpdateInstallment(ctx context.Context, installment domain.Installment) error
	DeleteInstallment(ctx context.Context, installmentID string) error

	SavePayment(ctx context.Context, payment domain.InstallmentPayment) error
	ListPayments(ctx context.Context, installmentID string) ([]domain.InstallmentPayment, error)
}
