package services

import (
	"context"

	"github.com/finhaus/home_finance_app/internal/core/domain"
	"github.com/finhaus/home_finance_app/internal/dto"
)

// InstallmentSvcFacade defines the service operations for installment plans.
type InstallmentSvcFacade interface {
	CreateInstallment(ctx context.Context, req dto.CreateInstallmentRequest, userID string) (*domain.Installment, error)
	GetInstallmentByID(ctx context.Context, installmentID string) (*domain.Installment, error)
	ListInstallments(ctx context.Context, params dto.ListInstallmentsParams) ([]domain.Installment, error)
	UpdateInstallment(ctx context.Context, installmentID string, req dto.UpdateInstallmentRequest, userID string) (*domain.Installment, error)
	DeleteInstallment(ctx context.Context, installmentID string, userID string) error
	// MarkPaid records the next payment of the plan. Marking a completed
	// plan returns apperrors.ErrValidation.
	MarkPaid(ctx context.Context, installmentID string, userID string) (*domain.Installment, error)
	ListPayments(ctx context.Context, installmentID string) ([]domain.InstallmentPayment, error)
}
