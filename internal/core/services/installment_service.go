package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/finhaus/home_finance_app/internal/apperrors"
	"github.com/finhaus/home_finance_app/internal/core/domain"
	portsrepo "github.com/finhaus/home_finance_app/internal/core/ports/repositories"
	portssvc "github.com/finhaus/home_finance_app/internal/core/ports/services"
	"github.com/finhaus/home_finance_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// installmentServiceImpl implements the InstallmentSvcFacade interface
type installmentServiceImpl struct {
	BaseService
	installmentRepo portsrepo.InstallmentRepository
	categoryRepo    portsrepo.CategoryRepository
}

// NewInstallmentService creates a new installment service.
func NewInstallmentService(installmentRepo portsrepo.InstallmentRepository, categoryRepo portsrepo.CategoryRepository) portssvc.InstallmentSvcFacade {
	return &installmentServiceImpl{installmentRepo: installmentRepo, categoryRepo: categoryRepo}
}

// Ensure installmentServiceImpl implements the InstallmentSvcFacade interface
var _ portssvc.InstallmentSvcFacade = (*installmentServiceImpl)(nil)

func (s *installmentServiceImpl) checkCategoryExists(ctx context.Context, categoryID string) error {
	if _, err := s.categoryRepo.FindCategoryByID(ctx, categoryID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: category %s does not exist", apperrors.ErrValidation, categoryID)
		}
		return err
	}
	return nil
}

func (s *installmentServiceImpl) CreateInstallment(ctx context.Context, req dto.CreateInstallmentRequest, userID string) (*domain.Installment, error) {
	if err := s.checkCategoryExists(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	total, err := parsePositiveAmount("totalAmount", req.TotalAmount)
	if err != nil {
		return nil, err
	}
	firstPayment, err := parseDate("firstPaymentDate", req.FirstPaymentDate)
	if err != nil {
		return nil, err
	}

	// Derive the monthly amount when the client does not supply one.
	var monthly decimal.Decimal
	if req.MonthlyAmount != "" {
		monthly, err = parsePositiveAmount("monthlyAmount", req.MonthlyAmount)
		if err != nil {
			return nil, err
		}
	} else {
		monthly = total.DivRound(decimal.NewFromInt(int64(req.NumberOfPayments)), 2)
	}

	now := time.Now()
	status := domain.InstallmentActive
	if firstPayment.After(now) {
		status = domain.InstallmentPending
	}

	installment := domain.Installment{
		InstallmentID:    uuid.NewString(),
		Description:      req.Description,
		CategoryID:       req.CategoryID,
		TotalAmount:      total,
		NumberOfPayments: req.NumberOfPayments,
		MonthlyAmount:    monthly,
		FirstPaymentDate: firstPayment,
		DayOfMonth:       req.DayOfMonth,
		Status:           status,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.installmentRepo.SaveInstallment(ctx, installment); err != nil {
		s.LogError(ctx, err, "Failed to save installment", slog.String("installment_id", installment.InstallmentID))
		return nil, err
	}

	s.LogInfo(ctx, "Installment created successfully", slog.String("installment_id", installment.InstallmentID))
	return &installment, nil
}

func (s *installmentServiceImpl) GetInstallmentByID(ctx context.Context, installmentID string) (*domain.Installment, error) {
	installment, err := s.installmentRepo.FindInstallmentByID(ctx, installmentID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find installment", slog.String("installment_id", installmentID))
		}
		return nil, err
	}
	return installment, nil
}

func (s *installmentServiceImpl) ListInstallments(ctx context.Context, params dto.ListInstallmentsParams) ([]domain.Installment, error) {
	installments, err := s.installmentRepo.ListInstallments(ctx, params.Status, params.Limit, params.Offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list installments")
		return nil, fmt.Errorf("failed to list installments: %w", err)
	}
	if installments == nil {
		return []domain.Installment{}, nil
	}
	return installments, nil
}

func (s *installmentServiceImpl) UpdateInstallment(ctx context.Context, installmentID string, req dto.UpdateInstallmentRequest, userID string) (*domain.Installment, error) {
	installment, err := s.installmentRepo.FindInstallmentByID(ctx, installmentID)
	if err != nil {
		return nil, err
	}

	if req.Description != nil {
		installment.Description = *req.Description
	}
	if req.CategoryID != nil {
		if err := s.checkCategoryExists(ctx, *req.CategoryID); err != nil {
			return nil, err
		}
		installment.CategoryID = *req.CategoryID
	}
	if req.DayOfMonth != nil {
		installment.DayOfMonth = *req.DayOfMonth
	}
	if req.Status != nil {
		installment.Status = domain.InstallmentStatus(*req.Status)
	}

	installment.LastUpdatedAt = time.Now()
	installment.LastUpdatedBy = userID

	if err := s.installmentRepo.UpdateInstallment(ctx, *installment); err != nil {
		s.LogError(ctx, err, "Failed to update installment", slog.String("installment_id", installmentID))
		return nil, err
	}

	s.LogInfo(ctx, "Installment updated successfully", slog.String("installment_id", installmentID))
	return installment, nil
}

func (s *installmentServiceImpl) DeleteInstallment(ctx context.Context, installmentID string, userID string) error {
	if _, err := s.installmentRepo.FindInstallmentByID(ctx, installmentID); err != nil {
		return err
	}
	if err := s.installmentRepo.DeleteInstallment(ctx, installmentID); err != nil {
		s.LogError(ctx, err, "Failed to delete installment", slog.String("installment_id", installmentID))
		return err
	}
	s.LogInfo(ctx, "Installment deleted", slog.String("installment_id", installmentID))
	return nil
}

// MarkPaid records the next payment. The final payment absorbs any rounding
// drift so the paid total matches TotalAmount exactly.
func (s *installmentServiceImpl) MarkPaid(ctx context.Context, installmentID string, userID string) (*domain.Installment, error) {
	installment, err := s.installmentRepo.FindInstallmentByID(ctx, installmentID)
	if err != nil {
		return nil, err
	}
	if installment.Status == domain.InstallmentCompleted || installment.PaymentsCompleted >= installment.NumberOfPayments {
		return nil, fmt.Errorf("%w: installment %s is already completed", apperrors.ErrValidation, installmentID)
	}

	now := time.Now()
	paymentNumber := installment.PaymentsCompleted + 1
	amount := installment.MonthlyAmount
	if paymentNumber == installment.NumberOfPayments {
		alreadyPaid := installment.MonthlyAmount.Mul(decimal.NewFromInt(int64(installment.PaymentsCompleted)))
		if final := installment.TotalAmount.Sub(alreadyPaid); final.Sign() > 0 {
			amount = final
		}
	}

	payment := domain.InstallmentPayment{
		PaymentID:     uuid.NewString(),
		InstallmentID: installmentID,
		Amount:        amount,
		PaymentNumber: paymentNumber,
		PaidAt:        now,
		CreatedBy:     userID,
	}
	if err := s.installmentRepo.SavePayment(ctx, payment); err != nil {
		s.LogError(ctx, err, "Failed to save installment payment", slog.String("installment_id", installmentID))
		return nil, err
	}

	installment.PaymentsCompleted = paymentNumber
	if installment.PaymentsCompleted >= installment.NumberOfPayments {
		installment.Status = domain.InstallmentCompleted
	} else if installment.Status == domain.InstallmentPending {
		installment.Status = domain.InstallmentActive
	}
	installment.LastUpdatedAt = now
	installment.LastUpdatedBy = userID

	if err := s.installmentRepo.UpdateInstallment(ctx, *installment); err != nil {
		s.LogError(ctx, err, "Failed to update installment after payment", slog.String("installment_id", installmentID))
		return nil, err
	}

	s.LogInfo(ctx, "Installment payment recorded",
		slog.String("installment_id", installmentID),
		slog.Int("payment_number", paymentNumber))
	return installment, nil
}

func (s *installmentServiceImpl) ListPayments(ctx context.Context, installmentID string) ([]domain.InstallmentPayment, error) {
	if _, err := s.installmentRepo.FindInstallmentByID(ctx, installmentID); err != nil {
		return nil, err
	}
	payments, err := s.installmentRepo.ListPayments(ctx, installmentID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list installment payments", slog.String("installment_id", installmentID))
		return nil, fmt.Errorf("failed to list installment payments: %w", err)
	}
	if payments == nil {
		return []domain.InstallmentPayment{}, nil
	}
	return payments, nil
}
