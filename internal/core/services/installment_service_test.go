package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/finhaus/home_finance_app/internal/apperrors"
	"github.com/finhaus/home_finance_app/internal/core/domain"
	portssvc "github.com/finhaus/home_finance_app/internal/core/ports/services"
	"github.com/finhaus/home_finance_app/internal/core/services"
	"github.com/finhaus/home_finance_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock InstallmentRepository ---
type MockInstallmentRepository struct {
	mock.Mock
}

func (m *MockInstallmentRepository) SaveInstallment(ctx context.Context, installment domain.Installment) error {
	args := m.Called(ctx, installment)
	return args.Error(0)
}

func (m *MockInstallmentRepository) FindInstallmentByID(ctx context.Context, installmentID string) (*domain.Installment, error) {
	args := m.Called(ctx, installmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Installment), args.Error(1)
}

func (m *MockInstallmentRepository) ListInstallments(ctx context.Context, status string, limit int, offset int) ([]domain.Installment, error) {
	args := m.Called(ctx, status, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Installment), args.Error(1)
}

func (m *MockInstallmentRepository) UpdateInstallment(ctx context.Context, installment domain.Installment) error {
	args := m.Called(ctx, installment)
	return args.Error(0)
}

func (m *MockInstallmentRepository) DeleteInstallment(ctx context.Context, installmentID string) error {
	args := m.Called(ctx, installmentID)
	return args.Error(0)
}

func (m *MockInstallmentRepository) SavePayment(ctx context.Context, payment domain.InstallmentPayment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockInstallmentRepository) ListPayments(ctx context.Context, installmentID string) ([]domain.InstallmentPayment, error) {
	args := m.Called(ctx, installmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InstallmentPayment), args.Error(1)
}

// --- Test Suite ---
type InstallmentServiceTestSuite struct {
	suite.Suite
	mockRepo     *MockInstallmentRepository
	mockCategory *MockCategoryRepository
	service      portssvc.InstallmentSvcFacade
}

func (suite *InstallmentServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockInstallmentRepository)
	suite.mockCategory = new(MockCategoryRepository)
	suite.service = services.NewInstallmentService(suite.mockRepo, suite.mockCategory)
}

func (suite *InstallmentServiceTestSuite) expectCategoryExists(categoryID string) {
	suite.mockCategory.On("FindCategoryByID", mock.Anything, categoryID).
		Return(&domain.Category{CategoryID: categoryID}, nil).Once()
}

// --- Test Cases ---

func (suite *InstallmentServiceTestSuite) TestCreateInstallment_DerivesMonthlyAmount() {
	ctx := context.Background()
	categoryID := uuid.NewString()
	req := dto.CreateInstallmentRequest{
		Description:      "Laptop",
		CategoryID:       categoryID,
		TotalAmount:      "1000",
		NumberOfPayments: 3,
		FirstPaymentDate: "2026-01-15",
		DayOfMonth:       15,
	}

	suite.expectCategoryExists(categoryID)
	suite.mockRepo.On("SaveInstallment", ctx, mock.MatchedBy(func(i domain.Installment) bool {
		return i.MonthlyAmount.Equal(decimal.RequireFromString("333.33"))
	})).Return(nil).Once()

	installment, err := suite.service.CreateInstallment(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.True(installment.MonthlyAmount.Equal(decimal.RequireFromString("333.33")))
	suite.Equal(domain.InstallmentActive, installment.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InstallmentServiceTestSuite) TestCreateInstallment_FuturePlanStartsPending() {
	ctx := context.Background()
	categoryID := uuid.NewString()
	firstPayment := time.Now().AddDate(0, 2, 0).Format("2006-01-02")
	req := dto.CreateInstallmentRequest{
		Description:      "Sofa",
		CategoryID:       categoryID,
		TotalAmount:      "1200",
		NumberOfPayments: 6,
		MonthlyAmount:    "200",
		FirstPaymentDate: firstPayment,
		DayOfMonth:       1,
	}

	suite.expectCategoryExists(categoryID)
	suite.mockRepo.On("SaveInstallment", ctx, mock.AnythingOfType("domain.Installment")).Return(nil).Once()

	installment, err := suite.service.CreateInstallment(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(domain.InstallmentPending, installment.Status)
	suite.True(installment.MonthlyAmount.Equal(decimal.RequireFromString("200")))
}

func (suite *InstallmentServiceTestSuite) TestCreateInstallment_UnknownCategory() {
	ctx := context.Background()
	categoryID := uuid.NewString()
	req := dto.CreateInstallmentRequest{
		Description:      "Laptop",
		CategoryID:       categoryID,
		TotalAmount:      "1000",
		NumberOfPayments: 3,
		FirstPaymentDate: "2026-01-15",
		DayOfMonth:       15,
	}

	suite.mockCategory.On("FindCategoryByID", mock.Anything, categoryID).
		Return(nil, apperrors.ErrNotFound).Once()

	installment, err := suite.service.CreateInstallment(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(installment)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveInstallment", mock.Anything, mock.Anything)
}

func (suite *InstallmentServiceTestSuite) TestMarkPaid_IncrementsAndRecordsPayment() {
	ctx := context.Background()
	installmentID := uuid.NewString()
	userID := uuid.NewString()
	existing := &domain.Installment{
		InstallmentID:     installmentID,
		TotalAmount:       decimal.RequireFromString("600"),
		NumberOfPayments:  6,
		PaymentsCompleted: 2,
		MonthlyAmount:     decimal.RequireFromString("100"),
		Status:            domain.InstallmentActive,
	}

	suite.mockRepo.On("FindInstallmentByID", ctx, installmentID).Return(existing, nil).Once()
	suite.mockRepo.On("SavePayment", ctx, mock.MatchedBy(func(p domain.InstallmentPayment) bool {
		return p.InstallmentID == installmentID &&
			p.PaymentNumber == 3 &&
			p.Amount.Equal(decimal.RequireFromString("100")) &&
			p.CreatedBy == userID
	})).Return(nil).Once()
	suite.mockRepo.On("UpdateInstallment", ctx, mock.MatchedBy(func(i domain.Installment) bool {
		return i.PaymentsCompleted == 3 && i.Status == domain.InstallmentActive
	})).Return(nil).Once()

	installment, err := suite.service.MarkPaid(ctx, installmentID, userID)

	suite.Require().NoError(err)
	suite.Equal(3, installment.PaymentsCompleted)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InstallmentServiceTestSuite) TestMarkPaid_FinalPaymentCompletesAndAbsorbsDrift() {
	ctx := context.Background()
	installmentID := uuid.NewString()
	existing := &domain.Installment{
		InstallmentID:     installmentID,
		TotalAmount:       decimal.RequireFromString("1000"),
		NumberOfPayments:  3,
		PaymentsCompleted: 2,
		MonthlyAmount:     decimal.RequireFromString("333.33"),
		Status:            domain.InstallmentActive,
	}

	suite.mockRepo.On("FindInstallmentByID", ctx, installmentID).Return(existing, nil).Once()
	// 1000 - 2*333.33 = 333.34 on the last payment.
	suite.mockRepo.On("SavePayment", ctx, mock.MatchedBy(func(p domain.InstallmentPayment) bool {
		return p.PaymentNumber == 3 && p.Amount.Equal(decimal.RequireFromString("333.34"))
	})).Return(nil).Once()
	suite.mockRepo.On("UpdateInstallment", ctx, mock.MatchedBy(func(i domain.Installment) bool {
		return i.PaymentsCompleted == 3 && i.Status == domain.InstallmentCompleted
	})).Return(nil).Once()

	installment, err := suite.service.MarkPaid(ctx, installmentID, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(domain.InstallmentCompleted, installment.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InstallmentServiceTestSuite) TestMarkPaid_CompletedPlanRejected() {
	ctx := context.Background()
	installmentID := uuid.NewString()
	existing := &domain.Installment{
		InstallmentID:     installmentID,
		NumberOfPayments:  3,
		PaymentsCompleted: 3,
		Status:            domain.InstallmentCompleted,
	}

	suite.mockRepo.On("FindInstallmentByID", ctx, installmentID).Return(existing, nil).Once()

	installment, err := suite.service.MarkPaid(ctx, installmentID, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(installment)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SavePayment", mock.Anything, mock.Anything)
}

func (suite *InstallmentServiceTestSuite) TestMarkPaid_FirstPaymentActivatesPendingPlan() {
	ctx := context.Background()
	installmentID := uuid.NewString()
	existing := &domain.Installment{
		InstallmentID:     installmentID,
		TotalAmount:       decimal.RequireFromString("400"),
		NumberOfPayments:  4,
		PaymentsCompleted: 0,
		MonthlyAmount:     decimal.RequireFromString("100"),
		Status:            domain.InstallmentPending,
	}

	suite.mockRepo.On("FindInstallmentByID", ctx, installmentID).Return(existing, nil).Once()
	suite.mockRepo.On("SavePayment", ctx, mock.AnythingOfType("domain.InstallmentPayment")).Return(nil).Once()
	suite.mockRepo.On("UpdateInstallment", ctx, mock.MatchedBy(func(i domain.Installment) bool {
		return i.Status == domain.InstallmentActive && i.PaymentsCompleted == 1
	})).Return(nil).Once()

	installment, err := suite.service.MarkPaid(ctx, installmentID, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(domain.InstallmentActive, installment.Status)
}

func (suite *InstallmentServiceTestSuite) TestListPayments_UnknownPlan() {
	ctx := context.Background()
	installmentID := uuid.NewString()

	suite.mockRepo.On("FindInstallmentByID", ctx, installmentID).Return(nil, apperrors.ErrNotFound).Once()

	payments, err := suite.service.ListPayments(ctx, installmentID)

	suite.Require().Error(err)
	suite.Nil(payments)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "ListPayments", mock.Anything, mock.Anything)
}

// --- Run Suite ---
func TestInstallmentService(t *testing.T) {
	suite.Run(t, new(InstallmentServiceTestSuite))
}
