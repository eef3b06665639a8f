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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock FixedEntryRepository ---
type MockFixedEntryRepository struct {
	mock.Mock
}

func (m *MockFixedEntryRepository) SaveFixedEntry(ctx context.Context, entry domain.FixedEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockFixedEntryRepository) FindFixedEntryByID(ctx context.Context, fixedID string) (*domain.FixedEntry, error) {
	args := m.Called(ctx, fixedID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FixedEntry), args.Error(1)
}

func (m *MockFixedEntryRepository) ListFixedEntries(ctx context.Context, includePaused bool, limit int, offset int) ([]domain.FixedEntry, error) {
	args := m.Called(ctx, includePaused, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FixedEntry), args.Error(1)
}

func (m *MockFixedEntryRepository) UpdateFixedEntry(ctx context.Context, entry domain.FixedEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockFixedEntryRepository) DeleteFixedEntry(ctx context.Context, fixedID string) error {
	args := m.Called(ctx, fixedID)
	return args.Error(0)
}

// --- Mock CategoryRepository (shared with the installment suite) ---
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) ListCategories(ctx context.Context, includeArchived bool) ([]domain.Category, error) {
	args := m.Called(ctx, includeArchived)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) ArchiveCategory(ctx context.Context, categoryID string, userID string, now time.Time) error {
	args := m.Called(ctx, categoryID, userID, now)
	return args.Error(0)
}

// --- Test Suite ---
type FixedEntryServiceTestSuite struct {
	suite.Suite
	mockRepo     *MockFixedEntryRepository
	mockCategory *MockCategoryRepository
	service      portssvc.FixedEntrySvcFacade
}

func (suite *FixedEntryServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockFixedEntryRepository)
	suite.mockCategory = new(MockCategoryRepository)
	suite.service = services.NewFixedEntryService(suite.mockRepo, suite.mockCategory)
}

func (suite *FixedEntryServiceTestSuite) expectCategoryExists(categoryID string) {
	suite.mockCategory.On("FindCategoryByID", mock.Anything, categoryID).
		Return(&domain.Category{CategoryID: categoryID}, nil).Once()
}

// --- Test Cases ---

func (suite *FixedEntryServiceTestSuite) TestCreateFixedEntry_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	categoryID := uuid.NewString()
	req := dto.CreateFixedEntryRequest{
		Name:       "Rent",
		CategoryID: categoryID,
		EntryType:  "EXPENSE",
		Amount:     "850.00",
		DayOfMonth: 1,
		StartDate:  "2026-01-01",
	}

	suite.expectCategoryExists(categoryID)
	suite.mockRepo.On("SaveFixedEntry", ctx, mock.MatchedBy(func(e domain.FixedEntry) bool {
		return e.Name == "Rent" &&
			e.EntryType == domain.ExpenseEntry &&
			e.Amount.Equal(decimal.RequireFromString("850.00")) &&
			e.IsActive &&
			e.CreatedBy == userID
	})).Return(nil).Once()

	entry, err := suite.service.CreateFixedEntry(ctx, req, userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.Equal(categoryID, entry.CategoryID)
	suite.True(entry.IsActive)
	suite.Nil(entry.EndDate)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockCategory.AssertExpectations(suite.T())
}

func (suite *FixedEntryServiceTestSuite) TestCreateFixedEntry_UnknownCategory() {
	ctx := context.Background()
	categoryID := uuid.NewString()
	req := dto.CreateFixedEntryRequest{
		Name:       "Rent",
		CategoryID: categoryID,
		EntryType:  "EXPENSE",
		Amount:     "850.00",
		DayOfMonth: 1,
		StartDate:  "2026-01-01",
	}

	suite.mockCategory.On("FindCategoryByID", mock.Anything, categoryID).
		Return(nil, apperrors.ErrNotFound).Once()

	entry, err := suite.service.CreateFixedEntry(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveFixedEntry", mock.Anything, mock.Anything)
}

func (suite *FixedEntryServiceTestSuite) TestCreateFixedEntry_NonPositiveAmount() {
	ctx := context.Background()
	categoryID := uuid.NewString()
	req := dto.CreateFixedEntryRequest{
		Name:       "Rent",
		CategoryID: categoryID,
		EntryType:  "EXPENSE",
		Amount:     "-850.00",
		DayOfMonth: 1,
		StartDate:  "2026-01-01",
	}

	suite.expectCategoryExists(categoryID)

	entry, err := suite.service.CreateFixedEntry(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveFixedEntry", mock.Anything, mock.Anything)
}

func (suite *FixedEntryServiceTestSuite) TestCreateFixedEntry_EndBeforeStart() {
	ctx := context.Background()
	categoryID := uuid.NewString()
	req := dto.CreateFixedEntryRequest{
		Name:       "Gym",
		CategoryID: categoryID,
		EntryType:  "EXPENSE",
		Amount:     "30",
		DayOfMonth: 15,
		StartDate:  "2026-06-01",
		EndDate:    "2026-01-01",
	}

	suite.expectCategoryExists(categoryID)

	entry, err := suite.service.CreateFixedEntry(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *FixedEntryServiceTestSuite) TestPauseFixedEntry_TogglesAndPersists() {
	ctx := context.Background()
	fixedID := uuid.NewString()
	userID := uuid.NewString()
	existing := &domain.FixedEntry{FixedID: fixedID, Name: "Netflix", IsActive: true}

	suite.mockRepo.On("FindFixedEntryByID", ctx, fixedID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateFixedEntry", ctx, mock.MatchedBy(func(e domain.FixedEntry) bool {
		return e.FixedID == fixedID && !e.IsActive && e.LastUpdatedBy == userID
	})).Return(nil).Once()

	entry, err := suite.service.PauseFixedEntry(ctx, fixedID, userID)

	suite.Require().NoError(err)
	suite.False(entry.IsActive)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *FixedEntryServiceTestSuite) TestPauseFixedEntry_AlreadyPausedIsNoOp() {
	ctx := context.Background()
	fixedID := uuid.NewString()
	existing := &domain.FixedEntry{FixedID: fixedID, IsActive: false}

	suite.mockRepo.On("FindFixedEntryByID", ctx, fixedID).Return(existing, nil).Once()

	entry, err := suite.service.PauseFixedEntry(ctx, fixedID, uuid.NewString())

	suite.Require().NoError(err)
	suite.False(entry.IsActive)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateFixedEntry", mock.Anything, mock.Anything)
}

func (suite *FixedEntryServiceTestSuite) TestResumeFixedEntry_Success() {
	ctx := context.Background()
	fixedID := uuid.NewString()
	existing := &domain.FixedEntry{FixedID: fixedID, IsActive: false}

	suite.mockRepo.On("FindFixedEntryByID", ctx, fixedID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateFixedEntry", ctx, mock.MatchedBy(func(e domain.FixedEntry) bool {
		return e.IsActive
	})).Return(nil).Once()

	entry, err := suite.service.ResumeFixedEntry(ctx, fixedID, uuid.NewString())

	suite.Require().NoError(err)
	suite.True(entry.IsActive)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *FixedEntryServiceTestSuite) TestUpdateFixedEntry_ClearEndDate() {
	ctx := context.Background()
	fixedID := uuid.NewString()
	end := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	existing := &domain.FixedEntry{
		FixedID:   fixedID,
		StartDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   &end,
		IsActive:  true,
	}
	empty := ""
	req := dto.UpdateFixedEntryRequest{EndDate: &empty}

	suite.mockRepo.On("FindFixedEntryByID", ctx, fixedID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateFixedEntry", ctx, mock.MatchedBy(func(e domain.FixedEntry) bool {
		return e.EndDate == nil
	})).Return(nil).Once()

	entry, err := suite.service.UpdateFixedEntry(ctx, fixedID, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Nil(entry.EndDate)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *FixedEntryServiceTestSuite) TestDeleteFixedEntry_NotFound() {
	ctx := context.Background()
	fixedID := uuid.NewString()

	suite.mockRepo.On("FindFixedEntryByID", ctx, fixedID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteFixedEntry(ctx, fixedID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteFixedEntry", mock.Anything, mock.Anything)
}

func (suite *FixedEntryServiceTestSuite) TestListFixedEntries_Empty() {
	ctx := context.Background()
	var empty []domain.FixedEntry

	suite.mockRepo.On("ListFixedEntries", ctx, true, 50, 0).Return(empty, nil).Once()

	entries, err := suite.service.ListFixedEntries(ctx, dto.ListFixedEntriesParams{Limit: 50, IncludePaused: true})

	suite.Require().NoError(err)
	suite.NotNil(entries)
	suite.Empty(entries)
}

func (suite *FixedEntryServiceTestSuite) TestListFixedEntries_RepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockRepo.On("ListFixedEntries", ctx, true, 50, 0).Return(nil, expectedErr).Once()

	entries, err := suite.service.ListFixedEntries(ctx, dto.ListFixedEntriesParams{Limit: 50, IncludePaused: true})

	suite.Require().Error(err)
	suite.Nil(entries)
	suite.ErrorIs(err, expectedErr)
}

// --- Run Suite ---
func TestFixedEntryService(t *testing.T) {
	suite.Run(t, new(FixedEntryServiceTestSuite))
}
