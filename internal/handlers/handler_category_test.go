package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/finhaus/home_finance_app/internal/apperrors"
	"github.com/finhaus/home_finance_app/internal/core/domain"
	portssvc "github.com/finhaus/home_finance_app/internal/core/ports/services"
	"github.com/finhaus/home_finance_app/internal/dto"
	"github.com/finhaus/home_finance_app/internal/handlers"
	"github.com/finhaus/home_finance_app/internal/platform/config"
	"github.com/finhaus/home_finance_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CategoryService ---
type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, userID string) (*domain.Category, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}
func (m *MockCategoryService) GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}
func (m *MockCategoryService) ListCategories(ctx context.Context, includeArchived bool) ([]domain.Category, error) {
	args := m.Called(ctx, includeArchived)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}
func (m *MockCategoryService) PartitionCategories(ctx context.Context) (domain.CategoryPartition, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.CategoryPartition), args.Error(1)
}
func (m *MockCategoryService) UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest, userID string) (*domain.Category, error) {
	args := m.Called(ctx, categoryID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}
func (m *MockCategoryService) ArchiveCategory(ctx context.Context, categoryID string, userID string) error {
	args := m.Called(ctx, categoryID, userID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.CategorySvcFacade = (*MockCategoryService)(nil)

// --- Test Suite ---
type CategoryHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockCategoryService *MockCategoryService
	jwtSecret           string
}

func (suite *CategoryHandlerTestSuite) generateTestToken(userID string, role domain.UserRole) string {
	token, err := utils.GenerateJWT(userID, string(role), suite.jwtSecret, time.Hour, "hfa-test")
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return token
}

func (suite *CategoryHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockCategoryService = new(MockCategoryService)

	cfg := &config.Config{
		JWTSecret:     suite.jwtSecret,
		IsProduction:  true, // keep swagger routes out of the test router
		AuthRateLimit: "10-M",
	}
	services := &portssvc.ServiceContainer{
		Category: suite.mockCategoryService,
	}
	handlers.RegisterRoutes(suite.router, cfg, services)
}

func (suite *CategoryHandlerTestSuite) doRequest(method, url string, body []byte, token string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, url, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *CategoryHandlerTestSuite) TestCreateCategory_Success() {
	userID := uuid.NewString()
	reqBody := dto.CreateCategoryRequest{Name: "Groceries", Type: "EXPENSE", Color: "#4CAF50"}
	expected := &domain.Category{
		CategoryID: uuid.NewString(),
		Name:       reqBody.Name,
		Type:       domain.ExpenseCategory,
		Color:      reqBody.Color,
	}

	suite.mockCategoryService.On("CreateCategory",
		mock.AnythingOfType("*context.valueCtx"),
		reqBody,
		userID,
	).Return(expected, nil).Once()

	body, _ := json.Marshal(reqBody)
	w := suite.doRequest(http.MethodPost, "/api/v1/categories", body, suite.generateTestToken(userID, domain.RoleMember))

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.CategoryResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(expected.CategoryID, resp.CategoryID)
	suite.Equal("EXPENSE", resp.Type)

	suite.mockCategoryService.AssertExpectations(suite.T())
}

func (suite *CategoryHandlerTestSuite) TestCreateCategory_InvalidBody() {
	userID := uuid.NewString()

	// Type outside the INCOME/EXPENSE enum must be rejected by binding.
	body := []byte(`{"name": "Groceries", "type": "SAVINGS"}`)
	w := suite.doRequest(http.MethodPost, "/api/v1/categories", body, suite.generateTestToken(userID, domain.RoleMember))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockCategoryService.AssertNotCalled(suite.T(), "CreateCategory")
}

func (suite *CategoryHandlerTestSuite) TestCreateCategory_DuplicateName() {
	userID := uuid.NewString()
	reqBody := dto.CreateCategoryRequest{Name: "Rent", Type: "EXPENSE"}

	suite.mockCategoryService.On("CreateCategory",
		mock.AnythingOfType("*context.valueCtx"),
		reqBody,
		userID,
	).Return(nil, fmt.Errorf("%w: category name already exists for this type", apperrors.ErrDuplicate)).Once()

	body, _ := json.Marshal(reqBody)
	w := suite.doRequest(http.MethodPost, "/api/v1/categories", body, suite.generateTestToken(userID, domain.RoleMember))

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockCategoryService.AssertExpectations(suite.T())
}

func (suite *CategoryHandlerTestSuite) TestListCategories_Grouped() {
	userID := uuid.NewString()
	partition := domain.CategoryPartition{
		Income:  []domain.Category{{CategoryID: uuid.NewString(), Name: "Salary", Type: domain.IncomeCategory}},
		Expense: []domain.Category{{CategoryID: uuid.NewString(), Name: "Rent", Type: domain.ExpenseCategory}},
	}

	suite.mockCategoryService.On("PartitionCategories",
		mock.AnythingOfType("*context.valueCtx"),
	).Return(partition, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/categories?grouped=true", nil, suite.generateTestToken(userID, domain.RoleMember))

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.GroupedCategoriesResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Income, 1)
	suite.Len(resp.Expense, 1)
	suite.Equal("Salary", resp.Income[0].Name)

	suite.mockCategoryService.AssertExpectations(suite.T())
	suite.mockCategoryService.AssertNotCalled(suite.T(), "ListCategories")
}

func (suite *CategoryHandlerTestSuite) TestGetCategory_NotFound() {
	userID := uuid.NewString()
	categoryID := uuid.NewString()

	suite.mockCategoryService.On("GetCategoryByID",
		mock.AnythingOfType("*context.valueCtx"),
		categoryID,
	).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/categories/"+categoryID, nil, suite.generateTestToken(userID, domain.RoleMember))

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockCategoryService.AssertExpectations(suite.T())
}

func (suite *CategoryHandlerTestSuite) TestArchiveCategory_Success() {
	userID := uuid.NewString()
	categoryID := uuid.NewString()

	suite.mockCategoryService.On("ArchiveCategory",
		mock.AnythingOfType("*context.valueCtx"),
		categoryID,
		userID,
	).Return(nil).Once()

	w := suite.doRequest(http.MethodDelete, "/api/v1/categories/"+categoryID, nil, suite.generateTestToken(userID, domain.RoleMember))

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockCategoryService.AssertExpectations(suite.T())
}

func (suite *CategoryHandlerTestSuite) TestListCategories_MissingToken() {
	w := suite.doRequest(http.MethodGet, "/api/v1/categories", nil, "")

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockCategoryService.AssertNotCalled(suite.T(), "ListCategories")
}

// --- Run Test Suite ---
func TestCategoryHandler(t *testing.T) {
	suite.Run(t, new(CategoryHandlerTestSuite))
}
