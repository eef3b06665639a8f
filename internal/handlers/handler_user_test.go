package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

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

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) ListUsers(ctx context.Context, params dto.ListUsersParams) ([]domain.User, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, updaterUserID string) (*domain.User, error) {
	args := m.Called(ctx, userID, req, updaterUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) DeleteUser(ctx context.Context, userID string, deleterUserID string) error {
	args := m.Called(ctx, userID, deleterUserID)
	return args.Error(0)
}
func (m *MockUserService) EnsureBootstrapAdmin(ctx context.Context, username, password string) error {
	args := m.Called(ctx, username, password)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Test Suite ---
type UserHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockUserService *MockUserService
	jwtSecret       string
}

func (suite *UserHandlerTestSuite) generateTestToken(userID string, role domain.UserRole) string {
	token, err := utils.GenerateJWT(userID, string(role), suite.jwtSecret, time.Hour, "hfa-test")
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return token
}

func (suite *UserHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockUserService = new(MockUserService)

	cfg := &config.Config{
		JWTSecret:     suite.jwtSecret,
		IsProduction:  true,
		AuthRateLimit: "10-M",
	}
	services := &portssvc.ServiceContainer{
		User: suite.mockUserService,
	}
	handlers.RegisterRoutes(suite.router, cfg, services)
}

func (suite *UserHandlerTestSuite) doRequest(method, url string, body []byte, token string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, url, bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *UserHandlerTestSuite) TestGetUser_MemberReadsOwnRecord() {
	memberID := uuid.NewString()
	expected := &domain.User{UserID: memberID, Username: "carol", Name: "Carol", Role: domain.RoleMember}

	suite.mockUserService.On("GetUserByID",
		mock.AnythingOfType("*context.valueCtx"),
		memberID,
	).Return(expected, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/users/"+memberID, nil, suite.generateTestToken(memberID, domain.RoleMember))

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.UserResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(memberID, resp.UserID)

	suite.mockUserService.AssertExpectations(suite.T())
}

func (suite *UserHandlerTestSuite) TestGetUser_MemberReadingOtherUserForbidden() {
	memberID := uuid.NewString()
	otherID := uuid.NewString()

	w := suite.doRequest(http.MethodGet, "/api/v1/users/"+otherID, nil, suite.generateTestToken(memberID, domain.RoleMember))

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockUserService.AssertNotCalled(suite.T(), "GetUserByID")
}

func (suite *UserHandlerTestSuite) TestGetUser_AdminReadsAnyUser() {
	adminID := uuid.NewString()
	otherID := uuid.NewString()
	expected := &domain.User{UserID: otherID, Username: "dave", Name: "Dave", Role: domain.RoleMember}

	suite.mockUserService.On("GetUserByID",
		mock.AnythingOfType("*context.valueCtx"),
		otherID,
	).Return(expected, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/users/"+otherID, nil, suite.generateTestToken(adminID, domain.RoleAdmin))

	suite.Equal(http.StatusOK, w.Code)
	suite.mockUserService.AssertExpectations(suite.T())
}

func (suite *UserHandlerTestSuite) TestUpdateUser_MemberUpdatesOwnRecord() {
	memberID := uuid.NewString()
	newName := "Carol Renamed"
	reqBody := dto.UpdateUserRequest{Name: &newName}
	expected := &domain.User{UserID: memberID, Username: "carol", Name: newName, Role: domain.RoleMember}

	suite.mockUserService.On("UpdateUser",
		mock.AnythingOfType("*context.valueCtx"),
		memberID,
		reqBody,
		memberID,
	).Return(expected, nil).Once()

	body, _ := json.Marshal(reqBody)
	w := suite.doRequest(http.MethodPatch, "/api/v1/users/"+memberID, body, suite.generateTestToken(memberID, domain.RoleMember))

	suite.Equal(http.StatusOK, w.Code)
	suite.mockUserService.AssertExpectations(suite.T())
}

func (suite *UserHandlerTestSuite) TestUpdateUser_MemberUpdatingOtherUserForbidden() {
	memberID := uuid.NewString()
	otherID := uuid.NewString()
	newName := "Nope"

	body, _ := json.Marshal(dto.UpdateUserRequest{Name: &newName})
	w := suite.doRequest(http.MethodPatch, "/api/v1/users/"+otherID, body, suite.generateTestToken(memberID, domain.RoleMember))

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockUserService.AssertNotCalled(suite.T(), "UpdateUser")
}

func (suite *UserHandlerTestSuite) TestListUsers_MemberForbidden() {
	memberID := uuid.NewString()

	w := suite.doRequest(http.MethodGet, "/api/v1/users", nil, suite.generateTestToken(memberID, domain.RoleMember))

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockUserService.AssertNotCalled(suite.T(), "ListUsers")
}

func (suite *UserHandlerTestSuite) TestDeleteUser_MemberForbidden() {
	memberID := uuid.NewString()
	otherID := uuid.NewString()

	w := suite.doRequest(http.MethodDelete, "/api/v1/users/"+otherID, nil, suite.generateTestToken(memberID, domain.RoleMember))

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockUserService.AssertNotCalled(suite.T(), "DeleteUser")
}

func (suite *UserHandlerTestSuite) TestDeleteUser_AdminSuccess() {
	adminID := uuid.NewString()
	otherID := uuid.NewString()

	suite.mockUserService.On("DeleteUser",
		mock.AnythingOfType("*context.valueCtx"),
		otherID,
		adminID,
	).Return(nil).Once()

	w := suite.doRequest(http.MethodDelete, "/api/v1/users/"+otherID, nil, suite.generateTestToken(adminID, domain.RoleAdmin))

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockUserService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestUserHandler(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}
