package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/giftvote/giftvote_app/internal/apperrors"
	"github.com/giftvote/giftvote_app/internal/core/domain"
	portssvc "github.com/giftvote/giftvote_app/internal/core/ports/services"
	"github.com/giftvote/giftvote_app/internal/core/services"
	"github.com/giftvote/giftvote_app/internal/dto"
	"github.com/giftvote/giftvote_app/internal/utils"
)

type EmployeeServiceTestSuite struct {
	suite.Suite
	mockEmployeeRepo *MockEmployeeRepository
	service          portssvc.EmployeeSvcFacade
	ctx              context.Context
}

func (suite *EmployeeServiceTestSuite) SetupTest() {
	suite.mockEmployeeRepo = new(MockEmployeeRepository)
	suite.service = services.NewEmployeeService(suite.mockEmployeeRepo)
	suite.ctx = context.Background()
}

func TestEmployeeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EmployeeServiceTestSuite))
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_Success() {
	req := dto.CreateEmployeeRequest{
		Username:    "alice",
		Password:    "correct-horse",
		FullName:    "Alice Example",
		DateOfBirth: time.Date(1991, 6, 3, 0, 0, 0, 0, time.UTC),
	}

	suite.mockEmployeeRepo.On("SaveEmployee", suite.ctx, mock.MatchedBy(func(e domain.Employee) bool {
		return e.Username == "alice" &&
			e.EmployeeID != "" &&
			e.PasswordHash != "correct-horse" &&
			utils.CheckPasswordHash("correct-horse", e.PasswordHash)
	})).Return(nil).Once()

	employee, err := suite.service.CreateEmployee(suite.ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(employee)
	assert.Equal(suite.T(), "alice", employee.Username)
	assert.Equal(suite.T(), "Alice Example", employee.FullName)
	suite.mockEmployeeRepo.AssertExpectations(suite.T())
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_DuplicateUsername() {
	req := dto.CreateEmployeeRequest{
		Username:    "alice",
		Password:    "correct-horse",
		FullName:    "Alice Example",
		DateOfBirth: time.Date(1991, 6, 3, 0, 0, 0, 0, time.UTC),
	}

	suite.mockEmployeeRepo.On("SaveEmployee", suite.ctx, mock.AnythingOfType("domain.Employee")).
		Return(apperrors.NewConflictError("username alice is already taken")).Once()

	employee, err := suite.service.CreateEmployee(suite.ctx, req)

	suite.Require().Error(err)
	assert.Nil(suite.T(), employee)
	assert.True(suite.T(), errors.Is(err, apperrors.ErrConflict))
}

func (suite *EmployeeServiceTestSuite) TestAuthenticateEmployee_Success() {
	hash, err := utils.HashPassword("correct-horse")
	suite.Require().NoError(err)
	stored := sampleEmployee("emp-alice", "alice")
	stored.PasswordHash = hash

	suite.mockEmployeeRepo.On("FindEmployeeByUsername", suite.ctx, "alice").Return(stored, nil).Once()

	employee, err := suite.service.AuthenticateEmployee(suite.ctx, "alice", "correct-horse")

	suite.Require().NoError(err)
	assert.Equal(suite.T(), "emp-alice", employee.EmployeeID)
}

func (suite *EmployeeServiceTestSuite) TestAuthenticateEmployee_WrongPassword() {
	hash, err := utils.HashPassword("correct-horse")
	suite.Require().NoError(err)
	stored := sampleEmployee("emp-alice", "alice")
	stored.PasswordHash = hash

	suite.mockEmployeeRepo.On("FindEmployeeByUsername", suite.ctx, "alice").Return(stored, nil).Once()

	employee, err := suite.service.AuthenticateEmployee(suite.ctx, "alice", "wrong-horse")

	suite.Require().Error(err)
	assert.Nil(suite.T(), employee)
	assert.True(suite.T(), errors.Is(err, apperrors.ErrUnauthorized))
}

func (suite *EmployeeServiceTestSuite) TestAuthenticateEmployee_UnknownUsername() {
	// Unknown usernames come back identical to wrong passwords.
	suite.mockEmployeeRepo.On("FindEmployeeByUsername", suite.ctx, "nobody").Return(nil, apperrors.ErrNotFound).Once()

	employee, err := suite.service.AuthenticateEmployee(suite.ctx, "nobody", "whatever")

	suite.Require().Error(err)
	assert.Nil(suite.T(), employee)
	assert.True(suite.T(), errors.Is(err, apperrors.ErrUnauthorized))
}

func (suite *EmployeeServiceTestSuite) TestGetEmployeeByID_PassesThrough() {
	stored := sampleEmployee("emp-alice", "alice")
	suite.mockEmployeeRepo.On("FindEmployeeByID", suite.ctx, "emp-alice").Return(stored, nil).Once()

	employee, err := suite.service.GetEmployeeByID(suite.ctx, "emp-alice")

	suite.Require().NoError(err)
	assert.Equal(suite.T(), "alice", employee.Username)
}
