package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/giftvote/giftvote_app/internal/apperrors"
	"github.com/giftvote/giftvote_app/internal/core/domain"
	portsrepo "github.com/giftvote/giftvote_app/internal/core/ports/repositories"
	portssvc "github.com/giftvote/giftvote_app/internal/core/ports/services"
	"github.com/giftvote/giftvote_app/internal/dto"
	"github.com/giftvote/giftvote_app/internal/middleware"
	"github.com/giftvote/giftvote_app/internal/utils"
)

// employeeService provides employee onboarding and authentication.
type employeeService struct {
	employeeRepo portsrepo.EmployeeRepositoryFacade
}

// NewEmployeeService creates a new EmployeeService.
func NewEmployeeService(employeeRepo portsrepo.EmployeeRepositoryFacade) portssvc.EmployeeSvcFacade {
	return &employeeService{employeeRepo: employeeRepo}
}

// Ensure employeeService implements the portssvc.EmployeeSvcFacade interface
var _ portssvc.EmployeeSvcFacade = (*employeeService)(nil)

func (s *employeeService) CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest) (*domain.Employee, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Error("Failed to hash password", slog.String("error", err.Error()))
		return nil, apperrors.NewAppError(500, "failed to hash password", err)
	}

	employee := domain.Employee{
		EmployeeID:   uuid.NewString(),
		Username:     req.Username,
		PasswordHash: passwordHash,
		FullName:     req.FullName,
		DateOfBirth:  req.DateOfBirth,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.employeeRepo.SaveEmployee(ctx, employee); err != nil {
		logger.Error("Failed to save employee", slog.String("error", err.Error()), slog.String("username", req.Username))
		return nil, err
	}

	logger.Info("Employee registered", slog.String("employee_id", employee.EmployeeID))
	return &employee, nil
}

func (s *employeeService) GetEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	return s.employeeRepo.FindEmployeeByID(ctx, employeeID)
}

func (s *employeeService) GetEmployeeByUsername(ctx context.Context, username string) (*domain.Employee, error) {
	return s.employeeRepo.FindEmployeeByUsername(ctx, username)
}

func (s *employeeService) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	return s.employeeRepo.FindEmployees(ctx)
}

// AuthenticateEmployee verifies a username/password pair. Both a missing
// employee and a wrong password come back as Unauthorized so callers
// cannot probe for valid usernames.
func (s *employeeService) AuthenticateEmployee(ctx context.Context, username, password string) (*domain.Employee, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	employee, err := s.employeeRepo.FindEmployeeByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(password, employee.PasswordHash) {
		logger.Warn("Password mismatch on login", slog.String("username", username))
		return nil, apperrors.ErrUnauthorized
	}

	return employee, nil
}
