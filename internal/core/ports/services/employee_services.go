package services

import (
	"context"

	"github.com/giftvote/giftvote_app/internal/core/domain"
	"github.com/giftvote/giftvote_app/internal/dto"
)

// EmployeeReaderSvc defines read operations for employee data
type EmployeeReaderSvc interface {
	// GetEmployeeByID retrieves an employee by ID.
	GetEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)

	// GetEmployeeByUsername retrieves an employee by login name.
	GetEmployeeByUsername(ctx context.Context, username string) (*domain.Employee, error)

	// ListEmployees retrieves all employees.
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
}

// EmployeeWriterSvc defines write operations for employee data
type EmployeeWriterSvc interface {
	// CreateEmployee registers a new employee.
	CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest) (*domain.Employee, error)
}

// EmployeeAuthSvc defines operations for employee authentication
type EmployeeAuthSvc interface {
	// AuthenticateEmployee authenticates an employee with username and password.
	AuthenticateEmployee(ctx context.Context, username, password string) (*domain.Employee, error)
}

// EmployeeSvcFacade combines all employee-related service interfaces
type EmployeeSvcFacade interface {
	EmployeeReaderSvc
	EmployeeWriterSvc
	EmployeeAuthSvc
}
