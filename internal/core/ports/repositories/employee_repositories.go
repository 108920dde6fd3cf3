package repositories

import (
	"context"

	"github.com/giftvote/giftvote_app/internal/core/domain"
)

// EmployeeReader defines read operations for employee data
type EmployeeReader interface {
	// FindEmployeeByID retrieves a specific employee by their ID.
	FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)

	// FindEmployeeByUsername retrieves an employee by their login name.
	FindEmployeeByUsername(ctx context.Context, username string) (*domain.Employee, error)

	// FindEmployees retrieves all employees ordered by full name.
	FindEmployees(ctx context.Context) ([]domain.Employee, error)

	// FindEmployeesByIDs retrieves the employees matching the given IDs.
	FindEmployeesByIDs(ctx context.Context, employeeIDs []string) ([]domain.Employee, error)
}

// EmployeeWriter defines write operations for employee data
type EmployeeWriter interface {
	// SaveEmployee persists a new employee.
	SaveEmployee(ctx context.Context, employee domain.Employee) error
}

// EmployeeRepositoryFacade combines all employee-related repository interfaces
type EmployeeRepositoryFacade interface {
	EmployeeReader
	EmployeeWriter
}
