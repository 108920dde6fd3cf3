package dto

import (
	"time"

	"github.com/giftvote/giftvote_app/internal/core/domain"
)

// --- Employee DTOs ---

// CreateEmployeeRequest defines data for registering a new employee.
type CreateEmployeeRequest struct {
	Username    string    `json:"username" binding:"required,min=3,max=50"`
	Password    string    `json:"password" binding:"required,min=8"`
	FullName    string    `json:"fullName" binding:"required"`
	DateOfBirth time.Time `json:"dateOfBirth" binding:"required,notfuture"`
}

// EmployeeResponse defines data returned for an employee.
type EmployeeResponse struct {
	EmployeeID  string    `json:"employeeID"`
	Username    string    `json:"username"`
	FullName    string    `json:"fullName"`
	DateOfBirth time.Time `json:"dateOfBirth"`
}

// ListEmployeesResponse wraps the list of employees.
type ListEmployeesResponse struct {
	Employees []EmployeeResponse `json:"employees"`
}

// ToEmployeeResponse converts a domain.Employee to EmployeeResponse DTO.
func ToEmployeeResponse(e *domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		EmployeeID:  e.EmployeeID,
		Username:    e.Username,
		FullName:    e.FullName,
		DateOfBirth: e.DateOfBirth,
	}
}

// ToEmployeeResponses converts a slice of domain.Employee to []EmployeeResponse.
func ToEmployeeResponses(employees []domain.Employee) []EmployeeResponse {
	responses := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		responses[i] = ToEmployeeResponse(&e)
	}
	return responses
}

// ToListEmployeesResponse converts a slice of domain.Employee to ListEmployeesResponse DTO.
func ToListEmployeesResponse(employees []domain.Employee) ListEmployeesResponse {
	return ListEmployeesResponse{
		Employees: ToEmployeeResponses(employees),
	}
}
