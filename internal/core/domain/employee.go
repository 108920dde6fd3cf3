package domain

import "time"

// Employee represents a member of the office in the domain. Employees are
// created at onboarding and are immutable identity for voting purposes;
// the poll core never mutates or deletes them.
type Employee struct {
	EmployeeID   string    `json:"employeeID" db:"employee_id"` // Primary Key (UUID)
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
	FullName     string    `json:"fullName" db:"full_name"`
	DateOfBirth  time.Time `json:"dateOfBirth" db:"date_of_birth"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}
