package pgsql

import (
	"context"
	"errors"

	"github.com/giftvote/giftvote_app/internal/apperrors"
	"github.com/giftvote/giftvote_app/internal/core/domain"
	portsrepo "github.com/giftvote/giftvote_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxEmployeeRepository struct {
	BaseRepository
}

// newPgxEmployeeRepository creates a new repository for employee data.
func newPgxEmployeeRepository(pool *pgxpool.Pool) portsrepo.EmployeeRepositoryFacade {
	return &PgxEmployeeRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxEmployeeRepository implements portsrepo.EmployeeRepositoryFacade
var _ portsrepo.EmployeeRepositoryFacade = (*PgxEmployeeRepository)(nil)

var FULL_EMPLOYEE_SELECT_QUERY = `
SELECT
	e.employee_id, e.username, e.password_hash, e.full_name, e.date_of_birth, e.created_at
FROM employees e
`

// getEmployees runs the select query with the given filter and collects rows.
func (r *PgxEmployeeRepository) getEmployees(ctx context.Context, filterQuery string, args ...any) ([]domain.Employee, error) {
	query := FULL_EMPLOYEE_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query employees", err)
	}
	defer rows.Close()
	employees, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Employee])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Employee{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect employee rows", err)
	}
	return employees, nil
}

func (r *PgxEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	query := `
		INSERT INTO employees (employee_id, username, password_hash, full_name, date_of_birth, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query,
		employee.EmployeeID,
		employee.Username,
		employee.PasswordHash,
		employee.FullName,
		employee.DateOfBirth,
		employee.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.NewConflictError("username " + employee.Username + " already taken")
		}
		return apperrors.NewAppError(500, "failed to save employee "+employee.EmployeeID, err)
	}
	return nil
}

func (r *PgxEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	query := `WHERE e.employee_id = $1`
	employees, err := r.getEmployees(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	if len(employees) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &employees[0], nil
}

func (r *PgxEmployeeRepository) FindEmployeeByUsername(ctx context.Context, username string) (*domain.Employee, error) {
	query := `WHERE e.username = $1`
	employees, err := r.getEmployees(ctx, query, username)
	if err != nil {
		return nil, err
	}
	if len(employees) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &employees[0], nil
}

func (r *PgxEmployeeRepository) FindEmployees(ctx context.Context) ([]domain.Employee, error) {
	query := `ORDER BY e.full_name, e.employee_id`
	return r.getEmployees(ctx, query)
}

func (r *PgxEmployeeRepository) FindEmployeesByIDs(ctx context.Context, employeeIDs []string) ([]domain.Employee, error) {
	if len(employeeIDs) == 0 {
		return []domain.Employee{}, nil
	}
	query := `WHERE e.employee_id = ANY($1) ORDER BY e.full_name, e.employee_id`
	return r.getEmployees(ctx, query, employeeIDs)
}
