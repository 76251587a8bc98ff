package employee

import (
	"context"
)

// EmployeeRepository defines data access for employees.
type EmployeeRepository interface {
	// Upsert creates the employee or overwrites its name when the id
	// already exists. Employees are never deleted by this service.
	Upsert(ctx context.Context, emp Employee) (Employee, error)

	// List retrieves all employees ordered by name ascending.
	List(ctx context.Context) ([]Employee, error)

	// GetByID retrieves one employee. Returns ErrEmployeeNotFound when
	// absent.
	GetByID(ctx context.Context, id string) (Employee, error)
}
