package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/employee"
	"github.com/attendly/attendance-backend-go/internal/pkg/database"
)

type EmployeeServiceImpl struct {
	db *database.DB
	employee.EmployeeRepository
}

func NewEmployeeService(db *database.DB, employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:                 db,
		EmployeeRepository: employeeRepo,
	}
}

// Upsert implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Upsert(ctx context.Context, req employee.UpsertEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	saved, err := s.EmployeeRepository.Upsert(ctx, employee.Employee{
		ID:   req.ID,
		Name: req.Name,
	})
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to upsert employee: %w", err)
	}

	return employeeToResponse(saved), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employeeToResponse(emp))
	}
	return responses, nil
}

func employeeToResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:        emp.ID,
		Name:      emp.Name,
		CreatedAt: emp.CreatedAt.Format(time.RFC3339),
		UpdatedAt: emp.UpdatedAt.Format(time.RFC3339),
	}
}
