package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/domain/employee"
	"github.com/attendly/attendance-backend-go/internal/pkg/database"
	"github.com/attendly/attendance-backend-go/internal/pkg/validator"
	"github.com/attendly/attendance-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.AttendanceRepository
	employee.EmployeeRepository
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                   db,
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
	}
}

// Submit implements attendance.AttendanceService.
//
// Leave-category types cover the inclusive [from, to] range; all other
// types record the from-date only. Each day runs in its own
// transaction: the employee upsert and the record upsert land together
// or not at all, while the days stay independent of each other. A
// store-level failure aborts the remaining days.
func (s *AttendanceServiceImpl) Submit(ctx context.Context, req attendance.SubmitAttendanceRequest) (attendance.SubmitAttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.SubmitAttendanceResponse{}, err
	}

	typ := attendance.Type(req.Type)

	from, _ := validator.IsValidDate(req.FromDate())
	to := from
	if typ.IsLeave() {
		to, _ = validator.IsValidDate(req.ToDate())
	}

	dateRange, err := attendance.NewDateRange(from, to)
	if err != nil {
		return attendance.SubmitAttendanceResponse{}, err
	}
	days, err := dateRange.Days()
	if err != nil {
		return attendance.SubmitAttendanceResponse{}, err
	}

	result := attendance.SubmitAttendanceResponse{
		EmployeeID: req.EmployeeID,
		Type:       req.Type,
		TotalDays:  dateRange.Len(),
	}

	var abortErr error
	for day := range days {
		var saved attendance.Record
		var created bool

		err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
			txCtx := context.WithValue(ctx, "tx", tx)

			if _, err := s.EmployeeRepository.Upsert(txCtx, employee.Employee{
				ID:   req.EmployeeID,
				Name: req.EmployeeName,
			}); err != nil {
				return err
			}

			var err error
			saved, created, err = s.AttendanceRepository.Upsert(txCtx, attendance.Record{
				EmployeeID:   req.EmployeeID,
				EmployeeName: req.EmployeeName,
				Type:         typ,
				Date:         day,
			})
			return err
		})

		if err != nil {
			result.Failed++
			result.Dates = append(result.Dates, attendance.DateOutcome{
				Date:    day.Format("2006-01-02"),
				Status:  attendance.OutcomeFailed,
				Message: err.Error(),
			})
			if storeUnreachable(err) {
				abortErr = err
				break
			}
			continue
		}

		status := attendance.OutcomeUpdated
		if created {
			status = attendance.OutcomeCreated
		}
		resp := recordToResponse(saved)
		result.Succeeded++
		result.Dates = append(result.Dates, attendance.DateOutcome{
			Date:   day.Format("2006-01-02"),
			Status: status,
			Record: &resp,
		})
	}

	if result.Succeeded == 0 && abortErr != nil {
		return result, fmt.Errorf("submission failed before any date was recorded: %w", abortErr)
	}

	return result, nil
}

// List implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) List(ctx context.Context, filter attendance.RecordFilter) ([]attendance.RecordResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	records, err := s.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}

	return recordsToResponses(records), nil
}

// ListByEmployee implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.RecordResponse, error) {
	if validator.IsEmpty(employeeID) {
		return nil, validator.ValidationErrors{{
			Field:   "employee_id",
			Message: "employee_id is required",
		}}
	}

	filter := attendance.RecordFilter{EmployeeID: &employeeID}
	records, err := s.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}

	return recordsToResponses(records), nil
}

// ListByEmployeeRange implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListByEmployeeRange(ctx context.Context, employeeID, startDate, endDate string) ([]attendance.RecordResponse, error) {
	filter := attendance.RecordFilter{
		EmployeeID: &employeeID,
		StartDate:  &startDate,
		EndDate:    &endDate,
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	if validator.IsEmpty(employeeID) {
		return nil, validator.ValidationErrors{{
			Field:   "employee_id",
			Message: "employee_id is required",
		}}
	}

	start, _ := validator.IsValidDate(startDate)
	end, _ := validator.IsValidDate(endDate)
	if start.After(end) {
		return nil, attendance.ErrInvalidDateRange
	}

	records, err := s.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}

	return recordsToResponses(records), nil
}

// Delete implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Delete(ctx context.Context, id string) error {
	if validator.IsEmpty(id) {
		return validator.ValidationErrors{{
			Field:   "id",
			Message: "id is required",
		}}
	}

	return s.AttendanceRepository.Delete(ctx, id)
}

// storeUnreachable reports whether err is a connection-level failure
// rather than a row-level rejection. Row-level errors fail the one
// date; connection failures abort the whole submission.
func storeUnreachable(err error) bool {
	var pgErr *pgconn.PgError
	return !errors.As(err, &pgErr)
}

func recordToResponse(rec attendance.Record) attendance.RecordResponse {
	return attendance.RecordResponse{
		ID:           rec.ID,
		EmployeeID:   rec.EmployeeID,
		EmployeeName: rec.EmployeeName,
		Type:         rec.Type.String(),
		Date:         rec.Date.Format("2006-01-02"),
		RecordedAt:   rec.RecordedAt.Format(time.RFC3339),
	}
}

func recordsToResponses(records []attendance.Record) []attendance.RecordResponse {
	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, recordToResponse(rec))
	}
	return responses
}
