package postgresql

import (
	"context"
	"fmt"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/pkg/database"
	"github.com/google/uuid"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Upsert implements attendance.AttendanceRepository.
func (r *attendanceRepository) Upsert(ctx context.Context, record attendance.Record) (attendance.Record, bool, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return attendance.Record{}, false, fmt.Errorf("failed to generate record id: %w", err)
	}

	// The unique constraint on (emp_id, date) arbitrates concurrent
	// submissions; xmax = 0 distinguishes a fresh insert from an
	// overwrite of an existing row.
	query := `
		INSERT INTO attendance_records (id, emp_id, emp_name, attendance_type, date, timestamp)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (emp_id, date) DO UPDATE
		SET emp_name        = EXCLUDED.emp_name,
		    attendance_type = EXCLUDED.attendance_type,
		    timestamp       = NOW()
		RETURNING id, timestamp, (xmax = 0) AS inserted
	`

	var created bool
	err = q.QueryRow(ctx, query,
		id.String(),
		record.EmployeeID,
		record.EmployeeName,
		string(record.Type),
		record.Date,
	).Scan(&record.ID, &record.RecordedAt, &created)
	if err != nil {
		return attendance.Record{}, false, fmt.Errorf("failed to upsert attendance record: %w", err)
	}

	return record, created, nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepository) List(ctx context.Context, filter attendance.RecordFilter) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND emp_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}

	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}

	if filter.Type != nil && *filter.Type != "" {
		baseWhere += fmt.Sprintf(" AND attendance_type = $%d", argIdx)
		args = append(args, *filter.Type)
		argIdx++
	}

	query := `
		SELECT id, emp_id, emp_name, attendance_type, date, timestamp
		FROM attendance_records
		WHERE ` + baseWhere + `
		ORDER BY date DESC, emp_id ASC
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		var typ string
		if err := rows.Scan(&rec.ID, &rec.EmployeeID, &rec.EmployeeName, &typ, &rec.Date, &rec.RecordedAt); err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		rec.Type = attendance.Type(typ)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read attendance records: %w", err)
	}

	return records, nil
}

// Delete implements attendance.AttendanceRepository.
func (r *attendanceRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM attendance_records WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance record: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}

	return nil
}
