package attendance

import (
	"context"
	"os"
	"testing"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/pkg/database"
	"github.com/attendly/attendance-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func attendanceTestDB(t *testing.T, ctx context.Context) *database.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping store-backed tests")
	}

	db, err := database.NewPostgreSQLDB(dsn)
	require.NoError(t, err, "failed to connect to test database")
	t.Cleanup(db.Close)

	require.NoError(t, database.EnsureSchema(ctx, db))

	_, err = db.Exec(ctx, "TRUNCATE TABLE attendance_records, employees CASCADE")
	require.NoError(t, err)

	return db
}

func newTestService(db *database.DB) attendance.AttendanceService {
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	return NewAttendanceService(db, attendanceRepo, employeeRepo)
}

// ===== SUBMISSION TESTS =====

func TestAttendanceService_Submit_SingleDay(t *testing.T) {
	ctx := context.Background()
	db := attendanceTestDB(t, ctx)
	svc := newTestService(db)

	result, err := svc.Submit(ctx, attendance.SubmitAttendanceRequest{
		EmployeeID:   "E1",
		EmployeeName: "Alice",
		Type:         "WFO",
		Date:         "2024-01-10",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, result.TotalDays)
	assert.Equal(t, 1, result.Succeeded)
	assert.Equal(t, 0, result.Failed)
	require.Len(t, result.Dates, 1)
	assert.Equal(t, attendance.OutcomeCreated, result.Dates[0].Status)
	require.NotNil(t, result.Dates[0].Record)
	assert.Equal(t, "2024-01-10", result.Dates[0].Record.Date)
	assert.Equal(t, "Alice", result.Dates[0].Record.EmployeeName)
	assert.NotEmpty(t, result.Dates[0].Record.ID)
}

func TestAttendanceService_Submit_Idempotent(t *testing.T) {
	ctx := context.Background()
	db := attendanceTestDB(t, ctx)
	svc := newTestService(db)

	first, err := svc.Submit(ctx, attendance.SubmitAttendanceRequest{
		EmployeeID:   "E1",
		EmployeeName: "Alice",
		Type:         "WFO",
		Date:         "2024-01-10",
	})
	require.NoError(t, err)
	assert.Equal(t, attendance.OutcomeCreated, first.Dates[0].Status)

	second, err := svc.Submit(ctx, attendance.SubmitAttendanceRequest{
		EmployeeID:   "E1",
		EmployeeName: "Alice B.",
		Type:         "WFH",
		Date:         "2024-01-10",
	})
	require.NoError(t, err)
	assert.Equal(t, attendance.OutcomeUpdated, second.Dates[0].Status)
	assert.Equal(t, first.Dates[0].Record.ID, second.Dates[0].Record.ID, "the same row is overwritten, not duplicated")

	records, err := svc.ListByEmployee(ctx, "E1")
	require.NoError(t, err)
	require.Len(t, records, 1, "at most one record per (employee, date)")
	assert.Equal(t, "WFH", records[0].Type)
	assert.Equal(t, "Alice B.", records[0].EmployeeName, "latest name wins")
}

func TestAttendanceService_Submit_LeaveRangeOverwrites(t *testing.T) {
	ctx := context.Background()
	db := attendanceTestDB(t, ctx)
	svc := newTestService(db)

	_, err := svc.Submit(ctx, attendance.SubmitAttendanceRequest{
		EmployeeID:   "E1",
		EmployeeName: "Alice",
		Type:         "WFO",
		Date:         "2024-01-10",
	})
	require.NoError(t, err)

	result, err := svc.Submit(ctx, attendance.SubmitAttendanceRequest{
		EmployeeID:   "E1",
		EmployeeName: "Alice",
		Type:         "Sick Leave",
		StartDate:    "2024-01-10",
		EndDate:      "2024-01-12",
	})
	require.NoError(t, err)
	assert.Equal(t, 3, result.TotalDays)
	assert.Equal(t, 3, result.Succeeded)
	assert.Equal(t, attendance.OutcomeUpdated, result.Dates[0].Status, "the WFO day is overwritten")
	assert.Equal(t, attendance.OutcomeCreated, result.Dates[1].Status)
	assert.Equal(t, attendance.OutcomeCreated, result.Dates[2].Status)

	records, err := svc.ListByEmployee(ctx, "E1")
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "2024-01-12", records[0].Date, "newest first")
	assert.Equal(t, "2024-01-11", records[1].Date)
	assert.Equal(t, "2024-01-10", records[2].Date)
	for _, rec := range records {
		assert.Equal(t, "Sick Leave", rec.Type)
	}
}

func TestAttendanceService_Submit_SingleDateLeaveIsOneDay(t *testing.T) {
	ctx := context.Background()
	db := attendanceTestDB(t, ctx)
	svc := newTestService(db)

	result, err := svc.Submit(ctx, attendance.SubmitAttendanceRequest{
		EmployeeID:   "E2",
		EmployeeName: "Bob",
		Type:         "Annual Leave",
		Date:         "2024-02-01",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.TotalDays)
	assert.Equal(t, 1, result.Succeeded)
}

func TestAttendanceService_Submit_InvalidRange(t *testing.T) {
	ctx := context.Background()
	db := attendanceTestDB(t, ctx)
	svc := newTestService(db)

	_, err := svc.Submit(ctx, attendance.SubmitAttendanceRequest{
		EmployeeID:   "E1",
		EmployeeName: "Alice",
		Type:         "Sick Leave",
		StartDate:    "2024-01-12",
		EndDate:      "2024-01-10",
	})
	assert.ErrorIs(t, err, attendance.ErrInvalidDateRange)

	records, err := svc.ListByEmployee(ctx, "E1")
	require.NoError(t, err)
	assert.Empty(t, records, "nothing is written when the range is rejected")
}

func TestAttendanceService_Submit_MissingFields(t *testing.T) {
	ctx := context.Background()
	db := attendanceTestDB(t, ctx)
	svc := newTestService(db)

	_, err := svc.Submit(ctx, attendance.SubmitAttendanceRequest{
		EmployeeID: "E1",
	})
	require.Error(t, err)
}

// ===== QUERY TESTS =====

func TestAttendanceService_List_Filtered(t *testing.T) {
	ctx := context.Background()
	db := attendanceTestDB(t, ctx)
	svc := newTestService(db)

	_, err := svc.Submit(ctx, attendance.SubmitAttendanceRequest{
		EmployeeID: "E1", EmployeeName: "Alice", Type: "Sick Leave",
		StartDate: "2024-01-10", EndDate: "2024-01-12",
	})
	require.NoError(t, err)
	_, err = svc.Submit(ctx, attendance.SubmitAttendanceRequest{
		EmployeeID: "E2", EmployeeName: "Bob", Type: "WFO", Date: "2024-01-11",
	})
	require.NoError(t, err)

	employeeID := "E1"
	typ := "Sick Leave"
	records, err := svc.List(ctx, attendance.RecordFilter{
		EmployeeID: &employeeID,
		Type:       &typ,
	})
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "2024-01-12", records[0].Date)
	assert.Equal(t, "2024-01-10", records[2].Date)

	// Same date, two employees: tie-break is employee id ascending.
	start := "2024-01-11"
	end := "2024-01-11"
	records, err = svc.List(ctx, attendance.RecordFilter{StartDate: &start, EndDate: &end})
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "E1", records[0].EmployeeID)
	assert.Equal(t, "E2", records[1].EmployeeID)

	// No filters returns everything.
	records, err = svc.List(ctx, attendance.RecordFilter{})
	require.NoError(t, err)
	assert.Len(t, records, 4)
}

func TestAttendanceService_ListByEmployee_UnknownIsEmpty(t *testing.T) {
	ctx := context.Background()
	db := attendanceTestDB(t, ctx)
	svc := newTestService(db)

	records, err := svc.ListByEmployee(ctx, "no-such-employee")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestAttendanceService_ListByEmployeeRange(t *testing.T) {
	ctx := context.Background()
	db := attendanceTestDB(t, ctx)
	svc := newTestService(db)

	_, err := svc.Submit(ctx, attendance.SubmitAttendanceRequest{
		EmployeeID: "E1", EmployeeName: "Alice", Type: "Planned Leave",
		StartDate: "2024-03-01", EndDate: "2024-03-05",
	})
	require.NoError(t, err)

	records, err := svc.ListByEmployeeRange(ctx, "E1", "2024-03-02", "2024-03-04")
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "2024-03-04", records[0].Date)
	assert.Equal(t, "2024-03-02", records[2].Date)

	_, err = svc.ListByEmployeeRange(ctx, "E1", "2024-03-05", "2024-03-01")
	assert.ErrorIs(t, err, attendance.ErrInvalidDateRange)
}

// ===== DELETE TESTS =====

func TestAttendanceService_Delete(t *testing.T) {
	ctx := context.Background()
	db := attendanceTestDB(t, ctx)
	svc := newTestService(db)

	result, err := svc.Submit(ctx, attendance.SubmitAttendanceRequest{
		EmployeeID: "E1", EmployeeName: "Alice", Type: "Casual Leave",
		StartDate: "2024-04-01", EndDate: "2024-04-02",
	})
	require.NoError(t, err)
	require.Equal(t, 2, result.Succeeded)

	require.NoError(t, svc.Delete(ctx, result.Dates[0].Record.ID))

	records, err := svc.ListByEmployee(ctx, "E1")
	require.NoError(t, err)
	require.Len(t, records, 1, "only the targeted row is removed")
	assert.Equal(t, "2024-04-02", records[0].Date)
}

func TestAttendanceService_Delete_NotFound(t *testing.T) {
	ctx := context.Background()
	db := attendanceTestDB(t, ctx)
	svc := newTestService(db)

	err := svc.Delete(ctx, "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, attendance.ErrRecordNotFound)
}
