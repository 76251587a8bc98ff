package stats

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/domain/employee"
	"github.com/attendly/attendance-backend-go/internal/pkg/database"
	"github.com/attendly/attendance-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statsTestDB(t *testing.T, ctx context.Context) *database.DB {
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

func seedRecord(t *testing.T, ctx context.Context, db *database.DB, empID, name string, typ attendance.Type, date string) {
	t.Helper()
	day, err := time.Parse("2006-01-02", date)
	require.NoError(t, err)

	employeeRepo := postgresql.NewEmployeeRepository(db)
	_, err = employeeRepo.Upsert(ctx, employee.Employee{ID: empID, Name: name})
	require.NoError(t, err)

	attendanceRepo := postgresql.NewAttendanceRepository(db)
	_, _, err = attendanceRepo.Upsert(ctx, attendance.Record{
		EmployeeID:   empID,
		EmployeeName: name,
		Type:         typ,
		Date:         day,
	})
	require.NoError(t, err)
}

func TestStatsService_GetStats_Empty(t *testing.T) {
	ctx := context.Background()
	db := statsTestDB(t, ctx)
	svc := NewStatsService(postgresql.NewStatsRepository(db))

	resp, err := svc.GetStats(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(0), resp.TotalEmployees)
	assert.Equal(t, int64(0), resp.TotalRecords)
	require.Len(t, resp.AttendanceByType, len(attendance.Types), "every type is present even with no records")
	for typ, count := range resp.AttendanceByType {
		assert.Equal(t, int64(0), count, "type %s", typ)
	}
}

func TestStatsService_GetStats(t *testing.T) {
	ctx := context.Background()
	db := statsTestDB(t, ctx)
	svc := NewStatsService(postgresql.NewStatsRepository(db))

	seedRecord(t, ctx, db, "E1", "Alice", attendance.TypeWFO, "2024-01-10")
	seedRecord(t, ctx, db, "E1", "Alice", attendance.TypeSickLeave, "2024-01-11")
	seedRecord(t, ctx, db, "E2", "Bob", attendance.TypeWFO, "2024-01-10")

	resp, err := svc.GetStats(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.TotalEmployees)
	assert.Equal(t, int64(3), resp.TotalRecords)
	assert.Equal(t, int64(2), resp.AttendanceByType["WFO"])
	assert.Equal(t, int64(1), resp.AttendanceByType["Sick Leave"])
	assert.Equal(t, int64(0), resp.AttendanceByType["Annual Leave"])
}
