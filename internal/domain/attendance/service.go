package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// Submit validates the request, expands leave-category types over
	// the requested date range and upserts one record per day. Each
	// day's employee-ensure and record-ensure land atomically; days are
	// independent of each other.
	Submit(ctx context.Context, req SubmitAttendanceRequest) (SubmitAttendanceResponse, error)

	// List retrieves records matching the filter, newest first.
	List(ctx context.Context, filter RecordFilter) ([]RecordResponse, error)

	// ListByEmployee retrieves all records for one employee, newest
	// first. An unknown employee yields an empty list, not an error.
	ListByEmployee(ctx context.Context, employeeID string) ([]RecordResponse, error)

	// ListByEmployeeRange retrieves one employee's records within the
	// inclusive [start, end] date bounds.
	ListByEmployeeRange(ctx context.Context, employeeID, startDate, endDate string) ([]RecordResponse, error)

	// Delete removes a record by surrogate id.
	Delete(ctx context.Context, id string) error
}
