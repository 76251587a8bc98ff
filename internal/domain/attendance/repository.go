package attendance

import (
	"context"
)

// AttendanceRepository defines data access for attendance records.
type AttendanceRepository interface {
	// Upsert inserts the record or, when one already exists for
	// (EmployeeID, Date), overwrites its type, employee name and
	// recorded-at timestamp. The store's unique constraint arbitrates
	// concurrent submissions. Reports whether a new row was created.
	Upsert(ctx context.Context, record Record) (Record, bool, error)

	// List retrieves records matching the filter, ordered date
	// descending with employee id ascending as tie-break.
	List(ctx context.Context, filter RecordFilter) ([]Record, error)

	// Delete removes the record with the given surrogate id.
	// Returns ErrRecordNotFound when no such record exists.
	Delete(ctx context.Context, id string) error
}
