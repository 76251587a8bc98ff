package attendance

import (
	"time"
)

// Record is one attendance entry for an employee on a calendar day.
// At most one record exists per (EmployeeID, Date); resubmissions for
// the same pair overwrite Type, EmployeeName and RecordedAt.
type Record struct {
	ID           string
	EmployeeID   string
	EmployeeName string
	Type         Type
	Date         time.Time
	RecordedAt   time.Time
}
