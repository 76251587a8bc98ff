package attendance

import "errors"

// Attendance domain errors
var (
	ErrInvalidDateRange = errors.New("start date must not be after end date")
	ErrRecordNotFound   = errors.New("attendance record not found")
)
