package attendance

import (
	"strings"

	"github.com/attendly/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

// SubmitAttendanceRequest records attendance for one employee, either
// on a single day (date) or over an inclusive range
// (start_date/end_date). Leave-category types are always treated as
// range submissions.
type SubmitAttendanceRequest struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Type         string `json:"attendance_type"`
	Date         string `json:"date,omitempty"`
	StartDate    string `json:"start_date,omitempty"`
	EndDate      string `json:"end_date,omitempty"`
}

// FromDate returns the first day of the submission: start_date when
// supplied, the single date otherwise.
func (r *SubmitAttendanceRequest) FromDate() string {
	if !validator.IsEmpty(r.StartDate) {
		return r.StartDate
	}
	return r.Date
}

// ToDate returns the last day of the submission, falling back to the
// first day when no end_date was supplied.
func (r *SubmitAttendanceRequest) ToDate() string {
	if !validator.IsEmpty(r.EndDate) {
		return r.EndDate
	}
	return r.FromDate()
}

func (r *SubmitAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.EmployeeName) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_name",
			Message: "employee_name is required",
		})
	}

	if validator.IsEmpty(r.Type) {
		errs = append(errs, validator.ValidationError{
			Field:   "attendance_type",
			Message: "attendance_type is required",
		})
	} else if !validator.IsInSlice(r.Type, TypeNames()) {
		errs = append(errs, validator.ValidationError{
			Field:   "attendance_type",
			Message: "attendance_type must be one of: " + strings.Join(TypeNames(), ", "),
		})
	}

	if validator.IsEmpty(r.FromDate()) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date or start_date is required",
		})
	}

	for field, value := range map[string]string{
		"date":       r.Date,
		"start_date": r.StartDate,
		"end_date":   r.EndDate,
	} {
		if validator.IsEmpty(value) {
			continue
		}
		if _, valid := validator.IsValidDate(value); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// RecordFilter narrows a record listing. All filters are optional and
// conjunctive; no filters returns the full table.
type RecordFilter struct {
	EmployeeID *string `json:"employee_id,omitempty"`
	StartDate  *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate    *string `json:"end_date,omitempty"`   // YYYY-MM-DD
	Type       *string `json:"attendance_type,omitempty"`
}

func (f *RecordFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.StartDate != nil && *f.StartDate != "" {
		if _, valid := validator.IsValidDate(*f.StartDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.EndDate != nil && *f.EndDate != "" {
		if _, valid := validator.IsValidDate(*f.EndDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.Type != nil && *f.Type != "" {
		if !validator.IsInSlice(*f.Type, TypeNames()) {
			errs = append(errs, validator.ValidationError{
				Field:   "attendance_type",
				Message: "attendance_type must be one of: " + strings.Join(TypeNames(), ", "),
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RecordResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Type         string `json:"attendance_type"`
	Date         string `json:"date"`
	RecordedAt   string `json:"recorded_at"`
}

// Per-date submission outcomes.
const (
	OutcomeCreated = "created"
	OutcomeUpdated = "updated"
	OutcomeFailed  = "failed"
)

// DateOutcome reports what happened to a single day of a submission.
type DateOutcome struct {
	Date    string          `json:"date"`
	Status  string          `json:"status"`
	Message string          `json:"message,omitempty"`
	Record  *RecordResponse `json:"record,omitempty"`
}

// SubmitAttendanceResponse reports the per-date outcomes of a
// submission. Dates holds one outcome per attempted day; days skipped
// after a wholesale store failure are not attempted, so
// Succeeded+Failed can be less than TotalDays.
type SubmitAttendanceResponse struct {
	EmployeeID string        `json:"employee_id"`
	Type       string        `json:"attendance_type"`
	TotalDays  int           `json:"total_days"`
	Succeeded  int           `json:"succeeded"`
	Failed     int           `json:"failed"`
	Dates      []DateOutcome `json:"dates"`
}
