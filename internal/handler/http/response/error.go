package response

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/domain/auth"
	"github.com/attendly/attendance-backend-go/internal/domain/employee"
	"github.com/attendly/attendance-backend-go/internal/pkg/validator"
	"github.com/jackc/pgx/v5/pgconn"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Validation errors are detected before any store call; absent or
	// malformed fields all map to MISSING_FIELD with per-field details.
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		MissingField(w, validationErrs.ToMap())
		return
	}

	switch {
	case errors.Is(err, attendance.ErrInvalidDateRange):
		InvalidRange(w, attendance.ErrInvalidDateRange.Error())
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, err.Error())

	default:
		// Upserts subsume conflicts, so a surviving integrity error
		// means the store rejected the row for another reason.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && strings.HasPrefix(pgErr.Code, "23") {
			slog.Error("store rejected write", "code", pgErr.Code, "error", err)
			ConstraintViolation(w, "The store rejected the operation")
			return
		}

		slog.Error("store operation failed", "error", err)
		StoreUnavailable(w, "The attendance store is unavailable")
	}
}
