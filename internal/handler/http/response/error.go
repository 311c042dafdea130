package response

import (
	"errors"
	"net/http"

	"github.com/fintradify/attendance-backend-go/internal/domain/attendance"
	"github.com/fintradify/attendance-backend-go/internal/domain/auth"
	"github.com/fintradify/attendance-backend-go/internal/domain/employee"
	"github.com/fintradify/attendance-backend-go/internal/domain/report"
	"github.com/fintradify/attendance-backend-go/internal/domain/salaryslip"
	"github.com/fintradify/attendance-backend-go/internal/pkg/period"
	"github.com/fintradify/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing token")
	case errors.Is(err, auth.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyPunchedIn):
		Conflict(w, "Already punched in for today")
	case errors.Is(err, attendance.ErrAlreadyPunchedOut):
		Conflict(w, "Already punched out for today")
	case errors.Is(err, attendance.ErrNoPunchInRecord):
		BadRequest(w, "No punch-in record found for today", nil)
	case errors.Is(err, attendance.ErrPunchOutBeforePunchIn):
		BadRequest(w, "Punch-out time cannot be before punch-in time", nil)
	case errors.Is(err, attendance.ErrInvalidPunchKind):
		BadRequest(w, "Punch type must be 'in' or 'out'", nil)
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Salary slip domain errors
	case errors.Is(err, salaryslip.ErrSalarySlipNotFound):
		NotFound(w, "Salary slip not found")
	case errors.Is(err, salaryslip.ErrSlipAccessDenied):
		Forbidden(w, "You do not have permission to access this salary slip")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Report domain errors
	case errors.Is(err, report.ErrNoRecordsInRange):
		NotFound(w, "No attendance records found for the selected date range")

	// Period errors
	case errors.Is(err, period.ErrInvalidDate):
		BadRequest(w, "Invalid date or month format", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
