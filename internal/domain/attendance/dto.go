package attendance

import (
	"github.com/fintradify/attendance-backend-go/internal/pkg/validator"
)

type PunchRequest struct {
	Type string `json:"type"`
}

func (r *PunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Type != string(PunchKindIn) && r.Type != string(PunchKindOut) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be 'in' or 'out'",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// RangeFilter scopes attendance listings to an inclusive day range.
// Both dates must be given together, or neither.
type RangeFilter struct {
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
}

func (f *RangeFilter) Validate() error {
	var errs validator.ValidationErrors

	if (f.StartDate == nil) != (f.EndDate == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date and end_date must be provided together",
		})
	}

	if f.StartDate != nil {
		start, okStart := validator.IsValidDate(*f.StartDate)
		if !okStart {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must match YYYY-MM-DD",
			})
		}
		if f.EndDate != nil {
			end, okEnd := validator.IsValidDate(*f.EndDate)
			if !okEnd {
				errs = append(errs, validator.ValidationError{
					Field:   "end_date",
					Message: "end_date must match YYYY-MM-DD",
				})
			}
			if okStart && okEnd && end.Before(start) {
				errs = append(errs, validator.ValidationError{
					Field:   "end_date",
					Message: "end_date must not be before start_date",
				})
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeCode string  `json:"employee_code,omitempty"`
	EmployeeName string  `json:"employee_name,omitempty"`
	Date         string  `json:"date"`
	PunchIn      *string `json:"punch_in"`
	PunchOut     *string `json:"punch_out"`
	HoursWorked  string  `json:"hours_worked"`
}

type ListAttendanceResponse struct {
	TotalCount  int                  `json:"total_count"`
	Attendances []AttendanceResponse `json:"attendances"`
}
