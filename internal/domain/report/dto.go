package report

import (
	"github.com/fintradify/attendance-backend-go/internal/pkg/validator"
)

// ReportRow is the one canonical row shape every export surface consumes.
// CSV, Excel, PDF and the JSON API all render these fields verbatim, so
// rounding and placeholder conventions can never diverge between them.
type ReportRow struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeCode string `json:"employee_code"`
	Name         string `json:"name"`
	Date         string `json:"date"`
	PunchIn      string `json:"punch_in"`
	PunchOut     string `json:"punch_out"`
	HoursWorked  string `json:"hours_worked"`
	HourlyRate   string `json:"hourly_rate"`
	TotalPay     string `json:"total_pay"`
}

type RangeRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (r *RangeRequest) Validate() error {
	var errs validator.ValidationErrors

	start, okStart := validator.IsValidDate(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must match YYYY-MM-DD",
		})
	}

	end, okEnd := validator.IsValidDate(r.EndDate)
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

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// OverviewResponse groups rows by day key ("YYYY-MM-DD"), newest day first
// in Days.
type OverviewResponse struct {
	Days []string               `json:"days"`
	Rows map[string][]ReportRow `json:"rows"`
}
