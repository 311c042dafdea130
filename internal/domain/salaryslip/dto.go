package salaryslip

import (
	"github.com/fintradify/attendance-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateSalarySlipRequest struct {
	EmployeeID string          `json:"employee_id"`
	Month      string          `json:"month"`
	HourlyRate decimal.Decimal `json:"hourly_rate"`
}

func (r *CreateSalarySlipRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if !validator.IsValidMonthKey(r.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must match YYYY-MM",
		})
	}

	if !r.HourlyRate.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "hourly_rate",
			Message: "hourly_rate must be a positive number",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SalarySlipResponse struct {
	ID           string          `json:"id"`
	EmployeeID   string          `json:"employee_id"`
	EmployeeCode string          `json:"employee_code,omitempty"`
	EmployeeName string          `json:"employee_name,omitempty"`
	Month        string          `json:"month"`
	Amount       decimal.Decimal `json:"amount"`
	HoursWorked  decimal.Decimal `json:"hours_worked"`
	HourlyRate   decimal.Decimal `json:"hourly_rate"`
	CreatedAt    string          `json:"created_at"`
}
