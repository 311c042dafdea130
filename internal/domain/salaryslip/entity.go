package salaryslip

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalarySlip is the finalized monthly payroll record for one employee.
// Once issued it becomes the authoritative hourly-rate source for its month:
// reports derive the rate as Amount / HoursWorked.
type SalarySlip struct {
	ID          string
	EmployeeID  string
	Month       string // "YYYY-MM" in the organizational zone
	Amount      decimal.Decimal
	HoursWorked decimal.Decimal
	CreatedAt   time.Time

	// Joined fields
	EmployeeCode     *string
	EmployeeName     *string
	EmployeeEmail    *string
	EmployeePosition *string
}

// HourlyRate returns Amount / HoursWorked rounded to 2 decimals, or zero
// when the slip has no hours basis.
func (s SalarySlip) HourlyRate() decimal.Decimal {
	if !s.HoursWorked.IsPositive() {
		return decimal.Zero
	}
	return s.Amount.Div(s.HoursWorked).Round(2)
}
