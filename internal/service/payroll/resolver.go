package payroll

import (
	"context"
	"errors"
	"log/slog"

	"github.com/fintradify/attendance-backend-go/internal/domain/salaryslip"
	"github.com/shopspring/decimal"
)

// RateResolver determines the effective hourly rate for an employee-month.
// Priority: the issued salary slip for that month (authoritative, what the
// employee was actually paid per hour), then a caller-supplied positive
// rate (a planning input), then the configured default. It always produces
// a rate: a missing payroll history is a business fact, not an error, and
// reports must render for employees who have none.
type RateResolver struct {
	slips       salaryslip.SalarySlipRepository
	defaultRate decimal.Decimal
}

func NewRateResolver(slips salaryslip.SalarySlipRepository, defaultRate decimal.Decimal) *RateResolver {
	return &RateResolver{
		slips:       slips,
		defaultRate: defaultRate,
	}
}

// Resolve looks up the slip for (employeeID, month) and applies the
// fallback chain. Unexpected storage failures are logged and degrade to the
// fallbacks rather than failing the report.
func (r *RateResolver) Resolve(ctx context.Context, employeeID, month string, explicit *decimal.Decimal) decimal.Decimal {
	slip, err := r.slips.GetByEmployeeAndMonth(ctx, employeeID, month)
	switch {
	case err == nil:
		if slip.HoursWorked.IsPositive() {
			return slip.HourlyRate()
		}
	case !errors.Is(err, salaryslip.ErrSalarySlipNotFound):
		slog.Warn("salary slip lookup failed, falling back to default rate",
			"employee_id", employeeID, "month", month, "error", err)
	}

	return r.fallback(explicit)
}

// ResolveFromSet applies the same priority against an already fetched slip
// set. Range exports load one month-range of slips up front instead of
// querying per record.
func (r *RateResolver) ResolveFromSet(slips []salaryslip.SalarySlip, employeeID, month string, explicit *decimal.Decimal) decimal.Decimal {
	for _, slip := range slips {
		if slip.EmployeeID == employeeID && slip.Month == month && slip.HoursWorked.IsPositive() {
			return slip.HourlyRate()
		}
	}
	return r.fallback(explicit)
}

func (r *RateResolver) fallback(explicit *decimal.Decimal) decimal.Decimal {
	if explicit != nil && explicit.IsPositive() {
		return *explicit
	}
	return r.defaultRate
}
