package salaryslip

import "context"

// SalarySlipRepository is the persistence contract for monthly payroll
// records. Upsert replaces an existing slip for the same (employee, month).
type SalarySlipRepository interface {
	Upsert(ctx context.Context, slip SalarySlip) (SalarySlip, error)

	GetByID(ctx context.Context, id string) (SalarySlip, error)

	// GetByEmployeeAndMonth returns ErrSalarySlipNotFound when no slip exists.
	GetByEmployeeAndMonth(ctx context.Context, employeeID, month string) (SalarySlip, error)

	ListByEmployee(ctx context.Context, employeeID string) ([]SalarySlip, error)

	ListAll(ctx context.Context) ([]SalarySlip, error)

	// ListByMonthRange returns slips whose month key lies in
	// [startMonth, endMonth] (both "YYYY-MM"), optionally for one employee.
	ListByMonthRange(ctx context.Context, startMonth, endMonth string, employeeID *string) ([]SalarySlip, error)
}
