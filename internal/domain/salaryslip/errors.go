package salaryslip

import "errors"

// Salary slip domain errors
var (
	ErrSalarySlipNotFound = errors.New("salary slip not found")
	ErrSlipAccessDenied   = errors.New("you do not have permission to access this salary slip")
)
