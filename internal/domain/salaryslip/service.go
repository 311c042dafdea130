package salaryslip

import "context"

type SalarySlipService interface {
	// CreateSlip aggregates the month's attendance at the given rate,
	// persists the slip, and emails the rendered payslip PDF (admin).
	CreateSlip(ctx context.Context, req CreateSalarySlipRequest) (SalarySlipResponse, error)

	// ListSlips returns every employee's slips (admin).
	ListSlips(ctx context.Context) ([]SalarySlipResponse, error)

	// GetMySlips returns the authenticated employee's slips.
	GetMySlips(ctx context.Context) ([]SalarySlipResponse, error)

	// DownloadSlip renders the payslip PDF. Admins may download any slip;
	// employees only their own.
	DownloadSlip(ctx context.Context, id string) (filename string, pdf []byte, err error)
}
