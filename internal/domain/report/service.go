package report

import "context"

type ReportService interface {
	// Overview returns all attendance rows grouped by day (admin).
	Overview(ctx context.Context) (OverviewResponse, error)

	// Range returns rows for all employees in the date range (admin).
	Range(ctx context.Context, req RangeRequest) ([]ReportRow, error)

	// MyRange returns the authenticated employee's rows in the date range.
	MyRange(ctx context.Context, req RangeRequest) ([]ReportRow, error)

	// RangeCSV and MyRangeCSV render the corresponding rows as CSV.
	RangeCSV(ctx context.Context, req RangeRequest) (filename string, data []byte, err error)
	MyRangeCSV(ctx context.Context, req RangeRequest) (filename string, data []byte, err error)

	// RangeExcel renders the range rows as an Excel workbook (admin).
	RangeExcel(ctx context.Context, req RangeRequest) (filename string, data []byte, err error)
}
