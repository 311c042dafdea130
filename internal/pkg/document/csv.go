// Package document renders attendance and payroll data into downloadable
// files. Every renderer consumes the already-built report rows, so the
// numbers and placeholders in a file always match the JSON API.
package document

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/fintradify/attendance-backend-go/internal/domain/report"
)

var attendanceCSVHeader = []string{
	"Employee Code",
	"Name",
	"Date",
	"Punch In",
	"Punch Out",
	"Hours Worked",
	"Hourly Rate (₹)",
	"Total Salary (₹)",
}

// RenderAttendanceCSV writes the rows as CSV with a UTF-8 BOM so the rupee
// sign in the headers survives a double-click open in Excel.
func RenderAttendanceCSV(rows []report.ReportRow) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("\uFEFF")

	w := csv.NewWriter(&buf)
	if err := w.Write(attendanceCSVHeader); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, row := range rows {
		record := []string{
			row.EmployeeCode,
			row.Name,
			row.Date,
			row.PunchIn,
			row.PunchOut,
			row.HoursWorked,
			row.HourlyRate,
			row.TotalPay,
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}

	return buf.Bytes(), nil
}
