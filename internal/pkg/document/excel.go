package document

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/fintradify/attendance-backend-go/internal/domain/report"
)

const attendanceSheet = "Attendance"

// RenderAttendanceExcel writes the rows as a single-sheet workbook.
func RenderAttendanceExcel(rows []report.ReportRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", attendanceSheet)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DDDDDD"}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for i, h := range attendanceCSVHeader {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve header cell: %w", err)
		}
		if err := f.SetCellValue(attendanceSheet, cell, h); err != nil {
			return nil, fmt.Errorf("failed to write header cell: %w", err)
		}
	}
	if err := f.SetCellStyle(attendanceSheet, "A1", "H1", headerStyle); err != nil {
		return nil, fmt.Errorf("failed to style header: %w", err)
	}

	for i, row := range rows {
		values := []interface{}{
			row.EmployeeCode,
			row.Name,
			row.Date,
			row.PunchIn,
			row.PunchOut,
			row.HoursWorked,
			row.HourlyRate,
			row.TotalPay,
		}
		for j, v := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return nil, fmt.Errorf("failed to resolve cell: %w", err)
			}
			if err := f.SetCellValue(attendanceSheet, cell, v); err != nil {
				return nil, fmt.Errorf("failed to write cell: %w", err)
			}
		}
	}

	if err := f.SetColWidth(attendanceSheet, "A", "H", 16); err != nil {
		return nil, fmt.Errorf("failed to set column widths: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}

	return buf.Bytes(), nil
}
