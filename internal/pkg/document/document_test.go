package document

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/fintradify/attendance-backend-go/internal/domain/report"
)

func sampleRows() []report.ReportRow {
	return []report.ReportRow{
		{
			EmployeeID:   "emp-1",
			EmployeeCode: "EMP001",
			Name:         "Asha Verma",
			Date:         "10/03/2025",
			PunchIn:      "09:00:00 AM",
			PunchOut:     "05:30:00 PM",
			HoursWorked:  "8.50",
			HourlyRate:   "100.00",
			TotalPay:     "850.00",
		},
		{
			EmployeeID:   "emp-2",
			EmployeeCode: "EMP002",
			Name:         "N/A",
			Date:         "10/03/2025",
			PunchIn:      "-",
			PunchOut:     "-",
			HoursWorked:  "0.00",
			HourlyRate:   "100.00",
			TotalPay:     "0.00",
		},
	}
}

func TestRenderAttendanceCSV(t *testing.T) {
	data, err := RenderAttendanceCSV(sampleRows())
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(data, []byte("\uFEFF")))

	r := csv.NewReader(strings.NewReader(strings.TrimPrefix(string(data), "\uFEFF")))
	records, err := r.ReadAll()
	require.NoError(t, err)

	require.Len(t, records, 3)
	assert.Equal(t, attendanceCSVHeader, records[0])
	assert.Equal(t, []string{"EMP001", "Asha Verma", "10/03/2025", "09:00:00 AM", "05:30:00 PM", "8.50", "100.00", "850.00"}, records[1])
	assert.Equal(t, "-", records[2][3])
}

func TestRenderAttendanceExcel(t *testing.T) {
	data, err := RenderAttendanceExcel(sampleRows())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(attendanceSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Asha Verma", rows[1][1])
	assert.Equal(t, "850.00", rows[1][7])
}

func TestRenderPayslipPDF(t *testing.T) {
	data, err := RenderPayslipPDF(PayslipData{
		CompanyName:    "Fintradify",
		CompanyAddress: "Noida, Uttar Pradesh, India",
		EmployeeName:   "Asha Verma",
		EmployeeCode:   "EMP001",
		Position:       "Engineer",
		Month:          "2025-03",
		HoursWorked:    "160.00",
		HourlyRate:     "100.00",
		Amount:         "16000.00",
		IssuedOn:       "01/04/2025",
	})
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}
