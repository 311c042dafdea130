package document

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// PayslipData carries everything the payslip layout prints. Monetary values
// arrive pre-formatted; the renderer never does arithmetic.
type PayslipData struct {
	CompanyName    string
	CompanyAddress string
	EmployeeName   string
	EmployeeCode   string
	Position       string
	Month          string
	HoursWorked    string
	HourlyRate     string
	Amount         string
	IssuedOn       string
}

// RenderPayslipPDF produces a one-page A4 payslip. Amounts are labeled INR
// because the core PDF fonts cannot encode the rupee sign.
func RenderPayslipPDF(data PayslipData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(0, 10, data.CompanyName, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(90, 90, 90)
	pdf.CellFormat(0, 6, data.CompanyAddress, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(0, 8, fmt.Sprintf("Salary Slip - %s", data.Month), "", 1, "C", false, 0, "")
	pdf.SetDrawColor(180, 180, 180)
	pdf.Line(20, pdf.GetY()+2, 190, pdf.GetY()+2)
	pdf.Ln(8)

	labelValue := func(label, value string) {
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(55, 8, label, "", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 11)
		pdf.CellFormat(0, 8, value, "", 1, "L", false, 0, "")
	}

	labelValue("Employee", data.EmployeeName)
	labelValue("Employee Code", data.EmployeeCode)
	if data.Position != "" {
		labelValue("Position", data.Position)
	}
	labelValue("Pay Period", data.Month)
	pdf.Ln(6)

	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(85, 9, "Description", "1", 0, "L", true, 0, "")
	pdf.CellFormat(85, 9, "Value", "1", 1, "R", true, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(85, 9, "Hours Worked", "1", 0, "L", false, 0, "")
	pdf.CellFormat(85, 9, data.HoursWorked, "1", 1, "R", false, 0, "")
	pdf.CellFormat(85, 9, "Hourly Rate (INR)", "1", 0, "L", false, 0, "")
	pdf.CellFormat(85, 9, data.HourlyRate, "1", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(85, 10, "Net Pay (INR)", "1", 0, "L", true, 0, "")
	pdf.CellFormat(85, 10, data.Amount, "1", 1, "R", true, 0, "")

	pdf.Ln(12)
	pdf.SetFont("Arial", "I", 9)
	pdf.SetTextColor(120, 120, 120)
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated on %s. This is a system generated document.", data.IssuedOn), "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render payslip pdf: %w", err)
	}

	return buf.Bytes(), nil
}
