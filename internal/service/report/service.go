package report

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/fintradify/attendance-backend-go/internal/domain/attendance"
	"github.com/fintradify/attendance-backend-go/internal/domain/report"
	"github.com/fintradify/attendance-backend-go/internal/domain/salaryslip"
	"github.com/fintradify/attendance-backend-go/internal/pkg/document"
	"github.com/fintradify/attendance-backend-go/internal/pkg/period"
	"github.com/fintradify/attendance-backend-go/internal/service/payroll"
)

const (
	placeholder  = "-"
	missingField = "N/A"
	dateLayout   = "02/01/2006"
	timeLayout   = "03:04:05 PM"
)

type ReportServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	slipRepo       salaryslip.SalarySlipRepository
	rates          *payroll.RateResolver
	periods        *period.Resolver
}

func NewReportService(
	attendanceRepo attendance.AttendanceRepository,
	slipRepo salaryslip.SalarySlipRepository,
	rates *payroll.RateResolver,
	periods *period.Resolver,
) report.ReportService {
	return &ReportServiceImpl{
		attendanceRepo: attendanceRepo,
		slipRepo:       slipRepo,
		rates:          rates,
		periods:        periods,
	}
}

// Overview implements report.ReportService.
func (s *ReportServiceImpl) Overview(ctx context.Context) (report.OverviewResponse, error) {
	records, err := s.attendanceRepo.List(ctx, nil, nil)
	if err != nil {
		return report.OverviewResponse{}, fmt.Errorf("failed to list attendances: %w", err)
	}

	slips, err := s.slipRepo.ListAll(ctx)
	if err != nil {
		return report.OverviewResponse{}, fmt.Errorf("failed to list salary slips: %w", err)
	}

	resp := report.OverviewResponse{
		Days: []string{},
		Rows: make(map[string][]report.ReportRow),
	}
	for _, att := range records {
		day := s.periods.DayKey(att.Date)
		if _, seen := resp.Rows[day]; !seen {
			resp.Days = append(resp.Days, day)
		}
		resp.Rows[day] = append(resp.Rows[day], s.buildRow(att, slips))
	}

	return resp, nil
}

// Range implements report.ReportService.
func (s *ReportServiceImpl) Range(ctx context.Context, req report.RangeRequest) ([]report.ReportRow, error) {
	start, end, err := s.bounds(req)
	if err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.List(ctx, &start, &end)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances: %w", err)
	}
	if len(records) == 0 {
		return nil, report.ErrNoRecordsInRange
	}

	return s.buildRows(ctx, records, start, end, nil)
}

// MyRange implements report.ReportService.
func (s *ReportServiceImpl) MyRange(ctx context.Context, req report.RangeRequest) ([]report.ReportRow, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	start, end, err := s.bounds(req)
	if err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.ListByEmployee(ctx, employeeID, &start, &end)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances: %w", err)
	}
	if len(records) == 0 {
		return nil, report.ErrNoRecordsInRange
	}

	return s.buildRows(ctx, records, start, end, &employeeID)
}

// RangeCSV implements report.ReportService.
func (s *ReportServiceImpl) RangeCSV(ctx context.Context, req report.RangeRequest) (string, []byte, error) {
	rows, err := s.Range(ctx, req)
	if err != nil {
		return "", nil, err
	}

	data, err := document.RenderAttendanceCSV(rows)
	if err != nil {
		return "", nil, err
	}

	return rangeFilename("attendance_report", req, "csv"), data, nil
}

// MyRangeCSV implements report.ReportService.
func (s *ReportServiceImpl) MyRangeCSV(ctx context.Context, req report.RangeRequest) (string, []byte, error) {
	rows, err := s.MyRange(ctx, req)
	if err != nil {
		return "", nil, err
	}

	data, err := document.RenderAttendanceCSV(rows)
	if err != nil {
		return "", nil, err
	}

	return rangeFilename("my_attendance", req, "csv"), data, nil
}

// RangeExcel implements report.ReportService.
func (s *ReportServiceImpl) RangeExcel(ctx context.Context, req report.RangeRequest) (string, []byte, error) {
	rows, err := s.Range(ctx, req)
	if err != nil {
		return "", nil, err
	}

	data, err := document.RenderAttendanceExcel(rows)
	if err != nil {
		return "", nil, err
	}

	return rangeFilename("attendance_report", req, "xlsx"), data, nil
}

func (s *ReportServiceImpl) bounds(req report.RangeRequest) (time.Time, time.Time, error) {
	if err := req.Validate(); err != nil {
		return time.Time{}, time.Time{}, err
	}

	startDay, err := s.periods.ParseDay(req.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	endDay, err := s.periods.ParseDay(req.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	start, _ := s.periods.DayBounds(startDay)
	_, end := s.periods.DayBounds(endDay)
	return start, end, nil
}

// buildRows fetches the slip set covering [start, end] once, then renders
// the records in query order. Report surfaces never re-sort.
func (s *ReportServiceImpl) buildRows(ctx context.Context, records []attendance.Attendance, start, end time.Time, employeeID *string) ([]report.ReportRow, error) {
	slips, err := s.slipRepo.ListByMonthRange(ctx, s.periods.MonthKey(start), s.periods.MonthKey(end), employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary slips: %w", err)
	}

	rows := make([]report.ReportRow, 0, len(records))
	for _, att := range records {
		rows = append(rows, s.buildRow(att, slips))
	}
	return rows, nil
}

// buildRow is the single place a report row is shaped: "-" stands in for a
// missing punch, "N/A" for missing employee fields, and pay is recomputed
// from the punches at the resolved rate.
func (s *ReportServiceImpl) buildRow(att attendance.Attendance, slips []salaryslip.SalarySlip) report.ReportRow {
	rate := s.rates.ResolveFromSet(slips, att.EmployeeID, s.periods.MonthKey(att.Date), nil)
	day := payroll.ComputeRow(att, rate)

	return report.ReportRow{
		EmployeeID:   att.EmployeeID,
		EmployeeCode: stringOr(att.EmployeeCode, missingField),
		Name:         stringOr(att.EmployeeName, missingField),
		Date:         att.Date.In(s.periods.Location()).Format(dateLayout),
		PunchIn:      s.formatPunch(att.PunchIn),
		PunchOut:     s.formatPunch(att.PunchOut),
		HoursWorked:  day.HoursWorked.StringFixed(2),
		HourlyRate:   day.HourlyRate.StringFixed(2),
		TotalPay:     day.TotalPay.StringFixed(2),
	}
}

func (s *ReportServiceImpl) formatPunch(t *time.Time) string {
	if t == nil {
		return placeholder
	}
	return t.In(s.periods.Location()).Format(timeLayout)
}

func stringOr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}

func rangeFilename(prefix string, req report.RangeRequest, ext string) string {
	return fmt.Sprintf("%s_%s_to_%s.%s", prefix, req.StartDate, req.EndDate, ext)
}

func employeeIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", fmt.Errorf("employee_id claim is missing or invalid")
	}

	return employeeID, nil
}
