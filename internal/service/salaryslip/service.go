package salaryslip

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/fintradify/attendance-backend-go/internal/config"
	"github.com/fintradify/attendance-backend-go/internal/domain/attendance"
	"github.com/fintradify/attendance-backend-go/internal/domain/employee"
	"github.com/fintradify/attendance-backend-go/internal/domain/salaryslip"
	"github.com/fintradify/attendance-backend-go/internal/pkg/database"
	"github.com/fintradify/attendance-backend-go/internal/pkg/document"
	"github.com/fintradify/attendance-backend-go/internal/pkg/email"
	"github.com/fintradify/attendance-backend-go/internal/pkg/period"
	"github.com/fintradify/attendance-backend-go/internal/service/payroll"
)

type SalarySlipServiceImpl struct {
	slipRepo       salaryslip.SalarySlipRepository
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	tx             database.TxRunner
	periods        *period.Resolver
	emailService   email.EmailService
	company        config.CompanyConfig
	now            func() time.Time
}

// NewSalarySlipService wires slip issuance. tx scopes the month aggregation
// and the slip write to one transaction; nil disables transactional scoping.
// clock may be nil for time.Now.
func NewSalarySlipService(
	slipRepo salaryslip.SalarySlipRepository,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	tx database.TxRunner,
	periods *period.Resolver,
	emailService email.EmailService,
	company config.CompanyConfig,
	clock func() time.Time,
) salaryslip.SalarySlipService {
	if tx == nil {
		tx = func(ctx context.Context, fn database.TxFn) error { return fn(ctx) }
	}
	if clock == nil {
		clock = time.Now
	}
	return &SalarySlipServiceImpl{
		slipRepo:       slipRepo,
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		tx:             tx,
		periods:        periods,
		emailService:   emailService,
		company:        company,
		now:            clock,
	}
}

// CreateSlip implements salaryslip.SalarySlipService.
//
// The slip amount is round2(total month hours x rate), computed over the
// summed hours rather than by adding up rounded daily pay values. Issuing a
// slip twice for the same employee-month replaces the earlier one. The
// payslip email is best effort; a delivery failure is logged, not returned.
func (s *SalarySlipServiceImpl) CreateSlip(ctx context.Context, req salaryslip.CreateSalarySlipRequest) (salaryslip.SalarySlipResponse, error) {
	if err := req.Validate(); err != nil {
		return salaryslip.SalarySlipResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return salaryslip.SalarySlipResponse{}, err
	}

	start, end, err := s.periods.MonthBounds(req.Month)
	if err != nil {
		return salaryslip.SalarySlipResponse{}, err
	}

	// The month aggregation and the upsert share one transaction so the
	// stored amount always matches the records it was computed from.
	var saved salaryslip.SalarySlip
	err = s.tx(ctx, func(ctx context.Context) error {
		records, err := s.attendanceRepo.ListByEmployee(ctx, req.EmployeeID, &start, &end)
		if err != nil {
			return fmt.Errorf("failed to load month attendance: %w", err)
		}

		slip := salaryslip.SalarySlip{
			EmployeeID:  req.EmployeeID,
			Month:       req.Month,
			HoursWorked: payroll.TotalHours(records),
			Amount:      payroll.ComputePeriodTotal(records, req.HourlyRate),
		}

		saved, err = s.slipRepo.Upsert(ctx, slip)
		if err != nil {
			return fmt.Errorf("failed to save salary slip: %w", err)
		}
		return nil
	})
	if err != nil {
		return salaryslip.SalarySlipResponse{}, err
	}
	saved.EmployeeCode = &emp.EmployeeCode
	saved.EmployeeName = &emp.Name
	saved.EmployeeEmail = &emp.Email
	saved.EmployeePosition = emp.Position

	s.emailPayslip(saved, emp)

	return s.mapToResponse(saved), nil
}

// ListSlips implements salaryslip.SalarySlipService.
func (s *SalarySlipServiceImpl) ListSlips(ctx context.Context) ([]salaryslip.SalarySlipResponse, error) {
	slips, err := s.slipRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary slips: %w", err)
	}
	return s.mapToResponses(slips), nil
}

// GetMySlips implements salaryslip.SalarySlipService.
func (s *SalarySlipServiceImpl) GetMySlips(ctx context.Context) ([]salaryslip.SalarySlipResponse, error) {
	employeeID, _, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	slips, err := s.slipRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list my salary slips: %w", err)
	}
	return s.mapToResponses(slips), nil
}

// DownloadSlip implements salaryslip.SalarySlipService.
func (s *SalarySlipServiceImpl) DownloadSlip(ctx context.Context, id string) (string, []byte, error) {
	employeeID, role, err := callerFromContext(ctx)
	if err != nil {
		return "", nil, err
	}

	slip, err := s.slipRepo.GetByID(ctx, id)
	if err != nil {
		return "", nil, err
	}

	if role != string(employee.RoleAdmin) && slip.EmployeeID != employeeID {
		return "", nil, salaryslip.ErrSlipAccessDenied
	}

	pdf, err := s.renderPayslip(slip)
	if err != nil {
		return "", nil, err
	}

	return s.payslipFilename(slip), pdf, nil
}

func (s *SalarySlipServiceImpl) emailPayslip(slip salaryslip.SalarySlip, emp employee.Employee) {
	pdf, err := s.renderPayslip(slip)
	if err != nil {
		slog.Error("Failed to render payslip for email", "slip_id", slip.ID, "error", err)
		return
	}

	err = s.emailService.SendPayslip(emp.Email, emp.Name, s.company.Name, slip.Month, s.payslipFilename(slip), pdf)
	if err != nil {
		slog.Error("Failed to email payslip", "slip_id", slip.ID, "to", emp.Email, "error", err)
	}
}

func (s *SalarySlipServiceImpl) renderPayslip(slip salaryslip.SalarySlip) ([]byte, error) {
	data := document.PayslipData{
		CompanyName:    s.company.Name,
		CompanyAddress: s.company.Address,
		EmployeeName:   derefOr(slip.EmployeeName, "N/A"),
		EmployeeCode:   derefOr(slip.EmployeeCode, "N/A"),
		Position:       derefOr(slip.EmployeePosition, ""),
		Month:          slip.Month,
		HoursWorked:    slip.HoursWorked.StringFixed(2),
		HourlyRate:     slip.HourlyRate().StringFixed(2),
		Amount:         slip.Amount.StringFixed(2),
		IssuedOn:       s.now().In(s.periods.Location()).Format("02/01/2006"),
	}
	return document.RenderPayslipPDF(data)
}

func (s *SalarySlipServiceImpl) payslipFilename(slip salaryslip.SalarySlip) string {
	owner := derefOr(slip.EmployeeCode, slip.EmployeeID)
	return fmt.Sprintf("payslip_%s_%s.pdf", owner, slip.Month)
}

func (s *SalarySlipServiceImpl) mapToResponse(slip salaryslip.SalarySlip) salaryslip.SalarySlipResponse {
	resp := salaryslip.SalarySlipResponse{
		ID:          slip.ID,
		EmployeeID:  slip.EmployeeID,
		Month:       slip.Month,
		Amount:      slip.Amount,
		HoursWorked: slip.HoursWorked,
		HourlyRate:  slip.HourlyRate(),
		CreatedAt:   slip.CreatedAt.In(s.periods.Location()).Format(time.RFC3339),
	}
	if slip.EmployeeCode != nil {
		resp.EmployeeCode = *slip.EmployeeCode
	}
	if slip.EmployeeName != nil {
		resp.EmployeeName = *slip.EmployeeName
	}
	return resp
}

func (s *SalarySlipServiceImpl) mapToResponses(slips []salaryslip.SalarySlip) []salaryslip.SalarySlipResponse {
	responses := make([]salaryslip.SalarySlipResponse, 0, len(slips))
	for _, slip := range slips {
		responses = append(responses, s.mapToResponse(slip))
	}
	return responses
}

func derefOr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}

func callerFromContext(ctx context.Context) (employeeID, role string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", "", fmt.Errorf("employee_id claim is missing or invalid")
	}

	role, _ = claims["role"].(string)
	return employeeID, role, nil
}
