package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintradify/attendance-backend-go/internal/config"
	"github.com/fintradify/attendance-backend-go/internal/domain/attendance"
	"github.com/fintradify/attendance-backend-go/internal/domain/auth"
	"github.com/fintradify/attendance-backend-go/internal/domain/employee"
	"github.com/fintradify/attendance-backend-go/internal/domain/report"
	"github.com/fintradify/attendance-backend-go/internal/domain/salaryslip"
	"github.com/fintradify/attendance-backend-go/internal/pkg/jwt"
)

const (
	handlerTestSecret     = "test-secret-key-for-jwt"
	handlerTestAccessExp  = "1h"
	handlerTestRefreshExp = "24h"
)

type stubAuthService struct{}

func (stubAuthService) Login(_ context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}
	if req.Password != "password123" {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}
	return auth.LoginResponse{AccessToken: "token", EmployeeID: "emp-1", Role: "employee"}, nil
}

type stubAttendanceService struct{}

func (stubAttendanceService) Punch(_ context.Context, req attendance.PunchRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return attendance.AttendanceResponse{ID: "att-1", Date: "2025-03-10"}, nil
}

func (stubAttendanceService) ListAttendance(context.Context, attendance.RangeFilter) (attendance.ListAttendanceResponse, error) {
	return attendance.ListAttendanceResponse{}, nil
}

func (stubAttendanceService) GetMyAttendance(context.Context, attendance.RangeFilter) (attendance.ListAttendanceResponse, error) {
	return attendance.ListAttendanceResponse{}, nil
}

type stubSalarySlipService struct{}

func (stubSalarySlipService) CreateSlip(context.Context, salaryslip.CreateSalarySlipRequest) (salaryslip.SalarySlipResponse, error) {
	return salaryslip.SalarySlipResponse{ID: "slip-1"}, nil
}

func (stubSalarySlipService) ListSlips(context.Context) ([]salaryslip.SalarySlipResponse, error) {
	return nil, nil
}

func (stubSalarySlipService) GetMySlips(context.Context) ([]salaryslip.SalarySlipResponse, error) {
	return nil, nil
}

func (stubSalarySlipService) DownloadSlip(context.Context, string) (string, []byte, error) {
	return "payslip.pdf", []byte("%PDF-stub"), nil
}

type stubReportService struct{}

func (stubReportService) Overview(context.Context) (report.OverviewResponse, error) {
	return report.OverviewResponse{}, nil
}

func (stubReportService) Range(context.Context, report.RangeRequest) ([]report.ReportRow, error) {
	return nil, report.ErrNoRecordsInRange
}

func (stubReportService) MyRange(context.Context, report.RangeRequest) ([]report.ReportRow, error) {
	return nil, nil
}

func (stubReportService) RangeCSV(context.Context, report.RangeRequest) (string, []byte, error) {
	return "report.csv", []byte("\uFEFF"), nil
}

func (stubReportService) MyRangeCSV(context.Context, report.RangeRequest) (string, []byte, error) {
	return "my.csv", []byte("\uFEFF"), nil
}

func (stubReportService) RangeExcel(context.Context, report.RangeRequest) (string, []byte, error) {
	return "report.xlsx", []byte("PK"), nil
}

func newTestRouter(t *testing.T) (http.Handler, jwt.Service) {
	t.Helper()
	cfg := &config.Config{}
	cfg.App.Env = "test"

	jwtService := jwt.NewJWTService(handlerTestSecret, handlerTestAccessExp, handlerTestRefreshExp)
	router := NewRouter(
		cfg,
		jwtService,
		NewAuthHandler(stubAuthService{}),
		NewAttendanceHandler(stubAttendanceService{}),
		NewSalarySlipHandler(stubSalarySlipService{}),
		NewReportHandler(stubReportService{}),
	)
	return router, jwtService
}

func accessToken(t *testing.T, jwtService jwt.Service, role employee.Role) string {
	t.Helper()
	token, _, err := jwtService.GenerateAccessToken("emp-1", "emp@fintradify.com", role)
	require.NoError(t, err)
	return token
}

func TestRouter_Login(t *testing.T) {
	router, _ := newTestRouter(t)

	body, _ := json.Marshal(auth.LoginRequest{Email: "emp@fintradify.com", Password: "password123"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_LoginWrongPassword(t *testing.T) {
	router, _ := newTestRouter(t)

	body, _ := json.Marshal(auth.LoginRequest{Email: "emp@fintradify.com", Password: "nope"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_PunchRequiresToken(t *testing.T) {
	router, _ := newTestRouter(t)

	body, _ := json.Marshal(attendance.PunchRequest{Type: "in"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendance/punch", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_PunchWithToken(t *testing.T) {
	router, jwtService := newTestRouter(t)

	body, _ := json.Marshal(attendance.PunchRequest{Type: "in"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendance/punch", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+accessToken(t, jwtService, employee.RoleEmployee))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestRouter_AdminRoutesForbiddenForEmployee(t *testing.T) {
	router, jwtService := newTestRouter(t)
	token := accessToken(t, jwtService, employee.RoleEmployee)

	for _, path := range []string{
		"/api/v1/attendance/",
		"/api/v1/salary-slips/",
		"/api/v1/reports/overview",
		"/api/v1/reports/range",
	} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code, path)
	}
}

func TestRouter_AdminRoutesAllowedForAdmin(t *testing.T) {
	router, jwtService := newTestRouter(t)
	token := accessToken(t, jwtService, employee.RoleAdmin)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/attendance/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_RangeWithNoRecordsIs404(t *testing.T) {
	router, jwtService := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/range?start_date=2025-03-01&end_date=2025-03-31", nil)
	req.Header.Set("Authorization", "Bearer "+accessToken(t, jwtService, employee.RoleAdmin))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_DownloadSlipSetsAttachmentHeaders(t *testing.T) {
	router, jwtService := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/salary-slips/slip-1/download", nil)
	req.Header.Set("Authorization", "Bearer "+accessToken(t, jwtService, employee.RoleEmployee))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "payslip.pdf")
}
