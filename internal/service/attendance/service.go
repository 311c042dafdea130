package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fintradify/attendance-backend-go/internal/domain/attendance"
	"github.com/fintradify/attendance-backend-go/internal/pkg/period"
	"github.com/fintradify/attendance-backend-go/internal/service/payroll"
	"github.com/go-chi/jwtauth/v5"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	periods        *period.Resolver
	now            func() time.Time
}

// NewAttendanceService wires the punch state machine. clock supplies the
// current instant and may be nil for time.Now; tests inject a fixed clock.
func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	periods *period.Resolver,
	clock func() time.Time,
) attendance.AttendanceService {
	if clock == nil {
		clock = time.Now
	}
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		periods:        periods,
		now:            clock,
	}
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

// Punch implements attendance.AttendanceService.
//
// State machine per employee-day: no record -> punched in -> punched out.
// The day is always derived through the period resolver, so a punch at
// 23:59:59 and one at 00:00:01 organizational time land on different
// records. The (employee_id, date) uniqueness key in storage serializes
// concurrent punch-ins; the loser surfaces ErrAlreadyPunchedIn.
func (s *AttendanceServiceImpl) Punch(ctx context.Context, req attendance.PunchRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := s.now()
	dayStart, _ := s.periods.DayBounds(now)

	existing, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, dayStart)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to look up today's attendance: %w", err)
	}

	switch attendance.PunchKind(req.Type) {
	case attendance.PunchKindIn:
		if existing != nil && existing.PunchIn != nil {
			return attendance.AttendanceResponse{}, attendance.ErrAlreadyPunchedIn
		}

		created, err := s.attendanceRepo.Create(ctx, attendance.Attendance{
			EmployeeID: employeeID,
			Date:       dayStart,
			PunchIn:    &now,
		})
		if err != nil {
			if errors.Is(err, attendance.ErrAlreadyPunchedIn) {
				// A concurrent punch-in won the (employee_id, date) key.
				return attendance.AttendanceResponse{}, attendance.ErrAlreadyPunchedIn
			}
			return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
		}

		return s.mapToResponse(created), nil

	case attendance.PunchKindOut:
		if existing == nil || existing.PunchIn == nil {
			return attendance.AttendanceResponse{}, attendance.ErrNoPunchInRecord
		}
		if existing.PunchOut != nil {
			return attendance.AttendanceResponse{}, attendance.ErrAlreadyPunchedOut
		}
		if now.Before(*existing.PunchIn) {
			return attendance.AttendanceResponse{}, attendance.ErrPunchOutBeforePunchIn
		}

		updated, err := s.attendanceRepo.SetPunchOut(ctx, existing.ID, now)
		if err != nil {
			if errors.Is(err, attendance.ErrAlreadyPunchedOut) {
				return attendance.AttendanceResponse{}, attendance.ErrAlreadyPunchedOut
			}
			return attendance.AttendanceResponse{}, fmt.Errorf("failed to record punch-out: %w", err)
		}

		return s.mapToResponse(updated), nil

	default:
		return attendance.AttendanceResponse{}, attendance.ErrInvalidPunchKind
	}
}

// ListAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.RangeFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	start, end, err := s.rangeBounds(filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	records, err := s.attendanceRepo.List(ctx, start, end)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendances: %w", err)
	}

	return s.mapToListResponse(records), nil
}

// GetMyAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetMyAttendance(ctx context.Context, filter attendance.RangeFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	start, end, err := s.rangeBounds(filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	records, err := s.attendanceRepo.ListByEmployee(ctx, employeeID, start, end)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to get my attendance: %w", err)
	}

	return s.mapToListResponse(records), nil
}

// rangeBounds widens the day-granular filter to [start of first day,
// end of last day] instants.
func (s *AttendanceServiceImpl) rangeBounds(filter attendance.RangeFilter) (*time.Time, *time.Time, error) {
	if filter.StartDate == nil || filter.EndDate == nil {
		return nil, nil, nil
	}

	startDay, err := s.periods.ParseDay(*filter.StartDate)
	if err != nil {
		return nil, nil, err
	}
	endDay, err := s.periods.ParseDay(*filter.EndDate)
	if err != nil {
		return nil, nil, err
	}

	start, _ := s.periods.DayBounds(startDay)
	_, end := s.periods.DayBounds(endDay)
	return &start, &end, nil
}

func (s *AttendanceServiceImpl) mapToResponse(att attendance.Attendance) attendance.AttendanceResponse {
	resp := attendance.AttendanceResponse{
		ID:          att.ID,
		EmployeeID:  att.EmployeeID,
		Date:        s.periods.DayKey(att.Date),
		PunchIn:     s.formatPunch(att.PunchIn),
		PunchOut:    s.formatPunch(att.PunchOut),
		HoursWorked: payroll.Hours(att).StringFixed(2),
	}
	if att.EmployeeCode != nil {
		resp.EmployeeCode = *att.EmployeeCode
	}
	if att.EmployeeName != nil {
		resp.EmployeeName = *att.EmployeeName
	}
	return resp
}

func (s *AttendanceServiceImpl) mapToListResponse(records []attendance.Attendance) attendance.ListAttendanceResponse {
	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, att := range records {
		responses = append(responses, s.mapToResponse(att))
	}
	return attendance.ListAttendanceResponse{
		TotalCount:  len(responses),
		Attendances: responses,
	}
}

func (s *AttendanceServiceImpl) formatPunch(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.In(s.periods.Location()).Format("15:04:05")
	return &formatted
}
