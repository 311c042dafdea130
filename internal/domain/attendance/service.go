package attendance

import "context"

type AttendanceService interface {
	// Punch records a punch-in or punch-out for the authenticated employee.
	Punch(ctx context.Context, req PunchRequest) (AttendanceResponse, error)

	// ListAttendance returns all employees' records (admin).
	ListAttendance(ctx context.Context, filter RangeFilter) (ListAttendanceResponse, error)

	// GetMyAttendance returns the authenticated employee's records.
	GetMyAttendance(ctx context.Context, filter RangeFilter) (ListAttendanceResponse, error)
}
