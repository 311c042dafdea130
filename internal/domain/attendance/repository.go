package attendance

import (
	"context"
	"time"
)

// AttendanceRepository is the persistence contract for attendance records.
// The storage layer must enforce uniqueness on (employee_id, date): a Create
// that collides with an existing record for the same employee-day returns
// ErrAlreadyPunchedIn, which is what serializes two racing punch-in calls.
type AttendanceRepository interface {
	Create(ctx context.Context, att Attendance) (Attendance, error)

	// GetByEmployeeAndDate returns (nil, nil) when no record exists for the day.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	// SetPunchOut closes an open record. The update is guarded on
	// punch_out IS NULL; a record already closed returns ErrAlreadyPunchedOut.
	SetPunchOut(ctx context.Context, id string, punchOut time.Time) (Attendance, error)

	// ListByEmployee returns the employee's records, optionally bounded to
	// [start, end] inclusive, in date order.
	ListByEmployee(ctx context.Context, employeeID string, start, end *time.Time) ([]Attendance, error)

	// List returns records for all employees, optionally bounded, newest day
	// first. Report surfaces emit rows in exactly this order.
	List(ctx context.Context, start, end *time.Time) ([]Attendance, error)

	// ListOpenBefore returns records punched in before cutoff with no
	// punch-out yet.
	ListOpenBefore(ctx context.Context, cutoff time.Time) ([]Attendance, error)
}
