package attendance

import "errors"

// Attendance domain errors
var (
	// Punch state-machine errors
	ErrAlreadyPunchedIn      = errors.New("already punched in today")
	ErrAlreadyPunchedOut     = errors.New("already punched out today")
	ErrNoPunchInRecord       = errors.New("no punch-in record found for today")
	ErrPunchOutBeforePunchIn = errors.New("punch-out time is before punch-in time")
	ErrInvalidPunchKind      = errors.New("invalid punch type")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
