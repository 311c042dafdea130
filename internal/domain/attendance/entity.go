package attendance

import (
	"time"
)

// Attendance is one employee's record for one organizational calendar day.
// Date is normalized to the day's start instant in the organizational zone;
// PunchOut is only ever set after PunchIn.
type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time
	PunchIn    *time.Time
	PunchOut   *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined fields
	EmployeeCode *string
	EmployeeName *string
}

type PunchKind string

const (
	PunchKindIn  PunchKind = "in"
	PunchKindOut PunchKind = "out"
)
