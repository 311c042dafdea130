package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/fintradify/attendance-backend-go/internal/domain/attendance"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintradify/attendance-backend-go/internal/pkg/period"
)

type fakeAttendanceRepo struct {
	records map[string]attendance.Attendance
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]attendance.Attendance)}
}

func (f *fakeAttendanceRepo) key(employeeID string, date time.Time) string {
	return employeeID + "|" + date.Format("2006-01-02")
}

func (f *fakeAttendanceRepo) Create(_ context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	k := f.key(att.EmployeeID, att.Date)
	if _, exists := f.records[k]; exists {
		return attendance.Attendance{}, attendance.ErrAlreadyPunchedIn
	}
	att.ID = uuid.NewString()
	f.records[k] = att
	return att, nil
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(_ context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	if att, ok := f.records[f.key(employeeID, date)]; ok {
		return &att, nil
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) SetPunchOut(_ context.Context, id string, punchOut time.Time) (attendance.Attendance, error) {
	for k, att := range f.records {
		if att.ID != id {
			continue
		}
		if att.PunchOut != nil {
			return attendance.Attendance{}, attendance.ErrAlreadyPunchedOut
		}
		att.PunchOut = &punchOut
		f.records[k] = att
		return att, nil
	}
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) ListByEmployee(_ context.Context, employeeID string, start, end *time.Time) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, att := range f.records {
		if att.EmployeeID != employeeID {
			continue
		}
		if start != nil && att.Date.Before(*start) {
			continue
		}
		if end != nil && att.Date.After(*end) {
			continue
		}
		out = append(out, att)
	}
	return out, nil
}

func (f *fakeAttendanceRepo) List(_ context.Context, start, end *time.Time) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, att := range f.records {
		if start != nil && att.Date.Before(*start) {
			continue
		}
		if end != nil && att.Date.After(*end) {
			continue
		}
		out = append(out, att)
	}
	return out, nil
}

func (f *fakeAttendanceRepo) ListOpenBefore(_ context.Context, cutoff time.Time) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, att := range f.records {
		if att.PunchOut == nil && att.PunchIn != nil && att.PunchIn.Before(cutoff) {
			out = append(out, att)
		}
	}
	return out, nil
}

func authedContext(t *testing.T, employeeID string) context.Context {
	t.Helper()
	token, err := jwt.NewBuilder().
		Claim("employee_id", employeeID).
		Claim("role", "employee").
		Build()
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func mustResolver(t *testing.T) *period.Resolver {
	t.Helper()
	r, err := period.NewResolver("Asia/Kolkata")
	require.NoError(t, err)
	return r
}

func TestPunch_InThenOut(t *testing.T) {
	repo := newFakeAttendanceRepo()
	periods := mustResolver(t)
	punchIn := time.Date(2025, 3, 10, 9, 0, 0, 0, periods.Location())
	svc := NewAttendanceService(repo, periods, fixedClock(punchIn)).(*AttendanceServiceImpl)
	ctx := authedContext(t, "emp-1")

	resp, err := svc.Punch(ctx, attendance.PunchRequest{Type: "in"})
	require.NoError(t, err)
	assert.Equal(t, "2025-03-10", resp.Date)
	require.NotNil(t, resp.PunchIn)
	assert.Equal(t, "09:00:00", *resp.PunchIn)
	assert.Nil(t, resp.PunchOut)
	assert.Equal(t, "0.00", resp.HoursWorked)

	svc.now = fixedClock(punchIn.Add(8*time.Hour + 30*time.Minute))
	resp, err = svc.Punch(ctx, attendance.PunchRequest{Type: "out"})
	require.NoError(t, err)
	require.NotNil(t, resp.PunchOut)
	assert.Equal(t, "17:30:00", *resp.PunchOut)
	assert.Equal(t, "8.50", resp.HoursWorked)
}

func TestPunch_DuplicateIn(t *testing.T) {
	repo := newFakeAttendanceRepo()
	periods := mustResolver(t)
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, periods.Location())
	svc := NewAttendanceService(repo, periods, fixedClock(now))
	ctx := authedContext(t, "emp-1")

	_, err := svc.Punch(ctx, attendance.PunchRequest{Type: "in"})
	require.NoError(t, err)

	_, err = svc.Punch(ctx, attendance.PunchRequest{Type: "in"})
	assert.ErrorIs(t, err, attendance.ErrAlreadyPunchedIn)
}

func TestPunch_OutWithoutIn(t *testing.T) {
	repo := newFakeAttendanceRepo()
	periods := mustResolver(t)
	now := time.Date(2025, 3, 10, 17, 0, 0, 0, periods.Location())
	svc := NewAttendanceService(repo, periods, fixedClock(now))

	_, err := svc.Punch(authedContext(t, "emp-1"), attendance.PunchRequest{Type: "out"})
	assert.ErrorIs(t, err, attendance.ErrNoPunchInRecord)
}

func TestPunch_DoubleOut(t *testing.T) {
	repo := newFakeAttendanceRepo()
	periods := mustResolver(t)
	base := time.Date(2025, 3, 10, 9, 0, 0, 0, periods.Location())
	svc := NewAttendanceService(repo, periods, fixedClock(base)).(*AttendanceServiceImpl)
	ctx := authedContext(t, "emp-1")

	_, err := svc.Punch(ctx, attendance.PunchRequest{Type: "in"})
	require.NoError(t, err)

	svc.now = fixedClock(base.Add(8 * time.Hour))
	_, err = svc.Punch(ctx, attendance.PunchRequest{Type: "out"})
	require.NoError(t, err)

	svc.now = fixedClock(base.Add(9 * time.Hour))
	_, err = svc.Punch(ctx, attendance.PunchRequest{Type: "out"})
	assert.ErrorIs(t, err, attendance.ErrAlreadyPunchedOut)
}

func TestPunch_OutBeforeIn(t *testing.T) {
	repo := newFakeAttendanceRepo()
	periods := mustResolver(t)
	punchIn := time.Date(2025, 3, 10, 9, 0, 0, 0, periods.Location())
	svc := NewAttendanceService(repo, periods, fixedClock(punchIn)).(*AttendanceServiceImpl)
	ctx := authedContext(t, "emp-1")

	_, err := svc.Punch(ctx, attendance.PunchRequest{Type: "in"})
	require.NoError(t, err)

	// Clock rewound to before the recorded punch-in, same organizational day.
	svc.now = fixedClock(punchIn.Add(-1 * time.Hour))
	_, err = svc.Punch(ctx, attendance.PunchRequest{Type: "out"})
	assert.ErrorIs(t, err, attendance.ErrPunchOutBeforePunchIn)

	dayStart, _ := periods.DayBounds(punchIn)
	stored, err := repo.GetByEmployeeAndDate(ctx, "emp-1", dayStart)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, punchIn, *stored.PunchIn)
	assert.Nil(t, stored.PunchOut)
}

func TestPunch_InvalidKind(t *testing.T) {
	repo := newFakeAttendanceRepo()
	periods := mustResolver(t)
	svc := NewAttendanceService(repo, periods, nil)

	_, err := svc.Punch(authedContext(t, "emp-1"), attendance.PunchRequest{Type: "lunch"})
	assert.Error(t, err)
}

func TestPunch_NewDayStartsFresh(t *testing.T) {
	repo := newFakeAttendanceRepo()
	periods := mustResolver(t)
	lateNight := time.Date(2025, 3, 10, 23, 59, 50, 0, periods.Location())
	svc := NewAttendanceService(repo, periods, fixedClock(lateNight)).(*AttendanceServiceImpl)
	ctx := authedContext(t, "emp-1")

	_, err := svc.Punch(ctx, attendance.PunchRequest{Type: "in"})
	require.NoError(t, err)

	// Seconds later it is a different organizational day, so a fresh
	// punch-in succeeds instead of tripping the duplicate guard.
	svc.now = fixedClock(lateNight.Add(15 * time.Second))
	resp, err := svc.Punch(ctx, attendance.PunchRequest{Type: "in"})
	require.NoError(t, err)
	assert.Equal(t, "2025-03-11", resp.Date)
}

func TestGetMyAttendance_RangeFilter(t *testing.T) {
	repo := newFakeAttendanceRepo()
	periods := mustResolver(t)
	ctx := authedContext(t, "emp-1")

	for day := 10; day <= 14; day++ {
		punch := time.Date(2025, 3, day, 9, 0, 0, 0, periods.Location())
		svc := NewAttendanceService(repo, periods, fixedClock(punch))
		_, err := svc.Punch(ctx, attendance.PunchRequest{Type: "in"})
		require.NoError(t, err)
	}

	svc := NewAttendanceService(repo, periods, nil)
	start, end := "2025-03-11", "2025-03-13"
	resp, err := svc.GetMyAttendance(ctx, attendance.RangeFilter{StartDate: &start, EndDate: &end})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.TotalCount)
}

func TestGetMyAttendance_InvalidRange(t *testing.T) {
	repo := newFakeAttendanceRepo()
	periods := mustResolver(t)
	svc := NewAttendanceService(repo, periods, nil)

	start := "2025-03-11"
	_, err := svc.GetMyAttendance(authedContext(t, "emp-1"), attendance.RangeFilter{StartDate: &start})
	assert.Error(t, err)
}
