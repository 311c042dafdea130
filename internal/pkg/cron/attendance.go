package cron

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/fintradify/attendance-backend-go/internal/domain/attendance"
	"github.com/fintradify/attendance-backend-go/internal/pkg/period"
)

type AttendanceJobs struct {
	attendanceRepo attendance.AttendanceRepository
	periods        *period.Resolver
	now            func() time.Time
}

func NewAttendanceJobs(attendanceRepo attendance.AttendanceRepository, periods *period.Resolver, clock func() time.Time) *AttendanceJobs {
	if clock == nil {
		clock = time.Now
	}
	return &AttendanceJobs{
		attendanceRepo: attendanceRepo,
		periods:        periods,
		now:            clock,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("auto_close_stale_punches", 1*time.Hour, j.AutoCloseStalePunches)
}

// AutoCloseStalePunches closes punch-in records from previous days that
// never received a punch-out, setting punch_out to the last instant of the
// record's own day. Payroll then counts the open time instead of silently
// dropping the whole day.
func (j *AttendanceJobs) AutoCloseStalePunches(ctx context.Context) error {
	todayStart, _ := j.periods.DayBounds(j.now())

	stale, err := j.attendanceRepo.ListOpenBefore(ctx, todayStart)
	if err != nil {
		return fmt.Errorf("failed to get stale open punches: %w", err)
	}

	if len(stale) == 0 {
		return nil
	}

	slog.Info("Cron: Closing stale open punches", "count", len(stale))

	closedCount := 0
	for _, att := range stale {
		if att.PunchIn == nil {
			continue
		}

		_, dayEnd := j.periods.DayBounds(*att.PunchIn)
		if _, err := j.attendanceRepo.SetPunchOut(ctx, att.ID, dayEnd); err != nil {
			// A racing manual punch-out is fine; anything else gets logged.
			if errors.Is(err, attendance.ErrAlreadyPunchedOut) {
				continue
			}
			slog.Error("Cron: Failed to auto-close punch",
				"attendance_id", att.ID,
				"employee_id", att.EmployeeID,
				"error", err)
			continue
		}
		closedCount++
	}

	slog.Info("Cron: Auto-closed stale punches", "count", closedCount)
	return nil
}
