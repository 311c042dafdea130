// Package payroll turns validated attendance records into hours and money.
// All arithmetic is decimal; rounding is half-up to 2 places and happens at
// the edges (per-day rows and period totals), never in between.
package payroll

import (
	"time"

	"github.com/fintradify/attendance-backend-go/internal/domain/attendance"
	"github.com/shopspring/decimal"
)

// DayRow is the aggregated result for one attendance record. It is never
// persisted; every report recomputes it from the stored punches.
type DayRow struct {
	EmployeeID  string
	Date        time.Time
	HoursWorked decimal.Decimal
	HourlyRate  decimal.Decimal
	TotalPay    decimal.Decimal
}

// Hours returns the worked duration of one record in hours, rounded to
// 2 decimals. A record with a missing punch yields zero, as does an
// inverted pair (punch-out before punch-in): reporting degrades to zero
// hours, it does not fail.
func Hours(att attendance.Attendance) decimal.Decimal {
	if att.PunchIn == nil || att.PunchOut == nil {
		return decimal.Zero
	}
	worked := att.PunchOut.Sub(*att.PunchIn)
	if worked < 0 {
		return decimal.Zero
	}
	return decimal.NewFromFloat(worked.Hours()).Round(2)
}

// TotalHours sums Hours over the records. Order-independent; empty input
// yields zero.
func TotalHours(atts []attendance.Attendance) decimal.Decimal {
	total := decimal.Zero
	for _, att := range atts {
		total = total.Add(Hours(att))
	}
	return total
}

// ComputeRow produces the per-day aggregate at the given hourly rate.
func ComputeRow(att attendance.Attendance, rate decimal.Decimal) DayRow {
	hours := Hours(att)
	return DayRow{
		EmployeeID:  att.EmployeeID,
		Date:        att.Date,
		HoursWorked: hours,
		HourlyRate:  rate,
		TotalPay:    hours.Mul(rate).Round(2),
	}
}

// ComputePeriodTotal is round2(totalHours × rate). The total is taken over
// the summed hours, not by adding up individually rounded daily pay values;
// summing rounded dailies drifts by up to half a cent per day over a month.
func ComputePeriodTotal(atts []attendance.Attendance, rate decimal.Decimal) decimal.Decimal {
	return TotalHours(atts).Mul(rate).Round(2)
}
