package payroll

import (
	"testing"
	"time"

	"github.com/fintradify/attendance-backend-go/internal/domain/attendance"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func att(in, out *time.Time) attendance.Attendance {
	return attendance.Attendance{
		ID:         "att-1",
		EmployeeID: "emp-1",
		Date:       time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		PunchIn:    in,
		PunchOut:   out,
	}
}

func at(h, m, s int) *time.Time {
	t := time.Date(2025, 3, 10, h, m, s, 0, time.UTC)
	return &t
}

func TestHours(t *testing.T) {
	tests := []struct {
		name string
		att  attendance.Attendance
		want string
	}{
		{"full day", att(at(9, 0, 0), at(17, 30, 0)), "8.5"},
		{"missing punch out", att(at(9, 0, 0), nil), "0"},
		{"missing punch in", att(nil, at(17, 0, 0)), "0"},
		{"no punches", att(nil, nil), "0"},
		{"punch out before punch in", att(at(17, 0, 0), at(9, 0, 0)), "0"},
		{"zero duration", att(at(9, 0, 0), at(9, 0, 0)), "0"},
		{"rounds half up", att(at(9, 0, 0), at(9, 0, 27)), "0.01"},
		{"rounds down below half", att(at(9, 0, 0), at(9, 0, 9)), "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Hours(tt.att).String())
		})
	}
}

func TestComputeRow(t *testing.T) {
	rate := decimal.RequireFromString("150.00")
	row := ComputeRow(att(at(9, 0, 0), at(17, 30, 0)), rate)

	assert.Equal(t, "emp-1", row.EmployeeID)
	assert.Equal(t, "8.5", row.HoursWorked.String())
	assert.Equal(t, "1275", row.TotalPay.String())
}

func TestComputeRow_AbsentDayIsZeroPay(t *testing.T) {
	rate := decimal.RequireFromString("150.00")
	row := ComputeRow(att(nil, nil), rate)

	assert.True(t, row.HoursWorked.IsZero())
	assert.True(t, row.TotalPay.IsZero())
}

func TestComputePeriodTotal(t *testing.T) {
	records := []attendance.Attendance{
		att(at(9, 0, 0), at(17, 30, 0)),
		att(at(9, 0, 0), at(17, 0, 0)),
		att(at(10, 0, 0), nil),
	}
	rate := decimal.RequireFromString("100.00")

	// 8.50 + 8.00 + 0.00 hours at 100/hour.
	assert.Equal(t, "1650", ComputePeriodTotal(records, rate).String())
}

func TestComputePeriodTotal_NotSumOfRoundedDailies(t *testing.T) {
	// Three 1h20m days (1.33h each) at 1.555/hour: each rounded daily
	// pay is 2.07 (sum 6.21), while rounding once over the summed hours
	// gives 3.99 x 1.555 = 6.20.
	var records []attendance.Attendance
	for i := 0; i < 3; i++ {
		records = append(records, att(at(9, 0, 0), at(10, 20, 0)))
	}
	rate := decimal.RequireFromString("1.555")

	summedDailies := decimal.Zero
	for _, r := range records {
		summedDailies = summedDailies.Add(ComputeRow(r, rate).TotalPay)
	}
	assert.Equal(t, "6.21", summedDailies.String())
	assert.Equal(t, "6.2", ComputePeriodTotal(records, rate).String())
}

func TestComputePeriodTotal_Empty(t *testing.T) {
	assert.True(t, ComputePeriodTotal(nil, decimal.NewFromInt(100)).IsZero())
}
