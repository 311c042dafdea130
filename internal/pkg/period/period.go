// Package period resolves calendar-day and month boundaries in the single
// organizational timezone. Every punch decision, report query and payroll
// aggregation goes through one Resolver so that "what day is it" never
// depends on the execution host's local time.
package period

import (
	"errors"
	"regexp"
	"time"
)

var ErrInvalidDate = errors.New("invalid date or month format")

// Months are keyed by the strict "YYYY-MM" form the salary slips use.
var monthKeyRegex = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

type Resolver struct {
	loc *time.Location
}

// NewResolver loads the named zone, e.g. "Asia/Kolkata".
func NewResolver(timezone string) (*Resolver, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, err
	}
	return &Resolver{loc: loc}, nil
}

// NewResolverIn wraps an already loaded location.
func NewResolverIn(loc *time.Location) *Resolver {
	return &Resolver{loc: loc}
}

func (r *Resolver) Location() *time.Location {
	return r.loc
}

// DayBounds returns the first and last instant (00:00:00.000 and
// 23:59:59.999) of the calendar day containing t, in the organizational zone.
func (r *Resolver) DayBounds(t time.Time) (start, end time.Time) {
	local := t.In(r.loc)
	start = time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, r.loc)
	end = start.AddDate(0, 0, 1).Add(-time.Millisecond)
	return start, end
}

// ParseDay parses a strict "YYYY-MM-DD" string into that day's start instant.
func (r *Resolver) ParseDay(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, r.loc)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// MonthBounds returns the first and last instant of the "YYYY-MM" month.
func (r *Resolver) MonthBounds(yearMonth string) (start, end time.Time, err error) {
	if !monthKeyRegex.MatchString(yearMonth) {
		return time.Time{}, time.Time{}, ErrInvalidDate
	}
	t, err := time.ParseInLocation("2006-01", yearMonth, r.loc)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDate
	}
	start = time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, r.loc)
	end = start.AddDate(0, 1, 0).Add(-time.Millisecond)
	return start, end, nil
}

// MonthKey returns the "YYYY-MM" key of the month containing t.
func (r *Resolver) MonthKey(t time.Time) string {
	return t.In(r.loc).Format("2006-01")
}

// DayKey returns the "YYYY-MM-DD" key of the day containing t.
func (r *Resolver) DayKey(t time.Time) string {
	return t.In(r.loc).Format("2006-01-02")
}
