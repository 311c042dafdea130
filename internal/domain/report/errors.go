package report

import "errors"

var (
	ErrNoRecordsInRange = errors.New("no attendance records found for the selected date range")
)
