// Package calendar provides business-day date arithmetic for the
// Taiwanese exchange calendar (weekday rule only, no holiday table).
package calendar

import "time"

// maxScan bounds the calendar walk so an unreachable count still terminates.
const maxScan = 30

// DateFormat is the ISO date layout used across the pipeline.
const DateFormat = "2006-01-02"

// Generate walks forward day by day from start (inclusive), skipping
// Saturday and Sunday, and collects up to count business days. At most
// 30 calendar days are scanned, so the result may be shorter than
// requested; callers must tolerate that.
func Generate(start time.Time, count int) []string {
	days := make([]string, 0, count)
	cur := start

	for scanned := 0; scanned < maxScan && len(days) < count; scanned++ {
		wd := cur.Weekday()
		if wd != time.Saturday && wd != time.Sunday {
			days = append(days, cur.Format(DateFormat))
		}
		cur = cur.AddDate(0, 0, 1)
	}

	return days
}

// IsBusinessDay reports whether t falls on a weekday.
func IsBusinessDay(t time.Time) bool {
	wd := t.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}
