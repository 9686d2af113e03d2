package util

import "time"

// MonthKey returns the "YYYY-MM" bucket key for a date (month 1-indexed,
// zero-padded). Lexicographic order of keys matches chronological order.
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

// PreviousMonth returns the year and month for the previous month
func PreviousMonth(year, month int) (int, int) {
	if month == 1 {
		return year - 1, 12
	}
	return year, month - 1
}

// MonthBounds returns the first and last instant-of-day bounds of a month in
// UTC: midnight on the 1st and midnight on the last day.
func MonthBounds(year, month int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	// Day 0 of the next month is the last day of this month
	end := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC)
	return start, end
}
