// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package attendance

import "time"

// DateLayout is the date-only format used for ExerciseLog.Date.
// Lexicographic order on these strings equals chronological order.
const DateLayout = "2006-01-02"

// WeekWindow is a Monday..Sunday range, inclusive on both ends
type WeekWindow struct {
	Start string
	End   string
}

// WeekOf returns the week containing t's calendar date in t's location.
// A Sunday belongs to the week that ends on it.
func WeekOf(t time.Time) WeekWindow {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	monday := day.AddDate(0, 0, -(isoWeekday(day) - 1))
	return WeekWindow{
		Start: monday.Format(DateLayout),
		End:   monday.AddDate(0, 0, 6).Format(DateLayout),
	}
}

// Contains reports whether date (YYYY-MM-DD) falls inside the window
func (w WeekWindow) Contains(date string) bool {
	return date >= w.Start && date <= w.End
}

// DateOf formats t's calendar date in t's location
func DateOf(t time.Time) string {
	return t.Format(DateLayout)
}

// isoWeekday numbers Monday as 1 and Sunday as 7
func isoWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}
