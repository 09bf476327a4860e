package timesheet

import "time"

// Reporting windows are half-open [start, end) intervals computed in
// now's location, so day boundaries follow the local calendar even
// though recorded timestamps are UTC.

// DayWindow returns the calendar day containing now.
func DayWindow(now time.Time) Period {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return Period{Start: start, End: start.AddDate(0, 0, 1)}
}

// WeekWindow returns the ISO week containing now: Monday 00:00 through
// the following Monday 00:00.
func WeekWindow(now time.Time) Period {
	// Go's weekday: Sunday=0, Monday=1, …, Saturday=6
	wd := int(now.Weekday())
	if wd == 0 {
		wd = 7 // treat Sunday as 7 (ISO)
	}
	monday := now.AddDate(0, 0, -(wd - 1))
	start := time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, now.Location())
	return Period{Start: start, End: start.AddDate(0, 0, 7)}
}

// MonthWindow returns the calendar month containing now: first of the
// month through the first of the next month. AddDate normalizes the
// December rollover.
func MonthWindow(now time.Time) Period {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return Period{Start: start, End: start.AddDate(0, 1, 0)}
}

// TrackedIn sums the tracked time within window: each completed
// period contributes its overlap with the window (partial overlaps are
// clipped at the window edges), and an active session contributes the
// overlap of [ActiveStart, now). Never mutates the timesheet.
func (ts *Timesheet) TrackedIn(window Period, now time.Time) time.Duration {
	var total time.Duration
	for _, p := range ts.Periods {
		total += p.Overlap(window)
	}
	if ts.ActiveStart != nil {
		active := Period{Start: *ts.ActiveStart, End: now}
		total += active.Overlap(window)
	}
	return total
}
