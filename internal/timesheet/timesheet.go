// Package timesheet holds the persisted data model and the start/stop
// tracking logic for the work time tracker.
package timesheet

import "time"

// Period is a completed tracking interval.
type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Duration returns End - Start. May be zero or negative when the period
// was recorded under clock adjustment.
func (p Period) Duration() time.Duration {
	return p.End.Sub(p.Start)
}

// Overlap returns the overlapping duration between p and other,
// or zero when they do not intersect.
func (p Period) Overlap(other Period) time.Duration {
	start := p.Start
	if other.Start.After(start) {
		start = other.Start
	}
	end := p.End
	if other.End.Before(end) {
		end = other.End
	}
	if start.Before(end) {
		return end.Sub(start)
	}
	return 0
}

// Timesheet is the full persisted record: completed periods plus an
// optional in-progress session. ActiveStart is nil when not tracking,
// which keeps "at most one active period" structurally enforced.
type Timesheet struct {
	Periods     []Period   `json:"periods"`
	ActiveStart *time.Time `json:"active_period_start"`
}

// New returns an empty timesheet.
func New() *Timesheet {
	return &Timesheet{Periods: []Period{}}
}

// Tracking reports whether a period is currently in progress.
func (ts *Timesheet) Tracking() bool {
	return ts.ActiveStart != nil
}

// Start begins a new active period at now. Reports false without
// mutating when a period is already active.
func (ts *Timesheet) Start(now time.Time) bool {
	if ts.ActiveStart != nil {
		return false
	}
	start := now
	ts.ActiveStart = &start
	return true
}

// Stop ends the active period at now, appending it to Periods and
// clearing the active start. Reports false without mutating when no
// period is active. The returned duration is now - start; under clock
// adjustment it may be zero or negative and is recorded as-is.
func (ts *Timesheet) Stop(now time.Time) (time.Duration, bool) {
	if ts.ActiveStart == nil {
		return 0, false
	}
	start := *ts.ActiveStart
	ts.Periods = append(ts.Periods, Period{Start: start, End: now})
	ts.ActiveStart = nil
	return now.Sub(start), true
}
