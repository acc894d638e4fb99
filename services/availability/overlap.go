package availability

import (
	"time"

	"studycompass/models"
)

// OverlapsMinutes is the half-open interval overlap test used everywhere
// interval pairs are compared: [aStart, aEnd) and [bStart, bEnd) overlap when
// aStart < bEnd && aEnd > bStart.
func OverlapsMinutes(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && aEnd > bStart
}

// MinuteOfDay converts an instant to minutes since midnight, local wall clock.
func MinuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// ClassConflicts returns every schedule interval on start's weekday that
// overlaps the candidate range [start, end). Weekends have no bucket and
// never conflict. A candidate running past midnight is clamped to the end of
// start's day; recurring schedules carry no cross-day spans to compare
// against.
func ClassConflicts(sched models.WeeklySchedule, start, end time.Time) []models.ClassInterval {
	day, ok := sched.Day(start.Weekday())
	if !ok || len(day) == 0 {
		return nil
	}

	candStart := MinuteOfDay(start)
	candEnd := MinuteOfDay(end)
	sy, sm, sd := start.Date()
	ey, em, ed := end.Date()
	if sy != ey || sm != em || sd != ed {
		candEnd = 24 * 60
	}

	var conflicts []models.ClassInterval
	for _, iv := range day {
		if OverlapsMinutes(candStart, candEnd, iv.Start, iv.End) {
			conflicts = append(conflicts, iv)
		}
	}
	return conflicts
}
