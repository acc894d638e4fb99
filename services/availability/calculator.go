package availability

import (
	"errors"
	"fmt"
	"time"

	"studycompass/models"
)

// DefaultLookaheadMinutes is the transit buffer added to "now" before the
// free/busy state is evaluated. A student checking their phone at 9:05 cannot
// use a room that fills at 9:10.
const DefaultLookaheadMinutes = 10

// ErrMalformedInterval flags a schedule interval whose start is not strictly
// before its end. Bad import data is rejected, never silently reordered.
var ErrMalformedInterval = errors.New("malformed schedule interval")

// errChainGuard trips if the busy-span chain stops making progress. Interval
// validation makes this unreachable; it aborts the single request if it ever
// fires.
var errChainGuard = errors.New("busy-span chain exceeded interval count")

// FreeKind tags a FreeTimeResult.
type FreeKind int

const (
	// FreeForDay: no busy interval remains today (includes weekends).
	FreeForDay FreeKind = iota
	// FreeUntil: free now, with a busy interval later today.
	FreeUntil
	// BusyUntil: inside a busy span right now.
	BusyUntil
)

func (k FreeKind) String() string {
	switch k {
	case FreeForDay:
		return "free_for_day"
	case FreeUntil:
		return "free_until"
	case BusyUntil:
		return "busy_until"
	default:
		return "unknown"
	}
}

// FreeTimeResult reports the current free/busy state of a weekly schedule.
type FreeTimeResult struct {
	Kind FreeKind `json:"kind"`
	// Minutes until the state flips, measured from the buffered reference
	// instant. Zero (and meaningless) when Kind is FreeForDay.
	Minutes int `json:"minutes,omitempty"`
	// Until is the minute of day at which the state flips: the start of the
	// next busy span (FreeUntil) or the end of the current chained span
	// (BusyUntil).
	Until int `json:"until,omitempty"`
}

// Calculator evaluates weekly schedules against a reference instant. The
// zero value uses the default lookahead buffer.
type Calculator struct {
	// LookaheadMinutes overrides the transit buffer; 0 means the default.
	// Negative disables the buffer entirely.
	LookaheadMinutes int
}

func (c Calculator) buffer() time.Duration {
	m := c.LookaheadMinutes
	switch {
	case m == 0:
		m = DefaultLookaheadMinutes
	case m < 0:
		m = 0
	}
	return time.Duration(m) * time.Minute
}

// ComputeFreeStatus reports whether the schedule is free or busy at now (plus
// the lookahead buffer) and how long until that changes.
//
// Back-to-back intervals are chained: an interval starting exactly when the
// current busy span ends extends the span, transitively, so consecutive
// classes read as one continuous busy block. Interval lists are scanned in
// stored order and are tolerated unsorted and overlapping; when two intervals
// are active at once, the first in stored order decides where the chain
// starts.
func (c Calculator) ComputeFreeStatus(sched models.WeeklySchedule, now time.Time) (FreeTimeResult, error) {
	at := now.Add(c.buffer())

	day, ok := sched.Day(at.Weekday())
	if !ok || len(day) == 0 {
		return FreeTimeResult{Kind: FreeForDay}, nil
	}

	for _, iv := range day {
		if iv.Start >= iv.End {
			return FreeTimeResult{}, fmt.Errorf("%w: %q has start %d >= end %d", ErrMalformedInterval, iv.Label, iv.Start, iv.End)
		}
	}

	minute := at.Hour()*60 + at.Minute()
	nextStart := -1
	for _, iv := range day {
		if iv.End < minute {
			continue
		}
		if iv.Start <= minute {
			end, err := chainEnd(day, iv.End)
			if err != nil {
				return FreeTimeResult{}, err
			}
			return FreeTimeResult{Kind: BusyUntil, Minutes: end - minute, Until: end}, nil
		}
		if nextStart == -1 || iv.Start < nextStart {
			nextStart = iv.Start
		}
	}

	if nextStart == -1 {
		return FreeTimeResult{Kind: FreeForDay}, nil
	}
	return FreeTimeResult{Kind: FreeUntil, Minutes: nextStart - minute, Until: nextStart}, nil
}

// chainEnd extends a busy span across every interval that starts exactly when
// the span currently ends. Each hop strictly increases end (start < end is
// validated), so the hop count is bounded by the day's interval count.
func chainEnd(day []models.ClassInterval, end int) (int, error) {
	for hops := 0; hops <= len(day); hops++ {
		extended := false
		for _, iv := range day {
			if iv.Start == end {
				end = iv.End
				extended = true
				break
			}
		}
		if !extended {
			return end, nil
		}
	}
	return 0, errChainGuard
}
