package models

import "time"

// ClassInterval is one recurring busy block on a weekday.
type ClassInterval struct {
	Label string `bson:"class_name" json:"class_name"` // e.g., "CSCI 4210 Lecture"
	Start int    `bson:"start_time" json:"start_time"` // minutes from midnight (e.g., 540 for 9:00 AM)
	End   int    `bson:"end_time" json:"end_time"`     // minutes from midnight (e.g., 660 for 11:00 AM)
}

// WeeklySchedule holds the recurring Monday-Friday class blocks for a room or a
// student. Weekends carry no bucket and are treated as always free. Interval
// lists keep the order they were imported in: they are not guaranteed to be
// sorted or non-overlapping, and consumers must not assume either.
type WeeklySchedule struct {
	Monday    []ClassInterval `bson:"M" json:"M"`
	Tuesday   []ClassInterval `bson:"T" json:"T"`
	Wednesday []ClassInterval `bson:"W" json:"W"`
	Thursday  []ClassInterval `bson:"R" json:"R"`
	Friday    []ClassInterval `bson:"F" json:"F"`
}

// Day returns the interval bucket for the given weekday. The second return
// value is false on Saturday and Sunday, which have no bucket at all.
func (s WeeklySchedule) Day(d time.Weekday) ([]ClassInterval, bool) {
	switch d {
	case time.Monday:
		return s.Monday, true
	case time.Tuesday:
		return s.Tuesday, true
	case time.Wednesday:
		return s.Wednesday, true
	case time.Thursday:
		return s.Thursday, true
	case time.Friday:
		return s.Friday, true
	default:
		return nil, false
	}
}

// ScheduleDoc is the stored form of a weekly schedule, keyed by the room or
// user that owns it.
type ScheduleDoc struct {
	OwnerID string         `bson:"owner_id" json:"owner_id"`
	Term    string         `bson:"term,omitempty" json:"term,omitempty"` // e.g., "2026 Fall"
	Weekly  WeeklySchedule `bson:"weekly_schedule" json:"weekly_schedule"`
}
