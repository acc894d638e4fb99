package models

import "time"

// MeetingSlot is a club's single recurring weekly meeting. A club has at most
// one; richer recurrence would extend this type, not the conflict matching.
type MeetingSlot struct {
	Weekday time.Weekday `bson:"day" json:"day"`
	Start   int          `bson:"start_time" json:"start_time"` // minutes from midnight
	End     int          `bson:"end_time" json:"end_time"`
}

// Org represents a student club or organization.
type Org struct {
	ID      string       `bson:"id" json:"id"`
	Name    string       `bson:"name" json:"name"`
	Members []string     `bson:"members" json:"members"` // user IDs
	Meeting *MeetingSlot `bson:"weekly_meeting,omitempty" json:"weekly_meeting,omitempty"`
}
