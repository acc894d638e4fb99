package models

import "time"

// RSVP statuses that mark a user as committed to an event.
const (
	RSVPGoing    = "going"
	RSVPMaybe    = "maybe"
	RSVPNotGoing = "not_going"
)

// Event approval states. Exempt events skip the approval pipeline entirely
// (e.g., events created by admins) but still count as committed time.
const (
	EventApproved = "approved"
	EventPending  = "pending"
	EventExempt   = "exempt"
	EventRejected = "rejected"
)

// Attendee records one user's RSVP on an event.
type Attendee struct {
	UserID string `bson:"user_id" json:"user_id"`
	Status string `bson:"status" json:"status"` // "going", "maybe", or "not_going"
}

// Event is a concrete, absolutely-timed reservation of a room.
type Event struct {
	ID        string     `bson:"id" json:"id"`
	Title     string     `bson:"title" json:"title"`
	RoomID    string     `bson:"room_id" json:"room_id"`
	HostOrgID string     `bson:"host_org_id,omitempty" json:"host_org_id,omitempty"`
	Start     time.Time  `bson:"start_time" json:"start_time"`
	End       time.Time  `bson:"end_time" json:"end_time"`
	Status    string     `bson:"status" json:"status"` // approval state
	Deleted   bool       `bson:"deleted" json:"-"`
	Attendees []Attendee `bson:"attendees,omitempty" json:"attendees,omitempty"`
	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
}
