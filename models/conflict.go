package models

import "time"

// TimeBlock is a candidate absolute time range, as submitted in a booking
// request or a poll response. Always concrete instants, never recurring.
type TimeBlock struct {
	Start time.Time `bson:"start_time" json:"start_time"`
	End   time.Time `bson:"end_time" json:"end_time"`
}

// Conflict source types.
const (
	ConflictRSVPEvent   = "rsvp_event"
	ConflictClass       = "class"
	ConflictClubMeeting = "club_meeting"
)

// ConflictRecord is one detected collision between a candidate block and an
// existing commitment. Records are produced fresh per query and never stored.
type ConflictRecord struct {
	Type      string `json:"type"`      // "rsvp_event", "class", or "club_meeting"
	Reference string `json:"reference"` // event ID, class label, or org ID
	Reason    string `json:"reason"`    // human-readable summary for display
}

// ConflictPrefs selects which commitment sources count as blocking for one
// conflict check. Chosen per request; not persisted here.
type ConflictPrefs struct {
	BlockRSVPEvents   bool `json:"blockRsvpEvents"`
	BlockClasses      bool `json:"blockClasses"`
	BlockClubMeetings bool `json:"blockClubMeetings"`
}
