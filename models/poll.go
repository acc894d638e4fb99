package models

import "time"

// Poll is a scheduling poll: participants pick the time blocks they can make.
type Poll struct {
	ID        string    `bson:"id" json:"id"`
	Title     string    `bson:"title" json:"title"`
	CreatorID string    `bson:"creator_id" json:"creator_id"`
	Closed    bool      `bson:"closed" json:"closed"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// PollResponse is one participant's selected availability blocks.
type PollResponse struct {
	ParticipantID  string      `bson:"participant_id,omitempty" json:"participant_id,omitempty"` // empty for anonymous responses
	DisplayName    string      `bson:"display_name" json:"display_name"`
	SelectedBlocks []TimeBlock `bson:"selected_blocks" json:"selected_blocks"`
}

// OverlapWindow is a time range selected identically by two or more poll
// participants. Windows are ranked by participant count, descending.
type OverlapWindow struct {
	Start        time.Time `json:"start_time"`
	End          time.Time `json:"end_time"`
	Participants []string  `json:"participants"` // display names, in response order
}

// ValidationError flags one violated rule on one candidate block. Block is
// the 1-based position of the block in the submitted list.
type ValidationError struct {
	Block   int    `json:"block"`
	Message string `json:"message"`
}
