package models

// Room represents a bookable study space on campus.
type Room struct {
	ID         string   `bson:"id" json:"id"`
	Name       string   `bson:"name" json:"name"` // e.g., "Sage 3303"
	Building   string   `bson:"building" json:"building"`
	Capacity   int      `bson:"capacity,omitempty" json:"capacity,omitempty"`
	Attributes []string `bson:"attributes,omitempty" json:"attributes,omitempty"` // e.g., "whiteboard", "outlets"
	Restricted bool     `bson:"restricted" json:"restricted"`                     // administratively restricted; never bookable
	ImageURL   string   `bson:"image_url,omitempty" json:"image_url,omitempty"`
}
