package eventRepo

import (
	"context"
	"time"

	"studycompass/models"
)

// EventRepository provides read access to concrete room reservations.
// Both queries apply the half-open overlap test (start < rangeEnd AND
// end > rangeStart) and only return non-deleted, approved-or-exempt events.
type EventRepository interface {
	// ApprovedByRoomInRange returns every approved reservation of the room
	// overlapping [start, end). All matches are returned for display, not
	// just the first.
	ApprovedByRoomInRange(ctx context.Context, roomID string, start, end time.Time) ([]models.Event, error)
	// RSVPedInRange returns events overlapping [start, end) where the user
	// has RSVP'd "going" or "maybe".
	RSVPedInRange(ctx context.Context, userID string, start, end time.Time) ([]models.Event, error)
}
