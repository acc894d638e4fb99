package roomRepo

import (
	"context"
	"errors"

	"studycompass/models"
)

// ErrNotFound is returned when a room (or its schedule) does not exist.
// Callers map it to a 404 rather than a generic failure.
var ErrNotFound = errors.New("room not found")

// RoomRepository provides read access to rooms and their weekly class
// schedules. Schedules are imported once per term and are read-only here.
type RoomRepository interface {
	GetByID(ctx context.Context, roomID string) (*models.Room, error)
	List(ctx context.Context) ([]models.Room, error)
	// GetWeeklySchedule returns the room's recurring class schedule. A room
	// with no schedule document is treated as free all week: the zero value
	// is returned, not ErrNotFound.
	GetWeeklySchedule(ctx context.Context, roomID string) (models.WeeklySchedule, error)
}
