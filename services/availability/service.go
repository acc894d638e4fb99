package availability

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	eventRepo "studycompass/database/repository/event"
	roomRepo "studycompass/database/repository/room"
	"studycompass/models"
	"studycompass/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// ErrInvalidRange flags a candidate range whose start is not strictly before
// its end.
var ErrInvalidRange = errors.New("invalid time range: start must be before end")

// AvailabilityResult answers "can this room be booked for this range".
// Reason is set when Available is false.
type AvailabilityResult struct {
	Available         bool           `json:"available"`
	Reason            string         `json:"reason,omitempty"`
	ConflictingEvents []models.Event `json:"conflictingEvents,omitempty"`
}

// FreeRoom pairs a room with its current free/busy status.
type FreeRoom struct {
	Room   models.Room    `json:"room"`
	Status FreeTimeResult `json:"status"`
}

// AvailabilityService answers free/busy questions about rooms. It only
// answers "is it free as of this read"; any booking step the caller takes
// afterwards is its own concern.
type AvailabilityService interface {
	// CheckRoom determines whether the room can be reserved for [start, end).
	CheckRoom(ctx context.Context, roomID string, start, end time.Time) (AvailabilityResult, error)
	// RoomFreeStatus reports the room's recurring-schedule state at now.
	RoomFreeStatus(ctx context.Context, roomID string, now time.Time) (FreeTimeResult, error)
	// FreeRooms lists every room not currently inside a busy span at now.
	FreeRooms(ctx context.Context, now time.Time) ([]FreeRoom, error)
}

// DefaultAvailabilityService implements AvailabilityService.
type DefaultAvailabilityService struct {
	RoomRepo  roomRepo.RoomRepository
	EventRepo eventRepo.EventRepository
	Calc      Calculator
	// Cache, when set, holds weekly schedules under "schedule:<roomID>".
	// Schedules are immutable within a term, so a stale read is harmless.
	Cache    *redis.Client
	CacheTTL time.Duration
}

// CheckRoom runs the availability checks in cheapest-first order: room
// metadata, then the recurring class schedule, then the booking store. The
// first failing check decides the result.
func (s *DefaultAvailabilityService) CheckRoom(ctx context.Context, roomID string, start, end time.Time) (AvailabilityResult, error) {
	if !start.Before(end) {
		return AvailabilityResult{}, ErrInvalidRange
	}

	room, err := s.RoomRepo.GetByID(ctx, roomID)
	if err != nil {
		return AvailabilityResult{}, err
	}
	if room.Restricted {
		return AvailabilityResult{
			Available: false,
			Reason:    fmt.Sprintf("%s is restricted and cannot be reserved", room.Name),
		}, nil
	}

	sched, err := s.schedule(ctx, roomID)
	if err != nil {
		return AvailabilityResult{}, err
	}
	if conflicts := ClassConflicts(sched, start, end); len(conflicts) > 0 {
		return AvailabilityResult{
			Available: false,
			Reason:    fmt.Sprintf("conflicts with the class %q scheduled in this room", conflicts[0].Label),
		}, nil
	}

	events, err := s.EventRepo.ApprovedByRoomInRange(ctx, roomID, start, end)
	if err != nil {
		return AvailabilityResult{}, fmt.Errorf("failed to query bookings for room %s: %w", roomID, err)
	}
	if len(events) > 0 {
		return AvailabilityResult{
			Available:         false,
			Reason:            fmt.Sprintf("already reserved by %d existing event(s)", len(events)),
			ConflictingEvents: events,
		}, nil
	}

	return AvailabilityResult{Available: true}, nil
}

// RoomFreeStatus evaluates the room's weekly schedule at now.
func (s *DefaultAvailabilityService) RoomFreeStatus(ctx context.Context, roomID string, now time.Time) (FreeTimeResult, error) {
	if _, err := s.RoomRepo.GetByID(ctx, roomID); err != nil {
		return FreeTimeResult{}, err
	}
	sched, err := s.schedule(ctx, roomID)
	if err != nil {
		return FreeTimeResult{}, err
	}
	return s.Calc.ComputeFreeStatus(sched, now)
}

// FreeRooms scans every room's weekly schedule and keeps the ones not inside
// a busy span. Rooms with malformed schedule data are skipped and logged
// rather than failing the whole listing.
func (s *DefaultAvailabilityService) FreeRooms(ctx context.Context, now time.Time) ([]FreeRoom, error) {
	logger := utils.GetLogger()

	rooms, err := s.RoomRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}

	free := make([]FreeRoom, 0, len(rooms))
	for _, room := range rooms {
		sched, err := s.schedule(ctx, room.ID)
		if err != nil {
			return nil, err
		}
		status, err := s.Calc.ComputeFreeStatus(sched, now)
		if err != nil {
			logger.Warn("skipping room with bad schedule data",
				zap.String("roomID", room.ID), zap.Error(err))
			continue
		}
		if status.Kind != BusyUntil {
			free = append(free, FreeRoom{Room: room, Status: status})
		}
	}
	return free, nil
}

// schedule loads a room's weekly schedule, going through the Redis cache
// when one is configured.
func (s *DefaultAvailabilityService) schedule(ctx context.Context, roomID string) (models.WeeklySchedule, error) {
	if s.Cache == nil {
		return s.RoomRepo.GetWeeklySchedule(ctx, roomID)
	}

	key := scheduleCacheKey(roomID)
	if data, err := s.Cache.Get(ctx, key).Result(); err == nil {
		var sched models.WeeklySchedule
		if err := json.Unmarshal([]byte(data), &sched); err == nil {
			return sched, nil
		}
		// Unreadable cache entry; fall through to Mongo and overwrite it.
	}

	sched, err := s.RoomRepo.GetWeeklySchedule(ctx, roomID)
	if err != nil {
		return models.WeeklySchedule{}, err
	}
	if data, err := json.Marshal(sched); err == nil {
		if err := s.Cache.Set(ctx, key, data, s.CacheTTL).Err(); err != nil {
			utils.GetLogger().Warn("failed to cache schedule",
				zap.String("roomID", roomID), zap.Error(err))
		}
	}
	return sched, nil
}

func scheduleCacheKey(roomID string) string {
	return "schedule:" + roomID
}
