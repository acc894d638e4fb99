package availability

import (
	"context"
	"encoding/json"
	"fmt"

	"studycompass/utils"

	"go.uber.org/zap"
)

// WarmScheduleCache primes the Redis schedule cache for every room, so the
// first availability checks of the day never wait on Mongo. A no-op when no
// cache is configured.
func (s *DefaultAvailabilityService) WarmScheduleCache(ctx context.Context) error {
	if s.Cache == nil {
		return nil
	}
	logger := utils.GetLogger()

	rooms, err := s.RoomRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list rooms for cache warm: %w", err)
	}

	warmed := 0
	for _, room := range rooms {
		sched, err := s.RoomRepo.GetWeeklySchedule(ctx, room.ID)
		if err != nil {
			logger.Warn("cache warm: failed to load schedule",
				zap.String("roomID", room.ID), zap.Error(err))
			continue
		}
		data, err := json.Marshal(sched)
		if err != nil {
			continue
		}
		if err := s.Cache.Set(ctx, scheduleCacheKey(room.ID), data, s.CacheTTL).Err(); err != nil {
			logger.Warn("cache warm: failed to store schedule",
				zap.String("roomID", room.ID), zap.Error(err))
			continue
		}
		warmed++
	}
	logger.Info("schedule cache warmed", zap.Int("rooms", warmed))
	return nil
}
