package cron

import (
	"context"
	"log"
	"time"

	"studycompass/config"
	"studycompass/services/availability"

	"github.com/hibiken/asynq"
)

const TypeScheduleWarm = "schedule:warm"

// warmCronSpec fires before the first classes of the day.
const warmCronSpec = "0 6 * * *"

// InitScheduleWarmWorker runs the async worker in background. It owns one
// task type: reloading every room's weekly schedule into the Redis cache.
func InitScheduleWarmWorker(availSvc *availability.DefaultAvailabilityService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisWorkerDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 1,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeScheduleWarm, handleScheduleWarmTask(availSvc))

	go func() {
		log.Println("[ScheduleWarmWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ScheduleWarmWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ScheduleWarmWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()

	go runWarmScheduler(redisOpts)
}

// runWarmScheduler enqueues the warm task on a daily cron.
func runWarmScheduler(redisOpts asynq.RedisClientOpt) {
	scheduler := asynq.NewScheduler(redisOpts, &asynq.SchedulerOpts{})
	if _, err := scheduler.Register(warmCronSpec, asynq.NewTask(TypeScheduleWarm, nil)); err != nil {
		log.Printf("[ScheduleWarmWorker] failed to register cron entry: %v", err)
		return
	}
	if err := scheduler.Run(); err != nil {
		log.Printf("[ScheduleWarmWorker] scheduler stopped: %v", err)
	}
}

func handleScheduleWarmTask(availSvc *availability.DefaultAvailabilityService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		log.Println("[ScheduleWarmWorker] warming room schedule cache")
		if err := availSvc.WarmScheduleCache(ctx); err != nil {
			log.Printf("[ScheduleWarmWorker] warm failed: %v", err)
			return err
		}
		return nil
	}
}
