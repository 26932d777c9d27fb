package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"

	"medibook/config"
	"medibook/services/availability"
	"medibook/services/booking"
	"medibook/utils"
)

const TypeScheduleWarm = "schedule:warm"

// ScheduleWarmPayload identifies which doctor schedule to refresh.
type ScheduleWarmPayload struct {
	DoctorID string `json:"doctorId"`
	Mode     string `json:"mode"`
}

// WarmQueue enqueues schedule-warm tasks. It satisfies booking.ScheduleWarmer.
type WarmQueue struct {
	client *asynq.Client
}

func NewWarmQueue() *WarmQueue {
	return &WarmQueue{client: asynq.NewClient(redisQueueOpt())}
}

func (q *WarmQueue) EnqueueScheduleWarm(doctorID, mode string) error {
	payload, err := json.Marshal(ScheduleWarmPayload{DoctorID: doctorID, Mode: mode})
	if err != nil {
		return err
	}
	task := asynq.NewTask(TypeScheduleWarm, payload)
	_, err = q.client.Enqueue(task, asynq.MaxRetry(3), asynq.Timeout(30*time.Second))
	return err
}

func redisQueueOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// InitScheduleWarmWorker runs the async worker in background.
func InitScheduleWarmWorker(source booking.DoctorSource, cache *redis.Client) {
	srv := asynq.NewServer(
		redisQueueOpt(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeScheduleWarm, handleScheduleWarmTask(source, cache))

	// Start async worker with retry logic
	go func() {
		log.Println("[ScheduleWarmWorker] 🚀 Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ScheduleWarmWorker] ❌ Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ScheduleWarmWorker] ❗ Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleScheduleWarmTask(source booking.DoctorSource, cache *redis.Client) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p ScheduleWarmPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ScheduleWarmHandler] 🔴 Invalid payload: %v", err)
			return err
		}

		records, err := source.GetAvailabilities(ctx, p.DoctorID)
		if err != nil {
			log.Printf("[ScheduleWarmHandler] 🔴 Fetch failed for doctor %s: %v", p.DoctorID, err)
			return err
		}

		filtered := availability.FilterRecords(records, p.Mode)
		schedule := availability.BuildSchedule(filtered, time.Now())

		data, err := json.Marshal(schedule)
		if err != nil {
			return err
		}
		key := ScheduleCacheKey(p.DoctorID, p.Mode)
		if err := cache.Set(ctx, key, data, utils.ScheduleCacheTTL).Err(); err != nil {
			log.Printf("[ScheduleWarmHandler] 🔴 Cache write failed for %s: %v", key, err)
			return err
		}

		log.Printf("[ScheduleWarmHandler] ⏰ Warmed schedule for doctor %s (%s)", p.DoctorID, p.Mode)
		return nil
	}
}

// ScheduleCacheKey names the warmed schedule entry for a doctor and mode.
func ScheduleCacheKey(doctorID, mode string) string {
	return utils.ScheduleCachePrefix + doctorID + ":" + mode
}
