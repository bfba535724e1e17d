package cron

import (
	"context"
	"encoding/json"
	"time"

	"travelogue/config"
	"travelogue/models"
	"travelogue/services/notification"
	"travelogue/utils"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitEmailWorker runs the async email worker in background.
func InitEmailWorker(sender notification.Notifier) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(notification.TypeEmailSend, handleEmailTask(sender))

	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		logger := utils.GetLogger()
		logger.Info("Starting email worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				logger.Error("Email worker failed to start",
					zap.Int("attempt", attempts),
					zap.Int("maxAttempts", maxAttempts),
					zap.Error(err))

				if attempts == maxAttempts {
					logger.Fatal("Email worker exhausted retry attempts")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleEmailTask(sender notification.Notifier) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		var p models.EmailPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("Invalid email task payload", zap.Error(err))
			return err
		}

		logger.Info("Delivering notification email",
			zap.String("to", p.To),
			zap.String("template", p.Template))

		var err error
		switch p.Template {
		case models.EmailBookingConfirmation:
			err = sender.SendBookingConfirmation(p.Booking, p.Trip)
		case models.EmailBookingCancellation:
			err = sender.SendBookingCancellation(p.Booking, p.Trip)
		default:
			logger.Warn("Unknown email template", zap.String("template", p.Template))
			return nil
		}

		if err != nil {
			logger.Error("Failed to deliver email", zap.String("to", p.To), zap.Error(err))
		}
		return err
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			utils.GetLogger().Warn("Redis queue connection lost", zap.Error(err))
		}
		time.Sleep(10 * time.Second)
	}
}
