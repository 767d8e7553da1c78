package events

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/GoSim-25-26J-441/jobly-backend/config"
)

// NewPublisher builds the publisher selected by cfg.Backend.
func NewPublisher(ctx context.Context, cfg *config.EventsConfig) (Publisher, error) {
	switch cfg.Backend {
	case "", "none":
		return Nop{}, nil
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			client.Close()
			return nil, fmt.Errorf("failed to ping redis: %w", err)
		}
		return NewRedisPublisher(client), nil
	case "amqp":
		return NewAMQPPublisher(cfg.AMQPURL)
	default:
		return nil, fmt.Errorf("unknown events backend %q", cfg.Backend)
	}
}
