package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	hazardEventsQueueKey = "hazard_created_events"
)

// HazardEvent - событие о новой зафиксированной опасности
type HazardEvent struct {
	HazardID   uuid.UUID `json:"hazard_id"`
	UserID     uuid.UUID `json:"user_id"`
	HazardType string    `json:"hazard_type"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Confidence float64   `json:"confidence"`
	ImageURL   string    `json:"image_url"`
	CreatedAt  time.Time `json:"created_at"`
}

// EventPublisher - интерфейс для публикации событий об опасностях
type EventPublisher interface {
	Publish(ctx context.Context, event HazardEvent) error
}

// RedisEventPublisher - реализация EventPublisher, использующая Redis
type RedisEventPublisher struct {
	redisClient *redis.Client
}

// NewRedisEventPublisher создает новый RedisEventPublisher
func NewRedisEventPublisher(client *redis.Client) *RedisEventPublisher {
	return &RedisEventPublisher{
		redisClient: client,
	}
}

// Publish публикует событие в очередь Redis
func (p *RedisEventPublisher) Publish(ctx context.Context, event HazardEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal hazard event: %w", err)
	}

	// LPUSH в левую часть списка, воркер снимает BRPop с правой
	if err := p.redisClient.LPush(ctx, hazardEventsQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish hazard event to Redis: %w", err)
	}
	return nil
}
