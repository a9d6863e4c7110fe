package broadcast

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Channel - канал Redis Pub/Sub, через который экземпляры сервиса обмениваются событиями
const Channel = "signal_events"

// ErrNotReady возвращается, если канал рассылки еще не инициализирован
var ErrNotReady = errors.New("broadcast channel is not initialized")

// Publisher - интерфейс для публикации событий
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// RedisPublisher - реализация Publisher, использующая Redis Pub/Sub
type RedisPublisher struct {
	redisClient *redis.Client
	channel     string
}

// NewRedisPublisher создает новый RedisPublisher
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
		channel:     Channel,
	}
}

// Publish публикует событие в канал Redis. Доставка at-most-once, без хранения.
func (p *RedisPublisher) Publish(ctx context.Context, event Event) error {
	if p == nil || p.redisClient == nil {
		return ErrNotReady
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal signal event: %w", err)
	}

	if err := p.redisClient.Publish(ctx, p.channel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish signal event to Redis: %w", err)
	}
	return nil
}
