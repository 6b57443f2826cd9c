package realtime

import (
	"context"
	"encoding/json"
	"fmt"

	"app/internal/domain/model"

	"github.com/redis/go-redis/v9"
)

// RedisPublisher pushes freshly written notifications onto a per-user
// pub/sub channel so the bell UI can subscribe instead of polling.
type RedisPublisher struct {
	client *redis.Client
}

func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{client: client}
}

func NewRedisClient(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: addr})
}

func (p *RedisPublisher) Publish(ctx context.Context, n model.Notification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return err
	}

	channel := fmt.Sprintf("notifications:%d", n.UserID)
	return p.client.Publish(ctx, channel, payload).Err()
}
