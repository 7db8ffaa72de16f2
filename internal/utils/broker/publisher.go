package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/redis/go-redis/v9"
)

type (
	// Publisher fans a payload out to whoever listens on channel.
	Publisher interface {
		Publish(ctx context.Context, channel string, payload any) error
		Close() error
	}

	redisPublisher struct {
		client *redis.Client
	}

	noopPublisher struct{}
)

func NewRedisPublisher(addr string, password string) (Publisher, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisPublisher{client: client}, nil
}

func NewRedisPublisherFromClient(client *redis.Client) Publisher {
	return &redisPublisher{client: client}
}

func (p *redisPublisher) Publish(ctx context.Context, channel string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	if err := p.client.Publish(ctx, channel, data).Err(); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", channel, err)
	}
	return nil
}

func (p *redisPublisher) Close() error {
	return p.client.Close()
}

// NewNoopPublisher is used when no Redis address is configured.
func NewNoopPublisher() Publisher {
	return noopPublisher{}
}

func (noopPublisher) Publish(context.Context, string, any) error { return nil }

func (noopPublisher) Close() error { return nil }
