package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/beng262/InfiniteTicTacToe/internal/entity"
)

// Publisher sends game events to a Redis pub/sub channel.
type Publisher struct {
	client  *redis.Client
	channel string
}

func NewPublisher(client *redis.Client, channel string) *Publisher {
	return &Publisher{
		client:  client,
		channel: channel,
	}
}

// Publish - publishes the event as JSON on the configured channel.
func (that *Publisher) Publish(ctx context.Context, event *entity.GameEvent) error {
	eventJSON, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal game event: %w", err)
	}

	if err = that.client.Publish(ctx, that.channel, eventJSON).Err(); err != nil {
		return fmt.Errorf("failed to publish game event to %s: %w", that.channel, err)
	}

	return nil
}

// NopPublisher drops every event. It is used when the feed is disabled.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, *entity.GameEvent) error {
	return nil
}
