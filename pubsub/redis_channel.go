package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ihor-metko/RSP-sub000/realtime"
	"github.com/redis/go-redis/v9"
)

// ClubChannelName is the Redis pub/sub channel carrying one club's booking
// lifecycle events.
func ClubChannelName(clubID string) string {
	return "booking-events:" + clubID
}

// RedisChannel adapts a Redis pub/sub subscription to the realtime.Channel
// contract: handlers are bound per event name and receive the raw payload
// of every matching envelope, in delivery order.
type RedisChannel struct {
	rdb     *redis.Client
	channel string
	logger  *slog.Logger

	mu       sync.RWMutex
	handlers map[string]func(payload []byte)
}

func NewRedisChannel(rdb *redis.Client, channel string) *RedisChannel {
	return &RedisChannel{
		rdb:      rdb,
		channel:  channel,
		logger:   slog.Default().With("component", "pubsub", "channel", channel),
		handlers: map[string]func(payload []byte){},
	}
}

func (c *RedisChannel) Bind(event string, handler func(payload []byte)) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.handlers[event] = handler
}

func (c *RedisChannel) Unbind(event string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.handlers, event)
}

// Listen consumes the subscription until ctx is cancelled or the
// subscription channel closes. A closed channel means the connection
// dropped; the caller decides whether to re-listen and resync.
func (c *RedisChannel) Listen(ctx context.Context) {
	sub := c.rdb.Subscribe(ctx, c.channel)
	defer sub.Close()

	ch := sub.Channel()

	c.logger.Info("listening for booking events")

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				c.logger.Warn("subscription closed")
				return
			}

			c.dispatch([]byte(msg.Payload))
		}
	}
}

func (c *RedisChannel) dispatch(raw []byte) {
	var envelope realtime.Envelope

	if err := json.Unmarshal(raw, &envelope); err != nil {
		c.logger.Warn("failed to parse envelope", "err", err)
		return
	}

	c.mu.RLock()
	handler, ok := c.handlers[envelope.Event]
	c.mu.RUnlock()

	if !ok {
		return
	}

	handler(envelope.Payload)
}

// Publisher emits envelopes to a club channel. The hold lifecycle uses it
// so sibling service instances converge on holds taken here.
type Publisher struct {
	rdb     *redis.Client
	channel string
}

func NewPublisher(rdb *redis.Client, channel string) *Publisher {
	return &Publisher{rdb: rdb, channel: channel}
}

func (p *Publisher) Publish(ctx context.Context, event string, payload any) error {
	body, err := json.Marshal(payload)

	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	data, err := json.Marshal(realtime.Envelope{Event: event, Payload: body})

	if err != nil {
		return fmt.Errorf("failed to marshal envelope: %w", err)
	}

	if err := p.rdb.Publish(ctx, p.channel, data).Err(); err != nil {
		return fmt.Errorf("failed to publish event '%v': %w", event, err)
	}

	return nil
}
