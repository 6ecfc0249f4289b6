package broker

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const ackTimeout = 2 * time.Second

// RedisMessage is a pin event read from the stream by one consumer of the group.
type RedisMessage struct {
	stream      string
	group       string
	consumer    string
	id          string
	body        string
	redisClient *redis.Client
}

func (m *RedisMessage) Body() string {
	return m.body
}

func (m *RedisMessage) ID() string {
	return m.id
}

func (m *RedisMessage) Ack() error {
	ctx, cancel := context.WithTimeout(context.Background(), ackTimeout)
	defer cancel()

	return m.redisClient.XAck(ctx, m.stream, m.group, m.id).Err()
}

// Nack leaves the entry in the group's pending list under this consumer.
func (m *RedisMessage) Nack() error {
	return nil
}
