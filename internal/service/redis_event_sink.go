package service

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const redisPublishTimeout = 2 * time.Second

type redisEventSink struct {
	client  *redis.Client
	channel string
	log     *logrus.Logger
}

// NewRedisEventSink publishes every event as JSON on a Redis pub/sub channel.
func NewRedisEventSink(client *redis.Client, channel string, log *logrus.Logger) EventSink {
	return &redisEventSink{client: client, channel: channel, log: log}
}

func (s *redisEventSink) Record(eventType, message string) {
	payload, err := marshalEvent(eventType, message, time.Now())
	if err != nil {
		s.log.Warnf("Failed to marshal event: %+v", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), redisPublishTimeout)
	defer cancel()

	if err := s.client.Publish(ctx, s.channel, payload).Err(); err != nil {
		s.log.Warnf("Failed to publish event to Redis: %+v", err)
	}
}
