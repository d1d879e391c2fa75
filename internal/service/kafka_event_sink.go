package service

import (
	"context"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

const kafkaWriteTimeout = 5 * time.Second

// MessageWriter is the subset of *kafka.Writer the sink needs
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaEventSink produces every event to a Kafka topic, keyed by event type.
type KafkaEventSink struct {
	writer MessageWriter
	log    *logrus.Logger
}

// NewKafkaWriter builds a writer for topic on brokers.
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
	}
}

func NewKafkaEventSink(writer MessageWriter, log *logrus.Logger) *KafkaEventSink {
	return &KafkaEventSink{writer: writer, log: log}
}

func (s *KafkaEventSink) Record(eventType, message string) {
	payload, err := marshalEvent(eventType, message, time.Now())
	if err != nil {
		s.log.Warnf("Failed to marshal event: %+v", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), kafkaWriteTimeout)
	defer cancel()

	msg := kafka.Message{
		Key:   []byte(eventType),
		Value: payload,
	}
	if err := s.writer.WriteMessages(ctx, msg); err != nil {
		s.log.Warnf("Failed to produce event to Kafka: %+v", err)
	}
}

func (s *KafkaEventSink) Close() error {
	return s.writer.Close()
}
