package broker

import (
	"context"
	"errors"
	"time"

	"github.com/segmentio/kafka-go"

	"mappins/internal/domain/repository/broker"
	"mappins/pkg/logger"
)

type kafkaReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaReceiver reads pin events from a kafka topic as a member of the configured group.
type KafkaReceiver struct {
	reader kafkaReader
}

func NewKafkaReceiver(cfg Config) (*KafkaReceiver, error) {
	if len(cfg.Brokers) == 0 || cfg.Topic == "" {
		return nil, errors.New("kafka brokers and topic are required")
	}

	return &KafkaReceiver{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:        cfg.Brokers,
			Topic:          cfg.Topic,
			GroupID:        cfg.GroupName,
			CommitInterval: 0,
			MinBytes:       1,
			MaxBytes:       10e6,
		}),
	}, nil
}

func (r *KafkaReceiver) Messages(ctx context.Context, consumerName string) (<-chan broker.Message, error) {
	if r.reader == nil {
		return nil, errors.New("kafka reader not initialized")
	}

	logger.Info("consuming kafka pin events", "consumer", consumerName)

	out := make(chan broker.Message)
	go func() {
		defer close(out)

		for {
			msg, err := r.reader.FetchMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}

				logger.Error("failed to read from kafka", "err", err)
				time.Sleep(time.Second)

				continue
			}

			select {
			case out <- &KafkaMessage{msg: msg, reader: r.reader}:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}

func (r *KafkaReceiver) Close() error {
	return r.reader.Close()
}

type KafkaMessage struct {
	msg    kafka.Message
	reader kafkaReader
}

func (m *KafkaMessage) Body() string {
	return string(m.msg.Value)
}

func (m *KafkaMessage) Ack() error {
	return m.reader.CommitMessages(context.Background(), m.msg)
}

func (m *KafkaMessage) Nack() error {
	return nil
}
