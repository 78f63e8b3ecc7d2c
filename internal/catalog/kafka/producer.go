package kafka

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	kafkago "github.com/segmentio/kafka-go"
)

type ProducerConfig struct {
	Brokers      []string
	Topic        string
	WriteTimeout time.Duration
	Logger       zerolog.Logger
}

// Producer publishes catalog events to a Kafka topic.
type Producer struct {
	writer *kafkago.Writer
	config ProducerConfig
	closed atomic.Bool
	log    zerolog.Logger
}

func NewProducer(cfg ProducerConfig) (*Producer, error) {
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	setDefaults(&cfg)

	return &Producer{
		writer: &kafkago.Writer{
			Addr:         kafkago.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			Balancer:     &kafkago.LeastBytes{},
			WriteTimeout: cfg.WriteTimeout,
		},
		config: cfg,
		log:    cfg.Logger.With().Str("component", "kafka_producer").Logger(),
	}, nil
}

func validateConfig(cfg *ProducerConfig) error {
	if len(cfg.Brokers) == 0 {
		return fmt.Errorf("brokers list is empty")
	}
	if cfg.Topic == "" {
		return fmt.Errorf("topic is empty")
	}
	if cfg.WriteTimeout < 0 {
		return fmt.Errorf("write_timeout cannot be negative")
	}
	return nil
}

func setDefaults(cfg *ProducerConfig) {
	if cfg.WriteTimeout == 0 {
		cfg.WriteTimeout = 10 * time.Second
	}
}

func (p *Producer) Publish(ctx context.Context, key string, value []byte) error {
	if p.closed.Load() {
		return fmt.Errorf("producer is closed")
	}
	err := p.writer.WriteMessages(ctx, kafkago.Message{
		Key:   []byte(key),
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("kafka publish: %w", err)
	}
	p.log.Debug().Str("key", key).Int("bytes", len(value)).Msg("event published")
	return nil
}

func (p *Producer) Close() error {
	if !p.closed.CompareAndSwap(false, true) {
		return fmt.Errorf("producer is already closed")
	}
	return p.writer.Close()
}
