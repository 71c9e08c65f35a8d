// Package events implements the analytics event bus on Kafka.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/praxisgrc/praxis/internal/application/service"
	"github.com/praxisgrc/praxis/internal/config"
	"github.com/praxisgrc/praxis/pkg/constants"
	"github.com/praxisgrc/praxis/pkg/logger"
)

// analyticsEvent is the wire form of a lifecycle event. Tenant id doubles as
// the partition key so each tenant's events stay ordered.
type analyticsEvent struct {
	EventID   string      `json:"event_id"`
	EventType string      `json:"event_type"`
	TenantID  string      `json:"tenant_id"`
	EmittedAt time.Time   `json:"emitted_at"`
	Payload   interface{} `json:"payload,omitempty"`
}

// KafkaProducer is the Kafka-backed EventPublisher.
type KafkaProducer struct {
	writer *kafka.Writer
	logger logger.Logger
}

// NewKafkaProducer creates the producer for the configured topic.
func NewKafkaProducer(cfg *config.KafkaConfig, log logger.Logger) service.EventPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: 50 * time.Millisecond,
	}
	return &KafkaProducer{
		writer: writer,
		logger: log.WithComponent("kafka_producer"),
	}
}

// Publish sends one event to the analytics topic.
func (p *KafkaProducer) Publish(ctx context.Context, eventType constants.EventType, tenantID string, payload interface{}) error {
	event := analyticsEvent{
		EventID:   uuid.NewString(),
		EventType: string(eventType),
		TenantID:  tenantID,
		EmittedAt: time.Now().UTC(),
		Payload:   payload,
	}

	value, err := json.Marshal(event)
	if err != nil {
		return err
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(tenantID),
		Value: value,
	})
	if err != nil {
		p.logger.Error(ctx, "Failed to write event to Kafka", err, logger.Fields{
			"event_type": string(eventType),
			"tenant_id":  tenantID,
		})
	}
	return err
}

// Close closes the underlying writer.
func (p *KafkaProducer) Close() error {
	return p.writer.Close()
}
