package services

//go:generate mockgen -source=events.go -destination=events_mock.go -package=services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-translator/internal/logger"
	"github.com/sbilibin2017/gw-translator/internal/models"
	"github.com/segmentio/kafka-go"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// EventPublisher publishes activity events to Kafka. A nil publisher, or one
// without a writer, drops events.
type EventPublisher struct {
	writer KafkaWriter
}

func NewEventPublisher(writer KafkaWriter) *EventPublisher {
	return &EventPublisher{writer: writer}
}

// Publish sends one event. Failures are logged and never returned.
func (p *EventPublisher) Publish(ctx context.Context, userID uuid.UUID, operation string, recordID int64, outcome string) {
	event := models.ActivityEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		UserID:    userID.String(),
		Operation: operation,
		RecordID:  recordID,
		Outcome:   outcome,
	}
	log := logger.FromContext(ctx)

	if p == nil || p.writer == nil {
		log.Debugw("Kafka writer not configured, skipping publishing", "event_id", event.EventID, "operation", operation)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Errorw("Failed to marshal event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.UserID),
		Value: data,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		log.Errorw("Failed to publish event to Kafka", "event_id", event.EventID, "operation", operation, "error", err)
	} else {
		log.Infow("Event published to Kafka", "event_id", event.EventID, "operation", operation)
	}
}
