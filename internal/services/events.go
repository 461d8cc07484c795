package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/crud-app/records-api/internal/logger"
	"github.com/crud-app/records-api/internal/models"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

//go:generate mockgen -source=events.go -destination=events_mock.go -package=services

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// publishEvent publishes a record change to Kafka. Failures are logged and never returned.
func publishEvent(ctx context.Context, w KafkaWriter, collection, operation string, id primitive.ObjectID) {
	event := models.RecordEvent{
		EventID:    uuid.NewString(),
		Timestamp:  time.Now().Unix(),
		Collection: collection,
		Operation:  operation,
		RecordID:   id.Hex(),
	}

	if w == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.RecordID),
		Value: data,
	}

	if err := w.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Event published to Kafka",
			"event_id", event.EventID,
			"collection", collection,
			"operation", operation,
			"record_id", event.RecordID,
		)
	}
}
