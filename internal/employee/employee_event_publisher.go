package employee

import (
	"context"
	"encoding/json"

	"go-hrm/internal/events"
	"go-hrm/internal/messaging/kafka"
	"go-hrm/internal/messaging/kafka/producer"

	kafkago "github.com/segmentio/kafka-go"
)

type EventPublisher interface {
	PublishEmployeeCreated(ctx context.Context, event events.EmployeeCreatedEvent) error
}

type noopEventPublisher struct{}

func (noopEventPublisher) PublishEmployeeCreated(context.Context, events.EmployeeCreatedEvent) error {
	return nil
}

type kafkaEventPublisher struct {
	writer *kafkago.Writer
}

func NewKafkaEventPublisher(writer *kafkago.Writer) EventPublisher {
	return &kafkaEventPublisher{writer: writer}
}

func (p *kafkaEventPublisher) PublishEmployeeCreated(ctx context.Context, event events.EmployeeCreatedEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return producer.Publish(ctx, p.writer, kafka.Event{
		ID:            event.EventID,
		AggregateType: "employee",
		AggregateID:   event.EmployeeID,
		EventType:     event.EventType,
		Topic:         events.EmployeeCreatedTopic,
		Payload:       payload,
	})
}
