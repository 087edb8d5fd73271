package producer

import (
	"context"
	"encoding/json"

	"go-hrm/internal/events"
	"go-hrm/internal/messaging/kafka"

	kafkago "github.com/segmentio/kafka-go"
)

// DecisionPublisher emits approval decisions for leave and overtime
// requests onto the shared decision topic.
type DecisionPublisher struct {
	writer *kafkago.Writer
}

func NewDecisionPublisher(writer *kafkago.Writer) *DecisionPublisher {
	return &DecisionPublisher{writer: writer}
}

func (p *DecisionPublisher) PublishApprovalDecided(ctx context.Context, event events.ApprovalDecidedEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return Publish(ctx, p.writer, kafka.Event{
		ID:            event.EventID,
		AggregateType: event.RequestKind,
		AggregateID:   event.RequestID,
		EventType:     event.EventType,
		Topic:         events.ApprovalDecisionTopic,
		Payload:       payload,
	})
}
