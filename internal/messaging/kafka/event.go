package kafka

// Event is one serialized domain event headed for a topic. Publishing is a
// best-effort side channel: it happens after the snapshot commit and never
// gates it.
type Event struct {
	ID            string
	AggregateType string
	AggregateID   string
	EventType     string
	Topic         string
	Payload       []byte
}
