package contracts

import "context"

// Event is a process-wide change notification. PatientID is an optional hint.
type Event struct {
	Topic     string `json:"topic"`
	PatientID *int64 `json:"patient_id,omitempty"`
	Origin    string `json:"origin,omitempty"`
}

type EventHandler func(ctx context.Context, event Event)

type Subscription interface {
	Unsubscribe()
}

type EventPublisher interface {
	Publish(ctx context.Context, event Event)
}

type EventBus interface {
	EventPublisher
	Subscribe(topic string, handler EventHandler) Subscription
}
