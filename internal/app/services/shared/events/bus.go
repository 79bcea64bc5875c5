package events

import (
	"clinic-dashboard/internal/app/contracts"
	"clinic-dashboard/internal/pkg/constvars"
	"context"
	"sync"

	"go.uber.org/zap"
)

// Forwarder receives every locally published event, e.g. to relay it to
// other processes.
type Forwarder interface {
	Forward(ctx context.Context, event contracts.Event)
}

// Bus is the process-wide change channel. Delivery is synchronous, in
// subscription order, and fire-and-forget.
type Bus struct {
	mu         sync.RWMutex
	nextID     uint64
	handlers   map[string][]*subscription
	forwarders []Forwarder
	Log        *zap.Logger
}

type subscription struct {
	id      uint64
	topic   string
	handler contracts.EventHandler
	bus     *Bus
	once    sync.Once
}

func NewBus(logger *zap.Logger) *Bus {
	return &Bus{
		handlers: make(map[string][]*subscription),
		Log:      logger,
	}
}

func (b *Bus) AddForwarder(forwarder Forwarder) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.forwarders = append(b.forwarders, forwarder)
}

func (b *Bus) Subscribe(topic string, handler contracts.EventHandler) contracts.Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	sub := &subscription{
		id:      b.nextID,
		topic:   topic,
		handler: handler,
		bus:     b,
	}
	b.handlers[topic] = append(b.handlers[topic], sub)
	return sub
}

// Unsubscribe is idempotent.
func (s *subscription) Unsubscribe() {
	s.once.Do(func() {
		s.bus.remove(s)
	})
}

func (b *Bus) remove(target *subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	current := b.handlers[target.topic]
	kept := make([]*subscription, 0, len(current))
	for _, sub := range current {
		if sub.id != target.id {
			kept = append(kept, sub)
		}
	}
	if len(kept) == 0 {
		delete(b.handlers, target.topic)
		return
	}
	b.handlers[target.topic] = kept
}

// SubscriberCount reports the live subscriptions for topic.
func (b *Bus) SubscriberCount(topic string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers[topic])
}

// Publish delivers event to local subscribers, then hands it to the forwarders.
func (b *Bus) Publish(ctx context.Context, event contracts.Event) {
	b.Deliver(ctx, event)

	b.mu.RLock()
	forwarders := append([]Forwarder(nil), b.forwarders...)
	b.mu.RUnlock()

	for _, forwarder := range forwarders {
		forwarder.Forward(ctx, event)
	}
}

// Deliver runs local subscribers only. Relays use it for remote events.
func (b *Bus) Deliver(ctx context.Context, event contracts.Event) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	b.mu.RLock()
	subs := append([]*subscription(nil), b.handlers[event.Topic]...)
	b.mu.RUnlock()

	b.Log.Debug("Bus.Deliver called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTopicKey, event.Topic),
		zap.Int(constvars.LoggingCountKey, len(subs)),
	)

	for _, sub := range subs {
		b.invoke(ctx, sub, event, requestID)
	}
}

func (b *Bus) invoke(ctx context.Context, sub *subscription, event contracts.Event, requestID string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			b.Log.Error("Bus.Deliver handler panicked",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingTopicKey, event.Topic),
				zap.Any("panic", recovered),
			)
		}
	}()
	sub.handler(ctx, event)
}

func PatientsChanged(patientID *int64) contracts.Event {
	return contracts.Event{Topic: constvars.EventPatientsChanged, PatientID: patientID}
}

func InvoicesChanged(patientID *int64) contracts.Event {
	return contracts.Event{Topic: constvars.EventInvoicesChanged, PatientID: patientID}
}
