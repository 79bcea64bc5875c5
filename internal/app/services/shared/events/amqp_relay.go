package events

import (
	"clinic-dashboard/internal/app/contracts"
	"clinic-dashboard/internal/pkg/constvars"
	"context"
	"sync"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type amqpPublisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// AMQPRelay copies events onto a fanout exchange for consumers outside the
// dashboard. Nothing is consumed back.
type AMQPRelay struct {
	ch       amqpPublisher
	exchange string
	log      *zap.Logger
	mu       sync.Mutex
}

func NewAMQPRelay(conn *amqp.Connection, exchange string, logger *zap.Logger) (*AMQPRelay, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	err = ch.ExchangeDeclare(
		exchange, // name
		amqp.ExchangeFanout,
		true,  // durable
		false, // autoDelete
		false, // internal
		false, // noWait
		nil,   // args
	)
	if err != nil {
		ch.Close()
		return nil, err
	}

	return &AMQPRelay{ch: ch, exchange: exchange, log: logger}, nil
}

func (r *AMQPRelay) Forward(ctx context.Context, event contracts.Event) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	body, err := json.Marshal(event)
	if err != nil {
		r.log.Error("AMQPRelay.Forward error marshaling event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	msg := amqp.Publishing{
		ContentType:   constvars.MIMEApplicationJSON,
		Body:          body,
		Type:          event.Topic,
		CorrelationId: requestID,
	}
	if err := r.ch.PublishWithContext(ctx, r.exchange, event.Topic, false, false, msg); err != nil {
		r.log.Error("AMQPRelay.Forward error publishing event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingTopicKey, event.Topic),
			zap.Error(err),
		)
		return
	}

	r.log.Debug("AMQPRelay.Forward succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTopicKey, event.Topic),
	)
}
