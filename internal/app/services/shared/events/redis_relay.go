package events

import (
	"clinic-dashboard/internal/app/contracts"
	"clinic-dashboard/internal/pkg/constvars"
	"clinic-dashboard/internal/pkg/utils"
	"context"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RedisRelay shares events between dashboard instances over Redis pub/sub.
// Each instance tags what it sends and drops its own echoes.
type RedisRelay struct {
	Redis   contracts.RedisRepository
	Bus     *Bus
	Channel string
	Origin  string
	Log     *zap.Logger
}

func NewRedisRelay(redisRepository contracts.RedisRepository, bus *Bus, channel string, logger *zap.Logger) *RedisRelay {
	return &RedisRelay{
		Redis:   redisRepository,
		Bus:     bus,
		Channel: channel,
		Origin:  uuid.NewString(),
		Log:     logger,
	}
}

func (r *RedisRelay) Forward(ctx context.Context, event contracts.Event) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if event.Origin != "" {
		return
	}
	event.Origin = r.Origin

	if err := r.Redis.Publish(ctx, r.Channel, event); err != nil {
		r.Log.Error("RedisRelay.Forward error publishing event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingTopicKey, event.Topic),
			zap.Error(err),
		)
	}
}

// Start subscribes to the relay channel and blocks until the subscription is
// confirmed. The returned function stops the relay.
func (r *RedisRelay) Start(ctx context.Context) (func(), error) {
	ctx, cancel := context.WithCancel(ctx)
	pubsub := r.Redis.Subscribe(ctx, r.Channel)
	if _, err := pubsub.Receive(ctx); err != nil {
		cancel()
		pubsub.Close()
		return nil, err
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		messages := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case message, ok := <-messages:
				if !ok {
					return
				}
				r.receive(ctx, []byte(message.Payload))
			}
		}
	}()

	return func() {
		cancel()
		pubsub.Close()
		<-done
	}, nil
}

func (r *RedisRelay) receive(ctx context.Context, payload []byte) {
	var event contracts.Event
	if err := json.Unmarshal(payload, &event); err != nil {
		r.Log.Warn("RedisRelay.receive dropping malformed event", zap.Error(err))
		return
	}
	if event.Origin == r.Origin {
		return
	}

	ctx = context.WithValue(ctx, constvars.CONTEXT_REQUEST_ID_KEY, utils.GenerateRequestID())
	r.Bus.Deliver(ctx, event)
}
