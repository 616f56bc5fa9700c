package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// DeskNotifier tells the advisory desk about pipeline changes.
type DeskNotifier interface {
	NotifyDesk(ctx context.Context, event MandateEvent) error
}

// Consumer is the part of an AMQP channel the worker needs.
type Consumer interface {
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
}

var ErrMalformedEvent = errors.New("malformed mandate event")

type Worker struct {
	Channel  Consumer
	Notifier DeskNotifier
	Logger   *zap.Logger
}

func NewWorker(ch Consumer, notifier DeskNotifier, logger *zap.Logger) *Worker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Worker{
		Channel:  ch,
		Notifier: notifier,
		Logger:   logger,
	}
}

// Start consumes queueName until ctx is done or the channel closes.
func (w *Worker) Start(ctx context.Context, queueName string) error {
	msgs, err := w.Channel.Consume(queueName, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("register consumer on %s: %w", queueName, err)
	}

	w.Logger.Info("worker waiting for mandate events", zap.String("queue", queueName))

	for {
		select {
		case <-ctx.Done():
			w.Logger.Info("worker stopped", zap.String("queue", queueName))
			return nil
		case d, ok := <-msgs:
			if !ok {
				return nil
			}
			w.deliver(ctx, d)
		}
	}
}

// deliver acks handled events. Malformed bodies go straight to the
// dead-letter queue; notifier failures are requeued once and dead-lettered
// on the second failure.
func (w *Worker) deliver(ctx context.Context, d amqp.Delivery) {
	err := w.Handle(ctx, d.Body)
	if err == nil {
		_ = d.Ack(false)
		return
	}

	requeue := !errors.Is(err, ErrMalformedEvent) && !d.Redelivered
	w.Logger.Error("mandate event failed",
		zap.String("routing_key", d.RoutingKey),
		zap.Bool("redelivered", d.Redelivered),
		zap.Bool("requeue", requeue),
		zap.Error(err),
	)
	_ = d.Nack(false, requeue)
}

// Handle decodes one event body and forwards it to the desk.
func (w *Worker) Handle(ctx context.Context, body []byte) error {
	var event MandateEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedEvent, err)
	}
	if event.LeadID == "" {
		return fmt.Errorf("%w: missing lead id", ErrMalformedEvent)
	}

	switch event.Type {
	case EventCaptured, EventStatusChanged:
	default:
		w.Logger.Warn("unknown mandate event, skipping", zap.String("type", string(event.Type)))
		return nil
	}

	if err := w.Notifier.NotifyDesk(ctx, event); err != nil {
		return fmt.Errorf("notify desk for %s: %w", event.LeadID, err)
	}

	w.Logger.Info("desk notified",
		zap.String("lead_id", event.LeadID),
		zap.String("type", string(event.Type)),
		zap.String("status", string(event.Status)),
	)
	return nil
}
