package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/streadway/amqp"
)

// rabbitMQPublisher implements EventPublisher on a durable topic exchange.
// The event type is the routing key, so consumers can bind to order.* or a single type.
type rabbitMQPublisher struct {
	mu       sync.Mutex // amqp channels are not safe for concurrent publishing
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	logger   *slog.Logger
}

// NewRabbitMQPublisher dials the broker and declares the exchange.
func NewRabbitMQPublisher(amqpURL, exchange string, logger *slog.Logger) (service.EventPublisher, error) {
	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to RabbitMQ")
	}

	channel, err := conn.Channel()
	if err != nil {
		_ = conn.Close()

		return nil, errors.Wrap(err, "failed to open channel")
	}

	if err := channel.ExchangeDeclare(
		exchange,
		amqp.ExchangeTopic,
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		_ = channel.Close()
		_ = conn.Close()

		return nil, errors.Wrapf(err, "failed to declare exchange %s", exchange)
	}

	logger.Info("RabbitMQ publisher initialized", slog.String("exchange", exchange))

	return &rabbitMQPublisher{
		conn:     conn,
		channel:  channel,
		exchange: exchange,
		logger:   logger,
	}, nil
}

// PublishOrderEvent publishes the event as a persistent JSON message.
func (p *rabbitMQPublisher) PublishOrderEvent(ctx context.Context, event *service.OrderEvent) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	body, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	headers := amqp.Table{}
	for k, v := range eventAttributes(event) {
		headers[k] = v
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.channel.Publish(
		p.exchange,
		event.EventType,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:   "application/json",
			DeliveryMode:  amqp.Persistent,
			CorrelationId: event.RequestID,
			MessageId:     event.OrderID + ":" + event.EventType,
			Timestamp:     time.Now().UTC(),
			Headers:       headers,
			Body:          body,
		},
	); err != nil {
		return errors.Wrap(err, "failed to publish message")
	}

	p.logger.Debug("[RabbitMQ] Event published",
		slog.String("exchange", p.exchange),
		slog.String("routing_key", event.EventType),
		slog.String("order_number", event.OrderNumber),
	)

	return nil
}

// Close closes the channel and connection.
func (p *rabbitMQPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var errs []error
	if p.channel != nil {
		errs = append(errs, p.channel.Close())
	}
	if p.conn != nil {
		errs = append(errs, p.conn.Close())
	}

	for _, err := range errs {
		if err != nil {
			return errors.WithStack(err)
		}
	}

	return nil
}
