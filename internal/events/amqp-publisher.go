package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/init-pkg/rework-tracker/domain/app"
	"github.com/init-pkg/rework-tracker/domain/models"
)

// AmqpPublisher sends dataset events to a topic exchange, routed by event type.
type AmqpPublisher struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
}

var _ app.EventPublisher = &AmqpPublisher{}

func DialAmqp(url, exchange string) (*AmqpPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("amqp dial: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("amqp channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}
	return &AmqpPublisher{conn: conn, ch: ch, exchange: exchange}, nil
}

func (this *AmqpPublisher) Publish(ctx context.Context, event models.DatasetEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	this.mu.Lock()
	defer this.mu.Unlock()

	err = this.ch.PublishWithContext(ctx, this.exchange, string(event.Type), false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    event.At,
		Type:         string(event.Type),
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publish %s: %w", event.Type, err)
	}
	return nil
}

func (this *AmqpPublisher) Close() error {
	this.mu.Lock()
	defer this.mu.Unlock()

	if err := this.ch.Close(); err != nil {
		this.conn.Close()
		return err
	}
	return this.conn.Close()
}
