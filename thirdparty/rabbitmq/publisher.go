package rabbitmq

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/muhammadheryan/agri-market/model"
	"github.com/rabbitmq/amqp091-go"
)

// AuditPublisher ships admin transitions to the audit pipeline.
type AuditPublisher interface {
	PublishAdminAudit(ctx context.Context, event *model.AdminAuditEvent) error
}

type Publisher struct {
	mu      sync.Mutex
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

func NewPublisher(url string) (*Publisher, error) {
	conn, channel, err := dial(url)
	if err != nil {
		return nil, err
	}
	return &Publisher{conn: conn, channel: channel}, nil
}

func (p *Publisher) PublishAdminAudit(ctx context.Context, event *model.AdminAuditEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.channel.PublishWithContext(ctx,
		auditExchange,   // exchange
		auditRoutingKey, // routing key
		false,           // mandatory
		false,           // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			MessageId:    event.EventID,
			Timestamp:    event.OccurredAt,
			Body:         body,
		},
	)
}

func (p *Publisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
	return nil
}

// NoopPublisher is used when RabbitMQ is disabled.
type NoopPublisher struct{}

func (NoopPublisher) PublishAdminAudit(context.Context, *model.AdminAuditEvent) error {
	return nil
}
