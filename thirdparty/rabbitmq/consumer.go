package rabbitmq

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/muhammadheryan/agri-market/model"
	"github.com/muhammadheryan/agri-market/utils/logger"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Consumer forwards audit events to the API's internal endpoint, which owns the database.
type Consumer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	sink    *EventSink
}

func NewConsumer(url, apiURL, apiKey string) (*Consumer, error) {
	conn, channel, err := dial(url)
	if err != nil {
		return nil, err
	}

	return &Consumer{
		conn:    conn,
		channel: channel,
		sink:    NewEventSink(apiURL, apiKey, &http.Client{Timeout: 10 * time.Second}),
	}, nil
}

// Start consumes until ctx is cancelled or the channel closes.
func (c *Consumer) Start(ctx context.Context) error {
	// one message in flight at a time
	if err := c.channel.Qos(1, 0, false); err != nil {
		return err
	}

	msgs, err := c.channel.Consume(
		auditQueue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					logger.Warn("[AuditConsumer] delivery channel closed")
					return
				}
				c.handle(ctx, msg)
			}
		}
	}()

	return nil
}

func (c *Consumer) handle(ctx context.Context, msg amqp091.Delivery) {
	var event model.AdminAuditEvent
	if err := json.Unmarshal(msg.Body, &event); err != nil {
		logger.Error("[AuditConsumer] unmarshal message", zap.Error(err), zap.String("message_id", msg.MessageId))
		_ = msg.Ack(false)
		return
	}

	if err := c.sink.Forward(ctx, &event); err != nil {
		logger.Error("[AuditConsumer] forward event", zap.Error(err), zap.String("event_id", event.EventID))
		_ = msg.Nack(false, true)
		return
	}

	_ = msg.Ack(false)
	logger.Info("[AuditConsumer] event stored",
		zap.String("event_id", event.EventID),
		zap.String("action", string(event.Action)),
		zap.Uint64("target_id", event.TargetID),
	)
}

func (c *Consumer) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
	return nil
}

// EventSink posts an audit event to POST /internal/v1/admin-events.
type EventSink struct {
	apiURL string
	apiKey string
	client *http.Client
}

func NewEventSink(apiURL, apiKey string, client *http.Client) *EventSink {
	return &EventSink{apiURL: apiURL, apiKey: apiKey, client: client}
}

// Forward returns an error for transport failures and 5xx, so the message is requeued.
// 4xx means the event itself is bad and retrying will not help.
func (s *EventSink) Forward(ctx context.Context, event *model.AdminAuditEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL+"/internal/v1/admin-events", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Internal-Service", "admin-audit-consumer")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(respBody))
	}
	if resp.StatusCode >= http.StatusBadRequest {
		logger.Warn("[AuditConsumer] event rejected by API",
			zap.Int("status", resp.StatusCode),
			zap.String("event_id", event.EventID),
			zap.ByteString("body", respBody),
		)
	}
	return nil
}
