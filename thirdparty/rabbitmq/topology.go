package rabbitmq

import (
	"github.com/rabbitmq/amqp091-go"
)

const (
	auditExchange   = "admin_audit_exchange"
	auditQueue      = "admin_audit_queue"
	auditRoutingKey = "admin_audit"
)

func dial(url string) (*amqp091.Connection, *amqp091.Channel, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, err
	}

	if err := declareAuditTopology(channel); err != nil {
		channel.Close()
		conn.Close()
		return nil, nil, err
	}
	return conn, channel, nil
}

// declareAuditTopology is shared by the publisher and the consumer; both declare
// so either can start first.
func declareAuditTopology(channel *amqp091.Channel) error {
	err := channel.ExchangeDeclare(
		auditExchange, // name
		"direct",      // type
		true,          // durable
		false,         // auto-delete
		false,         // internal
		false,         // no-wait
		nil,           // arguments
	)
	if err != nil {
		return err
	}

	_, err = channel.QueueDeclare(
		auditQueue, // name
		true,       // durable
		false,      // auto-delete
		false,      // exclusive
		false,      // no-wait
		nil,        // arguments
	)
	if err != nil {
		return err
	}

	return channel.QueueBind(auditQueue, auditRoutingKey, auditExchange, false, nil)
}
