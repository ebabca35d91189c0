package queue

import (
	"errors"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	ExchangeName        = "ex.organizer"
	QueueName           = "q.conversions"
	DLQName             = "q.conversions.dlq"
	DLXName             = "ex.organizer.dlx" // Dead Letter Exchange
	RoutingKeyCompleted = "k.conversion.completed"
	RoutingKeyFailed    = "k.conversion.failed"
)

type RabbitMQ struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewRabbitMQ(url string) (*RabbitMQ, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if err := setupTopology(ch); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	return &RabbitMQ{Conn: conn, Ch: ch}, nil
}

func setupTopology(ch *amqp.Channel) error {
	if err := ch.ExchangeDeclare(DLXName, "direct", true, false, false, false, nil); err != nil {
		return err
	}
	if _, err := ch.QueueDeclare(DLQName, true, false, false, false, nil); err != nil {
		return err
	}

	if err := ch.ExchangeDeclare(ExchangeName, "direct", true, false, false, false, nil); err != nil {
		return err
	}

	args := amqp.Table{
		"x-dead-letter-exchange": DLXName,
	}
	if _, err := ch.QueueDeclare(QueueName, true, false, false, false, args); err != nil {
		return err
	}

	for _, key := range []string{RoutingKeyCompleted, RoutingKeyFailed} {
		if err := ch.QueueBind(DLQName, key, DLXName, false, nil); err != nil {
			return err
		}
		if err := ch.QueueBind(QueueName, key, ExchangeName, false, nil); err != nil {
			return err
		}
	}

	return nil
}

// Healthy reports whether the connection is still open.
func (r *RabbitMQ) Healthy() bool {
	return r != nil && r.Conn != nil && !r.Conn.IsClosed()
}

func (r *RabbitMQ) Close() error {
	if r == nil {
		return nil
	}
	var errs []error
	if r.Ch != nil {
		errs = append(errs, r.Ch.Close())
	}
	if r.Conn != nil {
		errs = append(errs, r.Conn.Close())
	}
	return errors.Join(errs...)
}
