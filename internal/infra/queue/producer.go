package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/xavierca1/mailchimp-organizer/internal/usecase"
)

// ConversionEvent is the message body published for every finished run.
type ConversionEvent struct {
	RunID       string    `json:"run_id"`
	Kind        string    `json:"kind"`
	Status      string    `json:"status"`
	InputPath   string    `json:"input_path"`
	OutputPath  string    `json:"output_path,omitempty"`
	RowsRead    int       `json:"rows_read"`
	RowsWritten int       `json:"rows_written"`
	Error       string    `json:"error,omitempty"`
	FinishedAt  time.Time `json:"finished_at"`
}

// Publisher is satisfied by *amqp.Channel.
type Publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type RabbitMQProducer struct {
	Ch Publisher
}

func NewProducer(ch Publisher) *RabbitMQProducer {
	return &RabbitMQProducer{Ch: ch}
}

func (p *RabbitMQProducer) NotifyConversion(ctx context.Context, result usecase.ConversionResult) error {
	event := ConversionEvent{
		RunID:       result.RunID,
		Kind:        string(result.Kind),
		Status:      result.Status,
		InputPath:   result.InputPath,
		OutputPath:  result.OutputPath,
		RowsRead:    result.RowsRead,
		RowsWritten: result.RowsWritten,
		Error:       result.Error,
		FinishedAt:  result.FinishedAt,
	}

	key := RoutingKeyCompleted
	if !result.Succeeded() {
		key = RoutingKeyFailed
	}

	return p.PublishConversion(ctx, key, event)
}

func (p *RabbitMQProducer) PublishConversion(ctx context.Context, key string, event ConversionEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode conversion event: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		key,
		false, // Mandatory
		false, // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			MessageId:    event.RunID,
			Timestamp:    event.FinishedAt,
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish to RabbitMQ: %w", err)
	}

	return nil
}
